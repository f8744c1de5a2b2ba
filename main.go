package main

import (
	"log"

	"github.com/kilianp07/tracelab/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("tracelab: %v", err)
	}
}
