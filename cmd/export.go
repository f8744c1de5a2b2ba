package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilianp07/tracelab/pkg/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export <runlog>",
	Short: "Convert a JSONL run log to CSV or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format (csv or json)")
	exportCmd.Flags().StringVarP(&exportOut, "output", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer in.Close()

	recs, err := export.ReadRunLog(in)
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportOut != "-" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch exportFormat {
	case "csv":
		return export.WriteCSV(out, recs)
	case "json":
		return export.WriteJSON(out, recs)
	default:
		return fmt.Errorf("unsupported format: %s", exportFormat)
	}
}
