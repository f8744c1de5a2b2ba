// Package export converts run logs into JSON and CSV for downstream analysis.
package export

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kilianp07/tracelab/core/sink"
)

// ReadRunLog parses a JSON-lines run log into step records. Blank lines are
// skipped; a malformed line aborts with its line number.
func ReadRunLog(r io.Reader) ([]sink.StepRecord, error) {
	var recs []sink.StepRecord
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec sink.StepRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("run log line %d: %w", line, err)
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// WriteJSON writes the step records to w as a JSON array.
func WriteJSON(w io.Writer, recs []sink.StepRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(recs)
}

// WriteCSV writes one row per indicator summary, flattening the step records.
func WriteCSV(w io.Writer, recs []sink.StepRecord) error {
	cw := csv.NewWriter(w)
	header := []string{"run_id", "step", "time", "indicator", "count", "mean", "min", "max", "std", "last"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range recs {
		for _, s := range rec.Summaries {
			row := []string{
				rec.RunID,
				strconv.FormatInt(rec.Step, 10),
				rec.Time.Format(time.RFC3339),
				s.Name,
				strconv.Itoa(s.Count),
				formatFloat(s.Mean),
				formatFloat(s.Min),
				formatFloat(s.Max),
				formatFloat(s.Std),
				formatFloat(s.Last),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
