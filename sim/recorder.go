package sim

import (
	"encoding/csv"
	"fmt"
	"os"
)

var traceHeader = []string{
	"run_id", "event_id", "cycle", "tick", "from", "to",
	"ns_green", "ns_yellow", "ew_green", "ew_yellow", "ped_walk",
}

// WriteCSV writes the trace's transition events to a CSV file, one row
// per event, with the decoded output levels of the entered phase.
func WriteCSV(trace *Trace, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(traceHeader); err != nil {
		return fmt.Errorf("failed to write trace header: %w", err)
	}

	for _, ev := range trace.Events {
		row := []string{
			trace.RunID,
			ev.ID,
			fmt.Sprintf("%d", ev.Cycle),
			fmt.Sprintf("%d", ev.Tick),
			ev.From.String(),
			ev.To.String(),
			boolField(ev.Outputs.NSGreen),
			boolField(ev.Outputs.NSYellow),
			boolField(ev.Outputs.EWGreen),
			boolField(ev.Outputs.EWYellow),
			boolField(ev.Outputs.PedWalk),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write trace row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
