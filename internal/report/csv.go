package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/wonny/montecarlo/internal/simulation"
)

// WriteCSV writes one row per trial with a header, in trial order
func WriteCSV(w io.Writer, records []simulation.TrialRecord) error {
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("write trial records: %w", err)
	}
	return nil
}
