// Package export renders the service-request and follow-up join views as
// comma-separated text for download.
package export

import (
	"bytes"
	"encoding/csv"
)

// View is a tabular result ready for CSV rendering.
type View struct {
	Columns []string
	Rows    [][]string
}

// CSV renders the view as a CSV string, header row first.
func (v *View) CSV() string {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write(v.Columns)
	for _, row := range v.Rows {
		_ = w.Write(row)
	}
	w.Flush()
	return buf.String()
}
