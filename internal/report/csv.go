// Package report renders the candidates report for export.
package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/zhassan-dev/resume-screener/model"
)

// CSVHeader is the column layout of the exported report.
var CSVHeader = []string{"Email", "Resume", "Score", "Status"}

// WriteCSV streams the candidates report to w, one row per record in the
// given order.
func WriteCSV(w io.Writer, candidates []model.Candidate) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, c := range candidates {
		row := []string{
			c.Email,
			c.Filename,
			strconv.FormatFloat(c.Score, 'f', 4, 64),
			string(c.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
