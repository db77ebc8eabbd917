package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/ouss-AGC/oama-plateform/internal/model"
)

var csvHeader = []string{"Grade", "Nom", "Classe", "Matricule", "Discipline", "Score /20", "Temps (s)", "Date"}

// WriteCSV streams the results table as CSV for spreadsheet use. Rows follow
// the order of the input slice.
func WriteCSV(w io.Writer, results []model.QuizResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Student.Grade,
			r.Student.Name,
			r.Student.ClassName,
			r.Student.Matricule,
			r.Discipline,
			fmt.Sprintf("%.2f", r.ScoreOn20),
			fmt.Sprintf("%d", r.TimeElapsed),
			time.UnixMilli(r.Timestamp).Format("02/01/2006 15:04"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
