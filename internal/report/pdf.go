package report

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ouss-AGC/oama-plateform/internal/model"
	"github.com/ouss-AGC/oama-plateform/internal/scoring"
	"github.com/ouss-AGC/oama-plateform/internal/stats"
)

type rgb struct{ r, g, b int }

// Discipline accent colors for the certificate frame and headings.
var disciplineColors = map[string]rgb{
	"munitions": {45, 80, 22},
	"agc":       {74, 85, 104},
	"genie":     {192, 86, 33},
}

var (
	goldAccent   = rgb{212, 175, 55}
	defaultColor = rgb{45, 80, 22}
)

// PDFRenderer renders certificates, individual reports and the ranked
// results list as PDF documents.
type PDFRenderer struct {
	instructorName  string
	instructorTitle string
}

func NewPDFRenderer(instructorName, instructorTitle string) *PDFRenderer {
	return &PDFRenderer{
		instructorName:  instructorName,
		instructorTitle: instructorTitle,
	}
}

func colorFor(discipline string) rgb {
	if c, ok := disciplineColors[discipline]; ok {
		return c
	}
	return defaultColor
}

func frenchDate(timestamp int64) string {
	return time.UnixMilli(timestamp).Format("02/01/2006")
}

// Certificate lays out the formal landscape A4 certificate: nested colored
// borders, the academy header, the recipient line and the instructor
// signature block.
func (p *PDFRenderer) Certificate(w io.Writer, r model.QuizResult) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	accent := colorFor(r.Discipline)

	pdf.SetFillColor(252, 248, 240)
	pdf.Rect(0, 0, 297, 210, "F")

	pdf.SetDrawColor(0, 128, 128)
	pdf.SetLineWidth(4)
	pdf.Rect(8, 8, 281, 194, "D")

	pdf.SetDrawColor(goldAccent.r, goldAccent.g, goldAccent.b)
	pdf.SetLineWidth(2)
	pdf.Rect(12, 12, 273, 186, "D")

	pdf.SetDrawColor(accent.r, accent.g, accent.b)
	pdf.SetLineWidth(1.5)
	pdf.Rect(22, 22, 253, 166, "D")

	pdf.SetDrawColor(goldAccent.r, goldAccent.g, goldAccent.b)
	pdf.SetLineWidth(0.5)
	pdf.Rect(24, 24, 249, 162, "D")

	center := func(y float64, text string) {
		pdf.Text(148.5-pdf.GetStringWidth(text)/2, y, text)
	}

	pdf.SetFont("Helvetica", "B", 36)
	pdf.SetTextColor(accent.r, accent.g, accent.b)
	center(70, tr("CERTIFICAT DE RÉUSSITE"))

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(100, 100, 100)
	center(80, tr("ACADÉMIE MILITAIRE - OAMA"))

	pdf.SetFont("Times", "I", 16)
	pdf.SetTextColor(80, 80, 80)
	center(95, tr("Décerné à"))

	pdf.SetFont("Times", "BI", 32)
	pdf.SetTextColor(0, 0, 0)
	center(110, tr(fmt.Sprintf("%s %s", r.Student.Grade, r.Student.Name)))

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(80, 80, 80)
	center(125, tr("Pour avoir complété avec succès l'évaluation de :"))

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(accent.r, accent.g, accent.b)
	center(140, tr(model.DisciplineName(r.Discipline)))

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 0)
	center(155, tr(fmt.Sprintf("Score obtenu : %.1f/20", r.ScoreOn20)))

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(60, 60, 60)
	dateText := tr(fmt.Sprintf("Fait le %s", frenchDate(r.Timestamp)))
	pdf.Text(60-pdf.GetStringWidth(dateText)/2, 178, dateText)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	name := tr(p.instructorName)
	pdf.Text(220-pdf.GetStringWidth(name)/2, 184, name)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	title := tr(p.instructorTitle)
	pdf.Text(220-pdf.GetStringWidth(title)/2, 189, title)

	return pdf.Output(w)
}

// StudentReport renders the per-question correction sheet for one attempt,
// with the class summary alongside for context.
func (p *PDFRenderer) StudentReport(w io.Writer, r model.QuizResult, set *model.QuestionSet, class stats.Summary) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetAutoPageBreak(true, 20)

	accent := colorFor(r.Discipline)

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(accent.r, accent.g, accent.b)
	pdf.CellFormat(0, 10, tr("RAPPORT INDIVIDUEL"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 7, tr("ACADÉMIE MILITAIRE - OAMA"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s %s", r.Student.Grade, r.Student.Name)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Matricule : %s    Classe : %s", r.Student.Matricule, r.Student.ClassName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Discipline : %s", model.DisciplineName(r.Discipline))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Date : %s    Durée : %s", frenchDate(r.Timestamp), formatDuration(r.TimeElapsed))), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Note : %.2f/20  (%d/%d réponses correctes)", r.ScoreOn20, r.CorrectCount, r.TotalQuestions)), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Classe — moyenne : %.2f/20, max : %.2f, min : %.2f (%d candidats)",
		class.Average, class.Max, class.Min, class.Count)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if set != nil {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetTextColor(accent.r, accent.g, accent.b)
		pdf.CellFormat(0, 8, tr("Correction détaillée"), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		for i, q := range set.Questions {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 5.5, tr(fmt.Sprintf("Q%d. %s", i+1, q.Question)), "", "L", false)

			var answered *int
			if i < len(r.Answers) {
				answered = r.Answers[i]
			}

			pdf.SetFont("Helvetica", "", 10)
			switch {
			case answered == nil:
				pdf.SetTextColor(150, 100, 0)
				pdf.MultiCell(0, 5, tr("Sans réponse"), "", "L", false)
			case *answered == q.CorrectAnswer:
				pdf.SetTextColor(34, 120, 34)
				pdf.MultiCell(0, 5, tr(fmt.Sprintf("Réponse : %s (correcte)", option(q, *answered))), "", "L", false)
			default:
				pdf.SetTextColor(180, 40, 40)
				pdf.MultiCell(0, 5, tr(fmt.Sprintf("Réponse : %s (fausse)", option(q, *answered))), "", "L", false)
			}
			if answered == nil || *answered != q.CorrectAnswer {
				pdf.SetTextColor(34, 120, 34)
				pdf.MultiCell(0, 5, tr(fmt.Sprintf("Bonne réponse : %s", option(q, q.CorrectAnswer))), "", "L", false)
			}
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(2)
		}
	}

	return pdf.Output(w)
}

// ResultsList renders the ranked results table with the headline figures on
// top. Results are expected already ordered by matricule.
func (p *PDFRenderer) ResultsList(w io.Writer, results []model.QuizResult, summary stats.Summary) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(45, 80, 22)
	pdf.CellFormat(0, 9, tr("LISTE COMPLÈTE DES RÉSULTATS"), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("ACADÉMIE MILITAIRE - OAMA — édité le %s", time.Now().Format("02/01/2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Candidats : %d    Moyenne : %.2f/20    Taux de réussite : %.1f%%    Max : %.2f    Min : %.2f",
		summary.Count, summary.Average, summary.PassRate, summary.Max, summary.Min)), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	headers := []string{"Matricule", "Grade", "Nom", "Classe", "Discipline", "Note /20", "Temps", "Date", "Résultat"}
	widths := []float64{24, 18, 58, 24, 58, 20, 20, 24, 24}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(45, 80, 22)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	for _, r := range results {
		pdf.SetFillColor(240, 244, 238)
		verdict := "Échec"
		if scoring.Passed(r.ScoreOn20) {
			verdict = "Admis"
		}
		row := []string{
			r.Student.Matricule,
			r.Student.Grade,
			r.Student.Name,
			r.Student.ClassName,
			r.Discipline,
			fmt.Sprintf("%.2f", r.ScoreOn20),
			formatDuration(r.TimeElapsed),
			frenchDate(r.Timestamp),
			verdict,
		}
		for i, cell := range row {
			align := "L"
			if i >= 5 {
				align = "C"
			}
			pdf.CellFormat(widths[i], 6.5, tr(cell), "1", 0, align, fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	return pdf.Output(w)
}

func option(q model.Question, idx int) string {
	if idx >= 0 && idx < len(q.Options) {
		return q.Options[idx]
	}
	return fmt.Sprintf("option %d", idx)
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
