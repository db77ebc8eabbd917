package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/ouss-AGC/oama-plateform/internal/model"
)

func TestWriteCSV(t *testing.T) {
	results := []model.QuizResult{
		{
			Student:     model.Participant{Grade: "EOA", Name: "Ahmed Ben Ali", ClassName: "LASM 2", Matricule: "17"},
			Discipline:  "munitions",
			ScoreOn20:   16.5,
			TimeElapsed: 1500,
			Timestamp:   1725000000000,
		},
		{
			Student:     model.Participant{Grade: "Sgt", Name: "Sami Gharbi", ClassName: "LASM 3", Matricule: "204"},
			Discipline:  "agc",
			ScoreOn20:   9,
			TimeElapsed: 800,
			Timestamp:   1725000100000,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, results); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header + 2", len(rows))
	}

	wantHeader := "Grade,Nom,Classe,Matricule,Discipline,Score /20,Temps (s),Date"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}
	if rows[1][1] != "Ahmed Ben Ali" || rows[1][5] != "16.50" {
		t.Errorf("row 1 = %v", rows[1])
	}
	if rows[2][3] != "204" || rows[2][6] != "800" {
		t.Errorf("row 2 = %v", rows[2])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should contain only the header, got %d lines", len(lines))
	}
}

func TestPDFRendererProducesDocuments(t *testing.T) {
	r := NewPDFRenderer("Lt Col Oussama Atoui", "Instructeur Armes et Munitions")
	result := model.QuizResult{
		Student:        model.Participant{Grade: "EOA", Name: "Ahmed Ben Ali", ClassName: "LASM 2", Matricule: "17"},
		Discipline:     "munitions",
		ScoreOn20:      17.2,
		CorrectCount:   43,
		TotalQuestions: 50,
		TimeElapsed:    1800,
		Timestamp:      1725000000000,
	}

	var buf bytes.Buffer
	if err := r.Certificate(&buf, result); err != nil {
		t.Fatalf("Certificate: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("Certificate output is not a PDF")
	}
}
