package repository

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ouss-AGC/oama-plateform/internal/model"
)

const sampleSet = `{
  "title": "Questionnaire de test",
  "questions": [
    {"id": 1, "question": "Q1", "options": ["a", "b", "c", "d"], "correctAnswer": 2},
    {"id": 2, "question": "Q2", "options": ["a", "b", "c", "d"], "correctAnswer": 0}
  ]
}`

func writeSet(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestGetOfficialSet(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "quiz_data_munitions.json", sampleSet)

	repo := NewQuestionRepository(dir)
	set, err := repo.Get("munitions", model.QuizModeOfficial)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if set.Title != "Questionnaire de test" {
		t.Errorf("Title = %q", set.Title)
	}
	if len(set.Questions) != 2 {
		t.Errorf("len(Questions) = %d, want 2", len(set.Questions))
	}
}

func TestGetPracticeSetUsesOwnFile(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "quiz_data_munitions.json", sampleSet)
	writeSet(t, dir, "munitions_practice.json", `{
  "title": "Entrainement",
  "questions": [{"id": 1, "question": "P1", "options": ["a", "b"], "correctAnswer": 1}]
}`)

	repo := NewQuestionRepository(dir)
	set, err := repo.Get("munitions", model.QuizModePractice)
	if err != nil {
		t.Fatalf("Get practice: %v", err)
	}
	if set.Title != "Entrainement" || len(set.Questions) != 1 {
		t.Errorf("practice set = %q with %d questions, want Entrainement with 1", set.Title, len(set.Questions))
	}
}

func TestGetUnknownDiscipline(t *testing.T) {
	repo := NewQuestionRepository(t.TempDir())
	_, err := repo.Get("inconnu", model.QuizModeOfficial)
	if !errors.Is(err, ErrQuestionSetNotFound) {
		t.Errorf("err = %v, want ErrQuestionSetNotFound", err)
	}
}

func TestGetEmptySetRejected(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "quiz_data_vide.json", `{"title": "Vide", "questions": []}`)

	repo := NewQuestionRepository(dir)
	if _, err := repo.Get("vide", model.QuizModeOfficial); !errors.Is(err, ErrQuestionSetNotFound) {
		t.Errorf("empty set: err = %v, want ErrQuestionSetNotFound", err)
	}
}

func TestGetCaches(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "quiz_data_munitions.json", sampleSet)

	repo := NewQuestionRepository(dir)
	if _, err := repo.Get("munitions", model.QuizModeOfficial); err != nil {
		t.Fatal(err)
	}

	// The file can disappear once cached.
	if err := os.Remove(filepath.Join(dir, "quiz_data_munitions.json")); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Get("munitions", model.QuizModeOfficial); err != nil {
		t.Errorf("cached Get after file removal: %v", err)
	}
}

func TestAnswerKey(t *testing.T) {
	dir := t.TempDir()
	writeSet(t, dir, "quiz_data_munitions.json", sampleSet)

	repo := NewQuestionRepository(dir)
	key, err := repo.AnswerKey("munitions", model.QuizModeOfficial)
	if err != nil {
		t.Fatalf("AnswerKey: %v", err)
	}
	want := []int{2, 0}
	if len(key) != len(want) {
		t.Fatalf("len(key) = %d, want %d", len(key), len(want))
	}
	for i := range want {
		if key[i] != want[i] {
			t.Errorf("key[%d] = %d, want %d", i, key[i], want[i])
		}
	}
}
