package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ouss-AGC/oama-plateform/internal/model"
)

// ErrQuestionSetNotFound is returned when no question-set file exists for the
// requested discipline and mode.
var ErrQuestionSetNotFound = errors.New("question set not found")

// QuestionRepository loads discipline question sets from static JSON files:
// quiz_data_{discipline}.json for official attempts and
// {discipline}_practice.json for practice attempts. Sets are read once and
// cached for the process lifetime — the files are reference data, never
// edited while a session is live.
type QuestionRepository struct {
	dataDir string

	mu    sync.RWMutex
	cache map[string]*model.QuestionSet
}

// NewQuestionRepository creates a repository reading from dataDir.
func NewQuestionRepository(dataDir string) *QuestionRepository {
	return &QuestionRepository{
		dataDir: dataDir,
		cache:   make(map[string]*model.QuestionSet),
	}
}

// Get returns the question set for a discipline and mode.
func (r *QuestionRepository) Get(discipline string, mode model.QuizMode) (*model.QuestionSet, error) {
	key := discipline + "/" + string(mode)

	r.mu.RLock()
	cached, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	set, err := r.load(discipline, mode)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[key] = set
	r.mu.Unlock()
	return set, nil
}

// AnswerKey returns the ordered correct-answer indices for a discipline/mode.
func (r *QuestionRepository) AnswerKey(discipline string, mode model.QuizMode) ([]int, error) {
	set, err := r.Get(discipline, mode)
	if err != nil {
		return nil, err
	}
	return set.AnswerKey(), nil
}

func (r *QuestionRepository) load(discipline string, mode model.QuizMode) (*model.QuestionSet, error) {
	name := fmt.Sprintf("quiz_data_%s.json", discipline)
	if mode == model.QuizModePractice {
		name = fmt.Sprintf("%s_practice.json", discipline)
	}

	raw, err := os.ReadFile(filepath.Join(r.dataDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s (%s)", ErrQuestionSetNotFound, discipline, mode)
		}
		return nil, fmt.Errorf("read question set %s: %w", name, err)
	}

	var set model.QuestionSet
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("parse question set %s: %w", name, err)
	}
	if len(set.Questions) == 0 {
		return nil, fmt.Errorf("%w: %s (%s) has no questions", ErrQuestionSetNotFound, discipline, mode)
	}

	return &set, nil
}
