package core

import (
	"fmt"
	"maps"
	"math"
	"sync"

	"github.com/google/uuid"
	"github.com/huangsam/archsurvey/schema"
)

// Session holds the answers of one survey and the cached scoring result.
// It is safe for concurrent use; writes are serialized and at most one
// scoring run happens per set of answers.
type Session struct {
	mu      sync.Mutex
	id      string
	catalog schema.Catalog
	mode    schema.AnswerMode
	answers map[int]schema.Answer

	// result is the finalized output for the current answers, nil when stale.
	result      *schema.SurveyResult
	resultModel schema.ScoringModel
}

// NewSession creates an empty session over the catalog.
func NewSession(catalog schema.Catalog, mode schema.AnswerMode) *Session {
	if _, ok := schema.ValidAnswerModes[mode]; !ok {
		mode = schema.BinaryMode
	}
	return &Session{
		id:      uuid.NewString(),
		catalog: catalog.Clone(),
		mode:    mode,
		answers: make(map[int]schema.Answer),
	}
}

// ID returns the session id.
func (s *Session) ID() string {
	return s.id
}

// Mode returns the current answer mode.
func (s *Session) Mode() schema.AnswerMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Catalog returns a copy of the catalog the session was created with.
func (s *Session) Catalog() schema.Catalog {
	return s.catalog.Clone()
}

// SetMode switches the answer mode. Any existing answers are discarded.
func (s *Session) SetMode(mode schema.AnswerMode) error {
	if _, ok := schema.ValidAnswerModes[mode]; !ok {
		return fmt.Errorf("invalid answer mode '%s'", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode == s.mode {
		return nil
	}
	s.mode = mode
	s.resetLocked()
	return nil
}

// Answer records the value for a question, replacing any earlier answer.
func (s *Session) Answer(questionID int, value float64) error {
	q, key, ok := s.catalog.Lookup(questionID)
	if !ok {
		return fmt.Errorf("%w: %d", schema.ErrUnknownQuestion, questionID)
	}
	if math.IsNaN(value) || value < 0 || value > 1 {
		return fmt.Errorf("%w: question %d value %v must be in [0,1]", schema.ErrInvalidAnswer, questionID, value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == schema.BinaryMode && value != 0 && value != 1 {
		return fmt.Errorf("%w: question %d value %v must be 0 or 1 in binary mode", schema.ErrInvalidAnswer, questionID, value)
	}
	s.answers[questionID] = schema.Answer{
		QuestionID: questionID,
		Value:      value,
		Weight:     q.Weight,
		Category:   key,
	}
	s.result = nil
	return nil
}

// AnswerYesNo records a binary answer.
func (s *Session) AnswerYesNo(questionID int, yes bool) error {
	value := 0.0
	if yes {
		value = 1.0
	}
	return s.Answer(questionID, value)
}

// AnswerAll records every value in the map. It stops at the first error.
func (s *Session) AnswerAll(values map[int]float64) error {
	for id, v := range values {
		if err := s.Answer(id, v); err != nil {
			return err
		}
	}
	return nil
}

// Answers returns the recorded answers ordered by question id.
func (s *Session) Answers() []schema.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.SortedAnswers(s.answers)
}

// State reports how much of the catalog has been answered.
func (s *Session) State() schema.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.StateFor(len(s.answers), s.catalog.QuestionCount())
}

// Reset discards all answers and the cached result.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.answers = make(map[int]schema.Answer)
	s.result = nil
}

// Finalize scores the current answers with the model. The result is cached
// until the answers or the model change; every call returns its own copy.
func (s *Session) Finalize(model schema.ScoringModel) (schema.SurveyResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result != nil && sameModel(s.resultModel, model) {
		return s.result.Clone(), nil
	}

	result, err := Evaluate(s.answers, s.catalog, model)
	if err != nil {
		return schema.SurveyResult{}, err
	}
	result.SessionID = s.id
	result.Mode = s.mode

	cached := result.Clone()
	s.result = &cached
	s.resultModel = model.Clone()
	return result, nil
}

func sameModel(a, b schema.ScoringModel) bool {
	return a.NearTieThreshold == b.NearTieThreshold &&
		a.LowThreshold == b.LowThreshold &&
		a.ConfidenceThreshold == b.ConfidenceThreshold &&
		a.Averaging == b.Averaging &&
		maps.Equal(a.CategoryWeights, b.CategoryWeights)
}
