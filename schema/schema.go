// Package schema has the data types shared across the survey, scoring and storage layers.
package schema

import (
	"maps"
	"slices"
	"time"
)

// Answer is a single answered question. Weight and Category are copied from the catalog.
type Answer struct {
	QuestionID int         `json:"question_id"`
	Value      float64     `json:"value"`
	Weight     float64     `json:"weight"`
	Category   CategoryKey `json:"category"`
}

// CategoryResult holds the accumulated answers for one category.
type CategoryResult struct {
	WeightedSum float64 `json:"weighted_sum"`
	WeightTotal float64 `json:"weight_total"`
	Count       int     `json:"count"`
	Average     float64 `json:"average"`
}

// CategoryResults maps each category to its result.
type CategoryResults map[CategoryKey]CategoryResult

// Averages returns the category averages in catalog order.
func (cr CategoryResults) Averages() []float64 {
	out := make([]float64, 0, len(AllCategories))
	for _, key := range AllCategories {
		out = append(out, cr[key].Average)
	}
	return out
}

// StyleScores maps each style to its derived score.
type StyleScores map[Style]float64

// Recommendation is the outcome of selecting a style from the scores.
type Recommendation struct {
	Type        Style   `json:"type"`
	Description string  `json:"description"`
	Message     string  `json:"message"`
	Score       float64 `json:"score"`
	Winner      Style   `json:"winner"`
	NearTies    []Style `json:"near_ties"`
}

// IsEscalated reports whether near-ties turned the numeric winner into a hybrid recommendation.
func (r Recommendation) IsEscalated() bool {
	return len(r.NearTies) > 0
}

// Leaning is an informational hint derived from the answer bands.
type Leaning struct {
	Style  Style  `json:"style"`
	Reason string `json:"reason"`
}

// ScoringModel holds every tunable input of the scoring engine.
type ScoringModel struct {
	CategoryWeights     map[CategoryKey]float64 `json:"category_weights"`
	NearTieThreshold    float64                 `json:"near_tie_threshold"`
	LowThreshold        float64                 `json:"low_threshold"`
	ConfidenceThreshold float64                 `json:"confidence_threshold"`
	Averaging           AveragingMode           `json:"averaging"`
}

// DefaultScoringModel returns the model with the default weights and thresholds.
func DefaultScoringModel() ScoringModel {
	return ScoringModel{
		CategoryWeights:     GetDefaultCategoryWeights(),
		NearTieThreshold:    DefaultNearTieThreshold,
		LowThreshold:        DefaultLowThreshold,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		Averaging:           CountAveraging,
	}
}

// Clone returns a deep copy of the model.
func (m ScoringModel) Clone() ScoringModel {
	clone := m
	if m.CategoryWeights != nil {
		clone.CategoryWeights = make(map[CategoryKey]float64, len(m.CategoryWeights))
		maps.Copy(clone.CategoryWeights, m.CategoryWeights)
	}
	return clone
}

// SurveyResult is the finalized output of one scoring run.
type SurveyResult struct {
	SessionID      string          `json:"session_id"`
	Mode           AnswerMode      `json:"mode"`
	State          SessionState    `json:"state"`
	Answered       int             `json:"answered"`
	Total          int             `json:"total"`
	Categories     CategoryResults `json:"categories"`
	Scores         StyleScores     `json:"scores"`
	Recommendation Recommendation  `json:"recommendation"`
	Interpretation string          `json:"interpretation"`
	Leanings       []Leaning       `json:"leanings,omitempty"`
	Answers        []Answer        `json:"answers,omitempty"`
	ComputedAt     time.Time       `json:"computed_at"`
}

// Clone returns a deep copy of the result.
func (r SurveyResult) Clone() SurveyResult {
	clone := r
	if r.Categories != nil {
		clone.Categories = make(CategoryResults, len(r.Categories))
		maps.Copy(clone.Categories, r.Categories)
	}
	if r.Scores != nil {
		clone.Scores = make(StyleScores, len(r.Scores))
		maps.Copy(clone.Scores, r.Scores)
	}
	clone.Recommendation.NearTies = slices.Clone(r.Recommendation.NearTies)
	clone.Leanings = slices.Clone(r.Leanings)
	clone.Answers = slices.Clone(r.Answers)
	return clone
}

// SortedAnswers returns the answers of a map ordered by question id.
func SortedAnswers(answers map[int]Answer) []Answer {
	ids := slices.Sorted(maps.Keys(answers))
	out := make([]Answer, 0, len(ids))
	for _, id := range ids {
		out = append(out, answers[id])
	}
	return out
}

// StateFor returns the session state for the number of answered questions.
func StateFor(answered, total int) SessionState {
	switch {
	case answered == 0:
		return NoAnswersState
	case answered < total:
		return PartiallyAnsweredState
	default:
		return FullyScoredState
	}
}

// ChatMessage is a single turn of a conversation with the assistant.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}
