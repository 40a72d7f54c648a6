package schema

import "time"

// SurveyRunRecord represents a row from the archsurvey_runs table.
type SurveyRunRecord struct {
	RunID          int64      `json:"run_id"`
	SessionID      string     `json:"session_id"`
	CreatedAt      time.Time  `json:"created_at"`
	Mode           AnswerMode `json:"mode"`
	Answered       int        `json:"answered"`
	Total          int        `json:"total"`
	Type           Style      `json:"type"`
	Winner         Style      `json:"winner"`
	Score          float64    `json:"score"`
	Description    string     `json:"description"`
	Message        string     `json:"message"`
	NearTies       []Style    `json:"near_ties"`
	Interpretation string     `json:"interpretation"`

	ScoreMicroservices float64 `json:"score_microservices"`
	ScoreEvents        float64 `json:"score_events"`
	ScoreMonolithic    float64 `json:"score_monolithic"`
	ScoreHybrid        float64 `json:"score_hybrid"`

	AvgAutonomy float64 `json:"avg_autonomy"`
	AvgGlobal   float64 `json:"avg_global"`
	AvgEvents   float64 `json:"avg_events"`
}

// AnswerRecord represents a row from the archsurvey_answers table.
type AnswerRecord struct {
	RunID      int64       `json:"run_id"`
	QuestionID int         `json:"question_id"`
	Category   CategoryKey `json:"category"`
	Value      float64     `json:"value"`
	Weight     float64     `json:"weight"`
}

// ChatMessageRecord represents a row from the archsurvey_chat_messages table.
type ChatMessageRecord struct {
	MessageID int64     `json:"message_id"`
	RunID     int64     `json:"run_id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewSurveyRunRecord flattens a survey result into a storable run record.
func NewSurveyRunRecord(result SurveyResult) SurveyRunRecord {
	rec := result.Recommendation
	return SurveyRunRecord{
		SessionID:          result.SessionID,
		CreatedAt:          result.ComputedAt,
		Mode:               result.Mode,
		Answered:           result.Answered,
		Total:              result.Total,
		Type:               rec.Type,
		Winner:             rec.Winner,
		Score:              rec.Score,
		Description:        rec.Description,
		Message:            rec.Message,
		NearTies:           rec.NearTies,
		Interpretation:     result.Interpretation,
		ScoreMicroservices: result.Scores[MicroservicesStyle],
		ScoreEvents:        result.Scores[EventsStyle],
		ScoreMonolithic:    result.Scores[MonolithicStyle],
		ScoreHybrid:        result.Scores[HybridStyle],
		AvgAutonomy:        result.Categories[AutonomyCategory].Average,
		AvgGlobal:          result.Categories[GlobalCategory].Average,
		AvgEvents:          result.Categories[EventsCategory].Average,
	}
}

// NewAnswerRecords converts answers into storable rows for a run.
func NewAnswerRecords(runID int64, answers []Answer) []AnswerRecord {
	out := make([]AnswerRecord, 0, len(answers))
	for _, a := range answers {
		out = append(out, AnswerRecord{
			RunID:      runID,
			QuestionID: a.QuestionID,
			Category:   a.Category,
			Value:      a.Value,
			Weight:     a.Weight,
		})
	}
	return out
}

// ToResult rebuilds a survey result summary from a stored run and its answers.
// Count and weighted sums are not stored, so only averages are restored.
func (r SurveyRunRecord) ToResult(answers []AnswerRecord) SurveyResult {
	result := SurveyResult{
		SessionID: r.SessionID,
		Mode:      r.Mode,
		State:     StateFor(r.Answered, r.Total),
		Answered:  r.Answered,
		Total:     r.Total,
		Categories: CategoryResults{
			AutonomyCategory: {Average: r.AvgAutonomy},
			GlobalCategory:   {Average: r.AvgGlobal},
			EventsCategory:   {Average: r.AvgEvents},
		},
		Scores: StyleScores{
			MicroservicesStyle: r.ScoreMicroservices,
			EventsStyle:        r.ScoreEvents,
			MonolithicStyle:    r.ScoreMonolithic,
			HybridStyle:        r.ScoreHybrid,
		},
		Recommendation: Recommendation{
			Type:        r.Type,
			Description: r.Description,
			Message:     r.Message,
			Score:       r.Score,
			Winner:      r.Winner,
			NearTies:    r.NearTies,
		},
		Interpretation: r.Interpretation,
		ComputedAt:     r.CreatedAt,
	}
	for _, a := range answers {
		result.Answers = append(result.Answers, Answer{
			QuestionID: a.QuestionID,
			Value:      a.Value,
			Weight:     a.Weight,
			Category:   a.Category,
		})
	}
	return result
}
