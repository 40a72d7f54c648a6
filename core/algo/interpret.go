package algo

import "github.com/huangsam/archsurvey/schema"

// Interpret renders the one-paragraph summary of a recommendation.
//
// When every category average is below the low threshold the monolithic
// template is used whatever the recommendation type. The hedge sentence is
// appended when the score is below the confidence threshold.
func Interpret(rec schema.Recommendation, results schema.CategoryResults, model schema.ScoringModel) string {
	style := rec.Type
	if allBelow(results, model.LowThreshold) {
		style = schema.MonolithicStyle
	}

	text := schema.GetStyleInfo(style).Template
	if rec.Score < model.ConfidenceThreshold {
		text += schema.HedgeSentence
	}
	return text
}

func allBelow(results schema.CategoryResults, threshold float64) bool {
	for _, avg := range results.Averages() {
		if avg >= threshold {
			return false
		}
	}
	return true
}
