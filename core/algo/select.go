package algo

import (
	"fmt"

	"github.com/huangsam/archsurvey/schema"
)

// SelectRecommendation picks the top style and escalates to hybrid on near-ties.
//
// A style is a near-tie when winner - score < nearTieThreshold (strict).
// On escalation only the type, description and message change; Score keeps
// the numeric winner's score.
func SelectRecommendation(scores schema.StyleScores, nearTieThreshold float64) schema.Recommendation {
	winner := schema.AllStyles[0]
	for _, s := range schema.AllStyles[1:] {
		if scores[s] > scores[winner] {
			winner = s
		}
	}
	top := scores[winner]

	var nearTies []schema.Style
	for _, s := range schema.AllStyles {
		if s != winner && top-scores[s] < nearTieThreshold {
			nearTies = append(nearTies, s)
		}
	}

	rec := schema.Recommendation{
		Type:        winner,
		Description: winner.Description(),
		Message:     winner.LeadPhrase(),
		Score:       top,
		Winner:      winner,
		NearTies:    nearTies,
	}
	if len(nearTies) > 0 {
		rec.Type = schema.HybridStyle
		rec.Description = fmt.Sprintf("%s (combining %s with %s)",
			schema.HybridStyle.Description(), winner.Description(), schema.JoinStyles(nearTies))
		rec.Message = schema.HybridStyle.LeadPhrase()
	}
	return rec
}
