package algo

import "github.com/huangsam/archsurvey/schema"

// DeriveLeanings applies the band majority rules to the answered questions.
// Values at or below low count as low answers.
// Leanings are informational and never feed back into the scores.
func DeriveLeanings(answers map[int]schema.Answer, low float64) []schema.Leaning {
	type tally struct{ high, low, total int }
	perCat := make(map[schema.CategoryKey]*tally)
	var all tally

	for _, a := range answers {
		t, ok := perCat[a.Category]
		if !ok {
			t = &tally{}
			perCat[a.Category] = t
		}
		t.total++
		all.total++
		switch schema.GetBandWith(a.Value, low) {
		case schema.HighBand:
			t.high++
			all.high++
		case schema.LowBand:
			t.low++
			all.low++
		}
	}

	var leanings []schema.Leaning
	if t := perCat[schema.AutonomyCategory]; t != nil && majority(t.high, t.total) {
		leanings = append(leanings, schema.Leaning{
			Style:  schema.MicroservicesStyle,
			Reason: "most service autonomy answers are high",
		})
	}
	if t := perCat[schema.EventsCategory]; t != nil && majority(t.high, t.total) {
		leanings = append(leanings, schema.Leaning{
			Style:  schema.EventsStyle,
			Reason: "most event-driven answers are high",
		})
	}
	if majority(all.low, all.total) {
		leanings = append(leanings, schema.Leaning{
			Style:  schema.MonolithicStyle,
			Reason: "most answers across all categories are low",
		})
	}
	return leanings
}

func majority(n, total int) bool {
	return total > 0 && n*2 > total
}
