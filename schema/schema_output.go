package schema

// RankedStyle adds presentation data to a style score.
type RankedStyle struct {
	Rank     int     `json:"rank"`
	Style    Style   `json:"style"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Label    string  `json:"label"`
	Winner   bool    `json:"winner"`
	NearTie  bool    `json:"near_tie"`
	Selected bool    `json:"selected"`
}

// EnrichedCategory adds presentation data to a category result.
type EnrichedCategory struct {
	Key  CategoryKey `json:"key"`
	Name string      `json:"name"`
	Band Band        `json:"band"`
	CategoryResult
}

// ModelRenderModel is the render model for the scoring model description.
type ModelRenderModel struct {
	Description string             `json:"description"`
	Weights     map[string]float64 `json:"weights"`
	Formulas    []ModelFormula     `json:"formulas"`
	Thresholds  map[string]float64 `json:"thresholds"`
	Averaging   string             `json:"averaging"`
}

// ModelFormula describes how one style score is derived.
type ModelFormula struct {
	Style   Style  `json:"style"`
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	Formula string `json:"formula"`
}

// GetPlainLabel returns the band label of a value in [0,1].
func GetPlainLabel(v float64) string {
	return BandLabel(GetBand(v))
}

// BandLabel returns the display label of a band.
func BandLabel(b Band) string {
	switch b {
	case HighBand:
		return "High"
	case MediumBand:
		return "Medium"
	default:
		return "Low"
	}
}

// RankStyles orders styles by score, keeping declaration order for equal scores.
func RankStyles(scores StyleScores, rec Recommendation) []RankedStyle {
	near := make(map[Style]bool, len(rec.NearTies))
	for _, s := range rec.NearTies {
		near[s] = true
	}
	out := make([]RankedStyle, 0, len(AllStyles))
	for _, s := range AllStyles {
		out = append(out, RankedStyle{
			Style:    s,
			Name:     s.DisplayName(),
			Score:    scores[s],
			Label:    GetPlainLabel(scores[s]),
			Winner:   s == rec.Winner,
			NearTie:  near[s],
			Selected: s == rec.Type,
		})
	}
	// Insertion sort keeps equal scores in declaration order.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Score > out[j-1].Score; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// EnrichCategories returns category results in catalog order with names and bands.
// Averages at or below low fall in the low band.
func EnrichCategories(catalog Catalog, results CategoryResults, low float64) []EnrichedCategory {
	out := make([]EnrichedCategory, 0, len(catalog))
	for _, cat := range catalog {
		r := results[cat.Key]
		out = append(out, EnrichedCategory{
			Key:            cat.Key,
			Name:           cat.Name,
			Band:           GetBandWith(r.Average, low),
			CategoryResult: r,
		})
	}
	return out
}
