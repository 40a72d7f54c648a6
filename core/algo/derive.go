package algo

import "github.com/huangsam/archsurvey/schema"

// DeriveStyleScores maps the three category averages to the four style scores.
//
// Microservices and events each borrow a share of the global category
// (70% and 30%). Monolithic is the complement of microservices and hybrid
// is the midpoint of microservices and events.
func DeriveStyleScores(results schema.CategoryResults, weights map[schema.CategoryKey]float64) schema.StyleScores {
	avgAutonomy := results[schema.AutonomyCategory].Average
	avgGlobal := results[schema.GlobalCategory].Average
	avgEvents := results[schema.EventsCategory].Average

	wAutonomy := weights[schema.AutonomyCategory]
	wGlobalMS := weights[schema.GlobalCategory] * schema.GlobalMicroservicesShare
	wEvents := weights[schema.EventsCategory]
	wGlobalEV := weights[schema.GlobalCategory] * schema.GlobalEventsShare

	microservices := weightedMean(avgAutonomy*wAutonomy+avgGlobal*wGlobalMS, wAutonomy+wGlobalMS)
	events := weightedMean(avgEvents*wEvents+avgGlobal*wGlobalEV, wEvents+wGlobalEV)

	return schema.StyleScores{
		schema.MicroservicesStyle: microservices,
		schema.EventsStyle:        events,
		schema.MonolithicStyle:    1 - microservices,
		schema.HybridStyle:        (microservices + events) / 2,
	}
}

func weightedMean(sum, total float64) float64 {
	if total == 0 {
		return 0
	}
	return sum / total
}
