package algo

import (
	"testing"

	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
)

func TestSelectRecommendation(t *testing.T) {
	tests := []struct {
		name         string
		scores       schema.StyleScores
		threshold    float64
		wantType     schema.Style
		wantWinner   schema.Style
		wantScore    float64
		wantNearTies []schema.Style
	}{
		{
			name: "near tie escalates to hybrid",
			scores: schema.StyleScores{
				schema.MicroservicesStyle: 0.80,
				schema.EventsStyle:        0.70,
				schema.MonolithicStyle:    0.20,
				schema.HybridStyle:        0.75,
			},
			threshold:    schema.DefaultNearTieThreshold,
			wantType:     schema.HybridStyle,
			wantWinner:   schema.MicroservicesStyle,
			wantScore:    0.80,
			wantNearTies: []schema.Style{schema.EventsStyle, schema.HybridStyle},
		},
		{
			name: "clear winner",
			scores: schema.StyleScores{
				schema.MicroservicesStyle: 0.90,
				schema.EventsStyle:        0.40,
				schema.MonolithicStyle:    0.10,
				schema.HybridStyle:        0.65,
			},
			threshold:  schema.DefaultNearTieThreshold,
			wantType:   schema.MicroservicesStyle,
			wantWinner: schema.MicroservicesStyle,
			wantScore:  0.90,
		},
		{
			name: "all equal escalates with every other style",
			scores: schema.StyleScores{
				schema.MicroservicesStyle: 0.5,
				schema.EventsStyle:        0.5,
				schema.MonolithicStyle:    0.5,
				schema.HybridStyle:        0.5,
			},
			threshold:    schema.DefaultNearTieThreshold,
			wantType:     schema.HybridStyle,
			wantWinner:   schema.MicroservicesStyle,
			wantScore:    0.5,
			wantNearTies: []schema.Style{schema.EventsStyle, schema.MonolithicStyle, schema.HybridStyle},
		},
		{
			name: "difference equal to threshold is not near",
			scores: schema.StyleScores{
				schema.MicroservicesStyle: 0.25,
				schema.EventsStyle:        0.0,
				schema.MonolithicStyle:    0.75,
				schema.HybridStyle:        0.125,
			},
			threshold:  0.5,
			wantType:   schema.MonolithicStyle,
			wantWinner: schema.MonolithicStyle,
			wantScore:  0.75,
		},
		{
			name: "tie on top goes to declaration order",
			scores: schema.StyleScores{
				schema.MicroservicesStyle: 0.1,
				schema.EventsStyle:        0.9,
				schema.MonolithicStyle:    0.9,
				schema.HybridStyle:        0.5,
			},
			threshold:    0.0,
			wantType:     schema.EventsStyle,
			wantWinner:   schema.EventsStyle,
			wantScore:    0.9,
			wantNearTies: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := SelectRecommendation(tt.scores, tt.threshold)
			assert.Equal(t, tt.wantType, rec.Type)
			assert.Equal(t, tt.wantWinner, rec.Winner)
			assert.Equal(t, tt.wantScore, rec.Score)
			assert.Equal(t, tt.wantNearTies, rec.NearTies)
			assert.NotContains(t, rec.NearTies, rec.Winner)
			assert.Equal(t, tt.wantType.LeadPhrase(), rec.Message)
		})
	}
}

func TestSelectRecommendation_Descriptions(t *testing.T) {
	escalated := SelectRecommendation(schema.StyleScores{
		schema.MicroservicesStyle: 0.80,
		schema.EventsStyle:        0.70,
		schema.MonolithicStyle:    0.20,
		schema.HybridStyle:        0.75,
	}, schema.DefaultNearTieThreshold)
	assert.Equal(t,
		"Hybrid Architecture (combining Microservices Architecture with Event-Driven, Hybrid)",
		escalated.Description)
	assert.True(t, escalated.IsEscalated())

	plain := SelectRecommendation(schema.StyleScores{
		schema.MicroservicesStyle: 0.10,
		schema.EventsStyle:        0.20,
		schema.MonolithicStyle:    0.90,
		schema.HybridStyle:        0.15,
	}, schema.DefaultNearTieThreshold)
	assert.Equal(t, "Monolithic / N-Tier Architecture", plain.Description)
	assert.False(t, plain.IsEscalated())
}
