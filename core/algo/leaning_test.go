package algo

import (
	"testing"

	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveLeanings(t *testing.T) {
	catalog := schema.DefaultCatalog()

	t.Run("no answers", func(t *testing.T) {
		assert.Empty(t, DeriveLeanings(nil, schema.DefaultLowThreshold))
	})

	t.Run("high autonomy and events", func(t *testing.T) {
		answers := map[int]schema.Answer{}
		for _, id := range []int{1, 2, 3, 14, 15} {
			answers[id] = answerFor(t, catalog, id, 1)
		}
		answers[4] = answerFor(t, catalog, 4, 0)
		leanings := DeriveLeanings(answers, schema.DefaultLowThreshold)
		styles := make([]schema.Style, 0, len(leanings))
		for _, l := range leanings {
			styles = append(styles, l.Style)
		}
		assert.Equal(t, []schema.Style{schema.MicroservicesStyle, schema.EventsStyle}, styles)
	})

	t.Run("mostly low", func(t *testing.T) {
		answers := map[int]schema.Answer{}
		for _, q := range catalog.Questions() {
			answers[q.ID] = answerFor(t, catalog, q.ID, 0)
		}
		leanings := DeriveLeanings(answers, schema.DefaultLowThreshold)
		assert.Len(t, leanings, 1)
		assert.Equal(t, schema.MonolithicStyle, leanings[0].Style)
	})

	t.Run("split vote is not a majority", func(t *testing.T) {
		answers := map[int]schema.Answer{
			1: answerFor(t, catalog, 1, 1),
			2: answerFor(t, catalog, 2, 0),
		}
		assert.Empty(t, DeriveLeanings(answers, schema.DefaultLowThreshold))
	})
	t.Run("low cut-off follows the model", func(t *testing.T) {
		answers := map[int]schema.Answer{}
		for _, q := range catalog.Questions() {
			answers[q.ID] = answerFor(t, catalog, q.ID, 0.4)
		}
		assert.Empty(t, DeriveLeanings(answers, schema.DefaultLowThreshold), "0.4 is medium by default")

		leanings := DeriveLeanings(answers, 0.45)
		require.Len(t, leanings, 1)
		assert.Equal(t, schema.MonolithicStyle, leanings[0].Style)
	})
}
