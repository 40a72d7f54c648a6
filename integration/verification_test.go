//go:build integration

// Package integration contains integration tests for archsurvey.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags integration ./integration
// Or use: make test-integration
package integration

import (
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultOutput is the subset of the JSON result that the tests verify.
type resultOutput struct {
	RunID          int64              `json:"run_id"`
	Answered       int                `json:"answered"`
	Total          int                `json:"total"`
	Scores         map[string]float64 `json:"scores"`
	Interpretation string             `json:"interpretation"`
	Recommendation struct {
		Type     string   `json:"type"`
		Winner   string   `json:"winner"`
		Score    float64  `json:"score"`
		NearTies []string `json:"near_ties"`
	} `json:"recommendation"`
}

func sqliteEnv(t *testing.T) []string {
	t.Helper()
	return []string{
		"ARCHSURVEY_STORE_BACKEND=sqlite",
		"ARCHSURVEY_STORE_DB_CONNECT=" + filepath.Join(t.TempDir(), "archsurvey.db"),
	}
}

func parseResult(t *testing.T, out string) resultOutput {
	t.Helper()
	var res resultOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	return res
}

// TestRecommendVerification checks CLI scores against hand-computed values.
func TestRecommendVerification(t *testing.T) {
	env := sqliteEnv(t)

	t.Run("no answers", func(t *testing.T) {
		out, err := runArchsurvey(t, env, "", "recommend", "--output", "json")
		require.NoError(t, err)
		res := parseResult(t, out)
		assert.Equal(t, 0, res.Answered)
		assert.Equal(t, "monolithic", res.Recommendation.Type)
		assert.InDelta(t, 1.0, res.Scores["monolithic"], 1e-9)
	})

	t.Run("all yes", func(t *testing.T) {
		args := []string{"recommend", "--output", "json"}
		for id := 1; id <= 18; id++ {
			args = append(args, "--answer", strconv.Itoa(id)+"=yes")
		}
		out, err := runArchsurvey(t, env, "", args...)
		require.NoError(t, err)
		res := parseResult(t, out)
		assert.Equal(t, 18, res.Answered)
		assert.Equal(t, "hybrid", res.Recommendation.Type)
		assert.Equal(t, "microservices", res.Recommendation.Winner)
		assert.InDelta(t, 0.795252, res.Scores["microservices"], 1e-6)
		assert.InDelta(t, 0.761090, res.Scores["events"], 1e-6)
		assert.ElementsMatch(t, []string{"events", "hybrid"}, res.Recommendation.NearTies)
		assert.Greater(t, res.RunID, int64(1))
	})

	t.Run("history keeps both runs", func(t *testing.T) {
		out, err := runArchsurvey(t, env, "", "history", "list", "--output", "csv")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 3, "header plus two runs")
	})
}

// TestSurveyFromStdin answers the survey through a pipe.
func TestSurveyFromStdin(t *testing.T) {
	env := sqliteEnv(t)

	t.Run("all no", func(t *testing.T) {
		stdin := strings.Repeat("n\n", 18)
		out, err := runArchsurvey(t, env, stdin, "survey", "--output", "json")
		require.NoError(t, err)
		res := parseResult(t, out)
		assert.Equal(t, 18, res.Answered)
		assert.Equal(t, "monolithic", res.Recommendation.Type)
		assert.InDelta(t, 1.0, res.Recommendation.Score, 1e-9)
	})

	t.Run("quit aborts without output", func(t *testing.T) {
		out, err := runArchsurvey(t, env, "y\nq\n", "survey", "--output", "json")
		require.NoError(t, err)
		assert.Empty(t, strings.TrimSpace(out))
	})
}

// TestQuestionsAndContext checks the informational commands.
func TestQuestionsAndContext(t *testing.T) {
	env := sqliteEnv(t)

	out, err := runArchsurvey(t, env, "", "questions", "--output", "csv")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 19, "header plus 18 questions")

	out, err = runArchsurvey(t, env, "", "context", "events", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"style": "events"`)

	_, err = runArchsurvey(t, env, "", "context", "serverless")
	assert.Error(t, err)
}
