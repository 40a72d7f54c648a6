package core

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSurvey_Binary(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
	// Question 1 gets an invalid answer first, question 2 is left blank
	input := "maybe\ny\n\n" + strings.Repeat("n\n", 16)
	var out bytes.Buffer

	require.NoError(t, RunSurvey(context.Background(), s, strings.NewReader(input), &out))

	answers := s.Answers()
	require.Len(t, answers, 18)
	assert.Equal(t, 1.0, answers[0].Value)
	assert.Equal(t, 0.0, answers[1].Value)
	assert.Equal(t, schema.FullyScoredState, s.State())
	assert.Contains(t, out.String(), "please answer y or n")
	assert.Contains(t, out.String(), "== Service Division and Autonomy ==")
	assert.Contains(t, out.String(), "[18]")
}

func TestRunSurvey_Graded(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.GradedMode)
	input := "0.9\n\n1.5\n0.3\n"
	var out bytes.Buffer

	// Input ends early and leaves the session partially answered
	require.NoError(t, RunSurvey(context.Background(), s, strings.NewReader(input), &out))

	answers := s.Answers()
	require.Len(t, answers, 3)
	assert.Equal(t, 0.9, answers[0].Value)
	assert.Equal(t, defaultGradedValue, answers[1].Value)
	assert.Equal(t, 0.3, answers[2].Value)
	assert.Equal(t, schema.PartiallyAnsweredState, s.State())
	assert.Contains(t, out.String(), "invalid answer")
}

func TestRunSurvey_Quit(t *testing.T) {
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
	err := RunSurvey(context.Background(), s, strings.NewReader("y\nq\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrSurveyAborted)
	assert.Len(t, s.Answers(), 1)
}

func TestRunSurvey_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
	err := RunSurvey(ctx, s, strings.NewReader("y\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunSurvey_Restart(t *testing.T) {
	t.Run("binary", func(t *testing.T) {
		s := NewSession(schema.DefaultCatalog(), schema.BinaryMode)
		input := "y\ny\nr\nn\n"
		var out bytes.Buffer

		require.NoError(t, RunSurvey(context.Background(), s, strings.NewReader(input), &out))

		answers := s.Answers()
		require.Len(t, answers, 1, "answers before the restart are cleared")
		assert.Equal(t, 1, answers[0].QuestionID)
		assert.Equal(t, 0.0, answers[0].Value)
		assert.Contains(t, out.String(), "starting over")
		assert.Equal(t, 2, strings.Count(out.String(), "== Service Division and Autonomy =="))
	})

	t.Run("graded", func(t *testing.T) {
		s := NewSession(schema.DefaultCatalog(), schema.GradedMode)
		require.NoError(t, RunSurvey(context.Background(), s, strings.NewReader("0.2\nRESTART\n0.7\n"), &bytes.Buffer{}))

		answers := s.Answers()
		require.Len(t, answers, 1)
		assert.Equal(t, 0.7, answers[0].Value)
	})
}

func TestReadYesNo(t *testing.T) {
	tests := []struct {
		line    string
		want    bool
		wantErr bool
	}{
		{"y", true, false},
		{"YES", true, false},
		{"1", true, false},
		{"", false, false},
		{"no", false, false},
		{"0.5", false, true},
		{"maybe", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := readYesNo(tt.line)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
