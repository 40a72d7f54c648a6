package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerValue(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"yes", 1}, {"Y", 1}, {"true", 1},
		{"no", 0}, {"N", 0}, {"false", 0},
		{"0.25", 0.25}, {" 1 ", 1},
	}
	for _, tt := range tests {
		got, err := ParseAnswerValue(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseAnswerValue("maybe")
	assert.Error(t, err)
}

func TestParseAnswerSpecs(t *testing.T) {
	values, err := ParseAnswerSpecs([]string{"3=1", "4=0.5", "5=yes", "3=no"})
	require.NoError(t, err)
	assert.Equal(t, map[int]float64{3: 0, 4: 0.5, 5: 1}, values)

	empty, err := ParseAnswerSpecs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, bad := range []string{"3", "x=1", "3=sometimes"} {
		_, err := ParseAnswerSpecs([]string{bad})
		assert.Error(t, err, bad)
	}
}

func writeAnswers(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswersFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := writeAnswers(t, "answers.yaml", `
mode: graded
answers:
  1: yes
  2: no
  3: 0.5
  4: 1
  "5": "0.75"
`)
		file, values, err := LoadAnswersFile(path)
		require.NoError(t, err)
		assert.Equal(t, "graded", file.Mode)
		assert.Equal(t, map[int]float64{1: 1, 2: 0, 3: 0.5, 4: 1, 5: 0.75}, values)
	})

	t.Run("json", func(t *testing.T) {
		path := writeAnswers(t, "answers.json", `{"answers": {"14": true, "15": 0}}`)
		file, values, err := LoadAnswersFile(path)
		require.NoError(t, err)
		assert.Empty(t, file.Mode)
		assert.Equal(t, map[int]float64{14: 1, 15: 0}, values)
	})

	t.Run("bad id", func(t *testing.T) {
		path := writeAnswers(t, "bad.yaml", "answers:\n  first: yes\n")
		_, _, err := LoadAnswersFile(path)
		assert.ErrorContains(t, err, "invalid question id")
	})

	t.Run("bad value", func(t *testing.T) {
		path := writeAnswers(t, "bad.yaml", "answers:\n  1: [1, 2]\n")
		_, _, err := LoadAnswersFile(path)
		assert.ErrorContains(t, err, "question 1")
	})

	t.Run("missing", func(t *testing.T) {
		_, _, err := LoadAnswersFile(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorContains(t, err, "failed to read answers file")
	})
}

func TestCollectAnswers(t *testing.T) {
	path := writeAnswers(t, "answers.yaml", "mode: Graded\nanswers:\n  1: 0.2\n  2: 0.4\n")

	values, mode, err := CollectAnswers(path, []string{"2=0.9", "3=1"})
	require.NoError(t, err)
	assert.Equal(t, schema.GradedMode, mode)
	assert.Equal(t, map[int]float64{1: 0.2, 2: 0.9, 3: 1}, values, "specs override the file")

	values, mode, err = CollectAnswers("", []string{"1=yes"})
	require.NoError(t, err)
	assert.Empty(t, mode)
	assert.Equal(t, map[int]float64{1: 1}, values)

	bad := writeAnswers(t, "bad.yaml", "mode: fuzzy\nanswers: {}\n")
	_, _, err = CollectAnswers(bad, nil)
	assert.ErrorContains(t, err, "invalid mode")
}
