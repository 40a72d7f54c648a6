package core

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AnswersFile is the on-disk form of a set of answers. JSON files parse as well.
//
//	mode: graded
//	answers:
//	  1: yes
//	  3: 0.5
type AnswersFile struct {
	Mode    string      `yaml:"mode"`
	Answers map[any]any `yaml:"answers"`
}

// ParseAnswerValue converts user input into an answer value.
// Yes/no words map to 1 and 0; anything else must be a number.
func ParseAnswerValue(s string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "true":
		return 1, nil
	case "n", "no", "false":
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid answer value '%s': expected yes/no or a number in [0,1]", s)
	}
	return v, nil
}

// ParseAnswerSpecs parses values of the form "id=value", e.g. "3=1" or "5=yes".
// A later spec for the same question replaces an earlier one.
func ParseAnswerSpecs(specs []string) (map[int]float64, error) {
	values := make(map[int]float64, len(specs))
	for _, spec := range specs {
		idStr, valStr, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer '%s': expected id=value", spec)
		}
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			return nil, fmt.Errorf("invalid question id in '%s': %w", spec, err)
		}
		v, err := ParseAnswerValue(valStr)
		if err != nil {
			return nil, err
		}
		values[id] = v
	}
	return values, nil
}

// LoadAnswersFile reads a YAML or JSON answers file.
func LoadAnswersFile(path string) (*AnswersFile, map[int]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	var file AnswersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}

	values := make(map[int]float64, len(file.Answers))
	for k, v := range file.Answers {
		id, err := answerKey(k)
		if err != nil {
			return nil, nil, err
		}
		value, err := answerValue(v)
		if err != nil {
			return nil, nil, fmt.Errorf("question %d: %w", id, err)
		}
		values[id] = value
	}
	return &file, values, nil
}

func answerKey(k any) (int, error) {
	switch key := k.(type) {
	case int:
		return key, nil
	case string:
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			return 0, fmt.Errorf("invalid question id '%s'", key)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("invalid question id '%v'", k)
	}
}

func answerValue(v any) (float64, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return 1, nil
		}
		return 0, nil
	case int:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		return ParseAnswerValue(val)
	default:
		return 0, fmt.Errorf("invalid answer value '%v'", v)
	}
}
