package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/archsurvey/schema"
	"golang.org/x/term"
)

// ErrSurveyAborted is returned when the user quits the interactive survey.
var ErrSurveyAborted = errors.New("survey aborted")

// defaultGradedValue is used when a graded prompt is left blank.
const defaultGradedValue = 0.5

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// RunSurvey asks every catalog question grouped by category and records the
// answers on the session. Invalid input re-prompts the same question, and
// 'r' clears the session and starts again from the first question.
// Reaching the end of input stops early and leaves the session partially answered.
func RunSurvey(ctx context.Context, session *Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	mode := session.Mode()

	_, _ = fmt.Fprintf(out, "Answer each question (%s). Enter 'r' to restart or 'q' to quit.\n", promptHint(mode))
restart:
	for {
		for _, cat := range session.Catalog() {
			_, _ = fmt.Fprintf(out, "\n== %s ==\n%s\n", cat.Name, cat.Description)
			for _, q := range cat.Questions {
				for {
					if err := ctx.Err(); err != nil {
						return err
					}
					_, _ = fmt.Fprintf(out, "\n[%d] %s\n    %s\n> ", q.ID, q.Text, q.Description)
					if !scanner.Scan() {
						if err := scanner.Err(); err != nil {
							return fmt.Errorf("failed to read answer: %w", err)
						}
						_, _ = fmt.Fprintln(out)
						return nil
					}
					line := strings.TrimSpace(scanner.Text())
					switch strings.ToLower(line) {
					case "q", "quit":
						return ErrSurveyAborted
					case "r", "restart":
						session.Reset()
						_, _ = fmt.Fprintln(out, "  Answers cleared, starting over.")
						continue restart
					}
					if err := answerLine(session, q.ID, line); err != nil {
						_, _ = fmt.Fprintf(out, "  %v\n", err)
						continue
					}
					break
				}
			}
		}
		return nil
	}
}

// answerLine records one line of input. Binary prompts only take yes or no.
func answerLine(session *Session, questionID int, line string) error {
	if session.Mode() == schema.BinaryMode {
		yes, err := readYesNo(line)
		if err != nil {
			return err
		}
		return session.AnswerYesNo(questionID, yes)
	}
	value := defaultGradedValue
	if line != "" {
		v, err := ParseAnswerValue(line)
		if err != nil {
			return err
		}
		value = v
	}
	return session.Answer(questionID, value)
}

func readYesNo(line string) (bool, error) {
	switch strings.ToLower(line) {
	case "y", "yes", "1":
		return true, nil
	case "", "n", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("please answer y or n")
}

func promptHint(mode schema.AnswerMode) string {
	if mode == schema.GradedMode {
		return fmt.Sprintf("a number from 0 to 1, blank = %.1f", defaultGradedValue)
	}
	return "y/n, blank = n"
}
