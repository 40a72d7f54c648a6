package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

const systemPrompt = `You are an expert in software architecture. You help users choose the most suitable architecture for their project based on their answers to an assessment survey.

The architectures you can recommend are:
1. Microservices: distributed systems made of independent, autonomous services.
2. Event-driven architecture: systems built on event-based communication and decoupling.
3. Monolithic architecture: a single integrated system with all components together.
4. Hybrid architectures: a combination of approaches driven by specific needs.

For every recommendation explain why it fits this case, its advantages and disadvantages, implementation considerations and possible technologies. Tailor your answers to the survey results below.`

const greetingInvite = "Ask me anything about this recommendation, its trade-offs or how to get started."

// ContextSource returns the reference blurb of a style.
type ContextSource interface {
	Lookup(style schema.Style) (schema.ArchitectureContext, error)
}

// Advisor answers questions about a survey result through a chat provider.
type Advisor struct {
	provider contract.ChatProvider
	contexts ContextSource
	timeout  time.Duration
}

// NewAdvisor creates an advisor. A nil provider makes every Ask fail with
// ErrProviderNotConfigured; a nil context source omits the style blurb.
func NewAdvisor(provider contract.ChatProvider, contexts ContextSource, timeout time.Duration) *Advisor {
	return &Advisor{provider: provider, contexts: contexts, timeout: timeout}
}

// Greeting is the first assistant message of a conversation.
func (a *Advisor) Greeting(result schema.SurveyResult) string {
	intro := strings.TrimSpace(result.Interpretation)
	if intro == "" {
		intro = result.Recommendation.Type.LeadPhrase()
	}
	return intro + "\n\n" + greetingInvite
}

// Ask sends the question with the survey context and prior turns.
// Every provider failure is returned as a *ProviderError.
func (a *Advisor) Ask(ctx context.Context, result schema.SurveyResult, history []schema.ChatMessage, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.New("question cannot be empty")
	}
	if a.provider == nil {
		return "", &ProviderError{Op: "ask", Err: ErrProviderNotConfigured}
	}

	system, err := a.buildSystemPrompt(result)
	if err != nil {
		return "", &ProviderError{Op: "prompt", Err: err}
	}

	messages := make([]schema.ChatMessage, 0, len(history)+1)
	messages = append(messages, history...)
	messages = append(messages, schema.ChatMessage{Role: schema.UserRole, Content: question})

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	reply, err := a.provider.Complete(ctx, system, messages)
	if err != nil {
		if IsProviderError(err) {
			return "", err
		}
		return "", &ProviderError{Op: "complete", Err: err}
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", &ProviderError{Op: "complete", Err: errors.New("empty reply")}
	}
	return reply, nil
}

// surveyContext is the survey summary handed to the provider.
type surveyContext struct {
	Mode           schema.AnswerMode              `json:"mode"`
	Answered       int                            `json:"answered"`
	Total          int                            `json:"total"`
	Averages       map[schema.CategoryKey]float64 `json:"category_averages"`
	Scores         schema.StyleScores             `json:"scores"`
	Recommendation schema.Recommendation          `json:"recommendation"`
	Leanings       []schema.Leaning               `json:"leanings,omitempty"`
	Context        *schema.ArchitectureContext    `json:"architecture_context,omitempty"`
}

func (a *Advisor) buildSystemPrompt(result schema.SurveyResult) (string, error) {
	sc := surveyContext{
		Mode:           result.Mode,
		Answered:       result.Answered,
		Total:          result.Total,
		Averages:       make(map[schema.CategoryKey]float64, len(result.Categories)),
		Scores:         result.Scores,
		Recommendation: result.Recommendation,
		Leanings:       result.Leanings,
	}
	for key, cat := range result.Categories {
		sc.Averages[key] = cat.Average
	}
	if a.contexts != nil {
		if archCtx, err := a.contexts.Lookup(result.Recommendation.Type); err == nil {
			sc.Context = &archCtx
		}
	}

	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(systemPrompt)
	sb.WriteString("\n\nSurvey results:\n")
	sb.Write(data)
	fmt.Fprintf(&sb, "\n\nPreliminary interpretation: %s", result.Interpretation)
	return sb.String(), nil
}
