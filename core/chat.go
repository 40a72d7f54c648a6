package core

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/archsurvey/internal/assistant"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
)

// ExecuteChat discusses a stored run with the assistant. A runID of 0 selects
// the latest run. With a question it answers once; otherwise it reads
// questions from in until EOF or "exit".
// Provider failures are shown as an apology and never end the command.
func ExecuteChat(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, advisor *assistant.Advisor, runID int64, question string, in io.Reader, out io.Writer) error {
	store := storeFrom(mgr)
	if store == nil {
		return errStoreNotInitialized
	}
	rec, err := loadRun(store, runID)
	if err != nil {
		return err
	}
	answers, err := store.GetRunAnswers(rec.RunID)
	if err != nil {
		return fmt.Errorf("failed to load answers of run %d: %w", rec.RunID, err)
	}
	records, err := store.GetChatHistory(rec.RunID)
	if err != nil {
		return fmt.Errorf("failed to load chat history of run %d: %w", rec.RunID, err)
	}

	conv := &conversation{
		store:   store,
		advisor: advisor,
		runID:   rec.RunID,
		result:  restoreResult(rec, answers, cfg.Model.LowThreshold),
		history: toMessages(records),
		out:     out,
	}
	return conv.run(ctx, question, in)
}

// ExecuteChatAnswers scores the given answers and discusses the result
// without a survey store. Nothing is recorded.
func ExecuteChatAnswers(ctx context.Context, cfg *contract.Config, advisor *assistant.Advisor, values map[int]float64, question string, in io.Reader, out io.Writer) error {
	result, err := EvaluateValues(values, cfg.Mode, schema.DefaultCatalog(), cfg.Model)
	if err != nil {
		return err
	}
	conv := &conversation{
		advisor: advisor,
		result:  result,
		out:     out,
	}
	return conv.run(ctx, question, in)
}

// run greets on an empty transcript, then answers one question or loops over in.
func (c *conversation) run(ctx context.Context, question string, in io.Reader) error {
	if len(c.history) == 0 {
		c.record(schema.ChatMessage{Role: schema.AssistantRole, Content: c.advisor.Greeting(c.result)})
		if question == "" {
			_, _ = fmt.Fprintf(c.out, "Assistant: %s\n", c.history[0].Content)
		}
	}

	if strings.TrimSpace(question) != "" {
		c.ask(ctx, question)
		return nil
	}

	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(c.out, "\nYou: ")
		if !scanner.Scan() {
			_, _ = fmt.Fprintln(c.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "exit", "quit", "q":
			return nil
		}
		c.ask(ctx, line)
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// conversation is the transcript of one result while chatting.
// A nil store keeps the transcript in memory only.
type conversation struct {
	store   contract.SurveyStore
	advisor *assistant.Advisor
	runID   int64
	result  schema.SurveyResult
	history []schema.ChatMessage
	out     io.Writer
}

// ask sends one question. Only successful turns are kept in the transcript.
func (c *conversation) ask(ctx context.Context, question string) {
	reply, err := c.advisor.Ask(ctx, c.result, c.history, question)
	if err != nil {
		_, _ = fmt.Fprintf(c.out, "Assistant: %s\n", assistant.ApologyMessage(err))
		return
	}
	c.record(schema.ChatMessage{Role: schema.UserRole, Content: strings.TrimSpace(question)})
	c.record(schema.ChatMessage{Role: schema.AssistantRole, Content: reply})
	_, _ = fmt.Fprintf(c.out, "Assistant: %s\n", reply)
}

func (c *conversation) record(msg schema.ChatMessage) {
	c.history = append(c.history, msg)
	if c.store == nil {
		return
	}
	if _, err := c.store.AppendChatMessage(c.runID, msg); err != nil {
		contract.LogWarn("Cannot record chat message", err)
	}
}

func toMessages(records []schema.ChatMessageRecord) []schema.ChatMessage {
	msgs := make([]schema.ChatMessage, 0, len(records))
	for _, r := range records {
		msgs = append(msgs, schema.ChatMessage{Role: r.Role, Content: r.Content})
	}
	return msgs
}
