package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/archsurvey/core"
	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/internal/knowledge"
	"github.com/huangsam/archsurvey/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// recommendation is the payload of recommend_architecture.
type recommendation struct {
	RunID   int64                `json:"run_id,omitempty"`
	Result  schema.SurveyResult  `json:"result"`
	Ranking []schema.RankedStyle `json:"ranking"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListQuestions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(schema.DefaultCatalog())
}

func (h *toolHandler) handleRecommendArchitecture(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if m := request.GetString("mode", ""); m != "" {
		cfg.Mode = schema.AnswerMode(strings.ToLower(m))
		if _, ok := schema.ValidAnswerModes[cfg.Mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid mode '%s'. must be binary, graded", m)), nil
		}
	}
	if a := request.GetString("averaging", ""); a != "" {
		cfg.Model.Averaging = schema.AveragingMode(strings.ToLower(a))
		if _, ok := schema.ValidAveragingModes[cfg.Model.Averaging]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid averaging '%s'. must be count, weight", a)), nil
		}
	}

	values, err := parseAnswers(request.GetArguments()["answers"])
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid answers: %v", err)), nil
	}

	result, err := core.EvaluateValues(values, cfg.Mode, schema.DefaultCatalog(), cfg.Model)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	out := recommendation{
		Result:  result,
		Ranking: schema.RankStyles(result.Scores, result.Recommendation),
	}
	if request.GetBool("save", false) {
		store := h.store()
		if store == nil {
			return mcp.NewToolResultError("survey store is not initialized"), nil
		}
		runID, err := store.RecordRun(result)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to record run: %v", err)), nil
		}
		out.RunID = runID
	}
	return jsonResult(out)
}

// parseAnswers accepts an object of question id to number, boolean or yes/no string.
func parseAnswers(raw any) (map[int]float64, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("answers must be an object of question id to value")
	}
	values := make(map[int]float64, len(obj))
	for k, v := range obj {
		id, err := strconv.Atoi(strings.TrimSpace(k))
		if err != nil {
			return nil, fmt.Errorf("invalid question id '%s'", k)
		}
		switch val := v.(type) {
		case float64:
			values[id] = val
		case bool:
			if val {
				values[id] = 1
			} else {
				values[id] = 0
			}
		case string:
			f, err := core.ParseAnswerValue(val)
			if err != nil {
				return nil, err
			}
			values[id] = f
		default:
			return nil, fmt.Errorf("invalid value for question %d", id)
		}
	}
	return values, nil
}

func (h *toolHandler) handleGetArchitectureContext(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	style := schema.Style(strings.ToLower(request.GetString("style", "")))
	if _, ok := schema.ValidStyles[style]; !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid style '%s'. must be microservices, events, monolithic, hybrid", style)), nil
	}

	lib, err := knowledge.Load(h.baseCfg.ContextFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load contexts: %v", err)), nil
	}
	archCtx, err := lib.Lookup(style)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(archCtx)
}

func (h *toolHandler) handleGetRecentSurveys(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	store := h.store()
	if store == nil {
		return mcp.NewToolResultError("survey store is not initialized"), nil
	}
	limit := h.baseCfg.Limit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = min(l, contract.MaxHistoryLimit)
	}
	if limit <= 0 {
		limit = contract.DefaultHistoryLimit
	}

	runs, err := store.ListRuns(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list runs: %v", err)), nil
	}
	if runs == nil {
		runs = []schema.SurveyRunRecord{}
	}
	return jsonResult(runs)
}

func (h *toolHandler) store() contract.SurveyStore {
	if h.mgr == nil {
		return nil
	}
	return h.mgr.GetSurveyStore()
}
