package contract

import (
	"fmt"
	"maps"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/archsurvey/schema"
)

// Default values for configuration.
const (
	DefaultPrecision    = 2
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 1000

	DefaultChatModel       = "gpt-4"
	DefaultChatTemperature = 0.7
	DefaultChatMaxTokens   = 1000
	DefaultChatTimeout     = 60 * time.Second
)

// APIKeyEnv is the fallback environment variable for the chat provider key.
const APIKeyEnv = "OPENAI_API_KEY"

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// WeightsRawInput holds custom category weights from the YAML config file.
// Use float64 pointers for optional fields.
type WeightsRawInput struct {
	Autonomy *float64 `mapstructure:"autonomy"`
	Global   *float64 `mapstructure:"global"`
	Events   *float64 `mapstructure:"events"`
}

// ThresholdsRawInput holds threshold definitions from the YAML config file.
type ThresholdsRawInput struct {
	NearTie    *float64 `mapstructure:"near_tie"`
	Low        *float64 `mapstructure:"low"`
	Confidence *float64 `mapstructure:"confidence"`
}

// ChatConfig holds the chat assistant settings.
type ChatConfig struct {
	APIKey      string // Please use env var as this is plaintext
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

// Config holds the runtime configuration for a survey.
// This struct remains the "final, validated" config.
type Config struct {
	Mode       schema.AnswerMode
	Model      schema.ScoringModel
	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Detail     bool
	Explain    bool
	Limit      int
	Width      int // Terminal width override (0 = auto-detect)

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	ContextFile string
	Chat        ChatConfig

	// CustomWeights holds only the category weights given in the config file
	CustomWeights map[schema.CategoryKey]float64

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Mode                string  `mapstructure:"mode"`
	Averaging           string  `mapstructure:"averaging"`
	Precision           int     `mapstructure:"precision"`
	Output              string  `mapstructure:"output"`
	OutputFile          string  `mapstructure:"output-file"`
	Detail              bool    `mapstructure:"detail"`
	Explain             bool    `mapstructure:"explain"`
	Limit               int     `mapstructure:"limit"`
	Width               int     `mapstructure:"width"`
	NearTieThreshold    float64 `mapstructure:"near-tie-threshold"`
	LowThreshold        float64 `mapstructure:"low-threshold"`
	ConfidenceThreshold float64 `mapstructure:"confidence-threshold"`
	StoreBackend        string  `mapstructure:"store-backend"`
	StoreDBConnect      string  `mapstructure:"store-db-connect"`
	ContextFile         string  `mapstructure:"context-file"`
	Emoji               string  `mapstructure:"emoji"`
	Color               string  `mapstructure:"color"`

	// --- Fields from chatCmd.Flags() ---
	ChatAPIKey      string  `mapstructure:"chat-api-key"`
	ChatModel       string  `mapstructure:"chat-model"`
	ChatBaseURL     string  `mapstructure:"chat-base-url"`
	ChatTemperature float64 `mapstructure:"chat-temperature"`
	ChatMaxTokens   int     `mapstructure:"chat-max-tokens"`
	ChatTimeout     string  `mapstructure:"chat-timeout"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`

	// --- Thresholds from config file ---
	Thresholds ThresholdsRawInput `mapstructure:"thresholds"`
}

// NewDefaultRawInput returns the raw input with every default filled in.
// It is what the CLI flags resolve to when nothing is overridden.
func NewDefaultRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Mode:                string(schema.BinaryMode),
		Averaging:           string(schema.CountAveraging),
		Precision:           DefaultPrecision,
		Output:              string(schema.TextOut),
		Limit:               DefaultHistoryLimit,
		NearTieThreshold:    schema.DefaultNearTieThreshold,
		LowThreshold:        schema.DefaultLowThreshold,
		ConfidenceThreshold: schema.DefaultConfidenceThreshold,
		StoreBackend:        string(schema.SQLiteBackend),
		Emoji:               "no",
		Color:               "yes",
		ChatModel:           DefaultChatModel,
		ChatTemperature:     DefaultChatTemperature,
		ChatMaxTokens:       DefaultChatMaxTokens,
		ChatTimeout:         DefaultChatTimeout.String(),
	}
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Model = c.Model.Clone()
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.CategoryKey]float64, len(c.CustomWeights))
		maps.Copy(clone.CustomWeights, c.CustomWeights)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := processScoringModel(cfg, input); err != nil {
		return err
	}
	if err := processChatConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = schema.SQLiteBackend
	}
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// validateSimpleInputs processes and validates all presentation related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width
	cfg.ContextFile = input.ContextFile

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Answer Mode Validation ---
	cfg.Mode = schema.AnswerMode(strings.ToLower(input.Mode))
	if _, ok := schema.ValidAnswerModes[cfg.Mode]; !ok {
		return fmt.Errorf("invalid mode '%s'. must be binary, graded", input.Mode)
	}

	// --- 2. Limit Validation ---
	if input.Limit <= 0 || input.Limit > MaxHistoryLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxHistoryLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 4 {
		return fmt.Errorf("precision must be between 1 and 4 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}

	return nil
}

// ProcessWeightsRawInput merges the custom weights onto the defaults.
// It returns the custom weights alone and the final weights map.
// If validateSum is true, it validates that the final weights sum to 1.0.
func ProcessWeightsRawInput(weights WeightsRawInput, validateSum bool) (custom, computed map[schema.CategoryKey]float64, err error) {
	custom = make(map[schema.CategoryKey]float64)
	raw := map[schema.CategoryKey]*float64{
		schema.AutonomyCategory: weights.Autonomy,
		schema.GlobalCategory:   weights.Global,
		schema.EventsCategory:   weights.Events,
	}
	for _, key := range schema.AllCategories {
		if v := raw[key]; v != nil {
			if *v < 0 || *v > 1 || math.IsNaN(*v) {
				return nil, nil, fmt.Errorf("weight for category %s must be between 0.0 and 1.0 (received %.3f)", key, *v)
			}
			custom[key] = *v
		}
	}

	computed = schema.GetDefaultCategoryWeights()
	maps.Copy(computed, custom)

	if validateSum && len(custom) > 0 {
		sum := 0.0
		for _, w := range computed {
			sum += w
		}
		if math.Abs(sum-1) > schema.WeightSumTolerance {
			return nil, nil, fmt.Errorf("category weights must sum to 1.0, got %.3f", sum)
		}
	}
	return custom, computed, nil
}

// processScoringModel builds the scoring model from weights, thresholds and averaging.
// Threshold flags win over the thresholds section when they differ from the defaults.
func processScoringModel(cfg *Config, input *ConfigRawInput) error {
	custom, computed, err := ProcessWeightsRawInput(input.Weights, true)
	if err != nil {
		return err
	}
	cfg.CustomWeights = custom

	averaging := schema.AveragingMode(strings.ToLower(input.Averaging))
	if averaging == "" {
		averaging = schema.CountAveraging
	}
	if _, ok := schema.ValidAveragingModes[averaging]; !ok {
		return fmt.Errorf("invalid averaging '%s'. must be count, weight", input.Averaging)
	}

	model := schema.ScoringModel{
		CategoryWeights:     computed,
		NearTieThreshold:    resolveThreshold(input.NearTieThreshold, input.Thresholds.NearTie, schema.DefaultNearTieThreshold),
		LowThreshold:        resolveThreshold(input.LowThreshold, input.Thresholds.Low, schema.DefaultLowThreshold),
		ConfidenceThreshold: resolveThreshold(input.ConfidenceThreshold, input.Thresholds.Confidence, schema.DefaultConfidenceThreshold),
		Averaging:           averaging,
	}

	thresholds := map[string]float64{
		"near-tie":   model.NearTieThreshold,
		"low":        model.LowThreshold,
		"confidence": model.ConfidenceThreshold,
	}
	for name, v := range thresholds {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("%s threshold must be between 0.0 and 1.0 (received %.3f)", name, v)
		}
	}

	cfg.Model = model
	return nil
}

func resolveThreshold(flagValue float64, section *float64, def float64) float64 {
	if flagValue != def || section == nil {
		return flagValue
	}
	return *section
}

// processChatConfig validates the chat assistant settings.
// The API key falls back to the OPENAI_API_KEY environment variable.
func processChatConfig(cfg *Config, input *ConfigRawInput) error {
	chat := ChatConfig{
		APIKey:      strings.TrimSpace(input.ChatAPIKey),
		Model:       strings.TrimSpace(input.ChatModel),
		BaseURL:     strings.TrimSpace(input.ChatBaseURL),
		Temperature: input.ChatTemperature,
		MaxTokens:   input.ChatMaxTokens,
		Timeout:     DefaultChatTimeout,
	}
	if chat.APIKey == "" {
		chat.APIKey = os.Getenv(APIKeyEnv)
	}
	if chat.Model == "" {
		chat.Model = DefaultChatModel
	}
	if chat.Temperature < 0 || chat.Temperature > 2 {
		return fmt.Errorf("chat temperature must be between 0.0 and 2.0 (received %.2f)", chat.Temperature)
	}
	if chat.MaxTokens <= 0 {
		return fmt.Errorf("chat max tokens must be greater than 0 (received %d)", chat.MaxTokens)
	}
	if input.ChatTimeout != "" {
		timeout, err := time.ParseDuration(input.ChatTimeout)
		if err != nil {
			return fmt.Errorf("invalid chat timeout '%s': %w", input.ChatTimeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("chat timeout must be positive (received %s)", timeout)
		}
		chat.Timeout = timeout
	}
	cfg.Chat = chat
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ParseRunID parses a stored run identifier.
func ParseRunID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid run id '%s': must be a positive integer", s)
	}
	return id, nil
}
