package schema

// Custom string types for type safety.
type (
	// Style represents one of the candidate architecture styles.
	Style string

	// CategoryKey represents one of the fixed question categories.
	CategoryKey string

	// AnswerMode represents how survey answers are collected.
	AnswerMode string

	// AveragingMode represents how category averages are divided.
	AveragingMode string

	// SessionState represents how much of the catalog a session has answered.
	SessionState string

	// Band represents the fuzzy interpretation band of a value in [0,1].
	Band string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for survey storage.
	DatabaseBackend string

	// ChatRole represents the author of a chat message.
	ChatRole string
)

// All architecture styles in declaration order. Ties resolve to the earlier entry.
const (
	MicroservicesStyle Style = "microservices"
	EventsStyle        Style = "events"
	MonolithicStyle    Style = "monolithic"
	HybridStyle        Style = "hybrid"
)

// All question categories.
const (
	AutonomyCategory CategoryKey = "autonomy"
	GlobalCategory   CategoryKey = "global"
	EventsCategory   CategoryKey = "events"
)

// All answer modes supported.
const (
	BinaryMode AnswerMode = "binary" // default
	GradedMode AnswerMode = "graded"
)

// All averaging modes supported.
const (
	CountAveraging  AveragingMode = "count" // default
	WeightAveraging AveragingMode = "weight"
)

// All session states.
const (
	NoAnswersState         SessionState = "no_answers"
	PartiallyAnsweredState SessionState = "partially_answered"
	FullyScoredState       SessionState = "fully_scored"
)

// All value bands.
const (
	LowBand    Band = "low"
	MediumBand Band = "medium"
	HighBand   Band = "high"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// All chat roles.
const (
	UserRole      ChatRole = "user"
	AssistantRole ChatRole = "assistant"
)

// Default thresholds and weights used by the scoring model.
const (
	DefaultNearTieThreshold    = 0.15
	DefaultLowThreshold        = 0.33
	DefaultConfidenceThreshold = 0.75

	// MediumBandThreshold is the upper bound of the medium band.
	MediumBandThreshold = 0.66

	// GlobalMicroservicesShare and GlobalEventsShare split the global category between styles.
	GlobalMicroservicesShare = 0.7
	GlobalEventsShare        = 0.3

	// WeightSumTolerance is the allowed drift when custom category weights are summed.
	WeightSumTolerance = 0.001
)

// AllStyles lists every style in declaration order.
var AllStyles = []Style{MicroservicesStyle, EventsStyle, MonolithicStyle, HybridStyle}

// AllCategories lists every category key in catalog order.
var AllCategories = []CategoryKey{AutonomyCategory, GlobalCategory, EventsCategory}

// ValidStyles is the set of accepted styles.
var ValidStyles = map[Style]struct{}{
	MicroservicesStyle: {},
	EventsStyle:        {},
	MonolithicStyle:    {},
	HybridStyle:        {},
}

// ValidCategories is the set of accepted category keys.
var ValidCategories = map[CategoryKey]struct{}{
	AutonomyCategory: {},
	GlobalCategory:   {},
	EventsCategory:   {},
}

// ValidAnswerModes is the set of accepted answer modes.
var ValidAnswerModes = map[AnswerMode]struct{}{
	BinaryMode: {},
	GradedMode: {},
}

// ValidAveragingModes is the set of accepted averaging modes.
var ValidAveragingModes = map[AveragingMode]struct{}{
	CountAveraging:  {},
	WeightAveraging: {},
}

// ValidOutputModes is the set of accepted output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends is the set of accepted database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// GetDefaultCategoryWeights returns the default category weights, which sum to 1.0.
func GetDefaultCategoryWeights() map[CategoryKey]float64 {
	return map[CategoryKey]float64{
		AutonomyCategory: 0.40,
		GlobalCategory:   0.35,
		EventsCategory:   0.25,
	}
}
