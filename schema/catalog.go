package schema

import (
	"fmt"
	"slices"
)

// Question is a single survey question. Questions are immutable once the catalog is built.
type Question struct {
	ID          int     `json:"id"`
	Text        string  `json:"text"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
}

// Category groups related questions under one of the fixed category keys.
type Category struct {
	Key         CategoryKey `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Questions   []Question  `json:"questions"`
}

// Catalog is the ordered sequence of categories used by the survey.
type Catalog []Category

// defaultCatalog is process-wide read-only state. Accessors hand out copies.
var defaultCatalog = Catalog{
	{
		Key:         AutonomyCategory,
		Name:        "Service Division and Autonomy",
		Description: "Evaluates whether the system can be split into independent services",
		Questions: []Question{
			{1, "Can the system be split into autonomous services without affecting global functionality?", "Evaluates how decomposable the system is.", 0.90},
			{2, "Does each service have clear, well-defined business logic (a Domain-Driven Design bounded context)?", "Determines whether precise boundaries exist that favor independence.", 0.85},
			{3, "Do the services require independent scalability?", "Indicates whether some modules must scale without affecting the rest.", 0.80},
			{4, "Can each service own its database without direct access to the others?", "Evaluates the viability of decentralized persistence.", 0.75},
			{5, "Must services be deployed and updated independently?", "Determines whether decoupled development and deployment cycles are needed.", 0.70},
		},
	},
	{
		Key:         GlobalCategory,
		Name:        "Availability, Integration and Global Scalability",
		Description: "Evaluates system-wide availability and scalability concerns",
		Questions: []Question{
			{6, "Does the application require high availability and resilience to failures?", "A failing module should not take down the whole system.", 0.85},
			{7, "Does the system need to integrate with multiple technologies or external providers?", "Determines the flexibility and interoperability required.", 0.75},
			{8, "Must the system allow multiple development teams to work in parallel?", "Splits the work without creating development bottlenecks.", 0.70},
			{9, "Does the system handle a variable workload that needs resource optimization?", "Evaluates the ability to adjust resources to demand.", 0.80},
			{10, "Is the application large and complex enough to justify splitting it into microservices?", "Determines whether domain complexity justifies modularization.", 0.90},
			{11, "Are there multiple independent business rules that can be managed separately?", "Identifies the need to separate business logic for maintainability.", 0.75},
			{12, "Does the system handle a high volume of transactions and data?", "Determines whether load must be distributed to improve performance.", 0.80},
			{13, "Does the application need frequent updates to specific modules without affecting the whole system?", "Values the independence of each component's lifecycle.", 0.75},
		},
	},
	{
		Key:         EventsCategory,
		Name:        "Event-Driven Architecture",
		Description: "Evaluates the need for event-based communication and asynchronous processing",
		Questions: []Question{
			{14, "Would the system benefit from event-based communication (asynchronous processing, retries, fault-tolerant change propagation)?", "Identifies whether asynchronous communication helps the process flow.", 0.85},
			{15, "Does the system need to handle events in real time or near real time?", "Evaluates the need for immediate processing and fast response.", 0.80},
			{16, "Must multiple consumers react to the same event without coupling the source to its destinations?", "Determines whether decoupled producer and consumer communication is required.", 0.75},
			{17, "Does the system need complex event flows and event-driven process orchestration?", "Identifies the need to coordinate multiple processes or data flows.", 0.70},
			{18, "Should the system reduce its dependency on centralized databases and propagate changes in real time?", "Evaluates whether avoiding locks and centralized data management pays off.", 0.65},
		},
	},
}

// DefaultCatalog returns a copy of the built-in question catalog.
func DefaultCatalog() Catalog {
	return defaultCatalog.Clone()
}

// Clone returns a deep copy of the catalog.
func (c Catalog) Clone() Catalog {
	out := make(Catalog, len(c))
	for i, cat := range c {
		out[i] = cat
		out[i].Questions = slices.Clone(cat.Questions)
	}
	return out
}

// Lookup finds a question by id and returns it with its category key.
func (c Catalog) Lookup(id int) (Question, CategoryKey, bool) {
	for _, cat := range c {
		for _, q := range cat.Questions {
			if q.ID == id {
				return q, cat.Key, true
			}
		}
	}
	return Question{}, "", false
}

// Category returns the category with the given key.
func (c Catalog) Category(key CategoryKey) (Category, bool) {
	for _, cat := range c {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Questions returns every question in catalog order.
func (c Catalog) Questions() []Question {
	var out []Question
	for _, cat := range c {
		out = append(out, cat.Questions...)
	}
	return out
}

// QuestionCount returns the total number of questions.
func (c Catalog) QuestionCount() int {
	n := 0
	for _, cat := range c {
		n += len(cat.Questions)
	}
	return n
}

// Validate checks the structural invariants of the catalog.
func (c Catalog) Validate() error {
	if len(c) != len(AllCategories) {
		return fmt.Errorf("catalog must contain exactly %d categories (found %d)", len(AllCategories), len(c))
	}
	seenCats := make(map[CategoryKey]bool)
	seenIDs := make(map[int]bool)
	for _, cat := range c {
		if _, ok := ValidCategories[cat.Key]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, cat.Key)
		}
		if seenCats[cat.Key] {
			return fmt.Errorf("duplicate category %q", cat.Key)
		}
		seenCats[cat.Key] = true
		for _, q := range cat.Questions {
			if q.ID <= 0 {
				return fmt.Errorf("question id must be positive (received %d)", q.ID)
			}
			if seenIDs[q.ID] {
				return fmt.Errorf("duplicate question id %d", q.ID)
			}
			seenIDs[q.ID] = true
			if q.Weight <= 0 || q.Weight > 1 {
				return fmt.Errorf("question %d weight must be in (0,1] (received %.2f)", q.ID, q.Weight)
			}
		}
	}
	return nil
}
