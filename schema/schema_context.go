package schema

// ArchitectureContext is the reference blurb shown alongside a recommendation.
type ArchitectureContext struct {
	Style        Style    `json:"style" yaml:"-"`
	Summary      string   `json:"summary" yaml:"summary"`
	Strengths    []string `json:"strengths" yaml:"strengths"`
	TradeOffs    []string `json:"trade_offs" yaml:"trade_offs"`
	Technologies []string `json:"technologies" yaml:"technologies"`
}
