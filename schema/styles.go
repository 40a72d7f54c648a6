package schema

// StyleInfo holds the display text attached to an architecture style.
type StyleInfo struct {
	DisplayName string
	Description string
	Phrases     []string
	Template    string
}

// HedgeSentence is appended to an interpretation when the recommendation score is low.
const HedgeSentence = " However, the score is not very high, which suggests you could also consider alternative approaches."

var styleInfos = map[Style]StyleInfo{
	MicroservicesStyle: {
		DisplayName: "Microservices",
		Description: "Microservices Architecture",
		Phrases: []string{
			"Your system seems ideal for a microservices architecture.",
			"Modularity and independent scalability would benefit your case.",
			"Consider implementing a distributed architecture with autonomous services.",
		},
		Template: "Based on your answers, your system could benefit from a **microservices architecture**.",
	},
	EventsStyle: {
		DisplayName: "Event-Driven",
		Description: "Event-Driven Architecture",
		Phrases: []string{
			"An event-driven approach would be very suitable for your system.",
			"Asynchronous communication and decoupling would offer great advantages.",
			"We recommend exploring patterns like Event Sourcing and CQRS.",
		},
		Template: "Based on your answers, your system could benefit from an **event-driven architecture**.",
	},
	MonolithicStyle: {
		DisplayName: "Monolithic",
		Description: "Monolithic / N-Tier Architecture",
		Phrases: []string{
			"A monolithic architecture would be more suitable for your case.",
			"The simplicity and cohesion of the monolith offer advantages for your scenario.",
			"Consider a modular design within your monolithic application.",
		},
		Template: "Based on your answers, a **monolithic architecture** could be more suitable for your system.",
	},
	HybridStyle: {
		DisplayName: "Hybrid",
		Description: "Hybrid Architecture",
		Phrases: []string{
			"A hybrid approach could be the most suitable for your system.",
			"You could benefit from combining aspects of microservices with a monolithic core.",
			"Consider a gradual migration strategy toward a more distributed architecture.",
		},
		Template: "Based on your answers, you could consider a **hybrid architecture** that combines different approaches.",
	},
}

// GetStyleInfo returns the display text for a style. Unknown styles echo their own name.
func GetStyleInfo(s Style) StyleInfo {
	if info, ok := styleInfos[s]; ok {
		return info
	}
	return StyleInfo{DisplayName: string(s), Description: string(s), Template: string(s)}
}

// DisplayName returns the human-readable name of the style.
func (s Style) DisplayName() string {
	return GetStyleInfo(s).DisplayName
}

// Description returns the long description of the style.
func (s Style) Description() string {
	return GetStyleInfo(s).Description
}

// LeadPhrase returns the first canned phrase for the style.
func (s Style) LeadPhrase() string {
	info := GetStyleInfo(s)
	if len(info.Phrases) == 0 {
		return ""
	}
	return info.Phrases[0]
}
