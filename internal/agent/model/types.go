package model

// CountryCode is a canonical 3-letter ISO3 identifier ("PAK", "SGP").
// The empty string means no country.
type CountryCode string

func (c CountryCode) IsZero() bool {
	return c == ""
}

func (c CountryCode) String() string {
	return string(c)
}

// IntentLabel is the closed set of turn intents the router understands.
type IntentLabel string

const (
	IntentCasual             IntentLabel = "casual"
	IntentVisaQuery          IntentLabel = "visa_query"
	IntentFollowUp           IntentLabel = "follow_up"
	IntentClarifyOrigin      IntentLabel = "clarify_origin"
	IntentClarifyDestination IntentLabel = "clarify_destination"

	// Deferred features: recognized but always answered with a canned response.
	IntentBooking      IntentLabel = "booking"
	IntentTicketChange IntentLabel = "ticket_change"
	IntentFlightInfo   IntentLabel = "flight_info"
)

// Deferred reports whether the label maps to a fixed "coming soon" response.
func (l IntentLabel) Deferred() bool {
	switch l {
	case IntentBooking, IntentTicketChange, IntentFlightInfo:
		return true
	}
	return false
}

// VisaRelated reports whether the label makes the visa context sticky.
func (l IntentLabel) VisaRelated() bool {
	return l == IntentVisaQuery || l == IntentFollowUp
}

// Mention is a single country reference found while scanning a message.
type Mention struct {
	Surface       string      `json:"surface"`
	Code          CountryCode `json:"code"`
	Start         int         `json:"start"`
	End           int         `json:"end"`
	Fuzzy         bool        `json:"fuzzy"`
	Similarity    float64     `json:"similarity,omitempty"`
	IsNationality bool        `json:"is_nationality"`
}

// ExtractionResult is what the entity extractor produces for one message.
// Origin may carry an ambiguous single mention; OriginIsNationality tells the
// state machine whether that assignment was certain.
type ExtractionResult struct {
	Origin              CountryCode `json:"origin,omitempty"`
	OriginName          string      `json:"origin_name,omitempty"`
	Destination         CountryCode `json:"destination,omitempty"`
	DestinationName     string      `json:"destination_name,omitempty"`
	OriginIsNationality bool        `json:"origin_is_nationality"`
	Mentions            []Mention   `json:"mentions,omitempty"`
}

// Slot names a required piece of query information.
type Slot string

const (
	SlotOrigin      Slot = "origin"
	SlotDestination Slot = "destination"
)

// Suggestion tells the caller what to ask the user next.
type Suggestion string

const (
	SuggestNone            Suggestion = "none"
	SuggestNeedOrigin      Suggestion = "need_origin"
	SuggestNeedDestination Suggestion = "need_destination"
	SuggestNeedBoth        Suggestion = "need_both"
	SuggestClarifyCountry  Suggestion = "clarify_country"
)

// CompletenessResult is the verdict on whether a visa query can run.
type CompletenessResult struct {
	Complete             bool
	Missing              []Slot
	Suggestion           Suggestion
	ClarificationCountry string
}

// UpdateDelta describes what a single state update changed.
type UpdateDelta struct {
	OriginUpdated         bool
	DestinationUpdated    bool
	NeedsClarification    bool
	ClarificationCountry  string
	ClarificationResolved bool
}

// RequirementType classifies a visa rule into the closed enumeration.
type RequirementType string

const (
	VisaFree      RequirementType = "visa_free"
	VisaOnArrival RequirementType = "visa_on_arrival"
	EVisa         RequirementType = "e_visa"
	ETA           RequirementType = "eta"
	VisaRequired  RequirementType = "visa_required"
	NoAdmission   RequirementType = "no_admission"
)

// VisaRequirement is the immutable fact on a directed origin→destination edge.
// DaysAllowed is 0 when the dataset does not specify a stay limit.
type VisaRequirement struct {
	Type        RequirementType `json:"type"`
	DaysAllowed int             `json:"days_allowed,omitempty"`
	Raw         string          `json:"raw"`
}

// QueryResult is the outcome of a knowledge graph lookup. A missing edge is a
// non-fatal miss: Found=false with a diagnostic in Error.
type QueryResult struct {
	Found           bool
	Origin          CountryCode
	OriginName      string
	Destination     CountryCode
	DestinationName string
	Requirement     *VisaRequirement
	Error           string
}
