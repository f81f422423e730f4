// Package respond turns structured verdicts into user-facing text. The core
// stages never emit prose; everything the user reads comes from here or from
// the free-form responder.
package respond

import (
	"fmt"
	"math/rand"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
)

var needOriginPrompts = []string{
	"Got it. What's your nationality, or which passport will you be travelling on?",
	"Sure. Which passport do you hold?",
	"Happy to check. What nationality are you?",
}

var needDestinationPrompts = []string{
	"And where are you planning to travel to?",
	"Which country are you heading to?",
	"Where would you like to go?",
}

var needBothPrompts = []string{
	"I can check visa requirements for you. What's your nationality, and where are you travelling to?",
	"Sure. Tell me your passport country and your destination and I'll look it up.",
}

var clarifyPrompts = []string{
	"Just to confirm, is %s where you're from, or where you're going?",
	"Quick check: are you travelling to %s, or is that your nationality?",
}

var notFoundPrompts = []string{
	"I couldn't find visa information for that route, sorry. Could you double-check the countries?",
	"I don't have data for that route I'm afraid. Want to try different countries?",
}

var welcomePrompts = []string{
	"Hi! I can check visa requirements for any passport and destination. How can I help?",
	"Welcome! Ask me about visa requirements for your next trip.",
}

var goodbyePrompts = []string{
	"Safe travels! Come back any time you have a visa question.",
	"Goodbye, and happy travels!",
}

var casualFallbackPrompts = []string{
	"Happy to help! Ask me about visa requirements for any destination.",
	"I'm here to help with visa questions. Where are you thinking of travelling?",
}

var comingSoonPrompts = map[model.IntentLabel]string{
	model.IntentBooking:      "Flight and hotel booking is coming soon. For now I can help with visa requirements.",
	model.IntentTicketChange: "Ticket changes aren't available here yet, but our team can help with that directly. I can still check visa requirements for you.",
	model.IntentFlightInfo:   "Live flight information is coming soon. In the meantime, ask me anything about visas.",
}

// Templates picks user-facing phrasings. With Deterministic set it always
// returns the first variant, which keeps tests exact.
type Templates struct {
	Deterministic bool
	rng           *rand.Rand
}

func New(seed int64) *Templates {
	return &Templates{rng: rand.New(rand.NewSource(seed))}
}

// ForSuggestion phrases a completeness verdict as the next question to ask.
// Returns "" for SuggestNone; the caller should not be asking anything then.
func (t *Templates) ForSuggestion(res model.CompletenessResult) string {
	switch res.Suggestion {
	case model.SuggestNeedOrigin:
		return t.pick(needOriginPrompts)
	case model.SuggestNeedDestination:
		return t.pick(needDestinationPrompts)
	case model.SuggestNeedBoth:
		return t.pick(needBothPrompts)
	case model.SuggestClarifyCountry:
		return fmt.Sprintf(t.pick(clarifyPrompts), res.ClarificationCountry)
	default:
		return ""
	}
}

// ForQueryResult phrases a knowledge graph answer, or the not-found fallback.
func (t *Templates) ForQueryResult(res model.QueryResult) string {
	if !res.Found || res.Requirement == nil {
		return t.pick(notFoundPrompts)
	}

	req := res.Requirement
	switch req.Type {
	case model.VisaFree:
		if req.DaysAllowed > 0 {
			return fmt.Sprintf("Good news! %s passport holders can visit %s visa-free for up to %d days.",
				res.OriginName, res.DestinationName, req.DaysAllowed)
		}
		return fmt.Sprintf("Good news! %s passport holders can visit %s visa-free.",
			res.OriginName, res.DestinationName)
	case model.VisaOnArrival:
		return fmt.Sprintf("%s passport holders can get a visa on arrival in %s.",
			res.OriginName, res.DestinationName)
	case model.EVisa:
		return fmt.Sprintf("%s passport holders need an e-visa for %s. You can apply online before you travel.",
			res.OriginName, res.DestinationName)
	case model.ETA:
		return fmt.Sprintf("%s passport holders need an electronic travel authorisation (ETA) for %s.",
			res.OriginName, res.DestinationName)
	case model.NoAdmission:
		return fmt.Sprintf("Unfortunately %s passport holders are currently not admitted to %s.",
			res.OriginName, res.DestinationName)
	default:
		return fmt.Sprintf("%s passport holders need a visa to visit %s. You'll want to apply before travelling.",
			res.OriginName, res.DestinationName)
	}
}

// Welcome greets a brand-new session.
func (t *Templates) Welcome() string { return t.pick(welcomePrompts) }

// Goodbye closes a session.
func (t *Templates) Goodbye() string { return t.pick(goodbyePrompts) }

// ForCasualFallback is the canned small-talk reply used when no free-form
// responder is configured.
func (t *Templates) ForCasualFallback() string {
	return t.pick(casualFallbackPrompts)
}

// ForDeferred returns the canned reply for a feature that is recognized but
// not built yet. ok is false for non-deferred intents.
func (t *Templates) ForDeferred(intent model.IntentLabel) (string, bool) {
	msg, ok := comingSoonPrompts[intent]
	return msg, ok
}

func (t *Templates) pick(variants []string) string {
	if t.Deterministic || len(variants) == 1 {
		return variants[0]
	}
	return variants[t.rng.Intn(len(variants))]
}
