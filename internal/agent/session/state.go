// Package session owns the per-conversation slot state. A State instance
// belongs to exactly one session and is mutated only through Update; the
// engine serializes access per session ID, so the struct carries no locking.
package session

import (
	"strings"
	"time"

	"github.com/rehman-travels/visabot/server/internal/agent/extract"
	"github.com/rehman-travels/visabot/server/internal/agent/model"
	"github.com/rehman-travels/visabot/server/internal/agent/registry"
)

// Phrases in a clarification response that assign the pending country to the
// origin slot.
var originResponseHints = []string{
	"nationality", "i'm from", "i am from", "my passport", "citizen",
	"from there", "where i'm from", "origin",
}

// Phrases in a clarification response that assign the pending country to the
// destination slot.
var destinationResponseHints = []string{
	"going there", "going to", "destination", "travelling there",
	"traveling there", "travel there", "travel to", "visit",
	"to there", "want to go",
}

type State struct {
	ext *extract.Extractor
	reg *registry.Registry
	cfg model.ConversationConfig

	origin          model.CountryCode
	originName      string
	destination     model.CountryCode
	destinationName string

	pendingClarification model.CountryCode
	pendingName          string

	hasVisaContext          bool
	turnCount               int
	turnsSinceAnswer        int
	lastAnsweredDestination model.CountryCode
	lastIntent              model.IntentLabel

	history []*model.TurnRecord
}

func New(ext *extract.Extractor, reg *registry.Registry, cfg model.ConversationConfig) *State {
	return &State{ext: ext, reg: reg, cfg: cfg}
}

// Update runs one turn of the slot state machine and reports what changed.
// Empty or unrecognizable text yields an empty delta, never an error.
//
// A pending clarification is tried first: the message may answer the open
// "origin or destination?" question. If it does not, the question is
// abandoned and the message goes through normal extraction instead.
func (s *State) Update(text string, intent model.IntentLabel) model.UpdateDelta {
	// The ambiguity rule below keys off whether the session was already in
	// a visa conversation before this turn, so capture the flag before the
	// sticky set.
	hadContext := s.hasVisaContext
	if intent.VisaRelated() {
		s.hasVisaContext = true
	}
	s.lastIntent = intent

	var delta model.UpdateDelta
	if !s.pendingClarification.IsZero() {
		var resolved bool
		delta, resolved = s.resolveClarification(text, intent)
		if !resolved {
			s.clearPending()
			delta = s.applyExtraction(text, hadContext)
		}
	} else {
		delta = s.applyExtraction(text, hadContext)
	}

	s.appendHistory(text, intent, delta)
	return delta
}

// resolveClarification interprets the message as an answer to the open
// clarification question. Reports false when the message does not answer it.
func (s *State) resolveClarification(text string, intent model.IntentLabel) (model.UpdateDelta, bool) {
	res := s.ext.Extract(text)

	// A full restatement ("I'm pakistani going to dubai") resolves
	// everything at once; the pending country is superseded.
	if !res.Origin.IsZero() && !res.Destination.IsZero() {
		s.setOrigin(res.Origin)
		s.setDestination(res.Destination)
		s.clearPending()
		return model.UpdateDelta{
			OriginUpdated:         true,
			DestinationUpdated:    true,
			ClarificationResolved: true,
		}, true
	}

	lower := strings.ToLower(text)
	if intent == model.IntentClarifyOrigin || containsAny(lower, originResponseHints) {
		s.setOrigin(s.pendingClarification)
		s.clearPending()
		return model.UpdateDelta{OriginUpdated: true, ClarificationResolved: true}, true
	}
	if intent == model.IntentClarifyDestination || containsAny(lower, destinationResponseHints) {
		s.setDestination(s.pendingClarification)
		s.clearPending()
		return model.UpdateDelta{DestinationUpdated: true, ClarificationResolved: true}, true
	}

	return model.UpdateDelta{}, false
}

// applyExtraction maps the extractor's verdict onto the slots. The cases are
// mutually exclusive; hadContext is the visa-context flag from before this
// turn.
func (s *State) applyExtraction(text string, hadContext bool) model.UpdateDelta {
	var delta model.UpdateDelta
	res := s.ext.Extract(text)

	switch {
	// Both roles identified: fill both, overwriting earlier values.
	case !res.Origin.IsZero() && !res.Destination.IsZero():
		s.setOrigin(res.Origin)
		s.setDestination(res.Destination)
		delta.OriginUpdated = true
		delta.DestinationUpdated = true

	// One new mention: fill whichever slot is empty. Nationality form breaks
	// the tie only when both slots are empty; once the origin is known, a new
	// lone mention names the missing destination even in demonym form.
	case !res.Origin.IsZero():
		switch {
		case !s.origin.IsZero() && s.destination.IsZero():
			s.setDestination(res.Origin)
			delta.DestinationUpdated = true
		case s.origin.IsZero() && !s.destination.IsZero():
			s.setOrigin(res.Origin)
			delta.OriginUpdated = true
		case res.OriginIsNationality:
			s.setOrigin(res.Origin)
			delta.OriginUpdated = true
		// Both slots empty and the mention is ambiguous: inside an
		// established visa conversation, ask instead of guessing. With no
		// prior context, storing it as origin is the policy default.
		case s.origin.IsZero() && s.destination.IsZero() && hadContext:
			s.pendingClarification = res.Origin
			s.pendingName = s.reg.NameOf(res.Origin)
			delta.NeedsClarification = true
			delta.ClarificationCountry = s.pendingName
		case s.origin.IsZero() && s.destination.IsZero():
			s.setOrigin(res.Origin)
			delta.OriginUpdated = true
		}

	// Destination role identified without an origin ("going to Dubai").
	case !res.Destination.IsZero():
		s.setDestination(res.Destination)
		delta.DestinationUpdated = true
	}

	return delta
}

// RecordResponse attaches the bot's reply to the history entry created by the
// last Update. No-op when no turn has been recorded yet.
func (s *State) RecordResponse(response string) {
	if len(s.history) == 0 {
		return
	}
	s.history[len(s.history)-1].Response = response
}

// IncrementTurn advances the turn counters. Called once per incoming message,
// before Update.
func (s *State) IncrementTurn() {
	s.turnCount++
	s.turnsSinceAnswer++
}

// ResetQuery clears the answered query so the next message can start a fresh
// one. The just-answered destination is remembered for the follow-up window,
// and origin survives when keepOrigin is set (the traveller has not changed
// nationality between questions).
func (s *State) ResetQuery(keepOrigin bool) {
	if !s.destination.IsZero() {
		s.lastAnsweredDestination = s.destination
	}
	s.turnsSinceAnswer = 0
	s.destination = ""
	s.destinationName = ""
	if !keepOrigin {
		s.origin = ""
		s.originName = ""
	}
	s.clearPending()
}

// ResetAll returns the session to its initial empty state. Only an explicit
// new-conversation signal triggers this.
func (s *State) ResetAll() {
	s.origin = ""
	s.originName = ""
	s.destination = ""
	s.destinationName = ""
	s.clearPending()
	s.hasVisaContext = false
	s.turnCount = 0
	s.turnsSinceAnswer = 0
	s.lastAnsweredDestination = ""
	s.lastIntent = ""
	s.history = nil
}

// InFollowupWindow reports whether a recent successful answer makes an
// under-specified message a continuation rather than a new query.
func (s *State) InFollowupWindow() bool {
	return !s.lastAnsweredDestination.IsZero() &&
		s.turnsSinceAnswer <= s.cfg.FollowupWindowTurns
}

// ContextWindow returns the last maxTurns exchanges as role-tagged messages
// for the free-form responder.
func (s *State) ContextWindow(maxTurns int) []model.ChatTurn {
	start := len(s.history) - maxTurns
	if start < 0 {
		start = 0
	}

	turns := make([]model.ChatTurn, 0, 2*(len(s.history)-start))
	for _, rec := range s.history[start:] {
		turns = append(turns, model.ChatTurn{Role: model.RoleUser, Content: rec.Message})
		if rec.Response != "" {
			turns = append(turns, model.ChatTurn{Role: model.RoleAssistant, Content: rec.Response})
		}
	}
	return turns
}

// Hydrate seeds the session from previously persisted turns, restoring the
// history window and the slots as of the last recorded turn.
func (s *State) Hydrate(records []*model.TurnRecord) {
	if len(records) == 0 {
		return
	}
	if len(records) > s.cfg.HistoryLimit {
		records = records[len(records)-s.cfg.HistoryLimit:]
	}
	s.history = append([]*model.TurnRecord(nil), records...)
	s.turnCount = len(records)

	last := records[len(records)-1]
	if code, ok := s.reg.ResolveCode(string(last.Origin)); ok {
		s.setOrigin(code)
	}
	if code, ok := s.reg.ResolveCode(string(last.Destination)); ok {
		s.setDestination(code)
	}
	if last.Intent.VisaRelated() {
		s.hasVisaContext = true
	}
}

func (s *State) IsComplete() bool {
	return !s.origin.IsZero() && !s.destination.IsZero()
}

// Missing lists the still-empty required slots.
func (s *State) Missing() []model.Slot {
	var missing []model.Slot
	if s.origin.IsZero() {
		missing = append(missing, model.SlotOrigin)
	}
	if s.destination.IsZero() {
		missing = append(missing, model.SlotDestination)
	}
	return missing
}

func (s *State) NeedsClarification() bool { return !s.pendingClarification.IsZero() }

func (s *State) PendingClarification() (model.CountryCode, string) {
	return s.pendingClarification, s.pendingName
}

func (s *State) Origin() model.CountryCode       { return s.origin }
func (s *State) OriginName() string              { return s.originName }
func (s *State) Destination() model.CountryCode  { return s.destination }
func (s *State) DestinationName() string         { return s.destinationName }
func (s *State) HasVisaContext() bool            { return s.hasVisaContext }
func (s *State) TurnCount() int                  { return s.turnCount }
func (s *State) LastIntent() model.IntentLabel   { return s.lastIntent }
func (s *State) LastAnswered() model.CountryCode { return s.lastAnsweredDestination }
func (s *State) History() []*model.TurnRecord    { return s.history }

func (s *State) setOrigin(code model.CountryCode) {
	s.origin = code
	s.originName = s.reg.NameOf(code)
}

func (s *State) setDestination(code model.CountryCode) {
	s.destination = code
	s.destinationName = s.reg.NameOf(code)
}

func (s *State) clearPending() {
	s.pendingClarification = ""
	s.pendingName = ""
}

func (s *State) appendHistory(text string, intent model.IntentLabel, delta model.UpdateDelta) {
	s.history = append(s.history, &model.TurnRecord{
		Timestamp:             time.Now().UTC(),
		Message:               text,
		Intent:                intent,
		Origin:                s.origin,
		Destination:           s.destination,
		NeedsClarification:    delta.NeedsClarification,
		ClarificationResolved: delta.ClarificationResolved,
	})
	if len(s.history) > s.cfg.HistoryLimit {
		s.history = s.history[len(s.history)-s.cfg.HistoryLimit:]
	}
}

func containsAny(s string, hints []string) bool {
	for _, h := range hints {
		if strings.Contains(s, h) {
			return true
		}
	}
	return false
}
