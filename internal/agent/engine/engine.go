// Package engine wires the per-turn pipeline together: classify, update
// slots, check completeness, then either ask the next question, answer from
// the knowledge graph, or hand off to the free-form responder. It also owns
// the one-writer-per-session rule the state machine relies on.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/rehman-travels/visabot/server/internal/agent/extract"
	"github.com/rehman-travels/visabot/server/internal/agent/intent"
	"github.com/rehman-travels/visabot/server/internal/agent/kgraph"
	"github.com/rehman-travels/visabot/server/internal/agent/model"
	"github.com/rehman-travels/visabot/server/internal/agent/registry"
	"github.com/rehman-travels/visabot/server/internal/agent/respond"
	"github.com/rehman-travels/visabot/server/internal/agent/session"
	logx "github.com/rehman-travels/visabot/server/pkg/logger"
)

type Engine struct {
	reg        *registry.Registry
	ext        *extract.Extractor
	classifier *intent.Classifier
	graph      *kgraph.Graph
	templates  *respond.Templates
	responder  model.Responder         // optional
	repo       model.SessionRepository // optional
	cfg        model.ConversationConfig

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// sessionEntry serializes turns within one session. Different sessions run
// concurrently; the state machine itself is lock-free.
type sessionEntry struct {
	mu       sync.Mutex
	state    *session.State
	hydrated bool
}

type Options struct {
	Registry   *registry.Registry
	Extractor  *extract.Extractor
	Classifier *intent.Classifier
	Graph      *kgraph.Graph
	Templates  *respond.Templates
	Responder  model.Responder
	Repo       model.SessionRepository
	Config     model.ConversationConfig
}

func New(opts Options) *Engine {
	return &Engine{
		reg:        opts.Registry,
		ext:        opts.Extractor,
		classifier: opts.Classifier,
		graph:      opts.Graph,
		templates:  opts.Templates,
		responder:  opts.Responder,
		repo:       opts.Repo,
		cfg:        opts.Config,
		sessions:   make(map[string]*sessionEntry),
	}
}

// HandleMessage runs one full turn for the session and returns the reply.
// It never returns an error for conversational conditions; only the caller's
// context can abort it.
func (e *Engine) HandleMessage(ctx context.Context, sessionID, message string) string {
	start := time.Now()

	entry := e.entryFor(sessionID)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	e.hydrate(ctx, sessionID, entry)

	st := entry.state
	st.IncrementTurn()

	label := e.classifier.Classify(ctx, message, st.HasVisaContext())
	delta := st.Update(message, label)
	reply := e.route(ctx, st, message, label)

	st.RecordResponse(reply)
	e.persistLastTurn(ctx, sessionID, st)

	logx.Info().
		Str("session_id", sessionID).
		Str("intent", string(label)).
		Bool("origin_updated", delta.OriginUpdated).
		Bool("destination_updated", delta.DestinationUpdated).
		Bool("needs_clarification", delta.NeedsClarification).
		Dur("elapsed", time.Since(start)).
		Msg("turn handled")

	return reply
}

// route picks the reply source for the classified turn.
func (e *Engine) route(ctx context.Context, st *session.State, message string, label model.IntentLabel) string {
	if msg, ok := e.templates.ForDeferred(label); ok {
		return msg
	}

	if label == model.IntentCasual {
		return e.freeForm(ctx, st, message)
	}

	check := session.Check(st)
	if check.Complete {
		return e.answer(st)
	}

	// Inside the follow-up window an under-specified follow-up is continuing
	// conversation, not a new interrogation.
	if label == model.IntentFollowUp && st.InFollowupWindow() && !st.NeedsClarification() {
		return e.freeForm(ctx, st, message)
	}

	return e.templates.ForSuggestion(check)
}

// answer runs the knowledge graph lookup and, on success, clears the query
// slots so the next message can ask about a new destination while keeping
// the traveller's origin.
func (e *Engine) answer(st *session.State) string {
	qr := e.graph.Query(string(st.Origin()), string(st.Destination()))
	reply := e.templates.ForQueryResult(qr)

	if qr.Found {
		st.ResetQuery(true)
	} else {
		logx.Warn().
			Str("origin", string(st.Origin())).
			Str("destination", string(st.Destination())).
			Str("error", qr.Error).
			Msg("visa lookup missed")
		st.ResetQuery(true)
	}
	return reply
}

func (e *Engine) freeForm(ctx context.Context, st *session.State, message string) string {
	if e.responder == nil {
		return e.templates.ForCasualFallback()
	}

	reply, err := e.responder.Respond(ctx, message, st.ContextWindow(e.cfg.ContextMaxTurns))
	if err != nil {
		logx.Error().Err(err).Msg("free-form responder failed")
		return e.templates.ForCasualFallback()
	}
	return reply
}

// ResetSession drops all in-memory and persisted state for the session.
func (e *Engine) ResetSession(ctx context.Context, sessionID string) {
	entry := e.entryFor(sessionID)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.state.ResetAll()
	if e.repo != nil {
		if err := e.repo.ClearTurns(ctx, sessionID); err != nil {
			logx.Warn().Err(err).Str("session_id", sessionID).Msg("failed to clear persisted session")
		}
	}
}

func (e *Engine) entryFor(sessionID string) *sessionEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	entry, ok := e.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{state: session.New(e.ext, e.reg, e.cfg)}
		e.sessions[sessionID] = entry
	}
	return entry
}

// hydrate restores a freshly created session from the repository, once.
// Persistence is best-effort both ways; a failed load starts clean.
func (e *Engine) hydrate(ctx context.Context, sessionID string, entry *sessionEntry) {
	if entry.hydrated {
		return
	}
	entry.hydrated = true

	if e.repo == nil {
		return
	}
	turns, err := e.repo.LoadTurns(ctx, sessionID)
	if err != nil {
		logx.Warn().Err(err).Str("session_id", sessionID).Msg("failed to load persisted session")
		return
	}
	entry.state.Hydrate(turns)
}

func (e *Engine) persistLastTurn(ctx context.Context, sessionID string, st *session.State) {
	if e.repo == nil {
		return
	}
	history := st.History()
	if len(history) == 0 {
		return
	}
	if err := e.repo.AppendTurn(ctx, sessionID, history[len(history)-1]); err != nil {
		logx.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist turn")
	}
}
