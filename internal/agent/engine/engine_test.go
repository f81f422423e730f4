package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehman-travels/visabot/server/internal/agent/extract"
	"github.com/rehman-travels/visabot/server/internal/agent/intent"
	"github.com/rehman-travels/visabot/server/internal/agent/kgraph"
	"github.com/rehman-travels/visabot/server/internal/agent/model"
	"github.com/rehman-travels/visabot/server/internal/agent/registry"
	"github.com/rehman-travels/visabot/server/internal/agent/repo"
	"github.com/rehman-travels/visabot/server/internal/agent/respond"
)

type stubResponder struct {
	reply string
	calls int
}

func (s *stubResponder) Respond(_ context.Context, _ string, _ []model.ChatTurn) (string, error) {
	s.calls++
	return s.reply, nil
}

func newTestEngine(t *testing.T, responder model.Responder, sessionRepo model.SessionRepository) *Engine {
	t.Helper()

	reg := registry.New()
	ext := extract.New(reg)
	graph := kgraph.Build(reg, []kgraph.Row{
		{Passport: "PAK", Destination: "ARE", Requirement: "visa on arrival"},
		{Passport: "PAK", Destination: "SGP", Requirement: "30"},
	})
	templates := respond.New(1)
	templates.Deterministic = true

	return New(Options{
		Registry:   reg,
		Extractor:  ext,
		Classifier: intent.New(ext, nil, model.ClassifierConfig{MinConfidence: 0.5}),
		Graph:      graph,
		Templates:  templates,
		Responder:  responder,
		Repo:       sessionRepo,
		Config: model.ConversationConfig{
			TTL:                 "15m",
			ContextMaxTurns:     5,
			FollowupWindowTurns: 2,
			HistoryLimit:        20,
		},
	})
}

func TestHandleMessageSlotFillingConversation(t *testing.T) {
	ctx := context.Background()
	responder := &stubResponder{reply: "happy to chat!"}
	sessionRepo := repo.NewMemorySessionRepository()
	eng := newTestEngine(t, responder, sessionRepo)

	const sid = "s1"

	// greeting goes to the free-form responder
	assert.Equal(t, "happy to chat!", eng.HandleMessage(ctx, sid, "hi"))
	assert.Equal(t, 1, responder.calls)

	// visa query with no slots asks for both
	reply := eng.HandleMessage(ctx, sid, "do i need a visa?")
	assert.Contains(t, reply, "nationality")

	// nationality fills origin, destination is still missing
	reply = eng.HandleMessage(ctx, sid, "i'm pakistani")
	assert.Contains(t, reply, "travel to")

	// destination completes the query and answers from the graph
	reply = eng.HandleMessage(ctx, sid, "dubai")
	assert.Equal(t, "Pakistan passport holders can get a visa on arrival in United Arab Emirates.", reply)

	// origin survives the answered query, so one mention answers again
	reply = eng.HandleMessage(ctx, sid, "what about singapore?")
	assert.Equal(t, "Good news! Pakistan passport holders can visit Singapore visa-free for up to 30 days.", reply)

	count, err := sessionRepo.TurnCount(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestHandleMessageClarificationFlow(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	const sid = "s2"

	eng.HandleMessage(ctx, sid, "i need visa info")

	// a lone ambiguous country inside visa context triggers the clarification question
	reply := eng.HandleMessage(ctx, sid, "dubai")
	assert.Contains(t, reply, "United Arab Emirates")

	// answering "destination" assigns the pending country and asks for origin
	reply = eng.HandleMessage(ctx, sid, "destination")
	assert.Contains(t, reply, "passport")

	reply = eng.HandleMessage(ctx, sid, "pakistani")
	assert.Equal(t, "Pakistan passport holders can get a visa on arrival in United Arab Emirates.", reply)
}

func TestHandleMessageDeferredIntents(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	reply := eng.HandleMessage(ctx, "s3", "can you book a flight for me")
	assert.Contains(t, reply, "coming soon")
}

func TestHandleMessageWithoutResponderFallsBackToCanned(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	reply := eng.HandleMessage(ctx, "s4", "hello!")
	assert.NotEmpty(t, reply)
}

func TestResetSession(t *testing.T) {
	ctx := context.Background()
	sessionRepo := repo.NewMemorySessionRepository()
	eng := newTestEngine(t, nil, sessionRepo)

	const sid = "s5"
	eng.HandleMessage(ctx, sid, "i'm pakistani going to dubai")

	eng.ResetSession(ctx, sid)

	count, err := sessionRepo.TurnCount(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// after the reset the next visa query starts from scratch
	reply := eng.HandleMessage(ctx, sid, "do i need a visa?")
	assert.Contains(t, reply, "nationality")
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	eng := newTestEngine(t, nil, nil)

	eng.HandleMessage(ctx, "a", "i'm pakistani")
	reply := eng.HandleMessage(ctx, "b", "dubai")

	// session b has no origin from session a, so no complete answer
	assert.NotContains(t, reply, "visa on arrival")
}

func TestHydrationFromRepository(t *testing.T) {
	ctx := context.Background()
	sessionRepo := repo.NewMemorySessionRepository()

	const sid = "s6"
	require.NoError(t, sessionRepo.AppendTurn(ctx, sid, &model.TurnRecord{
		Message: "i'm pakistani",
		Intent:  model.IntentVisaQuery,
		Origin:  "PAK",
	}))

	eng := newTestEngine(t, nil, sessionRepo)

	// the restored origin means a single destination mention answers directly
	reply := eng.HandleMessage(ctx, sid, "dubai")
	assert.Equal(t, "Pakistan passport holders can get a visa on arrival in United Arab Emirates.", reply)
}
