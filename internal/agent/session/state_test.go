package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehman-travels/visabot/server/internal/agent/extract"
	"github.com/rehman-travels/visabot/server/internal/agent/model"
	"github.com/rehman-travels/visabot/server/internal/agent/registry"
)

func newState(t *testing.T) *State {
	t.Helper()
	reg := registry.New()
	return New(extract.New(reg), reg, model.ConversationConfig{
		TTL:                 "15m",
		ContextMaxTurns:     5,
		FollowupWindowTurns: 2,
		HistoryLimit:        20,
	})
}

func TestUpdateFillsSlotsAcrossTurns(t *testing.T) {
	st := newState(t)

	delta := st.Update("pakistani", model.IntentFollowUp)
	assert.True(t, delta.OriginUpdated)
	assert.Equal(t, model.CountryCode("PAK"), st.Origin())
	assert.False(t, st.IsComplete())

	delta = st.Update("dubai", model.IntentFollowUp)
	assert.True(t, delta.DestinationUpdated)
	assert.Equal(t, model.CountryCode("ARE"), st.Destination())
	assert.True(t, st.IsComplete())
	assert.Empty(t, st.Missing())
}

func TestDemonymFillsEmptyDestinationWhenOriginKnown(t *testing.T) {
	st := newState(t)

	st.Update("I'm indian", model.IntentVisaQuery)
	require.Equal(t, model.CountryCode("IND"), st.Origin())

	delta := st.Update("pakistani", model.IntentFollowUp)
	assert.True(t, delta.DestinationUpdated)
	assert.False(t, delta.OriginUpdated)
	assert.Equal(t, model.CountryCode("IND"), st.Origin())
	assert.Equal(t, model.CountryCode("PAK"), st.Destination())
	assert.True(t, st.IsComplete())
}

func TestUpdateBothSlotsAtOnce(t *testing.T) {
	st := newState(t)

	delta := st.Update("I'm pakistani and want to go to Singapore", model.IntentVisaQuery)
	assert.True(t, delta.OriginUpdated)
	assert.True(t, delta.DestinationUpdated)
	assert.Equal(t, model.CountryCode("PAK"), st.Origin())
	assert.Equal(t, "Pakistan", st.OriginName())
	assert.Equal(t, model.CountryCode("SGP"), st.Destination())
	assert.True(t, st.IsComplete())
}

func TestAmbiguousMentionWithoutContextStoresOrigin(t *testing.T) {
	st := newState(t)

	delta := st.Update("dubai", model.IntentVisaQuery)
	assert.False(t, delta.NeedsClarification)
	assert.False(t, st.NeedsClarification())
	assert.Equal(t, model.CountryCode("ARE"), st.Origin())
}

func TestAmbiguousMentionWithContextAsksForClarification(t *testing.T) {
	st := newState(t)

	// establish visa context with a turn that has no country mention
	st.Update("i have a visa question", model.IntentVisaQuery)
	require.True(t, st.HasVisaContext())

	delta := st.Update("dubai", model.IntentVisaQuery)
	assert.True(t, delta.NeedsClarification)
	assert.Equal(t, "United Arab Emirates", delta.ClarificationCountry)
	assert.True(t, st.NeedsClarification())
	assert.True(t, st.Origin().IsZero())
	assert.True(t, st.Destination().IsZero())
}

func TestVisaContextIsSticky(t *testing.T) {
	st := newState(t)

	assert.False(t, st.HasVisaContext())
	st.Update("do i need a visa", model.IntentVisaQuery)
	assert.True(t, st.HasVisaContext())

	st.Update("thanks!", model.IntentCasual)
	assert.True(t, st.HasVisaContext())
}

func TestClarificationResolvedByIntentLabel(t *testing.T) {
	tests := []struct {
		name   string
		intent model.IntentLabel
		text   string
		slot   model.Slot
	}{
		{name: "origin label", intent: model.IntentClarifyOrigin, text: "origin", slot: model.SlotOrigin},
		{name: "destination label", intent: model.IntentClarifyDestination, text: "destination", slot: model.SlotDestination},
		{name: "nationality phrase", intent: model.IntentCasual, text: "that's my nationality", slot: model.SlotOrigin},
		{name: "going there phrase", intent: model.IntentCasual, text: "i'm going there", slot: model.SlotDestination},
		{name: "travel there phrase", intent: model.IntentCasual, text: "i want to travel there", slot: model.SlotDestination},
		{name: "visit phrase", intent: model.IntentCasual, text: "to visit", slot: model.SlotDestination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newState(t)
			st.Update("i have a visa question", model.IntentVisaQuery)
			st.Update("dubai", model.IntentVisaQuery)
			require.True(t, st.NeedsClarification())

			delta := st.Update(tt.text, tt.intent)
			assert.True(t, delta.ClarificationResolved)
			assert.False(t, st.NeedsClarification())

			if tt.slot == model.SlotOrigin {
				assert.Equal(t, model.CountryCode("ARE"), st.Origin())
			} else {
				assert.Equal(t, model.CountryCode("ARE"), st.Destination())
			}
		})
	}
}

func TestClarificationResolvedByFullRestatement(t *testing.T) {
	st := newState(t)
	st.Update("i have a visa question", model.IntentVisaQuery)
	st.Update("dubai", model.IntentVisaQuery)
	require.True(t, st.NeedsClarification())

	delta := st.Update("I'm pakistani and want to go to Singapore", model.IntentVisaQuery)
	assert.True(t, delta.ClarificationResolved)
	assert.True(t, delta.OriginUpdated)
	assert.True(t, delta.DestinationUpdated)
	assert.Equal(t, model.CountryCode("PAK"), st.Origin())
	assert.Equal(t, model.CountryCode("SGP"), st.Destination())
	assert.False(t, st.NeedsClarification())
}

func TestClarificationAbandonedFallsThrough(t *testing.T) {
	st := newState(t)
	st.Update("i have a visa question", model.IntentVisaQuery)
	st.Update("dubai", model.IntentVisaQuery)
	require.True(t, st.NeedsClarification())

	// the answer ignores the question and names a demonym instead
	delta := st.Update("pakistani", model.IntentFollowUp)
	assert.False(t, delta.ClarificationResolved)
	assert.False(t, st.NeedsClarification())
	assert.Equal(t, model.CountryCode("PAK"), st.Origin())
	assert.True(t, st.Destination().IsZero())
}

func TestEmptyTextChangesNothing(t *testing.T) {
	st := newState(t)

	delta := st.Update("", model.IntentCasual)
	assert.Equal(t, model.UpdateDelta{}, delta)
	assert.True(t, st.Origin().IsZero())
	assert.True(t, st.Destination().IsZero())
}

func TestResetQueryKeepsOriginAndOpensWindow(t *testing.T) {
	st := newState(t)
	st.IncrementTurn()
	st.Update("I'm pakistani going to dubai", model.IntentVisaQuery)
	require.True(t, st.IsComplete())

	st.ResetQuery(true)

	assert.Equal(t, model.CountryCode("PAK"), st.Origin())
	assert.True(t, st.Destination().IsZero())
	assert.Equal(t, model.CountryCode("ARE"), st.LastAnswered())
	assert.True(t, st.InFollowupWindow())
}

func TestFollowupWindowExpires(t *testing.T) {
	st := newState(t)
	st.IncrementTurn()
	st.Update("I'm pakistani going to dubai", model.IntentVisaQuery)
	st.ResetQuery(true)

	st.IncrementTurn()
	assert.True(t, st.InFollowupWindow())
	st.IncrementTurn()
	assert.True(t, st.InFollowupWindow())
	st.IncrementTurn()
	assert.False(t, st.InFollowupWindow())
}

func TestResetAll(t *testing.T) {
	st := newState(t)
	st.IncrementTurn()
	st.Update("I'm pakistani going to dubai", model.IntentVisaQuery)
	st.ResetQuery(true)

	st.ResetAll()

	assert.True(t, st.Origin().IsZero())
	assert.True(t, st.Destination().IsZero())
	assert.False(t, st.HasVisaContext())
	assert.Equal(t, 0, st.TurnCount())
	assert.False(t, st.InFollowupWindow())
	assert.Empty(t, st.History())
}

func TestHistoryBounded(t *testing.T) {
	st := newState(t)

	for i := 0; i < 30; i++ {
		st.Update("hello", model.IntentCasual)
	}
	assert.Len(t, st.History(), 20)
}

func TestContextWindow(t *testing.T) {
	st := newState(t)

	for i, msg := range []string{"hi", "do i need a visa", "i'm pakistani"} {
		intent := model.IntentVisaQuery
		if i == 0 {
			intent = model.IntentCasual
		}
		st.Update(msg, intent)
		st.RecordResponse("reply " + msg)
	}

	window := st.ContextWindow(2)
	require.Len(t, window, 4)
	assert.Equal(t, model.ChatTurn{Role: model.RoleUser, Content: "do i need a visa"}, window[0])
	assert.Equal(t, model.ChatTurn{Role: model.RoleAssistant, Content: "reply do i need a visa"}, window[1])
	assert.Equal(t, model.ChatTurn{Role: model.RoleUser, Content: "i'm pakistani"}, window[2])
}

func TestHydrate(t *testing.T) {
	st := newState(t)

	st.Hydrate([]*model.TurnRecord{
		{Timestamp: time.Now(), Message: "do i need a visa", Intent: model.IntentVisaQuery},
		{Timestamp: time.Now(), Message: "i'm pakistani going to dubai", Intent: model.IntentVisaQuery,
			Origin: "PAK", Destination: "ARE"},
	})

	assert.Equal(t, model.CountryCode("PAK"), st.Origin())
	assert.Equal(t, model.CountryCode("ARE"), st.Destination())
	assert.True(t, st.HasVisaContext())
	assert.Equal(t, 2, st.TurnCount())
	assert.Len(t, st.History(), 2)
}
