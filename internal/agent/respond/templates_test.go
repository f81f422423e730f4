package respond

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
)

func deterministic() *Templates {
	tpl := New(1)
	tpl.Deterministic = true
	return tpl
}

func TestForSuggestion(t *testing.T) {
	tpl := deterministic()

	tests := []struct {
		name string
		res  model.CompletenessResult
		want string
	}{
		{
			name: "need origin",
			res:  model.CompletenessResult{Suggestion: model.SuggestNeedOrigin},
			want: needOriginPrompts[0],
		},
		{
			name: "need destination",
			res:  model.CompletenessResult{Suggestion: model.SuggestNeedDestination},
			want: needDestinationPrompts[0],
		},
		{
			name: "need both",
			res:  model.CompletenessResult{Suggestion: model.SuggestNeedBoth},
			want: needBothPrompts[0],
		},
		{
			name: "complete yields nothing to ask",
			res:  model.CompletenessResult{Complete: true, Suggestion: model.SuggestNone},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tpl.ForSuggestion(tt.res))
		})
	}
}

func TestForSuggestionClarify(t *testing.T) {
	tpl := deterministic()

	got := tpl.ForSuggestion(model.CompletenessResult{
		Suggestion:           model.SuggestClarifyCountry,
		ClarificationCountry: "United Arab Emirates",
	})
	assert.Contains(t, got, "United Arab Emirates")
}

func TestForQueryResult(t *testing.T) {
	tpl := deterministic()

	base := model.QueryResult{
		Found:           true,
		Origin:          "PAK",
		OriginName:      "Pakistan",
		Destination:     "SGP",
		DestinationName: "Singapore",
	}

	tests := []struct {
		name string
		req  model.VisaRequirement
		want string
	}{
		{
			name: "visa free with days",
			req:  model.VisaRequirement{Type: model.VisaFree, DaysAllowed: 30},
			want: "Good news! Pakistan passport holders can visit Singapore visa-free for up to 30 days.",
		},
		{
			name: "visa free without days",
			req:  model.VisaRequirement{Type: model.VisaFree},
			want: "Good news! Pakistan passport holders can visit Singapore visa-free.",
		},
		{
			name: "visa on arrival",
			req:  model.VisaRequirement{Type: model.VisaOnArrival},
			want: "Pakistan passport holders can get a visa on arrival in Singapore.",
		},
		{
			name: "visa required",
			req:  model.VisaRequirement{Type: model.VisaRequired},
			want: "Pakistan passport holders need a visa to visit Singapore. You'll want to apply before travelling.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := base
			res.Requirement = &tt.req
			assert.Equal(t, tt.want, tpl.ForQueryResult(res))
		})
	}
}

func TestForQueryResultNotFound(t *testing.T) {
	tpl := deterministic()

	got := tpl.ForQueryResult(model.QueryResult{Found: false, Error: "no visa data"})
	assert.Equal(t, notFoundPrompts[0], got)
}

func TestWelcomeAndGoodbye(t *testing.T) {
	tpl := deterministic()

	assert.Equal(t, welcomePrompts[0], tpl.Welcome())
	assert.Equal(t, goodbyePrompts[0], tpl.Goodbye())
}

func TestForDeferred(t *testing.T) {
	tpl := deterministic()

	for _, label := range []model.IntentLabel{
		model.IntentBooking, model.IntentTicketChange, model.IntentFlightInfo,
	} {
		msg, ok := tpl.ForDeferred(label)
		assert.True(t, ok, label)
		assert.NotEmpty(t, msg, label)
	}

	_, ok := tpl.ForDeferred(model.IntentVisaQuery)
	assert.False(t, ok)
}
