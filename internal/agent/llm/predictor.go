package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
	logx "github.com/rehman-travels/visabot/server/pkg/logger"
)

const predictorSystemPrompt = `You classify travel-agency chat messages into exactly one intent.

Intents:
- casual: greetings, small talk, thanks, disputes, anything conversational
- visa_query: a question about visa requirements for travelling
- follow_up: a short continuation of an earlier visa question
- clarify_origin: the user says a country is their nationality/origin
- clarify_destination: the user says a country is where they are going
- booking: the user wants to book flights or hotels
- ticket_change: the user wants to change or cancel a ticket
- flight_info: the user asks about flight status or schedules

Reply with ONLY a JSON object: {"intent": "<label>", "confidence": <0.0-1.0>}`

var validIntents = map[model.IntentLabel]struct{}{
	model.IntentCasual:             {},
	model.IntentVisaQuery:          {},
	model.IntentFollowUp:           {},
	model.IntentClarifyOrigin:      {},
	model.IntentClarifyDestination: {},
	model.IntentBooking:            {},
	model.IntentTicketChange:       {},
	model.IntentFlightInfo:         {},
}

// jsonObjectPattern pulls the first {...} out of a reply that wrapped its
// JSON in prose or a code fence.
var jsonObjectPattern = regexp.MustCompile(`\{[^{}]*\}`)

// GeminiPredictor implements model.IntentPredictor over a chat model. The
// reply is parsed as JSON directly, then by extracting the first JSON object
// from the text when the model did not comply exactly.
type GeminiPredictor struct {
	cm einomodel.BaseChatModel
}

var _ model.IntentPredictor = (*GeminiPredictor)(nil)

func NewGeminiPredictor(cm einomodel.BaseChatModel) *GeminiPredictor {
	return &GeminiPredictor{cm: cm}
}

func (p *GeminiPredictor) Predict(ctx context.Context, text string) (model.Prediction, error) {
	resp, err := p.cm.Generate(ctx, []*schema.Message{
		schema.SystemMessage(predictorSystemPrompt),
		schema.UserMessage(text),
	})
	if err != nil {
		return model.Prediction{}, fmt.Errorf("predictor generate: %w", err)
	}

	pred, err := parsePrediction(resp.Content)
	if err != nil {
		return model.Prediction{}, err
	}
	return pred, nil
}

func parsePrediction(content string) (model.Prediction, error) {
	var raw struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	}

	trimmed := strings.TrimSpace(content)
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		blob := jsonObjectPattern.FindString(trimmed)
		if blob == "" {
			return model.Prediction{}, fmt.Errorf("no JSON object in predictor reply: %q", content)
		}
		if err := json.Unmarshal([]byte(blob), &raw); err != nil {
			return model.Prediction{}, fmt.Errorf("parse predictor reply: %w", err)
		}
	}

	label := model.IntentLabel(strings.ToLower(strings.TrimSpace(raw.Intent)))
	if _, ok := validIntents[label]; !ok {
		logx.Debug().Str("intent", raw.Intent).Msg("predictor returned unknown label, using casual")
		label = model.IntentCasual
	}
	return model.Prediction{Intent: label, Confidence: raw.Confidence}, nil
}
