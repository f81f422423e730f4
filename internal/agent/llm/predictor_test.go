package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
)

func TestParsePrediction(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantIntent model.IntentLabel
		wantConf   float64
	}{
		{
			name:       "clean json",
			content:    `{"intent": "visa_query", "confidence": 0.92}`,
			wantIntent: model.IntentVisaQuery,
			wantConf:   0.92,
		},
		{
			name:       "json wrapped in prose",
			content:    "Sure! Here is the classification:\n{\"intent\": \"follow_up\", \"confidence\": 0.8}\nLet me know if you need more.",
			wantIntent: model.IntentFollowUp,
			wantConf:   0.8,
		},
		{
			name:       "json in code fence",
			content:    "```json\n{\"intent\": \"casual\", \"confidence\": 0.7}\n```",
			wantIntent: model.IntentCasual,
			wantConf:   0.7,
		},
		{
			name:       "label normalised",
			content:    `{"intent": " Visa_Query ", "confidence": 0.9}`,
			wantIntent: model.IntentVisaQuery,
			wantConf:   0.9,
		},
		{
			name:       "unknown label becomes casual",
			content:    `{"intent": "order_pizza", "confidence": 0.99}`,
			wantIntent: model.IntentCasual,
			wantConf:   0.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred, err := parsePrediction(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, pred.Intent)
			assert.InDelta(t, tt.wantConf, pred.Confidence, 1e-9)
		})
	}
}

func TestParsePredictionFailures(t *testing.T) {
	for _, content := range []string{
		"",
		"the user is probably asking about visas",
		"{not valid json at all",
	} {
		_, err := parsePrediction(content)
		assert.Error(t, err, content)
	}
}
