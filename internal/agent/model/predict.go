package model

import "context"

// Prediction is a statistical intent guess with its confidence in [0, 1].
type Prediction struct {
	Intent     IntentLabel
	Confidence float64
}

// IntentPredictor is the pluggable statistical fallback behind the rule-based
// classifier. Implementations may call out to a model; the classifier treats
// any error or low confidence as "no usable prediction".
type IntentPredictor interface {
	Predict(ctx context.Context, text string) (Prediction, error)
}

// Responder generates free-form replies for casual turns and for
// under-specified follow-ups inside the follow-up window. It receives only
// the current message and the bounded rolling history window.
type Responder interface {
	Respond(ctx context.Context, message string, history []ChatTurn) (string, error)
}
