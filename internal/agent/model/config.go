package model

// ================ Config ================

type ConversationConfig struct {
	TTL string `envconfig:"CONVERSATION_TTL" default:"15m"`
	// ContextMaxTurns bounds the rolling history window handed to the
	// free-form responder.
	ContextMaxTurns int `envconfig:"CONVERSATION_CONTEXT_MAX_TURNS" default:"5"`
	// FollowupWindowTurns is how many turns after an answered query an
	// under-specified message still counts as continuing that query.
	FollowupWindowTurns int `envconfig:"CONVERSATION_FOLLOWUP_WINDOW_TURNS" default:"2"`
	// HistoryLimit caps in-memory turn records per session. Older entries are
	// discarded, never rewritten.
	HistoryLimit int `envconfig:"CONVERSATION_HISTORY_LIMIT" default:"20"`
}

type ClassifierConfig struct {
	// MinConfidence is the floor below which a statistical prediction is
	// discarded in favour of the safe casual hand-off.
	MinConfidence float64 `envconfig:"CLASSIFIER_MIN_CONFIDENCE" default:"0.5"`
}

type PredictorModelConfig struct {
	Model       string  `envconfig:"PREDICTOR_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"PREDICTOR_MAX_TOKENS" default:"256"`
	Temperature float32 `envconfig:"PREDICTOR_TEMPERATURE" default:"0.1"`
}

type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.7"`
}

type ResponsePromptConfig struct {
	AgentName    string `envconfig:"PROMPT_AGENT_NAME" default:"James"`
	BusinessName string `envconfig:"PROMPT_BUSINESS_NAME" default:"Rehman Travels"`
}

type DatasetConfig struct {
	// Path to the passport-index CSV (origin, destination, requirement rows).
	Path string `envconfig:"VISA_DATASET_PATH" default:"data/passport-index-tidy-iso3.csv"`
}
