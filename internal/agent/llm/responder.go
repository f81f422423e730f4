package llm

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
)

const responderSystemPromptFormat = `You are %s, a friendly travel consultant at %s.

You chat naturally with customers about travel. Visa requirement facts are
looked up by the system, not by you; never invent visa rules, entry
requirements, or allowed-stay durations. If the customer asks for a specific
visa requirement you don't have in the conversation, ask for their
nationality and destination so the system can check.

Keep replies short, warm, and in plain language.`

// GeminiResponder implements model.Responder. It sees only the current
// message and the bounded rolling window the session hands it, never the raw
// slot state.
type GeminiResponder struct {
	cm     einomodel.BaseChatModel
	prompt string
}

var _ model.Responder = (*GeminiResponder)(nil)

func NewGeminiResponder(cm einomodel.BaseChatModel, cfg model.ResponsePromptConfig) *GeminiResponder {
	return &GeminiResponder{
		cm:     cm,
		prompt: fmt.Sprintf(responderSystemPromptFormat, cfg.AgentName, cfg.BusinessName),
	}
}

func (r *GeminiResponder) Respond(ctx context.Context, message string, history []model.ChatTurn) (string, error) {
	messages := make([]*schema.Message, 0, len(history)+2)
	messages = append(messages, schema.SystemMessage(r.prompt))
	for _, turn := range history {
		if turn.Role == model.RoleAssistant {
			messages = append(messages, schema.AssistantMessage(turn.Content, nil))
		} else {
			messages = append(messages, schema.UserMessage(turn.Content))
		}
	}
	messages = append(messages, schema.UserMessage(message))

	resp, err := r.cm.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("responder generate: %w", err)
	}
	return resp.Content, nil
}
