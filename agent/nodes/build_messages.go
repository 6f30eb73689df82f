package assistantnode

import (
	"github.com/cloudwego/eino/schema"
)

type GraphInput struct {
	Message string
}

type GraphOutput struct {
	Reply string
}

type GraphState struct {
	Messages []*schema.Message
	Result   *schema.Message
}

// BuildMessages turns one customer utterance into the model input. Every
// request starts from the system prompt alone; there is no history. The
// message is passed through as typed, blank or not.
func BuildMessages(in GraphInput, systemPrompt string) *GraphState {
	return &GraphState{
		Messages: []*schema.Message{
			schema.SystemMessage(systemPrompt),
			schema.UserMessage(in.Message),
		},
	}
}
