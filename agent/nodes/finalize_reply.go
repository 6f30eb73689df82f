package assistantnode

import (
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil || in.Result == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state has no result", contractx.ErrValidation)
	}
	return GraphOutput{Reply: ReplyText(in.Result)}, nil
}

// ReplyText flattens a model message. Multi-part answers keep only their text
// parts, joined by single spaces.
func ReplyText(msg *schema.Message) string {
	if msg == nil {
		return ""
	}
	if len(msg.MultiContent) == 0 {
		return msg.Content
	}

	parts := make([]string, 0, len(msg.MultiContent))
	for _, part := range msg.MultiContent {
		if part.Type == schema.ChatMessagePartTypeText {
			parts = append(parts, part.Text)
		}
	}
	return strings.Join(parts, " ")
}
