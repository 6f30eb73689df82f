package assistantnode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

func TestBuildMessages(t *testing.T) {
	t.Parallel()

	st := BuildMessages(GraphInput{Message: "Do you have samosas?"}, "be nice")
	if len(st.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(st.Messages))
	}
	if st.Messages[0].Role != schema.System || st.Messages[0].Content != "be nice" {
		t.Fatalf("unexpected system message: %#v", st.Messages[0])
	}
	if st.Messages[1].Role != schema.User || st.Messages[1].Content != "Do you have samosas?" {
		t.Fatalf("unexpected user message: %#v", st.Messages[1])
	}
}

func TestBuildMessagesKeepsBlankMessage(t *testing.T) {
	t.Parallel()

	st := BuildMessages(GraphInput{Message: "   "}, "p")
	if len(st.Messages) != 2 || st.Messages[1].Content != "   " {
		t.Fatalf("blank message not forwarded: %#v", st.Messages)
	}
}

func TestRunAgentWrapsFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("quota exceeded")
	st := &GraphState{Messages: []*schema.Message{schema.UserMessage("hi")}}
	_, err := RunAgent(context.Background(), st, func(context.Context, []*schema.Message) (*schema.Message, error) {
		return nil, boom
	})

	var invErr *contractx.AgentInvocationError
	if !errors.As(err, &invErr) {
		t.Fatalf("RunAgent() error = %T, want *AgentInvocationError", err)
	}
	if !errors.Is(err, boom) || !errors.Is(err, contractx.ErrAgentInvocation) {
		t.Fatalf("RunAgent() error chain = %v", err)
	}
	if err.Error() != "quota exceeded" {
		t.Fatalf("RunAgent() message = %q", err.Error())
	}
}

func TestRunAgentStripsGraphWrapping(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("upstream 503")

	graph := compose.NewGraph[string, string]()
	if err := graph.AddLambdaNode("chat", compose.InvokableLambda(func(ctx context.Context, in string) (string, error) {
		return "", boom
	})); err != nil {
		t.Fatalf("AddLambdaNode() error = %v", err)
	}
	if err := graph.AddEdge(compose.START, "chat"); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	if err := graph.AddEdge("chat", compose.END); err != nil {
		t.Fatalf("AddEdge() error = %v", err)
	}
	runner, err := graph.Compile(ctx)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	_, graphErr := runner.Invoke(ctx, "hi")
	if graphErr == nil || !strings.Contains(graphErr.Error(), "node path") {
		t.Fatalf("expected a graph run error, got %v", graphErr)
	}

	st := &GraphState{Messages: []*schema.Message{schema.UserMessage("hi")}}
	_, err = RunAgent(ctx, st, func(context.Context, []*schema.Message) (*schema.Message, error) {
		return nil, graphErr
	})
	if err == nil || err.Error() != "upstream 503" {
		t.Fatalf("RunAgent() error = %q, want the bare cause", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("RunAgent() lost the cause: %v", err)
	}
}

func TestRootCauseKeepsOrdinaryWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("%w: disk full", contractx.ErrStorageWriteFailed)
	if got := RootCause(err); got != err {
		t.Fatalf("RootCause() = %v, want the error unchanged", got)
	}
	if RootCause(nil) != nil {
		t.Fatal("RootCause(nil) must be nil")
	}
}

func TestReplyText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		msg  *schema.Message
		want string
	}{
		{name: "nil", msg: nil, want: ""},
		{name: "plain", msg: &schema.Message{Content: "Namaste!"}, want: "Namaste!"},
		{
			name: "multi",
			msg: &schema.Message{MultiContent: []schema.ChatMessagePart{
				{Type: schema.ChatMessagePartTypeText, Text: "Namaste!"},
				{Type: schema.ChatMessagePartTypeImageURL, ImageURL: &schema.ChatMessageImageURL{URL: "https://example.com/x.png"}},
				{Type: schema.ChatMessagePartTypeText, Text: "How can I help?"},
			}},
			want: "Namaste! How can I help?",
		},
	}
	for _, tc := range cases {
		if got := ReplyText(tc.msg); got != tc.want {
			t.Fatalf("%s: ReplyText() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestFinalizeReplyRequiresResult(t *testing.T) {
	t.Parallel()

	if _, err := FinalizeReply(&GraphState{}); !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("FinalizeReply() error = %v, want ErrValidation", err)
	}
}
