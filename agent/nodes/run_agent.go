package assistantnode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
)

// Generator runs the reasoning loop, tool calls included, and returns the
// model's final message.
type Generator func(ctx context.Context, input []*schema.Message) (*schema.Message, error)

func RunAgent(ctx context.Context, in *GraphState, generate Generator) (*GraphState, error) {
	if in == nil || len(in.Messages) == 0 {
		return nil, fmt.Errorf("%w: graph state is incomplete", contractx.ErrValidation)
	}

	msg, err := generate(ctx, in.Messages)
	if err != nil {
		return nil, &contractx.AgentInvocationError{Cause: RootCause(err)}
	}
	if msg == nil {
		return nil, &contractx.AgentInvocationError{Cause: fmt.Errorf("model returned no message")}
	}

	in.Result = msg
	return in, nil
}

// eino prefixes node and graph run errors with their kind and appends the
// node path on extra lines.
var graphErrorPrefixes = []string{"[NodeRunError]\n", "[GraphRunError]\n"}

// RootCause peels graph run wrappers off err and returns the error that
// started the failure. Other wrapping is left alone.
func RootCause(err error) error {
	for err != nil && isGraphError(err) {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
	return err
}

func isGraphError(err error) bool {
	msg := err.Error()
	for _, prefix := range graphErrorPrefixes {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
