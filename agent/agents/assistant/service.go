package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	einomodel "github.com/cloudwego/eino/components/model"
	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/flow/agent/react"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
	llmx "github.com/tanpawarit/namaste-bites-agent/agent/llm"
	nodex "github.com/tanpawarit/namaste-bites-agent/agent/nodes"
	promptx "github.com/tanpawarit/namaste-bites-agent/agent/prompt"
	toolx "github.com/tanpawarit/namaste-bites-agent/agent/tool"
	observex "github.com/tanpawarit/namaste-bites-agent/pkg/observe"
)

const DefaultMaxStep = 25

var _ contractx.Assistant = (*Assistant)(nil)

type Options struct {
	MaxStep int
	Metrics *observex.Metrics
}

// Assistant answers one customer message at a time with the cafe persona,
// letting the model call the bound tools as often as it needs.
type Assistant struct {
	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
	metrics     *observex.Metrics
	now         func() time.Time
}

// New builds the assistant against the configured model provider. It fails
// with ErrModelUnavailable when no usable model client can be created.
func New(ctx context.Context, cfg llmx.Config, tools []einotool.BaseTool, opts Options) (*Assistant, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompts := promptx.LoadPromptSet()

	modelCfg := cfg.OpenRouter()
	chatModel, err := modelCfg.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: create chat model: %v", contractx.ErrModelUnavailable, err)
	}

	return newAssistant(ctx, chatModel, tools, prompts.Cafe, opts)
}

func newAssistant(
	ctx context.Context,
	chatModel einomodel.ToolCallingChatModel,
	tools []einotool.BaseTool,
	systemPrompt string,
	opts Options,
) (*Assistant, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is nil", contractx.ErrModelUnavailable)
	}

	maxStep := opts.MaxStep
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}

	toolsConfig := compose.ToolsNodeConfig{
		Tools:               tools,
		UnknownToolsHandler: toolx.UnknownToolHandler(opts.Metrics),
	}
	agent, err := react.NewAgent(ctx, &react.AgentConfig{
		ToolCallingModel: chatModel,
		ToolsConfig:      toolsConfig,
		MaxStep:          maxStep,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create react agent: %v", contractx.ErrModelUnavailable, err)
	}

	a := &Assistant{
		metrics: opts.Metrics,
		now:     time.Now,
	}

	generate := func(ctx context.Context, input []*schema.Message) (*schema.Message, error) {
		return agent.Generate(ctx, input)
	}
	graphRunner, err := a.compileReplyGraph(ctx, systemPrompt, generate)
	if err != nil {
		return nil, err
	}
	a.graphRunner = graphRunner

	return a, nil
}

// Reply runs one independent turn. Every failure comes back as an
// *AgentInvocationError.
func (a *Assistant) Reply(ctx context.Context, message string) (string, error) {
	start := a.now()
	out, err := a.graphRunner.Invoke(ctx, nodex.GraphInput{Message: message})
	a.metrics.RecordAgentDuration(ctx, a.now().Sub(start))
	if err != nil {
		var invErr *contractx.AgentInvocationError
		if errors.As(err, &invErr) {
			return "", invErr
		}
		return "", &contractx.AgentInvocationError{Cause: nodex.RootCause(err)}
	}
	return out.Reply, nil
}
