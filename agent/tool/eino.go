package tool

import (
	"context"
	"fmt"
	"strings"

	einotool "github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
	observex "github.com/tanpawarit/namaste-bites-agent/pkg/observe"
)

// toolErrorTemplate is what the model sees when a tool call fails, so it can
// apologise or try again instead of aborting the whole turn.
const toolErrorTemplate = "Error: %s\n Please fix your mistakes."

var _ einotool.InvokableTool = (*boundTool)(nil)

type boundTool struct {
	def     Definition
	info    *schema.ToolInfo
	kit     *Toolkit
	metrics *observex.Metrics
}

// BuildForAgent binds every tool definition to the toolkit for an eino agent.
func BuildForAgent(kit *Toolkit, metrics *observex.Metrics) []einotool.BaseTool {
	defs := Definitions()
	tools := make([]einotool.BaseTool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, &boundTool{
			def:     def,
			info:    ToolInfo(def),
			kit:     kit,
			metrics: metrics,
		})
	}
	return tools
}

// UnknownToolHandler answers calls to tool names the model made up, listing
// the real ones so the loop can recover.
func UnknownToolHandler(metrics *observex.Metrics) func(ctx context.Context, name, input string) (string, error) {
	defs := Definitions()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	valid := strings.Join(names, ", ")

	return func(ctx context.Context, name, input string) (string, error) {
		err := fmt.Errorf("%w: %s is not a valid tool, try one of [%s]", contractx.ErrUnknownTool, name, valid)
		metrics.RecordToolCall(ctx, name, err)
		log.Debug().Str("tool", name).Str("args", input).Msg("unknown tool requested")
		return fmt.Sprintf(toolErrorTemplate, err.Error()), nil
	}
}

func ToolInfo(def Definition) *schema.ToolInfo {
	params := make(map[string]*schema.ParameterInfo, len(def.Params))
	for _, p := range def.Params {
		info := &schema.ParameterInfo{
			Type:     dataType(p.Type),
			Desc:     p.Desc,
			Required: p.Required,
		}
		if p.Type == ParamArray {
			info.ElemInfo = &schema.ParameterInfo{Type: dataType(p.ElemType)}
		}
		params[p.Name] = info
	}
	return &schema.ToolInfo{
		Name:        def.Name,
		Desc:        def.Desc,
		ParamsOneOf: schema.NewParamsOneOfByParams(params),
	}
}

func dataType(t ParamType) schema.DataType {
	switch t {
	case ParamInteger:
		return schema.Integer
	case ParamArray:
		return schema.Array
	default:
		return schema.String
	}
}

func (b *boundTool) Info(ctx context.Context) (*schema.ToolInfo, error) {
	return b.info, nil
}

func (b *boundTool) InvokableRun(ctx context.Context, argumentsInJSON string, _ ...einotool.Option) (string, error) {
	out, err := b.kit.Execute(ctx, b.def.Name, argumentsInJSON)
	b.metrics.RecordToolCall(ctx, b.def.Name, err)
	if err != nil {
		return fmt.Sprintf(toolErrorTemplate, err.Error()), nil
	}
	return out, nil
}
