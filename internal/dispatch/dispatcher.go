// Package dispatch routes a (toolName, args) tuple to the right tool
// handler, validating the minimum argument shape and guarding every
// call against an unexpected panic. Grounded on the teacher's
// ToolRouter.ExecuteTool / DocumentService.CallTool switch
// (internal/services/mcp/{router,document_service}.go), generalized to
// this corpus's twelve-tool catalogue and given explicit recover()
// wrapping the teacher's router does not have.
package dispatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/fluentdocs/mcp-server/internal/tools"
)

// Handler is one tool's entry point: it receives the shared server
// context and the raw argument map (already decoded from JSON) and
// returns the Markdown response.
type Handler func(ctx *tools.ServerContext, args map[string]any) string

// Dispatcher maintains the static toolName -> Handler map and the
// server context every handler operates against.
type Dispatcher struct {
	ctx      *tools.ServerContext
	handlers map[string]Handler
	logger   arbor.ILogger
}

// New builds a Dispatcher wired to ctx with the fixed 12-tool catalogue.
func New(ctx *tools.ServerContext, logger arbor.ILogger) *Dispatcher {
	d := &Dispatcher{ctx: ctx, logger: logger, handlers: map[string]Handler{}}
	d.register()
	return d
}

func (d *Dispatcher) register() {
	d.handlers["query_component"] = func(ctx *tools.ServerContext, args map[string]any) string {
		name, err := requireString(args, "componentName")
		if err != nil {
			return errInput(err)
		}
		return ctx.QueryComponent(name)
	}
	d.handlers["search_docs"] = func(ctx *tools.ServerContext, args map[string]any) string {
		query, err := requireString(args, "query")
		if err != nil {
			return errInput(err)
		}
		return ctx.SearchDocs(query, optString(args, "module", ""), optInt(args, "limit", 0))
	}
	d.handlers["list_by_category"] = func(ctx *tools.ServerContext, args map[string]any) string {
		return ctx.ListByCategory(optString(args, "category", ""))
	}
	d.handlers["list_all_docs"] = func(ctx *tools.ServerContext, _ map[string]any) string {
		return ctx.ListAllDocs()
	}
	d.handlers["get_component_examples"] = func(ctx *tools.ServerContext, args map[string]any) string {
		name, err := requireString(args, "componentName")
		if err != nil {
			return errInput(err)
		}
		return ctx.GetComponentExamples(name)
	}
	d.handlers["get_props_reference"] = func(ctx *tools.ServerContext, args map[string]any) string {
		name, err := requireString(args, "componentName")
		if err != nil {
			return errInput(err)
		}
		return ctx.GetPropsReference(name)
	}
	d.handlers["get_foundation"] = func(ctx *tools.ServerContext, args map[string]any) string {
		return ctx.GetFoundation(optString(args, "topic", ""))
	}
	d.handlers["get_pattern"] = func(ctx *tools.ServerContext, args map[string]any) string {
		return ctx.GetPattern(optString(args, "patternCategory", ""), optString(args, "patternName", ""))
	}
	d.handlers["get_enterprise"] = func(ctx *tools.ServerContext, args map[string]any) string {
		topic, err := requireString(args, "topic")
		if err != nil {
			return errInput(err)
		}
		return ctx.GetEnterprise(topic)
	}
	d.handlers["suggest_components"] = func(ctx *tools.ServerContext, args map[string]any) string {
		desc, err := requireString(args, "uiDescription")
		if err != nil {
			return errInput(err)
		}
		return ctx.SuggestComponents(desc)
	}
	d.handlers["get_implementation_guide"] = func(ctx *tools.ServerContext, args map[string]any) string {
		goal, err := requireString(args, "goal")
		if err != nil {
			return errInput(err)
		}
		return ctx.GetImplementationGuide(goal)
	}
	d.handlers["reindex"] = func(ctx *tools.ServerContext, _ map[string]any) string {
		return ctx.Reindex()
	}
}

// ToolNames returns the registered tool names, sorted, for the
// unknown-tool error message.
func (d *Dispatcher) ToolNames() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch routes toolName to its handler. An unknown tool name returns
// a formatted error listing the known tools. A panic inside the handler
// is recovered and turned into a single-line internal-failure error
// instead of crashing the process.
func (d *Dispatcher) Dispatch(toolName string, args map[string]any) (result string) {
	handler, ok := d.handlers[toolName]
	if !ok {
		return fmt.Sprintf("**Error:** unknown tool %q. Known tools: %s", toolName, strings.Join(d.ToolNames(), ", "))
	}

	defer func() {
		if r := recover(); r != nil {
			if d.logger != nil {
				d.logger.Error().Str("tool", toolName).Str("panic", fmt.Sprintf("%v", r)).Msg("tool handler panicked")
			}
			result = fmt.Sprintf("**Error:** internal failure: %v", r)
		}
	}()

	return handler(d.ctx, args)
}

func errInput(err error) string {
	return "**Error:** " + err.Error()
}

func requireString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok {
		return "", fmt.Errorf("%s is required", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return s, nil
}

func optString(args map[string]any, key, def string) string {
	v, ok := args[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func optInt(args map[string]any, key string, def int) int {
	v, ok := args[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}
