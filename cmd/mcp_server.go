package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/alvea-app/ax-agent/internal/actions"
	"github.com/alvea-app/ax-agent/internal/ax"
	"github.com/alvea-app/ax-agent/internal/config"
	"github.com/alvea-app/ax-agent/internal/observability"
	"github.com/alvea-app/ax-agent/internal/platform"
	"github.com/alvea-app/ax-agent/internal/poller"
	"github.com/alvea-app/ax-agent/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the platform provider, the shared
// polling loop, and the action dispatcher.
type mcpServer struct {
	provider   *platform.Provider
	store      *poller.SelectionStore
	poller     *poller.Poller
	dispatcher *actions.Dispatcher
	mcp        *mcpserver.MCPServer
}

// newMCPServer creates and configures an MCP server with all agent tools.
// The poller is created idle; clients start it via its tool.
func newMCPServer(interval time.Duration) (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	log := observability.Logger()
	store := poller.NewSelectionStore()

	s := &mcpServer{
		provider:   provider,
		store:      store,
		poller:     poller.New(provider.Hierarchy, store, interval, selfName(), log),
		dispatcher: actions.NewDispatcher(provider.Actions, log),
	}

	s.mcp = mcpserver.NewMCPServer("ax-agent", version.Version)
	s.registerTools()
	return s, nil
}

// selfName resolves the hosting application name, falling back to the
// default when serve runs without a loaded config (tests).
func selfName() string {
	if cfg != nil {
		return cfg.Agent.SelfName
	}
	return config.NewDefaultConfig().Agent.SelfName
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(serveCfg config.ServeConfig) error {
	switch serveCfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", serveCfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", serveCfg.Transport)
	}
}

// shutdown stops the polling loop if a client left it running.
func (s *mcpServer) shutdown() {
	s.poller.Stop()
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("fetch_ui_elements",
			mcp.WithDescription("List interactive elements of the focused window as flat summaries (role, label, value, x, y). Empty list on unsupported platforms."),
		),
		s.handleFetchUIElements,
	)

	s.mcp.AddTool(
		mcp.NewTool("get_accessibility_snapshot",
			mcp.WithDescription("Fetch one raw serialized accessibility snapshot: a JSON tree payload or a structured {\"error\": ...} string."),
			mcp.WithString("app", mcp.Description("Filter by application name")),
			mcp.WithString("window", mcp.Description("Filter by window title")),
		),
		s.handleSnapshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("start_accessibility_polling",
			mcp.WithDescription("Start the background accessibility polling loop. Fire-and-forget; starting an already-running loop is a no-op."),
		),
		s.handleStartPolling,
	)

	s.mcp.AddTool(
		mcp.NewTool("stop_accessibility_polling",
			mcp.WithDescription("Request the polling loop to exit at its next iteration boundary. Fire-and-forget."),
		),
		s.handleStopPolling,
	)

	s.mcp.AddTool(
		mcp.NewTool("perform_typing_action",
			mcp.WithDescription("Synthesize text entry on an element identified by a snapshot id. Returns the native textual result."),
			mcp.WithString("element_id", mcp.Description("Element identifier from snapshot output"), mcp.Required()),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.handleTypingAction,
	)

	s.mcp.AddTool(
		mcp.NewTool("perform_named_action",
			mcp.WithDescription("Invoke a named accessibility action (e.g. AXPress) on an element identified by a snapshot id."),
			mcp.WithString("element_id", mcp.Description("Element identifier from snapshot output"), mcp.Required()),
			mcp.WithString("action_name", mcp.Description("Action name to invoke"), mcp.Required()),
		),
		s.handleNamedAction,
	)
}

func (s *mcpServer) handleFetchUIElements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := s.provider.Hierarchy.Snapshot(ctx, platform.SnapshotOptions{})
	tree, err := ax.Decode(raw)
	if err != nil {
		// Provider failures degrade to an empty element list, matching the
		// CLI surface.
		return mcp.NewToolResultText("elements: []\n"), nil
	}
	b, err := yaml.Marshal(ElementsResult{Elements: ax.Summarize(tree.Roots)})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleSnapshot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	raw := s.provider.Hierarchy.Snapshot(ctx, platform.SnapshotOptions{
		App:    stringParam(params, "app", ""),
		Window: stringParam(params, "window", ""),
	})
	return mcp.NewToolResultText(raw), nil
}

func (s *mcpServer) handleStartPolling(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.poller.Start()
	return mcp.NewToolResultText("polling started"), nil
}

func (s *mcpServer) handleStopPolling(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.poller.Stop()
	return mcp.NewToolResultText("polling stop requested"), nil
}

func (s *mcpServer) handleTypingAction(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	elementID := stringParam(params, "element_id", "")
	text := stringParam(params, "text", "")

	result, err := s.dispatcher.TypeText(elementID, text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result), nil
}

func (s *mcpServer) handleNamedAction(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	elementID := stringParam(params, "element_id", "")
	actionName := stringParam(params, "action_name", "")

	if err := s.dispatcher.InvokeNamed(elementID, actionName); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("action performed"), nil
}

// stringParam extracts a string argument with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}
