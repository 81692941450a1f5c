// Package mcp exposes the svgtint engine as a Model Context Protocol server,
// so AI agents can call the pipeline as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/svgtint/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Extract(ctx context.Context, instruction string) domain.GradientSpec
	Apply(ctx context.Context, instruction, doc string) (string, domain.GradientSpec, error)
}

// ApplyResponse provides a unified structure across adapters.
type ApplyResponse struct {
	Document string              `json:"document" jsonschema_description:"The rewritten SVG document"`
	Spec     domain.GradientSpec `json:"spec" jsonschema_description:"The gradient spec that was applied"`
}

type extractArgs struct {
	Instruction string `mapstructure:"instruction"`
}

type applyArgs struct {
	Instruction string `mapstructure:"instruction"`
	Document    string `mapstructure:"document"`
}

// Server wraps the svgtint Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	version   string
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		version:   version,
		mcpServer: server.NewMCPServer("svgtint-mcp", version),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: extract_gradient
	extractTool := mcp.NewTool("extract_gradient",
		mcp.WithDescription("Parse a styling instruction into a gradient spec (kind, direction, colors, target shape). Never fails; unrecognized input degrades to defaults."),
		mcp.WithString("instruction", mcp.Required(), mcp.Description("Free-text styling instruction, e.g. 'vertical gradient from #ff0000 to #0000ff on the rect'")),
		mcp.WithOutputSchema[domain.GradientSpec](),
	)
	s.mcpServer.AddTool(extractTool, mcp.NewStructuredToolHandler(s.handleExtract))

	// TOOL: apply_gradient
	applyTool := mcp.NewTool("apply_gradient",
		mcp.WithDescription("Apply a gradient described by an instruction to an SVG document: embeds a <defs> gradient and binds the target shape's fill to it."),
		mcp.WithString("instruction", mcp.Required(), mcp.Description("Free-text styling instruction")),
		mcp.WithString("document", mcp.Required(), mcp.Description("The SVG document to rewrite")),
		mcp.WithOutputSchema[ApplyResponse](),
	)
	s.mcpServer.AddTool(applyTool, mcp.NewStructuredToolHandler(s.handleApply))
}

// Handler methods for structured tools

func (s *Server) handleExtract(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.GradientSpec, error) {
	var in extractArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return domain.GradientSpec{}, fmt.Errorf("invalid arguments: %w", err)
	}

	return s.engine.Extract(ctx, in.Instruction), nil
}

func (s *Server) handleApply(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ApplyResponse, error) {
	var in applyArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return ApplyResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	out, spec, err := s.engine.Apply(ctx, in.Instruction, in.Document)
	if err != nil {
		return ApplyResponse{}, fmt.Errorf("apply failed: %w", err)
	}

	return ApplyResponse{Document: out, Spec: spec}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: svgtint://defaults
	s.mcpServer.AddResource(mcp.NewResource("svgtint://defaults", "Default Gradient Spec",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(domain.DefaultSpec())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal defaults: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "svgtint://defaults",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
