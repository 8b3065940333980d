// Package mcp exposes the pipeline as an MCP server, so agent hosts can
// call it as a tool over stdio or SSE.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"
	ageis "github.com/shlokkku/Ageis-AI"
	"github.com/shlokkku/Ageis-AI/pkg/domain"
)

// Pipeline is the engine surface the MCP adapter needs.
type Pipeline interface {
	Ask(ctx context.Context, q domain.Query) (*domain.Answer, error)
}

// AskArgs are the tool arguments, decoded from the raw argument map.
type AskArgs struct {
	Question string `mapstructure:"question"`
	Identity string `mapstructure:"identity"`
}

// AnswerResponse is the structured tool output.
type AnswerResponse struct {
	Text           string                        `json:"text" jsonschema_description:"The answer text"`
	Figures        map[string]map[string]float64 `json:"figures,omitempty" jsonschema_description:"Per-stage numeric figures"`
	Visualizations []domain.Visualization        `json:"visualizations,omitempty" jsonschema_description:"Declarative chart descriptors"`
	Provenance     string                        `json:"provenance" jsonschema_description:"RECORD_DATA, DOCUMENT_SEARCH or GENERAL_KNOWLEDGE"`
}

// Server wraps the pipeline and exposes it as an MCP Server.
type Server struct {
	pipeline  Pipeline
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(pipeline Pipeline, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		pipeline:  pipeline,
		logger:    logger,
		mcpServer: server.NewMCPServer("ageis-mcp", strings.TrimSpace(ageis.Version)),
	}
	s.registerTools()
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
		s.logger.Info("MCP server listening (SSE)", "address", addr)
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
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	askTool := mcp.NewTool("ask",
		mcp.WithDescription("Answer a natural-language question about an identity's pension records: risk, fraud, projections, or uploaded documents."),
		mcp.WithString("question", mcp.Required(), mcp.Description("The user's question")),
		mcp.WithString("identity", mcp.Required(), mcp.Description("The identity whose records may be consulted")),
		mcp.WithOutputSchema[AnswerResponse](),
	)
	s.mcpServer.AddTool(askTool, mcp.NewStructuredToolHandler(s.handleAsk))
}

func (s *Server) handleAsk(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AnswerResponse, error) {
	var in AskArgs
	if err := mapstructure.Decode(args, &in); err != nil {
		return AnswerResponse{}, fmt.Errorf("invalid arguments: %w", err)
	}

	ans, err := s.pipeline.Ask(ctx, domain.Query{Text: in.Question, Identity: in.Identity})
	if err != nil {
		s.logger.Error("MCP ask failed", "err", err)
		return AnswerResponse{}, fmt.Errorf("ask failed: %w", err)
	}

	return AnswerResponse{
		Text:           ans.Text,
		Figures:        ans.Figures,
		Visualizations: ans.Visualizations,
		Provenance:     string(ans.Provenance),
	}, nil
}
