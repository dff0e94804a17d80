// Package mcp exposes the render engine and the API catalog as MCP tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery"
	"github.com/aretw0/jsquery/internal/presentation/apidoc"
	"github.com/aretw0/jsquery/pkg/jqapi"
	"github.com/aretw0/jsquery/pkg/jquery"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// CatalogURI is the resource serving the Markdown API reference.
const CatalogURI = "jsquery://catalog"

// Engine defines what the MCP server needs from the render engine.
type Engine interface {
	Render(ctx context.Context, spec jquery.ChainSpec) (jsquery.Result, error)
	Catalog() *jqapi.Catalog
}

// RenderArgs are the arguments of the render_chain tool.
type RenderArgs struct {
	Spec string `json:"spec"`
}

// RenderResponse is the result of the render_chain tool.
type RenderResponse struct {
	Code   string `json:"code" jsonschema_description:"The generated JavaScript"`
	Key    string `json:"key" jsonschema_description:"Cache key of the chain spec"`
	Cached bool   `json:"cached" jsonschema_description:"Whether the code came from the render cache"`
}

// ListArgs are the arguments of the list_methods tool.
type ListArgs struct {
	Category   string `json:"category,omitempty"`
	Version    string `json:"version,omitempty"`
	Deprecated string `json:"deprecated,omitempty"`
}

// MethodList is the result of the list_methods tool.
type MethodList struct {
	Methods []jqapi.Summary `json:"methods" jsonschema_description:"Matching catalog entries"`
}

// DescribeArgs are the arguments of the describe_method tool.
type DescribeArgs struct {
	Name string `json:"name"`
}

// Server wraps the Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("jsquery-mcp", strings.TrimSpace(jsquery.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves MCP over SSE on port until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "addr", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("shutting down MCP server")
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

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	renderTool := mcp.NewTool("render_chain",
		mcp.WithDescription("Render a declarative jQuery chain spec (YAML or JSON) to JavaScript. "+
			"Every call is checked against the jQuery API catalog."),
		mcp.WithString("spec", mcp.Required(), mcp.Description(
			`Chain spec, e.g. {"root":{"kind":"id","value":"main"},"calls":[{"method":"addClass","args":[{"class":"on"}]}]}`)),
		mcp.WithOutputSchema[RenderResponse](),
	)
	s.mcpServer.AddTool(renderTool, mcp.NewStructuredToolHandler(s.handleRender))

	listTool := mcp.NewTool("list_methods",
		mcp.WithDescription("List the documented jQuery methods and properties."),
		mcp.WithString("category", mcp.Description("core, property, callbacks, deferred, event or static")),
		mcp.WithString("version", mcp.Description("Only entries usable with this jQuery version, e.g. 1.8")),
		mcp.WithString("deprecated", mcp.Description("true for deprecated entries only, false for current ones only")),
		mcp.WithOutputSchema[MethodList](),
	)
	s.mcpServer.AddTool(listTool, mcp.NewStructuredToolHandler(s.handleList))

	describeTool := mcp.NewTool("describe_method",
		mcp.WithDescription("Describe one jQuery method: signatures, versions and deprecation."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Documented name, e.g. addClass or jQuery.ajax")),
		mcp.WithOutputSchema[jqapi.Summary](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribe))
}

func (s *Server) handleRender(ctx context.Context, request mcp.CallToolRequest, args RenderArgs) (RenderResponse, error) {
	spec, err := jquery.ParseChainSpec([]byte(args.Spec))
	if err != nil {
		return RenderResponse{}, err
	}
	res, err := s.engine.Render(ctx, spec)
	if err != nil {
		s.logger.Debug("MCP render rejected", "err", err)
		return RenderResponse{}, fmt.Errorf("render failed: %w", err)
	}
	return RenderResponse{Code: res.Code, Key: res.Key, Cached: res.Cached}, nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest, args ListArgs) (MethodList, error) {
	cat := s.engine.Catalog()
	if args.Version != "" {
		v, err := semver.NewVersion(args.Version)
		if err != nil {
			return MethodList{}, fmt.Errorf("invalid version %q: %w", args.Version, err)
		}
		cat = cat.ForVersion(v)
	}
	var deprecated *bool
	if args.Deprecated != "" {
		b, err := strconv.ParseBool(args.Deprecated)
		if err != nil {
			return MethodList{}, fmt.Errorf("invalid deprecated flag %q", args.Deprecated)
		}
		deprecated = &b
	}

	out := MethodList{Methods: []jqapi.Summary{}}
	for _, e := range cat.Entries() {
		switch {
		case e.Type == jqapi.TypeSelector:
		case args.Category != "" && string(e.Category()) != args.Category:
		case deprecated != nil && e.IsDeprecated() != *deprecated:
		default:
			out.Methods = append(out.Methods, e.Summary())
		}
	}
	return out, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args DescribeArgs) (jqapi.Summary, error) {
	e, ok := s.engine.Catalog().Lookup(args.Name)
	if !ok {
		return jqapi.Summary{}, fmt.Errorf("%w: %s", jqapi.ErrUnknownMethod, args.Name)
	}
	return e.Summary(), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(CatalogURI, "jQuery API reference",
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      CatalogURI,
				MIMEType: "text/markdown",
				Text:     apidoc.GenerateMarkdown(s.engine.Catalog()),
			},
		}, nil
	})
}
