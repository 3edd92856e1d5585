package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/clubstack/contentful-mcp/resolver"
	"github.com/clubstack/contentful-mcp/search"
)

const protocolVersion = "2024-11-05"

// Request represents an incoming MCP JSON-RPC request.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      any             `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents an MCP JSON-RPC response.
type Response struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Result  any       `json:"result,omitempty"`
	Error   *RPCError `json:"error,omitempty"`
}

// RPCError is a JSON-RPC error object.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Info describes this MCP server for the initialize response.
type Info struct {
	Name    string
	Version string
}

// ToolHandler executes one tool call. It returns the JSON-serializable
// result value; the server wraps it into MCP text content.
type ToolHandler func(ctx context.Context, args map[string]any) (any, error)

type toolEntry struct {
	tool    mcp.Tool
	handler ToolHandler
}

// Server routes MCP requests to the query layer.
type Server struct {
	logger     *zap.Logger
	resolver   *resolver.Resolver
	aggregator *search.Aggregator
	info       Info

	tools map[string]toolEntry
	order []string
}

// New builds a Server over the given resolver and search aggregator.
func New(r *resolver.Resolver, agg *search.Aggregator, info Info, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		logger:     logger,
		resolver:   r,
		aggregator: agg,
		info:       info,
		tools:      make(map[string]toolEntry),
	}
	s.registerTools()
	return s
}

func (s *Server) register(tool mcp.Tool, handler ToolHandler) {
	s.tools[tool.Name] = toolEntry{tool: tool, handler: handler}
	s.order = append(s.order, tool.Name)
}

// HandleRequest processes an MCP request and returns a response.
func (s *Server) HandleRequest(ctx context.Context, req Request) Response {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req.ID)
	case "tools/list":
		return s.handleToolsList(req.ID)
	case "tools/call":
		return s.handleToolsCall(ctx, req.ID, req.Params)
	case "resources/list":
		return s.handleResourcesList(req.ID)
	case "resources/read":
		return s.handleResourcesRead(ctx, req.ID, req.Params)
	default:
		return Response{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &RPCError{
				Code:    ErrCodeMethodNotFound,
				Message: fmt.Sprintf("method %s not found", req.Method),
			},
		}
	}
}

func (s *Server) handleInitialize(id any) Response {
	result := map[string]any{
		"protocolVersion": protocolVersion,
		"capabilities": map[string]any{
			"tools":     map[string]any{},
			"resources": map[string]any{},
		},
		"serverInfo": map[string]any{
			"name":    s.info.Name,
			"version": s.info.Version,
		},
	}

	return Response{JSONRPC: "2.0", ID: id, Result: result}
}

func (s *Server) handleToolsList(id any) Response {
	tools := make([]map[string]any, 0, len(s.order))
	for _, name := range s.order {
		entry := s.tools[name]
		tools = append(tools, map[string]any{
			"name":        entry.tool.Name,
			"description": entry.tool.Description,
			"inputSchema": entry.tool.InputSchema,
		})
	}

	return Response{JSONRPC: "2.0", ID: id, Result: map[string]any{"tools": tools}}
}

type toolsCallParams struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

func (s *Server) handleToolsCall(ctx context.Context, id any, params json.RawMessage) Response {
	var callParams toolsCallParams
	if err := json.Unmarshal(params, &callParams); err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &RPCError{Code: ErrCodeInvalidParams, Message: err.Error()},
		}
	}

	entry, ok := s.tools[callParams.Name]
	if !ok {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error: &RPCError{
				Code:    ErrCodeToolNotFound,
				Message: fmt.Sprintf("%v: %s", ErrToolNotFound, callParams.Name),
			},
		}
	}

	result, err := entry.handler(ctx, callParams.Arguments)
	if err != nil {
		code := ErrCodeToolExecFailed
		if errors.Is(err, ErrMissingArgument) || errors.Is(err, ErrInvalidArgument) {
			code = ErrCodeInvalidParams
		}
		s.logger.Warn("tool call failed",
			zap.String("tool", callParams.Name),
			zap.Error(err))
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &RPCError{Code: code, Message: err.Error()},
		}
	}

	wrapped, err := textContent(result)
	if err != nil {
		return Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &RPCError{Code: ErrCodeInternal, Message: err.Error()},
		}
	}
	return Response{JSONRPC: "2.0", ID: id, Result: wrapped}
}

// textContent wraps a result value into an MCP text content envelope.
func textContent(v any) (map[string]any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool result: %w", err)
	}
	return map[string]any{
		"content": []map[string]any{
			{"type": "text", "text": string(data)},
		},
	}, nil
}
