package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/janisz/uk-parliament-mcp/internal/catalog"
)

func (s *ParliamentServer) registerTools() {
	for _, prompt := range catalog.Prompts() {
		s.server.AddTool(mcp.Tool{
			Name:        prompt.Name,
			Description: prompt.Description,
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: map[string]interface{}{},
			},
			Annotations: readOnlyAnnotations(),
		}, s.promptHandler(prompt))
	}

	for _, tool := range s.catalog.Tools() {
		s.server.AddTool(toolDefinition(tool), s.endpointHandler(tool))
	}

	s.logger.Debug("Registered tools",
		slog.Int("endpoints", s.catalog.Len()),
		slog.Int("prompts", len(catalog.Prompts())))
}

func readOnlyAnnotations() mcp.ToolAnnotation {
	return mcp.ToolAnnotation{
		ReadOnlyHint:    mcp.ToBoolPtr(true),
		DestructiveHint: mcp.ToBoolPtr(false),
		IdempotentHint:  mcp.ToBoolPtr(true),
		OpenWorldHint:   mcp.ToBoolPtr(false),
	}
}

// toolDefinition turns a catalog entry into the MCP tool schema.
func toolDefinition(tool catalog.Tool) mcp.Tool {
	properties := map[string]interface{}{}
	var required []string

	for _, p := range tool.Arguments() {
		property := map[string]interface{}{
			"description": p.Description,
		}
		switch p.Type {
		case catalog.Integer:
			property["type"] = "integer"
		case catalog.Boolean:
			property["type"] = "boolean"
		case catalog.IntegerList:
			property["type"] = "array"
			property["items"] = map[string]interface{}{"type": "integer"}
		case catalog.Date:
			property["type"] = "string"
			property["format"] = "date"
		default:
			property["type"] = "string"
		}
		if p.Default != "" {
			property["default"] = p.Default
		}
		properties[p.Name] = property

		if p.Required {
			required = append(required, p.Name)
		}
	}

	return mcp.Tool{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: properties,
			Required:   required,
		},
		Annotations: readOnlyAnnotations(),
	}
}

// endpointHandler builds the upstream URL from the call arguments and returns the fetch
// envelope as text. Upstream failures are part of the envelope, not tool errors.
func (s *ParliamentServer) endpointHandler(tool catalog.Tool) server.ToolHandlerFunc {
	baseURL := s.bases[tool.API]

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		args := request.GetArguments()
		s.logger.Debug("Tool invoked",
			slog.String("tool", tool.Name),
			slog.Any("arguments", args))

		url, err := tool.URL(baseURL, args)
		if err != nil {
			s.logger.Warn("Rejected tool arguments",
				slog.String("tool", tool.Name),
				slog.Any("error", err))
			s.metrics.observe(tool.Name, resultInvalid, time.Since(start))
			return mcp.NewToolResultError(err.Error()), nil
		}

		outcome := s.fetcher.Fetch(ctx, url)

		result := resultOK
		if !outcome.OK() {
			result = resultUpstreamError
		}
		s.metrics.observe(tool.Name, result, time.Since(start))
		s.logger.Info("Tool completed",
			slog.String("tool", tool.Name),
			slog.String("url", url),
			slog.String("result", result),
			slog.Int("attempts", outcome.Attempts),
			slog.Duration("duration", time.Since(start)))

		return mcp.NewToolResultText(outcome.JSON()), nil
	}
}

func (s *ParliamentServer) promptHandler(prompt catalog.Prompt) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		s.logger.Debug("Prompt requested", slog.String("tool", prompt.Name))
		s.metrics.observe(prompt.Name, resultOK, 0)
		return mcp.NewToolResultText(prompt.Text), nil
	}
}
