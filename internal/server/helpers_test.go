package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/janisz/uk-parliament-mcp/internal/catalog"
	"github.com/janisz/uk-parliament-mcp/internal/fetch"
)

// Helper function to extract text content from MCP result
func extractTextContent(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	var content strings.Builder
	for _, c := range result.Content {
		if textContent, ok := mcp.AsTextContent(c); ok {
			content.WriteString(textContent.Text)
		}
	}
	return content.String()
}

// Create a mock CallToolRequest for testing
func createMockRequest(name string, params map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: params,
		},
	}
}

// recordingUpstream answers every request with the configured status and body and
// remembers the request URIs it saw.
type recordingUpstream struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
	status   int
	body     string
}

func newRecordingUpstream(t *testing.T, status int, body string) *recordingUpstream {
	t.Helper()
	u := &recordingUpstream{status: status, body: body}
	u.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.mu.Lock()
		u.requests = append(u.requests, r.URL.RequestURI())
		u.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(u.status)
		fmt.Fprint(w, u.body)
	}))
	t.Cleanup(u.Close)
	return u
}

func (u *recordingUpstream) Requests() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.requests...)
}

// newTestServer points every API at upstream under a /<api> prefix.
func newTestServer(t *testing.T, upstreamURL string) *ParliamentServer {
	t.Helper()
	bases := make(map[catalog.API]string, len(catalog.BaseURLs))
	for api := range catalog.BaseURLs {
		bases[api] = upstreamURL + "/" + string(api)
	}
	return NewParliamentServerWithConfig(Config{
		LogOutput: io.Discard,
		Fetch: fetch.Config{
			Timeout:     time.Second,
			MaxAttempts: 3,
			RetryDelay:  5 * time.Millisecond,
		},
		BaseURLs: bases,
	})
}

func (s *ParliamentServer) callTool(t *testing.T, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	tool, ok := s.catalog.Lookup(name)
	if !ok {
		t.Fatalf("tool %s is not in the catalog", name)
	}
	result, err := s.endpointHandler(tool)(context.Background(), createMockRequest(name, args))
	if err != nil {
		t.Fatalf("handler for %s returned error: %v", name, err)
	}
	return result
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// rpc sends a JSON-RPC request through the MCP server and decodes the reply.
func (s *ParliamentServer) rpc(t *testing.T, method string, params interface{}) rpcResponse {
	t.Helper()
	request, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	if err != nil {
		t.Fatalf("failed to encode request: %v", err)
	}

	reply := s.server.HandleMessage(context.Background(), request)
	raw, err := json.Marshal(reply)
	if err != nil {
		t.Fatalf("failed to encode reply: %v", err)
	}

	var response rpcResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		t.Fatalf("failed to decode reply %s: %v", raw, err)
	}
	return response
}

// text concatenates the text content of a tools/call result.
func (r rpcResponse) text(t *testing.T) string {
	t.Helper()
	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(r.Result, &result); err != nil {
		t.Fatalf("failed to decode tool result %s: %v", r.Result, err)
	}

	var text strings.Builder
	for _, c := range result.Content {
		if c.Type == "text" {
			text.WriteString(c.Text)
		}
	}
	return text.String()
}
