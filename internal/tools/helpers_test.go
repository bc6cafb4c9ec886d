package tools_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/internal/tools"
)

// resultText extracts the text string from the first Content element of a
// CallToolResult. It fails the test if the result is nil, has no content, or
// the first element is not a TextContent.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("CallToolResult is nil")
	}
	if len(result.Content) == 0 {
		t.Fatal("CallToolResult.Content is empty")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("Content[0] is %T, want mcp.TextContent", result.Content[0])
	}
	return tc.Text
}

func Test_JSONResult_Cases(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{
			name: "map renders as indented JSON",
			in:   map[string]any{"state": "STARTED"},
			want: "\"state\": \"STARTED\"",
		},
		{
			name: "struct renders with tags",
			in: struct {
				Name string `json:"name"`
			}{Name: "plex"},
			want: "\"name\": \"plex\"",
		},
		{
			name: "unmarshalable value reports an error",
			in:   make(chan int),
			want: "error marshaling result",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultText(t, tools.JSONResult(tt.in))
			if !strings.Contains(got, tt.want) {
				t.Errorf("JSONResult = %q, want substring %q", got, tt.want)
			}
		})
	}
}

func Test_ErrorResult(t *testing.T) {
	if got := resultText(t, tools.ErrorResult("boom")); got != "error: boom" {
		t.Errorf("ErrorResult = %q", got)
	}
}

func Test_ClientErrorResult_Cases(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth error", fmt.Errorf("%w (HTTP 401)", unraid.ErrAuth), "authentication failed"},
		{"timeout", fmt.Errorf("%w: deadline", unraid.ErrTimeout), "timed out"},
		{"tls", fmt.Errorf("%w: unknown authority", unraid.ErrTLS), "certificate verification failed"},
		{"connection", fmt.Errorf("%w: refused", unraid.ErrConnection), "could not reach"},
		{"other", fmt.Errorf("plain failure"), "plain failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultText(t, tools.ClientErrorResult(tt.err))
			if !strings.Contains(got, tt.want) {
				t.Errorf("ClientErrorResult(%v) = %q, want substring %q", tt.err, got, tt.want)
			}
		})
	}
}
