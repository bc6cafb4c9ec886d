package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
)

// JSONResult marshals v to indented JSON and returns an mcp.CallToolResult.
func JSONResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultText(fmt.Sprintf("error marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// ErrorResult returns an mcp.CallToolResult that describes an error condition.
func ErrorResult(msg string) *mcp.CallToolResult {
	return mcp.NewToolResultText(fmt.Sprintf("error: %s", msg))
}

// ClientErrorResult maps a client error to a tool result with a hint about
// the failure class, so the model on the other end can react sensibly.
func ClientErrorResult(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, unraid.ErrAuth):
		return ErrorResult(fmt.Sprintf("authentication failed, check the API key: %v", err))
	case errors.Is(err, unraid.ErrTimeout):
		return ErrorResult(fmt.Sprintf("request timed out, the server may be busy: %v", err))
	case errors.Is(err, unraid.ErrTLS):
		return ErrorResult(fmt.Sprintf("certificate verification failed, consider insecure_tls for self-signed setups: %v", err))
	case errors.Is(err, unraid.ErrConnection):
		return ErrorResult(fmt.Sprintf("could not reach the server: %v", err))
	default:
		return ErrorResult(err.Error())
	}
}
