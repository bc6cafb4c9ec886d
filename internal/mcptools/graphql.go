package mcptools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	unraid "github.com/jamesprial/unraid-api"
	"github.com/jamesprial/unraid-api/internal/tools"
)

// GraphQLTools returns the raw query escape hatch for API surface the typed
// tools do not cover.
func GraphQLTools(client *unraid.Client) []tools.Registration {
	return []tools.Registration{
		toolGraphQLQuery(client),
	}
}

func toolGraphQLQuery(client *unraid.Client) tools.Registration {
	tool := mcp.NewTool("graphql_query",
		mcp.WithDescription("Execute an arbitrary GraphQL query against the Unraid API."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("GraphQL query or mutation string"),
		),
		mcp.WithString("variables",
			mcp.Description("Query variables as a JSON object"),
		),
	)

	handler := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return tools.ErrorResult("query is required"), nil
		}

		var variables map[string]any
		if raw := req.GetString("variables", ""); raw != "" {
			if err := json.Unmarshal([]byte(raw), &variables); err != nil {
				return tools.ErrorResult("variables must be a JSON object: " + err.Error()), nil
			}
		}

		data, err := client.Query(ctx, query, variables)
		if err != nil {
			return tools.ClientErrorResult(err), nil
		}
		return tools.JSONResult(data), nil
	}

	return tools.Registration{Tool: tool, Handler: handler}
}
