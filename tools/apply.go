package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ApplyDocumentationInput is the input schema for the apply_documentation tool
type ApplyDocumentationInput struct {
	File          string `json:"file" jsonschema_description:"Relative file path from the project root (e.g., 'src/app/widget.ts')."`
	Line          int    `json:"line" jsonschema_description:"1-based line of the caret."`
	Character     int    `json:"character" jsonschema_description:"1-based column of the caret, counted in bytes."`
	Language      string `json:"language,omitempty" jsonschema_description:"Optional editor language id. Defaults to the file extension."`
	ForCompletion bool   `json:"forCompletion,omitempty" jsonschema_description:"Treat the request as triggered by typing '///' on the caret line; that line is replaced by the comment."`
	DryRun        bool   `json:"dryRun,omitempty" jsonschema_description:"Only return the diff without writing the file."`
}

// ApplyDocumentationTool creates the apply_documentation MCP tool
func ApplyDocumentationTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "apply_documentation",
		Description: "Generate the JSDoc comment skeleton for the construct at a caret and write it into the file above the construct, indented to match. Returns a unified diff of the change. The write counterpart of document_this.",
	}
}

// ApplyDocumentationHandler handles the apply_documentation tool invocation
func ApplyDocumentationHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, ApplyDocumentationInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ApplyDocumentationInput) (*mcp.CallToolResult, any, error) {
		r, err := caretRequest(input.File, input.Line, input.Character, input.Language, input.ForCompletion)
		if err != nil {
			return nil, nil, err
		}

		applied, err := cfg.Apply(ctx, r, input.DryRun)
		if err != nil {
			return nil, nil, err
		}

		var sb strings.Builder
		if applied.Written {
			fmt.Fprintf(&sb, "Documented %s in %s\n\n", describeResult(applied.Result), input.File)
		} else {
			fmt.Fprintf(&sb, "Would document %s in %s\n\n", describeResult(applied.Result), input.File)
		}
		sb.WriteString("```diff\n")
		sb.WriteString(applied.Diff)
		sb.WriteString("```\n")

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: sb.String()},
			},
		}, nil, nil
	}
}
