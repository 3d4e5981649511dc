package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alburdette619/docthis/documenter"
	"github.com/alburdette619/docthis/languages"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// caretRequest validates a 1-based caret and resolves the file against the
// working directory.
func caretRequest(file string, line, character int, language string, forCompletion bool) (Request, error) {
	if file == "" {
		return Request{}, fmt.Errorf("file path is required")
	}
	if line < 1 || character < 1 {
		return Request{}, fmt.Errorf("line and character are 1-based, got %d:%d", line, character)
	}

	path, err := ResolvePath(file)
	if err != nil {
		return Request{}, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Request{}, fmt.Errorf("file not found: %s", file)
	}

	return Request{
		Path:          path,
		Language:      language,
		Caret:         languages.Position{Line: line - 1, Character: character - 1},
		ForCompletion: forCompletion,
	}, nil
}

// DocumentThisInput is the input schema for the document_this tool
type DocumentThisInput struct {
	File          string `json:"file" jsonschema_description:"Relative file path from the project root (e.g., 'src/app/widget.ts')."`
	Line          int    `json:"line" jsonschema_description:"1-based line of the caret. A caret on a blank or comment line directly above a declaration documents that declaration."`
	Character     int    `json:"character" jsonschema_description:"1-based column of the caret, counted in bytes."`
	Language      string `json:"language,omitempty" jsonschema_description:"Optional editor language id (typescript, typescriptreact, javascript, javascriptreact). Defaults to the file extension."`
	ForCompletion bool   `json:"forCompletion,omitempty" jsonschema_description:"Treat the request as triggered by typing '///' on the caret line. The returned range then replaces that line."`
}

// DocumentThisTool creates the document_this MCP tool
func DocumentThisTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "document_this",
		Description: "Generate a JSDoc comment skeleton for the JavaScript or TypeScript construct at a caret (class, method, property, function, arrow function variable, enum member, or the file itself). Returns the comment, its snippet form with tabstops, and where to insert it. Does not modify the file.",
	}
}

// DocumentThisHandler handles the document_this tool invocation
func DocumentThisHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, DocumentThisInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DocumentThisInput) (*mcp.CallToolResult, any, error) {
		r, err := caretRequest(input.File, input.Line, input.Character, input.Language, input.ForCompletion)
		if err != nil {
			return nil, nil, err
		}

		res, _, err := cfg.Document(ctx, r)
		if err != nil {
			return nil, nil, err
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: FormatResult(input.File, res)},
			},
		}, nil, nil
	}
}

// FormatResult renders a documentation result for display.
func FormatResult(file string, res *documenter.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s in %s, insert at %d:%d\n\n", describeResult(res), file, res.Insert.Line+1, res.Insert.Character+1)
	if res.Range.Start != res.Range.End {
		fmt.Fprintf(&sb, "Replaces %d:%d to %d:%d\n\n",
			res.Range.Start.Line+1, res.Range.Start.Character+1, res.Range.End.Line+1, res.Range.End.Character+1)
	}

	sb.WriteString("```\n")
	sb.WriteString(res.Comment(""))
	sb.WriteString("\n```\n\nSnippet:\n\n```\n")
	sb.WriteString(res.SnippetComment(""))
	sb.WriteString("\n```\n")
	return sb.String()
}

func describeResult(res *documenter.Result) string {
	if res.Name == "" {
		return string(res.Kind)
	}
	return fmt.Sprintf("%s %s", res.Kind, res.Name)
}

// TraceNodeInput is the input schema for the trace_node tool
type TraceNodeInput struct {
	File      string `json:"file" jsonschema_description:"Relative file path from the project root (e.g., 'src/app/widget.ts')."`
	Line      int    `json:"line" jsonschema_description:"1-based line of the caret."`
	Character int    `json:"character" jsonschema_description:"1-based column of the caret, counted in bytes."`
	Language  string `json:"language,omitempty" jsonschema_description:"Optional editor language id. Defaults to the file extension."`
}

// TraceNodeTool creates the trace_node MCP tool
func TraceNodeTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "trace_node",
		Description: "Show the chain of syntax nodes from the file root down to the node at a caret, with byte spans, node kinds and each node's index in its parent. Useful for understanding why document_this picked a construct.",
	}
}

// TraceNodeHandler handles the trace_node tool invocation
func TraceNodeHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, TraceNodeInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input TraceNodeInput) (*mcp.CallToolResult, any, error) {
		r, err := caretRequest(input.File, input.Line, input.Character, input.Language, false)
		if err != nil {
			return nil, nil, err
		}

		trace, err := Trace(ctx, r)
		if err != nil {
			return nil, nil, err
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: fmt.Sprintf("# Trace of %s at %d:%d\n\n```\n%s```\n", input.File, input.Line, input.Character, trace)},
			},
		}, nil, nil
	}
}
