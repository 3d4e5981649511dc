package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alburdette619/docthis/documenter"
	"github.com/alburdette619/docthis/ignore"
	"github.com/alburdette619/docthis/languages"
	"github.com/alburdette619/docthis/logging"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FileIndex lists the documentable constructs of one source file
type FileIndex struct {
	Path       string             `json:"path"`     // Path relative to the listed root
	Language   string             `json:"language"` // Language identifier (e.g., "typescript", "jsx")
	Constructs []documenter.Entry `json:"constructs"`
}

// IndexFile lists the constructs of a single file.
func IndexFile(ctx context.Context, path, rel string) (FileIndex, error) {
	f, err := OpenFile(ctx, path, "")
	if err != nil {
		return FileIndex{}, err
	}
	defer f.Close()

	return FileIndex{
		Path:       rel,
		Language:   f.Lang.Name(),
		Constructs: f.Constructs(),
	}, nil
}

// IndexDirectory walks dir and lists the constructs of every supported
// file that is not ignored or skipped.
func IndexDirectory(ctx context.Context, dir string, skipPatterns []string) ([]FileIndex, error) {
	var results []FileIndex

	keep := func(rel string) bool {
		return languages.IsSupported(rel) && !isSkipped(rel, skipPatterns)
	}
	err := ignore.Walk(dir, keep, func(path, rel string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		idx, err := IndexFile(ctx, path, rel)
		if err != nil {
			// Skip files that can't be read or parsed
			logging.Logger().Debugw("skipping file", "file", rel, "err", err)
			return nil
		}
		results = append(results, idx)
		return nil
	})
	return results, err
}

// isSkipped checks if a file path matches any skip pattern (prefix match)
func isSkipped(filePath string, patterns []string) bool {
	filePath = strings.TrimPrefix(filePath, "./")
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "./")
		pattern = strings.TrimSuffix(pattern, "/")
		if filePath == pattern || strings.HasPrefix(filePath, pattern+"/") {
			return true
		}
	}
	return false
}

// FormatConstructs formats the listing in a compact human-readable form.
// Output stops at lineLimit lines (0 = no limit) with a note on how many
// files were left out.
func FormatConstructs(files []FileIndex, lineLimit int) string {
	var sb strings.Builder
	lines := 0

	for i, file := range files {
		if len(file.Constructs) == 0 {
			continue
		}
		need := len(file.Constructs) + 2 // header + constructs + blank line
		if lineLimit > 0 && lines > 0 && lines+need > lineLimit {
			fmt.Fprintf(&sb, "... %d more files not shown\n", len(files)-i)
			break
		}
		lines += need

		fmt.Fprintf(&sb, "## %s\n", file.Path)
		for _, c := range file.Constructs {
			sb.WriteString("  ")
			sb.WriteString(string(c.Kind))
			if c.Name != "" {
				sb.WriteString(" ")
				sb.WriteString(c.Name)
			}
			fmt.Fprintf(&sb, " [%d-%d]\n", c.Span.Start.Line+1, c.Span.End.Line+1)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// List lists the constructs of a file, or of every file below a directory.
func (cfg *Config) List(ctx context.Context, path string) ([]FileIndex, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		files, err := IndexDirectory(ctx, path, cfg.SkipPatterns)
		if err != nil {
			return nil, fmt.Errorf("failed to index directory: %w", err)
		}
		return files, nil
	}

	idx, err := IndexFile(ctx, path, info.Name())
	if err != nil {
		return nil, err
	}
	return []FileIndex{idx}, nil
}

// ListDocumentableInput is the input schema for the list_documentable tool
type ListDocumentableInput struct {
	File string `json:"file,omitempty" jsonschema_description:"File or directory to list. Defaults to the current working directory."`
}

// ListDocumentableTool creates the list_documentable MCP tool
func ListDocumentableTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_documentable",
		Description: "List every construct document_this can document in a JavaScript or TypeScript file (or in every such file below a directory), with its kind, name and line range. Respects .gitignore.",
	}
}

// ListDocumentableHandler handles the list_documentable tool invocation
func ListDocumentableHandler(cfg *Config) func(context.Context, *mcp.CallToolRequest, ListDocumentableInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListDocumentableInput) (*mcp.CallToolResult, any, error) {
		target := input.File
		if target == "" {
			target = "."
		}
		path, err := ResolvePath(target)
		if err != nil {
			return nil, nil, err
		}

		files, err := cfg.List(ctx, path)
		if err != nil {
			return nil, nil, err
		}

		output := FormatConstructs(files, cfg.LineLimit)
		if output == "" {
			output = "No documentable constructs found."
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: output},
			},
		}, nil, nil
	}
}
