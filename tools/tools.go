// Package tools implements the docthis operations shared by the command line
// and the MCP server.
package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alburdette619/docthis/documenter"
	"github.com/alburdette619/docthis/edit"
	"github.com/alburdette619/docthis/languages"
	"github.com/alburdette619/docthis/logging"
	"github.com/alburdette619/docthis/metrics"
)

// DefaultLineLimit is the default maximum number of lines in a listing
const DefaultLineLimit = 1000

// ErrNotTriggered is returned for a completion request whose line does not
// end with the trigger characters.
var ErrNotTriggered = errors.New("no completion trigger before the caret")

// Config holds server-wide configuration for tools
type Config struct {
	Options      documenter.Options // Emission options from the settings file
	Metrics      *metrics.Metrics   // Optional outcome counters
	SkipPatterns []string           // Path prefixes to skip in listings
	LineLimit    int                // Maximum lines in listing output (0 = no limit)
}

// Request identifies a caret in a file.
type Request struct {
	Path          string
	Language      string // Editor language id; the extension decides when empty
	Caret         languages.Position
	ForCompletion bool
}

// ResolvePath makes path absolute relative to the working directory.
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(cwd, path), nil
}

// OpenFile reads and parses a JavaScript or TypeScript file. The caller
// closes the returned file.
func OpenFile(ctx context.Context, path, editorID string) (*documenter.File, error) {
	lang, err := languages.Resolve(path, editorID)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	f, err := documenter.Parse(ctx, lang, path, content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Document synthesizes documentation for the construct at the request's
// caret. The file content is returned alongside the result so callers can
// apply it without reading the file again.
func (cfg *Config) Document(ctx context.Context, req Request) (*documenter.Result, []byte, error) {
	f, err := OpenFile(ctx, req.Path, req.Language)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	var content []byte
	if !f.Empty() {
		content = f.Source()
	}
	if req.ForCompletion && !f.Empty() && !edit.TriggersCompletion(linePrefix(content, req.Caret)) {
		return nil, content, ErrNotTriggered
	}

	res, err := f.Document(req.Caret, cfg.Options, req.ForCompletion)
	if err != nil {
		cfg.Metrics.Observe("", err)
		logging.Logger().Debugw("no documentation produced",
			"file", req.Path, "line", req.Caret.Line, "character", req.Caret.Character, "err", err)
		return nil, content, err
	}
	cfg.Metrics.Observe(res.Kind, nil)
	logging.Logger().Debugw("documentation produced",
		"file", req.Path, "line", req.Caret.Line, "character", req.Caret.Character,
		"construct", res.Kind, "name", res.Name)
	return res, content, nil
}

// Applied is the outcome of writing documentation into a file.
type Applied struct {
	Result  *documenter.Result
	Diff    string
	Written bool
}

// Apply documents the construct at the caret and writes the comment into
// the file. With dryRun set the file is left untouched and only the diff
// is returned.
func (cfg *Config) Apply(ctx context.Context, req Request, dryRun bool) (*Applied, error) {
	res, content, err := cfg.Document(ctx, req)
	if err != nil {
		return nil, err
	}

	updated := edit.Apply(content, res)
	d, err := edit.Diff(filepath.Base(req.Path), content, updated)
	if err != nil {
		return nil, err
	}

	out := &Applied{Result: res, Diff: d}
	if dryRun {
		return out, nil
	}
	if err := edit.WriteFile(req.Path, updated); err != nil {
		return nil, err
	}
	out.Written = true
	logging.Logger().Infow("documentation written", "file", req.Path, "construct", res.Kind, "name", res.Name)
	return out, nil
}

// Trace renders the ancestor chain of the node at the caret.
func Trace(ctx context.Context, req Request) (string, error) {
	f, err := OpenFile(ctx, req.Path, req.Language)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return f.Trace(req.Caret), nil
}

// DocumentNewFile writes the file banner into a newly created file. Files
// that already hold anything besides whitespace are left alone. It reports
// whether the file was written.
func (cfg *Config) DocumentNewFile(ctx context.Context, path string) (bool, error) {
	lang, err := languages.ForFile(path)
	if err != nil {
		return false, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}
	if len(bytes.TrimSpace(content)) > 0 {
		return false, nil
	}

	f, err := documenter.Parse(ctx, lang, path, nil)
	if err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer f.Close()

	res, err := f.Document(languages.Position{}, cfg.Options, false)
	if err != nil {
		return false, err
	}
	if err := edit.WriteFile(path, edit.Apply(nil, res)); err != nil {
		return false, err
	}
	cfg.Metrics.NewFileDocumented()
	logging.Logger().Infow("new file documented", "file", path)
	return true, nil
}

// linePrefix returns the text of the caret's line before the caret.
func linePrefix(content []byte, caret languages.Position) string {
	li := languages.NewLineIndex(content)
	start := li.LineStart(caret.Line)
	end := li.Offset(caret)
	if end < start {
		return ""
	}
	return string(content[start:end])
}
