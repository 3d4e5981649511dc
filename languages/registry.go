package languages

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

var (
	byExt = make(map[string]Language)
	byID  = make(map[string]Language)
)

// Register adds a language to the registry under its extensions and editor ids.
func Register(lang Language) {
	for _, ext := range lang.Extensions() {
		byExt[strings.ToLower(ext)] = lang
	}
	for _, id := range lang.EditorIDs() {
		byID[id] = lang
	}
}

// ForFile returns the Language for a file based on its extension.
func ForFile(path string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := byExt[ext]; ok {
		return lang, nil
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupported)
}

// ForEditorID returns the Language registered for an editor language id
// such as "javascriptreact".
func ForEditorID(id string) (Language, error) {
	if lang, ok := byID[id]; ok {
		return lang, nil
	}
	return nil, fmt.Errorf("language %q: %w", id, ErrUnsupported)
}

// Resolve picks the language for a file, preferring an explicit editor id
// when one is given.
func Resolve(path, editorID string) (Language, error) {
	if editorID != "" {
		return ForEditorID(editorID)
	}
	return ForFile(path)
}

// IsSupported reports whether a file extension is registered.
func IsSupported(path string) bool {
	_, ok := byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// SupportedExtensions returns all registered file extensions, sorted
func SupportedExtensions() []string {
	exts := make([]string, 0, len(byExt))
	for ext := range byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// RegisteredLanguages returns the names of all registered languages, sorted
func RegisteredLanguages() []string {
	seen := make(map[string]bool)
	var names []string
	for _, lang := range byExt {
		if !seen[lang.Name()] {
			seen[lang.Name()] = true
			names = append(names, lang.Name())
		}
	}
	sort.Strings(names)
	return names
}
