// Package ignore decides which files docthis looks at: .gitignore rules,
// directories that never hold user sources, and brace/doublestar globs.
package ignore

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Matcher holds the .gitignore rules of a directory tree.
type Matcher struct {
	root  string
	rules []rule
}

// rule is one .gitignore line.
type rule struct {
	glob     Glob
	negation bool   // starts with !
	dirOnly  bool   // ends with /
	baseDir  string // directory holding the .gitignore, relative to root
}

// New loads every .gitignore below root.
func New(root string) (*Matcher, error) {
	m := &Matcher{root: root}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() && path != root && SkipDir(info.Name()) {
			return filepath.SkipDir
		}
		if info.Name() != ".gitignore" {
			return nil
		}

		relDir, _ := filepath.Rel(root, filepath.Dir(path))
		if relDir == "." {
			relDir = ""
		}
		if err := m.load(path, filepath.ToSlash(relDir)); err != nil {
			return nil // Skip unreadable .gitignore files
		}
		return nil
	})

	return m, err
}

func (m *Matcher) load(path, baseDir string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if r, ok := parseRule(scanner.Text(), baseDir); ok {
			m.rules = append(m.rules, r)
		}
	}
	return scanner.Err()
}

// parseRule parses one .gitignore line. Blank lines and comments yield
// false.
func parseRule(line, baseDir string) (rule, bool) {
	for strings.HasSuffix(line, " ") && !strings.HasSuffix(line, "\\ ") {
		line = line[:len(line)-1]
	}
	line = strings.ReplaceAll(line, "\\ ", " ")
	if line == "" || strings.HasPrefix(line, "#") {
		return rule{}, false
	}

	r := rule{baseDir: baseDir}
	if strings.HasPrefix(line, "!") {
		r.negation = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	// Without an inner slash the rule applies at any depth.
	switch {
	case strings.HasPrefix(line, "/"):
		line = line[1:]
	case !strings.Contains(line, "/"):
		line = "**/" + line
	}
	if line == "" {
		return rule{}, false
	}

	r.glob = Glob(line)
	return r, true
}

// Match reports whether path, relative to the root, is ignored. A path
// below an ignored directory is ignored too.
func (m *Matcher) Match(path string, isDir bool) bool {
	if m == nil || len(m.rules) == 0 {
		return false
	}

	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	parts := strings.Split(path, "/")
	for i := 1; i < len(parts); i++ {
		if m.matchPath(strings.Join(parts[:i], "/"), true) {
			return true
		}
	}
	return m.matchPath(path, isDir)
}

// matchPath applies the rules in order; the last matching rule decides.
func (m *Matcher) matchPath(path string, isDir bool) bool {
	ignored := false
	for _, r := range m.rules {
		if r.matches(path, isDir) {
			ignored = !r.negation
		}
	}
	return ignored
}

func (r rule) matches(path string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}
	if r.baseDir != "" {
		if !strings.HasPrefix(path, r.baseDir+"/") {
			return false
		}
		path = strings.TrimPrefix(path, r.baseDir+"/")
	}
	return r.glob.Match(path)
}

// SkipDir reports directories that are never searched: hidden directories
// and installed dependencies.
func SkipDir(name string) bool {
	return (strings.HasPrefix(name, ".") && name != "." && name != "..") || name == "node_modules" || name == "vendor"
}
