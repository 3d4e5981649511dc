package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRule(t *testing.T) {
	tests := []struct {
		line     string
		baseDir  string
		ok       bool
		glob     Glob
		negation bool
		dirOnly  bool
	}{
		{line: "", ok: false},
		{line: "# comment", ok: false},
		{line: "  ", ok: false},
		{line: "*.log", ok: true, glob: "**/*.log"},
		{line: "!keep.log", ok: true, glob: "**/keep.log", negation: true},
		{line: "build/", ok: true, glob: "**/build", dirOnly: true},
		{line: "/root.ts", ok: true, glob: "root.ts"},
		{line: "src/gen.ts", ok: true, glob: "src/gen.ts"},
		{line: "*.tmp", baseDir: "sub", ok: true, glob: "**/*.tmp"},
		{line: "trailing\\ ", ok: true, glob: "**/trailing "},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r, ok := parseRule(tt.line, tt.baseDir)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.glob, r.glob)
			assert.Equal(t, tt.negation, r.negation)
			assert.Equal(t, tt.dirOnly, r.dirOnly)
			assert.Equal(t, tt.baseDir, r.baseDir)
		})
	}
}

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		pattern Glob
		name    string
		match   bool
	}{
		{"*.ts", "main.ts", true},
		{"*.ts", "src/main.ts", false},
		{"?.js", "a.js", true},
		{"?.js", "ab.js", false},
		{"**/*.ts", "main.ts", true},
		{"**/*.ts", "src/app/main.ts", true},
		{"**/*.ts", "main.js", false},
		{"src/**", "src/a/b.ts", true},
		{"src/**/test/*.ts", "src/test/a.ts", true},
		{"src/**/test/*.ts", "src/x/y/test/a.ts", true},
		{"src/**/test/*.ts", "lib/test/a.ts", false},
		{"**/*.{ts,js}", "a/b.js", true},
		{"**/*.{ts,js}", "a/b.tsx", false},
		{"{src,lib}/*.{ts,js}", "lib/x.ts", true},
		{"{src,lib}/*.{ts,js}", "test/x.ts", false},
		{"a{b,c{d,e}}f", "acef", true},
		{"[", "[", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern)+"_"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, tt.pattern.Match(tt.name))
		})
	}
}

func TestExpandBraces(t *testing.T) {
	assert.Equal(t, []string{"a.ts", "a.js"}, expandBraces("a.{ts,js}"))
	assert.Equal(t, []string{"ab", "acd", "ace"}, expandBraces("a{b,c{d,e}}"))
	assert.Equal(t, []string{"a{b"}, expandBraces("a{b"))
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestMatcher(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":     "dist/\n*.gen.ts\n!keep.gen.ts\n",
		"pkg/.gitignore": "local.ts\n",
	})

	m, err := New(root)
	require.NoError(t, err)

	tests := []struct {
		path  string
		isDir bool
		want  bool
	}{
		{"dist", true, true},
		{"dist/app.js", false, true},
		{"dist", false, false},
		{"src/api.gen.ts", false, true},
		{"src/keep.gen.ts", false, false},
		{"pkg/local.ts", false, true},
		{"local.ts", false, false},
		{"src/main.ts", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Match(tt.path, tt.isDir), tt.path)
	}

	var nilMatcher *Matcher
	assert.False(t, nilMatcher.Match("anything", false))
}

func TestMatcherSkipsUnreadableIgnoreFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"pkg/.gitignore": "*.log\n",
	})
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, ".gitignore")))

	m, err := New(root)
	require.NoError(t, err)
	assert.True(t, m.Match("pkg/build.log", false))
	assert.False(t, m.Match("build.log", false))
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		".gitignore":          "dist/\n",
		"src/a.ts":            "",
		"src/b.js":            "",
		"src/readme.md":       "",
		"dist/out.js":         "",
		"node_modules/x/i.js": "",
		".cache/c.ts":         "",
	})

	var got []string
	err := Walk(root, Glob("**/*.{ts,js}").Match, func(_, rel string) error {
		got = append(got, rel)
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"src/a.ts", "src/b.js"}, got)
}

func TestSkipDir(t *testing.T) {
	assert.True(t, SkipDir(".git"))
	assert.True(t, SkipDir("node_modules"))
	assert.True(t, SkipDir("vendor"))
	assert.False(t, SkipDir("src"))
	assert.False(t, SkipDir("."))
}
