package languages

import (
	"errors"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockLanguage is a test implementation of Language
type mockLanguage struct {
	name string
	exts []string
	ids  []string
}

func (m *mockLanguage) Name() string                     { return m.name }
func (m *mockLanguage) Extensions() []string             { return m.exts }
func (m *mockLanguage) EditorIDs() []string              { return m.ids }
func (m *mockLanguage) TreeSitterLang() *sitter.Language { return nil }

// withRegistry swaps in an empty registry for the duration of a test.
func withRegistry(t *testing.T) {
	t.Helper()
	origExt, origID := byExt, byID
	byExt = make(map[string]Language)
	byID = make(map[string]Language)
	t.Cleanup(func() { byExt, byID = origExt, origID })
}

func TestRegister(t *testing.T) {
	withRegistry(t)

	lang := &mockLanguage{name: "test", exts: []string{".test", ".TST"}, ids: []string{"testlang"}}
	Register(lang)

	assert.Equal(t, lang, byExt[".test"])
	assert.Equal(t, lang, byExt[".tst"], "extensions are stored lower-cased")
	assert.Equal(t, lang, byID["testlang"])
}

func TestForFile(t *testing.T) {
	withRegistry(t)

	lang := &mockLanguage{name: "test", exts: []string{".test"}}
	Register(lang)

	tests := []struct {
		path     string
		wantLang Language
	}{
		{"file.test", lang},
		{"path/to/file.test", lang},
		{"FILE.TEST", lang}, // Case insensitive
		{"file.unknown", nil},
		{"file", nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ForFile(tt.path)
			if tt.wantLang == nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnsupported))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLang, got)
			assert.True(t, IsSupported(tt.path))
		})
	}
}

func TestResolvePrefersEditorID(t *testing.T) {
	withRegistry(t)

	ts := &mockLanguage{name: "ts", exts: []string{".ts"}, ids: []string{"typescript"}}
	js := &mockLanguage{name: "js", exts: []string{".js"}, ids: []string{"javascript"}}
	Register(ts)
	Register(js)

	got, err := Resolve("file.js", "typescript")
	require.NoError(t, err)
	assert.Equal(t, ts, got)

	got, err = Resolve("file.js", "")
	require.NoError(t, err)
	assert.Equal(t, js, got)

	_, err = Resolve("file.js", "vue")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestSupportedExtensions(t *testing.T) {
	withRegistry(t)

	Register(&mockLanguage{name: "lang1", exts: []string{".b", ".a"}})
	Register(&mockLanguage{name: "lang2", exts: []string{".c"}})

	assert.Equal(t, []string{".a", ".b", ".c"}, SupportedExtensions())
}

func TestRegisteredLanguages(t *testing.T) {
	withRegistry(t)

	Register(&mockLanguage{name: "lang2", exts: []string{".c"}})
	Register(&mockLanguage{name: "lang1", exts: []string{".a", ".b"}})

	assert.Equal(t, []string{"lang1", "lang2"}, RegisteredLanguages())
}
