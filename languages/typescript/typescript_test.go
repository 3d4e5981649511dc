package typescript

import (
	"context"
	"testing"

	"github.com/alburdette619/docthis/languages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageMetadata(t *testing.T) {
	tests := []struct {
		lang     languages.Language
		wantName string
		wantExts []string
		wantIDs  []string
	}{
		{&TSLanguage{}, "typescript", []string{".ts", ".mts", ".cts"}, []string{"typescript"}},
		{&TSXLanguage{}, "tsx", []string{".tsx"}, []string{"typescriptreact"}},
		{&JSLanguage{}, "javascript", []string{".js", ".mjs", ".cjs"}, []string{"javascript"}},
		{&JSXLanguage{}, "jsx", []string{".jsx"}, []string{"javascriptreact"}},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.lang.Name())
			assert.Equal(t, tt.wantExts, tt.lang.Extensions())
			assert.Equal(t, tt.wantIDs, tt.lang.EditorIDs())
			assert.NotNil(t, tt.lang.TreeSitterLang())
		})
	}
}

func TestRegisteredOnImport(t *testing.T) {
	for _, path := range []string{"a.ts", "b.tsx", "c.js", "d.jsx", "e.mjs"} {
		assert.True(t, languages.IsSupported(path), path)
	}
	assert.False(t, languages.IsSupported("f.vue"))

	lang, err := languages.ForEditorID("typescriptreact")
	require.NoError(t, err)
	assert.Equal(t, "tsx", lang.Name())
}

func TestParseClass(t *testing.T) {
	src := []byte(`class Server extends EventEmitter implements Handler {
    private port: number;
}
`)
	tree, err := languages.Parse(context.Background(), &TSLanguage{}, src)
	require.NoError(t, err)
	defer tree.Close()

	root := tree.RootNode()
	assert.Equal(t, "program", root.Type())
	require.EqualValues(t, 1, root.NamedChildCount())

	class := root.NamedChild(0)
	assert.Equal(t, "class_declaration", class.Type())
	assert.Equal(t, "Server", class.ChildByFieldName("name").Content(src))

	rng := languages.NodeRange(class)
	assert.Equal(t, languages.Position{Line: 0, Character: 0}, rng.Start)
	assert.Equal(t, 2, rng.End.Line)
}

func TestParseJavaScriptArrow(t *testing.T) {
	src := []byte("const add = (a, b = 1) => a + b;\n")
	tree, err := languages.Parse(context.Background(), &JSLanguage{}, src)
	require.NoError(t, err)
	defer tree.Close()

	decl := tree.RootNode().NamedChild(0)
	assert.Equal(t, "lexical_declaration", decl.Type())
	value := decl.NamedChild(0).ChildByFieldName("value")
	require.NotNil(t, value)
	assert.Equal(t, "arrow_function", value.Type())
}
