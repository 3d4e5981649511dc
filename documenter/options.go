package documenter

// Options controls which tags are emitted. A single value is passed into
// each emission; nothing is read from global state.
type Options struct {
	// IncludeTypes adds {type} annotations to @param, @returns, @type and
	// heritage tags.
	IncludeTypes bool

	// InferTypes guesses types from parameter names (callbacks, boolean-like
	// names) when nothing is declared.
	InferTypes bool

	// HungarianNotation guesses types from a lettered name prefix such as
	// sName or iCount.
	HungarianNotation bool

	// DescriptionTag emits "@desc" instead of a free-form description area.
	DescriptionTag bool

	// AuthorTag emits "@author AuthorName".
	AuthorTag  bool
	AuthorName string
}

// DefaultOptions mirrors the settings a fresh install starts with.
func DefaultOptions() Options {
	return Options{IncludeTypes: true}
}
