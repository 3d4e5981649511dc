package ignore

import (
	"os"
	"path/filepath"
)

// Walk calls fn for every file below root that is not ignored and for
// which keep returns true. rel is the slash-separated path relative to root.
// A nil keep accepts every file.
func Walk(root string, keep func(rel string) bool, fn func(path, rel string) error) error {
	matcher, _ := New(root)

	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		if info.IsDir() {
			if path == root {
				return nil
			}
			if SkipDir(info.Name()) || matcher.Match(rel, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher.Match(rel, false) {
			return nil
		}
		if keep != nil && !keep(rel) {
			return nil
		}
		return fn(path, rel)
	})
}
