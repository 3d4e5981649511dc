package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/alburdette619/docthis/ignore"
	"github.com/alburdette619/docthis/languages"
	"github.com/alburdette619/docthis/logging"
	"github.com/alburdette619/docthis/metrics"
	"github.com/alburdette619/docthis/tools"
	"github.com/alburdette619/docthis/watcher"
)

func caretRequest(file string, flags caretFlags) (tools.Request, error) {
	if flags.line < 1 || flags.character < 1 {
		return tools.Request{}, fmt.Errorf("--line and --character are 1-based, got %d:%d", flags.line, flags.character)
	}
	path, err := tools.ResolvePath(file)
	if err != nil {
		return tools.Request{}, err
	}
	return tools.Request{
		Path:          path,
		Language:      flags.language,
		Caret:         languages.Position{Line: flags.line - 1, Character: flags.character - 1},
		ForCompletion: flags.completion,
	}, nil
}

func runDoc(ctx context.Context, file string, flags caretFlags) error {
	req, err := caretRequest(file, flags)
	if err != nil {
		return err
	}

	if flags.write || flags.diff {
		applied, err := toolsConfig.Apply(ctx, req, !flags.write)
		if err != nil {
			return err
		}
		if flags.diff {
			fmt.Print(applied.Diff)
		}
		return nil
	}

	res, _, err := toolsConfig.Document(ctx, req)
	if err != nil {
		return err
	}
	if flags.snippet {
		fmt.Println(res.SnippetComment(""))
	} else {
		fmt.Println(res.Comment(""))
	}
	return nil
}

func runTrace(ctx context.Context, file string, flags caretFlags) error {
	req, err := caretRequest(file, flags)
	if err != nil {
		return err
	}
	out, err := tools.Trace(ctx, req)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runList(ctx context.Context, path string) error {
	path, err := tools.ResolvePath(path)
	if err != nil {
		return err
	}

	files, err := toolsConfig.List(ctx, path)
	if err != nil {
		return err
	}

	output := tools.FormatConstructs(files, toolsConfig.LineLimit)
	if output == "" {
		output = "No documentable constructs found.\n"
	}
	fmt.Print(output)
	return nil
}

func runWatch(ctx context.Context, dir string, force bool, metricsAddr string) error {
	if !settings.DocumentNewFile && !force {
		return errors.New("documenting new files is disabled; set documentNewFile in the settings file or pass --force")
	}

	root, err := tools.ResolvePath(dir)
	if err != nil {
		return err
	}

	if metricsAddr != "" {
		toolsConfig.Metrics = metrics.New()
		go serveMetrics(ctx, metricsAddr, toolsConfig.Metrics)
	}

	glob := ignore.Glob(settings.DocumentNewFileGlob)
	matcher, err := ignore.New(root)
	if err != nil {
		logging.Logger().Warnw("failed to load .gitignore files", "root", root, "err", err)
	}
	match := func(rel string) bool {
		return glob.Match(rel) && languages.IsSupported(rel) && !matcher.Match(rel, false)
	}

	handler := func(paths []string) {
		for _, path := range paths {
			if _, err := toolsConfig.DocumentNewFile(ctx, path); err != nil {
				logging.Logger().Warnw("failed to document new file", "file", path, "err", err)
			}
		}
	}

	w, err := watcher.New(root, match, handler, nil)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	logging.Logger().Infow("watching for new files", "root", root, "glob", string(glob), "extensions", languages.SupportedExtensions())
	<-ctx.Done()
	logging.Logger().Infow("watch stopped", "root", root)
	return nil
}
