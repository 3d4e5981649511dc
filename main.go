package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alburdette619/docthis/config"
	"github.com/alburdette619/docthis/logging"
	"github.com/alburdette619/docthis/tools"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	logLevel     string
	skipPatterns []string
	lineLimit    int
)

// settings and toolsConfig are filled in before any command runs.
var (
	settings    config.Config
	toolsConfig *tools.Config
)

var rootCmd = &cobra.Command{
	Use:   "docthis",
	Short: "JSDoc comment skeletons for JavaScript and TypeScript",
	Long: `docthis generates JSDoc comment skeletons for JavaScript and TypeScript.
Point it at a caret in a file and it documents the class, method, property,
function, arrow function variable or enum member found there, or the file
itself. It runs as a command line tool, a new-file watcher, or an MCP server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := logging.SetLevel(cfg.LogLevel); err != nil {
			return err
		}

		settings = cfg
		toolsConfig = &tools.Config{
			Options:      cfg.Options(),
			SkipPatterns: skipPatterns,
			LineLimit:    lineLimit,
		}
		return nil
	},
}

var docCmd = &cobra.Command{
	Use:   "doc <file>",
	Short: "Document the construct at a caret",
	Long: `Generate the comment skeleton for the construct at --line/--character
(1-based) and print it. With --write the comment is inserted into the file;
with --diff the change is printed as a unified diff.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoc(cmd.Context(), args[0], docFlags)
	},
}

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Print the syntax node chain at a caret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrace(cmd.Context(), args[0], docFlags)
	},
}

var listCmd = &cobra.Command{
	Use:   "list [path]",
	Short: "List documentable constructs",
	Long: `List every construct that can be documented in a file, or in every
JavaScript and TypeScript file below a directory. Respects .gitignore.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}
		return runList(cmd.Context(), path)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Add a file banner to newly created files",
	Long: `Watch a directory tree and write the file banner into every new, empty
file matching documentNewFileGlob. Requires documentNewFile in the settings
file unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return runWatch(cmd.Context(), dir, watchForce, metricsAddr)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run as MCP server (communicates via stdio)",
	Long: `Run as an MCP server that communicates via stdio.
Exposes tools: document_this, apply_documentation, trace_node, list_documentable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context(), metricsAddr)
	},
}

type caretFlags struct {
	line       int
	character  int
	language   string
	completion bool
	write      bool
	diff       bool
	snippet    bool
}

var (
	docFlags    caretFlags
	watchForce  bool
	metricsAddr string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Settings file (default: "+config.FileName+" in the working directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: debug, info, warn or error (overrides the settings file)")

	// Add --skip flag to root (inherited by all subcommands)
	rootCmd.PersistentFlags().StringArrayVar(&skipPatterns, "skip", nil,
		"Path prefixes to skip when listing (can be specified multiple times)")

	// Add --limit flag to root (inherited by all subcommands)
	rootCmd.PersistentFlags().IntVar(&lineLimit, "limit", tools.DefaultLineLimit,
		"Maximum lines in listing output (0 = no limit)")

	for _, cmd := range []*cobra.Command{docCmd, traceCmd} {
		cmd.Flags().IntVarP(&docFlags.line, "line", "l", 1, "1-based caret line")
		cmd.Flags().IntVarP(&docFlags.character, "character", "c", 1, "1-based caret column in bytes")
		cmd.Flags().StringVar(&docFlags.language, "language", "",
			"Editor language id (typescript, typescriptreact, javascript, javascriptreact)")
	}
	docCmd.Flags().BoolVar(&docFlags.completion, "completion", false,
		"Treat the request as triggered by typing '///' on the caret line")
	docCmd.Flags().BoolVarP(&docFlags.write, "write", "w", false, "Write the comment into the file")
	docCmd.Flags().BoolVarP(&docFlags.diff, "diff", "d", false, "Print the change as a unified diff")
	docCmd.Flags().BoolVar(&docFlags.snippet, "snippet", false, "Print the comment with snippet tabstops")

	watchCmd.Flags().BoolVar(&watchForce, "force", false, "Watch even when documentNewFile is off")
	for _, cmd := range []*cobra.Command{watchCmd, mcpCmd} {
		cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "",
			"Serve Prometheus metrics on this address (e.g. :9090)")
	}

	rootCmd.AddCommand(docCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	_ = logging.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
