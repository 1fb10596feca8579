package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnana997/tokenforge/pkg/a11y"
	"github.com/gnana997/tokenforge/pkg/insight"
	"github.com/gnana997/tokenforge/pkg/mcp"
	"github.com/gnana997/tokenforge/pkg/mcplog"
	"github.com/gnana997/tokenforge/pkg/project"
	"github.com/gnana997/tokenforge/pkg/tokens"
)

// loadBrief reads, parses and sanity-checks one brief file. Semantic
// problems are warnings on stderr, not fatal.
func loadBrief(path string) (*insight.Insight, error) {
	in, err := insight.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	for _, problem := range in.Validate() {
		fmt.Fprintf(os.Stderr, "warning: %s: %v\n", path, problem)
	}
	return in, nil
}

func runGenerate(args []string, cfg *ProjectConfig) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	flat := fs.Bool("flat", false, "emit the flat legacy token map instead of the nested tree")
	out := fs.String("out", "", "write to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tokenforge generate [--flat] [--out file] <brief.json>")
	}

	in, err := loadBrief(fs.Arg(0))
	if err != nil {
		return err
	}

	tree := tokens.New(generatorOptions(cfg)).Generate(*in)

	var payload any = tree
	if *flat {
		payload = tokens.ConvertToLegacyFormat(tree)
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize tokens: %w", err)
	}
	return writeOutput(*out, append(data, '\n'))
}

func runValidate(args []string, cfg *ProjectConfig) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	minRatio := fs.Float64("min", 0, "minimum contrast ratio (default 4.5)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: tokenforge validate [--min ratio] <foreground> <background>")
	}

	opts := a11y.DefaultOptions()
	if *minRatio > 0 {
		opts.MinContrastRatio = *minRatio
	} else if cfg != nil && cfg.MinContrastRatio > 0 {
		opts.MinContrastRatio = cfg.MinContrastRatio
	}

	result := a11y.New(opts).ValidateColorCombination(fs.Arg(0), fs.Arg(1))
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	if !result.Passes {
		os.Exit(2)
	}
	return nil
}

func runReport(args []string, cfg *ProjectConfig) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	out := fs.String("out", "", "write to a file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tokenforge report [--out file] <brief.json>")
	}

	in, err := loadBrief(fs.Arg(0))
	if err != nil {
		return err
	}

	tree := tokens.New(generatorOptions(cfg)).Generate(*in)
	report := a11y.New(a11y.DefaultOptions()).Report(tree)
	return writeOutput(*out, []byte(report))
}

func runSwatch(args []string, cfg *ProjectConfig) error {
	fs := flag.NewFlagSet("swatch", flag.ExitOnError)
	out := fs.String("out", "", "write to a file instead of stdout")
	noChecks := fs.Bool("no-checks", false, "omit the UI pair contrast checks section")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: tokenforge swatch [--out file] [--no-checks] <brief.json>")
	}

	in, err := loadBrief(fs.Arg(0))
	if err != nil {
		return err
	}

	tree := tokens.New(generatorOptions(cfg)).Generate(*in)
	html := a11y.New(a11y.DefaultOptions()).SwatchHTML(tree, !*noChecks)
	return writeOutput(*out, []byte(html))
}

func runBuild(args []string, cfg *ProjectConfig, logger *slog.Logger) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	out := fs.String("out", "", "output directory (default from config, then dist/tokens)")
	workers := fs.Int("workers", 0, "worker pool size (default NumCPU)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	builder := project.NewBuilder(generatorOptions(cfg), logger)
	defer builder.Close()

	result, err := builder.Run(root, buildConfig(*out, *workers, cfg))
	if err != nil {
		return err
	}
	for _, brief := range result.Briefs {
		if brief.Err != nil {
			fmt.Fprintf(os.Stderr, "failed: %s: %v\n", brief.BriefPath, brief.Err)
		}
	}
	if result.Stats.BriefsFailed > 0 {
		return fmt.Errorf("%d of %d briefs failed", result.Stats.BriefsFailed, result.Stats.BriefsDiscovered)
	}
	return nil
}

func runWatch(args []string, cfg *ProjectConfig, logger *slog.Logger) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	out := fs.String("out", "", "output directory (default from config, then dist/tokens)")
	debounce := fs.Int("debounce", 0, "debounce window in milliseconds (default 200)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	builder := project.NewBuilder(generatorOptions(cfg), logger)
	defer builder.Close()

	watcher, err := project.NewWatcher(builder, project.WatchOptions{DebounceMs: *debounce}, logger)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	if err := watcher.Start(root, buildConfig(*out, 0, cfg)); err != nil {
		return err
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}

func runServe(args []string, cfg *ProjectConfig) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	logPath := fs.String("log", "", "JSONL tool call log path (empty disables logging)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *logPath
	if path == "" && cfg != nil {
		path = cfg.MCPLogPath
	}
	callLog, err := mcplog.NewLogger(path)
	if err != nil {
		return err
	}
	if callLog != nil {
		defer callLog.Close()
	}

	srv := mcp.NewServer(
		tokens.New(generatorOptions(cfg)),
		a11y.New(a11y.DefaultOptions()),
		callLog,
	)
	return srv.ServeStdio()
}

// buildConfig assembles a project build config from the flag value and the
// project file.
func buildConfig(outFlag string, workers int, cfg *ProjectConfig) project.BuildConfig {
	bc := project.BuildConfig{
		OutDir:  resolveOutDir(outFlag, cfg),
		Workers: workers,
	}
	if cfg != nil {
		bc.Include = cfg.Include
		bc.Exclude = cfg.Exclude
	}
	return bc
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
