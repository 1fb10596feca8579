package project

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/gnana997/tokenforge/pkg/a11y"
	"github.com/gnana997/tokenforge/pkg/emit"
	"github.com/gnana997/tokenforge/pkg/insight"
	"github.com/gnana997/tokenforge/pkg/tokens"
	"github.com/gnana997/tokenforge/pkg/tsx"
	"github.com/gnana997/tokenforge/pkg/util"
)

// BuildConfig controls one build run.
type BuildConfig struct {
	// Include/Exclude are doublestar globs relative to the root. Empty
	// Include means DefaultInclude.
	Include []string
	Exclude []string

	// OutDir is the output root; each brief writes into a subdirectory
	// named after it.
	OutDir string

	// Workers bounds pipeline concurrency; <= 0 means NumCPU.
	Workers int
}

// BriefResult records the outcome of building one brief.
type BriefResult struct {
	BriefPath    string
	OutDir       string
	FilesWritten int
	Warnings     []string
	Err          error
}

// BuildStats aggregates timing for one run.
type BuildStats struct {
	BriefsDiscovered int
	BriefsBuilt      int
	BriefsFailed     int
	DiscoveryTimeMs  int64
	BuildTimeMs      int64
	TotalTimeMs      int64
}

// BuildResult is the full outcome of a Run.
type BuildResult struct {
	Briefs []BriefResult
	Stats  BuildStats
}

// Builder turns every discovered brief into the complete output set:
// token JSON (nested and legacy flat), Tailwind config, CSS variables,
// component and story sources, the accessibility report and the swatch
// document. Emitted TSX/JS is syntax-checked before it is written.
type Builder struct {
	gen     *tokens.Generator
	val     *a11y.Validator
	checker *tsx.Checker
	cache   *util.DocCache
	log     *slog.Logger
}

// NewBuilder creates a builder with its own generator, validator, syntax
// checker and document cache.
func NewBuilder(genOpts tokens.Options, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		gen:     tokens.New(genOpts),
		val:     a11y.New(a11y.DefaultOptions()),
		checker: tsx.NewChecker(logger),
		cache:   util.NewDocCache(0, logger),
		log:     logger,
	}
}

// Close releases the parser and cache resources.
func (b *Builder) Close() {
	b.checker.Close()
	if err := b.cache.Close(); err != nil {
		b.log.Warn("failed to close document cache", "error", err)
	}
}

// Run discovers briefs under rootDir and builds each one through a worker
// pool. Per-brief failures land in the result; Run itself only errors on
// discovery or configuration problems.
func (b *Builder) Run(rootDir string, cfg BuildConfig) (*BuildResult, error) {
	totalStart := time.Now()
	stats := BuildStats{}

	if cfg.OutDir == "" {
		return nil, fmt.Errorf("build config needs an output directory")
	}

	discoveryStart := time.Now()
	exclude := cfg.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}
	briefs, err := DiscoverBriefs(rootDir, cfg.Include, exclude)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}
	stats.BriefsDiscovered = len(briefs)
	stats.DiscoveryTimeMs = time.Since(discoveryStart).Milliseconds()

	b.log.Info("discovery complete", "briefs", len(briefs), "ms", stats.DiscoveryTimeMs)

	if len(briefs) == 0 {
		stats.TotalTimeMs = time.Since(totalStart).Milliseconds()
		return &BuildResult{Stats: stats}, nil
	}

	buildStart := time.Now()
	results := b.buildAll(briefs, cfg.OutDir, cfg.Workers)
	stats.BuildTimeMs = time.Since(buildStart).Milliseconds()

	for _, r := range results {
		if r.Err != nil {
			stats.BriefsFailed++
		} else {
			stats.BriefsBuilt++
		}
	}
	stats.TotalTimeMs = time.Since(totalStart).Milliseconds()

	b.log.Info("build complete",
		"built", stats.BriefsBuilt, "failed", stats.BriefsFailed, "ms", stats.BuildTimeMs)

	return &BuildResult{Briefs: results, Stats: stats}, nil
}

// buildAll fans the briefs out over a bounded worker pool and collects the
// results in brief order.
func (b *Builder) buildAll(briefs []string, outRoot string, workers int) []BriefResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(briefs) {
		workers = len(briefs)
	}

	jobs := make(chan int, len(briefs))
	results := make([]BriefResult, len(briefs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = b.BuildBrief(briefs[i], outRoot)
			}
		}()
	}
	for i := range briefs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// BuildBrief builds the full output set for one brief file. The outputs
// land in outRoot/<brief name without the .insight.json suffix>/.
func (b *Builder) BuildBrief(briefPath, outRoot string) BriefResult {
	res := BriefResult{
		BriefPath: briefPath,
		OutDir:    filepath.Join(outRoot, briefName(briefPath)),
	}

	data, err := b.cache.Get(briefPath)
	if err != nil {
		res.Err = err
		return res
	}

	in, err := insight.LoadFromBytes(data)
	if err != nil {
		res.Err = err
		return res
	}
	for _, problem := range in.Validate() {
		res.Warnings = append(res.Warnings, problem.Error())
		b.log.Warn("brief has problems", "brief", briefPath, "problem", problem)
	}

	tree := b.gen.Generate(*in)

	if err := os.MkdirAll(filepath.Join(res.OutDir, "components"), 0755); err != nil {
		res.Err = fmt.Errorf("failed to create output directory: %w", err)
		return res
	}

	files, err := b.renderOutputs(tree)
	if err != nil {
		res.Err = err
		return res
	}

	for name, content := range files {
		path := filepath.Join(res.OutDir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			res.Err = fmt.Errorf("failed to write %s: %w", name, err)
			return res
		}
		res.FilesWritten++
	}
	return res
}

// renderOutputs produces every output document for one tree, keyed by
// relative output path. Generated TSX/JS is syntax-checked here so template
// regressions fail the build.
func (b *Builder) renderOutputs(tree *tokens.Tree) (map[string]string, error) {
	files := map[string]string{
		"variables.css":      emit.CSSVariables(tree),
		"tailwind.config.js": emit.TailwindConfig(tree),
		"report.md":          b.val.Report(tree),
		"swatches.html":      b.val.SwatchHTML(tree, true),
	}

	treeJSON, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize token tree: %w", err)
	}
	files["tokens.json"] = string(treeJSON) + "\n"

	flatJSON, err := json.MarshalIndent(tokens.ConvertToLegacyFormat(tree), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize flat tokens: %w", err)
	}
	files["tokens.flat.json"] = string(flatJSON) + "\n"

	for _, name := range emit.ComponentNames() {
		src, err := emit.Component(name)
		if err != nil {
			return nil, err
		}
		if err := b.checkSyntax(name+".tsx", src); err != nil {
			return nil, err
		}
		files[filepath.Join("components", name+".tsx")] = src

		story, err := emit.Story(name)
		if err != nil {
			return nil, err
		}
		if err := b.checkSyntax(name+".stories.tsx", story); err != nil {
			return nil, err
		}
		files[filepath.Join("components", name+".stories.tsx")] = story
	}

	if err := b.checkSyntax("tailwind.config.js", files["tailwind.config.js"]); err != nil {
		return nil, err
	}

	return files, nil
}

// checkSyntax runs one emitted source through the tree-sitter check.
func (b *Builder) checkSyntax(name, src string) error {
	result, err := b.checker.CheckFile([]byte(src), name)
	if err != nil {
		return fmt.Errorf("syntax check failed for %s: %w", name, err)
	}
	if !result.OK {
		first := result.Errors[0]
		return fmt.Errorf("generated %s has a syntax error at %d:%d", name, first.Line, first.Column)
	}
	return nil
}

// Invalidate drops one brief from the document cache, forcing a re-read on
// the next build. The watcher calls this on change events.
func (b *Builder) Invalidate(briefPath string) {
	b.cache.Invalidate(briefPath)
}

// briefName strips the directory and the .insight.json (or plain .json)
// suffix from a brief path.
func briefName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".json")
	name = strings.TrimSuffix(name, ".insight")
	return name
}
