// Package tsx provides a syntax sanity check for the TSX/JS text the
// emitters produce, backed by tree-sitter grammars. The build pipeline runs
// every generated component and story through it before writing to disk so
// a template regression surfaces as a build failure instead of a broken
// file in someone's project.
package tsx

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Grammar selects the tree-sitter grammar used for a check.
type Grammar int

const (
	GrammarTSX Grammar = iota
	GrammarTypeScript
	GrammarJavaScript
)

// String returns the grammar name for logging.
func (g Grammar) String() string {
	switch g {
	case GrammarTSX:
		return "tsx"
	case GrammarTypeScript:
		return "typescript"
	case GrammarJavaScript:
		return "javascript"
	default:
		return "unknown"
	}
}

// DetectGrammar picks a grammar from a file extension. Generated component
// files are TSX, stories are TS; anything unrecognized checks as TSX since
// that grammar is a superset for our templates.
func DetectGrammar(path string) Grammar {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return GrammarTypeScript
	case ".js", ".jsx", ".mjs", ".cjs":
		return GrammarJavaScript
	default:
		return GrammarTSX
	}
}

// SyntaxError is one ERROR or MISSING node found in a parse tree.
// Line and Column are 1-based.
type SyntaxError struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
}

// Result holds the outcome of checking one source text.
type Result struct {
	OK     bool          `json:"ok"`
	Errors []SyntaxError `json:"errors,omitempty"`
}

// Checker parses source text and reports syntax errors. Parsers are created
// lazily per grammar and reused; the checker must be Closed to release
// them.
type Checker struct {
	mu      sync.Mutex
	parsers map[Grammar]*ts.Parser
	logger  *slog.Logger
}

// NewChecker creates a Checker. A nil logger falls back to slog.Default.
func NewChecker(logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{
		parsers: make(map[Grammar]*ts.Parser),
		logger:  logger,
	}
}

// Check parses source with the given grammar and collects every ERROR and
// MISSING node. The returned Result is valid whenever err is nil, including
// for source that fails to parse cleanly.
func (c *Checker) Check(source []byte, g Grammar) (Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	parser, err := c.parserFor(g)
	if err != nil {
		return Result{}, err
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return Result{}, fmt.Errorf("parser returned nil tree for %s source", g)
	}
	defer tree.Close()

	root := tree.RootNode()
	if !root.HasError() {
		return Result{OK: true}, nil
	}

	var errs []SyntaxError
	collectErrors(root, &errs)
	c.logger.Debug("syntax check found errors", "grammar", g.String(), "count", len(errs))
	return Result{OK: false, Errors: errs}, nil
}

// CheckFile is a convenience that picks the grammar from the path.
func (c *Checker) CheckFile(source []byte, path string) (Result, error) {
	return c.Check(source, DetectGrammar(path))
}

// Close releases all parsers. The checker cannot be used afterwards.
func (c *Checker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.parsers {
		p.Close()
	}
	c.parsers = make(map[Grammar]*ts.Parser)
}

// parserFor returns the lazily created parser for a grammar. Callers hold
// c.mu.
func (c *Checker) parserFor(g Grammar) (*ts.Parser, error) {
	if p, ok := c.parsers[g]; ok {
		return p, nil
	}

	langPtr, err := languagePointer(g)
	if err != nil {
		return nil, err
	}

	p := ts.NewParser()
	if err := p.SetLanguage(ts.NewLanguage(langPtr)); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to set %s grammar: %w", g, err)
	}
	c.parsers[g] = p
	return p, nil
}

// languagePointer maps a Grammar onto its tree-sitter language pointer.
func languagePointer(g Grammar) (unsafe.Pointer, error) {
	switch g {
	case GrammarTSX:
		return ts_typescript.LanguageTSX(), nil
	case GrammarTypeScript:
		return ts_typescript.LanguageTypescript(), nil
	case GrammarJavaScript:
		return ts_javascript.Language(), nil
	default:
		return nil, fmt.Errorf("unsupported grammar: %s", g)
	}
}

// collectErrors walks the tree recursing only into subtrees that contain an
// error, recording ERROR and MISSING nodes.
func collectErrors(node *ts.Node, out *[]SyntaxError) {
	if !node.HasError() {
		return
	}
	if node.IsError() || node.IsMissing() {
		kind := "error"
		if node.IsMissing() {
			kind = "missing"
		}
		pos := node.StartPosition()
		*out = append(*out, SyntaxError{
			Line:   int(pos.Row) + 1,
			Column: int(pos.Column) + 1,
			Kind:   kind,
		})
		return
	}
	for i := uint(0); i < uint(node.ChildCount()); i++ {
		collectErrors(node.Child(i), out)
	}
}
