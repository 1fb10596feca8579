package tsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/tokenforge/pkg/emit"
)

func TestCheck_ValidTSX(t *testing.T) {
	c := NewChecker(nil)
	defer c.Close()

	result, err := c.Check([]byte(`
export function Hello({ name }: { name: string }) {
  return <div>Hello, {name}</div>;
}
`), GrammarTSX)
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Empty(t, result.Errors)
}

func TestCheck_SyntaxErrorReported(t *testing.T) {
	c := NewChecker(nil)
	defer c.Close()

	result, err := c.Check([]byte("const x = {{{"), GrammarTypeScript)
	require.NoError(t, err)
	assert.False(t, result.OK)
	require.NotEmpty(t, result.Errors)
	assert.GreaterOrEqual(t, result.Errors[0].Line, 1)
	assert.GreaterOrEqual(t, result.Errors[0].Column, 1)
}

func TestCheck_JavaScript(t *testing.T) {
	c := NewChecker(nil)
	defer c.Close()

	result, err := c.Check([]byte(`module.exports = { theme: { extend: {} } };`), GrammarJavaScript)
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestDetectGrammar(t *testing.T) {
	assert.Equal(t, GrammarTSX, DetectGrammar("Button.tsx"))
	assert.Equal(t, GrammarTypeScript, DetectGrammar("Button.stories.ts"))
	assert.Equal(t, GrammarJavaScript, DetectGrammar("tailwind.config.js"))
	assert.Equal(t, GrammarTSX, DetectGrammar("mystery.bin"), "unknown extensions check as TSX")
}

// Every emitted template must parse cleanly; this is the regression net the
// checker exists for.
func TestEmittedComponentsParse(t *testing.T) {
	c := NewChecker(nil)
	defer c.Close()

	for _, name := range emit.ComponentNames() {
		t.Run(name, func(t *testing.T) {
			src, err := emit.Component(name)
			require.NoError(t, err)
			result, err := c.Check([]byte(src), GrammarTSX)
			require.NoError(t, err)
			assert.True(t, result.OK, "component %s has syntax errors: %+v", name, result.Errors)

			story, err := emit.Story(name)
			require.NoError(t, err)
			result, err = c.Check([]byte(story), GrammarTSX)
			require.NoError(t, err)
			assert.True(t, result.OK, "story %s has syntax errors: %+v", name, result.Errors)
		})
	}
}
