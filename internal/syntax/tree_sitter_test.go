//go:build cgo

package syntax

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func parseForTest(t *testing.T, filePath string, source string) *Tree {
	t.Helper()
	tree, parseError := NewParser().Parse(context.Background(), filePath, []byte(source))
	require.NoError(t, parseError)
	t.Cleanup(tree.Close)
	return tree
}

func collectCalls(root Node) []Node {
	var calls []Node
	Walk(root, func(node Node) {
		if node.IsCall() {
			calls = append(calls, node)
		}
	})
	return calls
}

func TestParseExposesCallExpressions(t *testing.T) {
	source := "describe('example:auth', /* note */ () => {\n  it('example:case', async () => {\n    await run(1, 2);\n  });\n});\n"
	tree := parseForTest(t, "auth.test.ts", source)
	require.Equal(t, "auth.test.ts", tree.Path())

	calls := collectCalls(tree.Root())
	require.Len(t, calls, 3)

	describeCall := calls[0]
	require.Equal(t, "describe", describeCall.CalleeName())
	describeArguments := describeCall.Arguments()
	require.Len(t, describeArguments, 2)
	require.Equal(t, "string", describeArguments[0].Kind())
	require.Equal(t, "'example:auth'", describeArguments[0].Text())
	require.Equal(t, "arrow_function", describeArguments[1].Kind())

	itCall := calls[1]
	require.Equal(t, "it", itCall.CalleeName())
	require.Equal(t, "async () => {\n    await run(1, 2);\n  }", itCall.Arguments()[1].Text())

	runCall := calls[2]
	require.Equal(t, "run", runCall.CalleeName())
	require.Len(t, runCall.Arguments(), 2)
}

func TestNonCallNodesHaveNoCallParts(t *testing.T) {
	tree := parseForTest(t, "plain.test.ts", "const value = 1;\n")
	require.False(t, tree.Root().IsCall())
	require.Empty(t, tree.Root().CalleeName())
	require.Nil(t, tree.Root().Arguments())
	require.NotEmpty(t, tree.Root().Children())
}

func TestParseSupportsEveryGrammar(t *testing.T) {
	testCases := map[string]string{
		"component.test.tsx": "it('example:tsx', () => {\n  render(<Widget title=\"x\" />);\n});\n",
		"legacy.test.js":     "it('example:js', function () {\n  run();\n});\n",
		"typed.test.ts":      "it('example:ts', () => {\n  const value: number = 1;\n});\n",
	}
	parser := NewParser()
	for filePath, source := range testCases {
		tree, parseError := parser.Parse(context.Background(), filePath, []byte(source))
		require.NoError(t, parseError, filePath)
		calls := collectCalls(tree.Root())
		require.NotEmpty(t, calls, filePath)
		require.Equal(t, "it", calls[0].CalleeName(), filePath)
		tree.Close()
	}
}

func TestParserReusesGrammarParsers(t *testing.T) {
	parser := NewParser()
	for _, filePath := range []string{"a.test.ts", "b.test.ts", "c.test.js"} {
		tree, parseError := parser.Parse(context.Background(), filePath, []byte("run();\n"))
		require.NoError(t, parseError)
		tree.Close()
	}
	require.Len(t, parser.parsers, 2)
}
