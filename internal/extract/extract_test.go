//go:build cgo

package extract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/exampledoc/internal/extract"
	"github.com/temirov/exampledoc/internal/syntax"
	"github.com/temirov/exampledoc/internal/types"
)

const (
	testPrefix   = "example:"
	testFilePath = "auth.test.ts"
	fence        = "```"
)

func findGroups(t *testing.T, filePath string, prefix string, source string) []types.ExampleGroup {
	t.Helper()
	tree, parseError := syntax.NewParser().Parse(context.Background(), filePath, []byte(source))
	require.NoError(t, parseError)
	t.Cleanup(tree.Close)
	return extract.New(prefix, syntax.FenceTag(filePath)).FindGroups(tree.Root())
}

func TestFindGroupsWithoutTaggedDescribeProducesNothing(t *testing.T) {
	sources := []string{
		"const answer = 42;\n",
		"describe('auth', () => {\n  it('example:case', () => {\n    run();\n  });\n});\n",
		"it('example:orphan', () => {\n  run();\n});\n",
	}
	for _, source := range sources {
		require.Empty(t, findGroups(t, testFilePath, testPrefix, source))
	}
}

func TestFindGroupsExtractsDedentedExample(t *testing.T) {
	source := `import { line1, line2 } from './lines';

describe('example:auth', () => {
  it('example:case1', () => {
    line1();
    line2();
  });
});
`
	groups := findGroups(t, testFilePath, testPrefix, source)
	require.Equal(t, []types.ExampleGroup{
		{
			Name: "auth",
			Members: []types.ExampleEntry{
				{Label: "case1", Body: fence + "ts\nline1();\nline2();\n" + fence},
			},
		},
	}, groups)
	require.Equal(t, "auth.md", groups[0].FileName())
}

func TestFindGroupsFlattensNestedLeaves(t *testing.T) {
	source := `describe('example:outer', () => {
  describe('wrapper', () => {
    it('example:deep', async () => {
      await deep();
    });
  });
  it('plain test', () => {
    hidden();
  });
  it('example:shallow', function () {
    shallow();
  });
});
`
	groups := findGroups(t, testFilePath, testPrefix, source)
	require.Len(t, groups, 1)
	require.Equal(t, "outer", groups[0].Name)
	require.Equal(t, []types.ExampleEntry{
		{Label: "deep", Body: fence + "ts\nawait deep();\n" + fence},
		{Label: "shallow", Body: fence + "ts\nshallow();\n" + fence},
	}, groups[0].Members)
}

func TestFindGroupsDescendsIntoUntaggedLeaves(t *testing.T) {
	source := `describe('example:outer', () => {
  it('plain', () => {
    it('example:inner', () => {
      x();
    });
  });
});
`
	groups := findGroups(t, testFilePath, testPrefix, source)
	require.Len(t, groups, 1)
	require.Equal(t, []types.ExampleEntry{
		{Label: "inner", Body: fence + "ts\nx();\n" + fence},
	}, groups[0].Members)
}

func TestFindGroupsNestedTaggedDescribeOverlaps(t *testing.T) {
	source := `describe('example:outer', () => {
  it('example:first', () => {
    first();
  });
  describe('example:inner', () => {
    it('example:second', () => {
      second();
    });
  });
});
describe('example:sibling', () => {
  it('example:third', () => {
    third();
  });
});
`
	groups := findGroups(t, testFilePath, testPrefix, source)
	require.Len(t, groups, 3)

	groupNames := []string{groups[0].Name, groups[1].Name, groups[2].Name}
	require.Equal(t, []string{"outer", "inner", "sibling"}, groupNames)

	require.Len(t, groups[0].Members, 2)
	require.Equal(t, "first", groups[0].Members[0].Label)
	require.Equal(t, "second", groups[0].Members[1].Label)
	require.Equal(t, groups[0].Members[1], groups[1].Members[0])
	require.Len(t, groups[1].Members, 1)
	require.Equal(t, "third", groups[2].Members[0].Label)
}

func TestFindGroupsSkipsUntaggedAndNonStringDescriptions(t *testing.T) {
	source := `const dynamicName = 'example:dynamic';
describe(dynamicName, () => {
  it('example:unreachable', () => {
    never();
  });
});
describe('example:mixed', () => {
  it(dynamicName, () => {
    skipped();
  });
  it('not tagged', () => {
    skipped();
  });
  it('example:kept', () => {
    kept();
  });
});
`
	groups := findGroups(t, testFilePath, testPrefix, source)
	require.Len(t, groups, 1)
	require.Equal(t, "mixed", groups[0].Name)
	require.Len(t, groups[0].Members, 1)
	require.Equal(t, "kept", groups[0].Members[0].Label)
}

func TestFindGroupsMissingBodyRendersUndefined(t *testing.T) {
	source := "describe('example:pending', () => {\n  it('example:todo');\n});\n"
	groups := findGroups(t, testFilePath, testPrefix, source)
	require.Len(t, groups, 1)
	require.Equal(t, []types.ExampleEntry{
		{Label: "todo", Body: fence + "ts\n" + extract.MissingBodyText + "\n" + fence},
	}, groups[0].Members)
}

func TestFindGroupsHonoursPrefixAndLanguage(t *testing.T) {
	source := "describe(\x60doc:widgets\x60, () => {\n  it(\"doc:render\", () => {\n    render();\n  });\n  it('example:other', () => {\n    other();\n  });\n});\n"
	groups := findGroups(t, "widgets.spec.js", "doc:", source)
	require.Equal(t, []types.ExampleGroup{
		{
			Name: "widgets",
			Members: []types.ExampleEntry{
				{Label: "render", Body: fence + "js\nrender();\n" + fence},
			},
		},
	}, groups)
}

func TestFindGroupsIgnoresCommentsBetweenArguments(t *testing.T) {
	source := "describe(/* suite */ 'example:commented', () => {\n  it('example:case', /* body */ () => {\n    run();\n  });\n});\n"
	groups := findGroups(t, testFilePath, testPrefix, source)
	require.Len(t, groups, 1)
	require.Equal(t, "commented", groups[0].Name)
	require.Equal(t, fence+"ts\nrun();\n"+fence, groups[0].Members[0].Body)
}

func TestFindGroupsWithoutMembersStillProducesGroup(t *testing.T) {
	groups := findGroups(t, testFilePath, testPrefix, "describe('example:empty', () => {});\n")
	require.Len(t, groups, 1)
	require.Equal(t, "empty", groups[0].Name)
	require.Empty(t, groups[0].Members)
}

func TestDescriptionRequiresCallWithStringLiteral(t *testing.T) {
	source := "describe('example:x', noop);\nnotACall;\ndescribe();\n"
	tree, parseError := syntax.NewParser().Parse(context.Background(), testFilePath, []byte(source))
	require.NoError(t, parseError)
	defer tree.Close()

	var descriptions []string
	var nonCallsRejected int
	syntax.Walk(tree.Root(), func(node syntax.Node) {
		description, found := extract.Description(node)
		if !node.IsCall() {
			if !found {
				nonCallsRejected++
			}
			return
		}
		if found {
			descriptions = append(descriptions, description)
		}
	})
	require.Equal(t, []string{"example:x"}, descriptions)
	require.Positive(t, nonCallsRejected)
}
