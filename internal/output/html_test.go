package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/exampledoc/internal/output"
)

func TestRenderHTMLConvertsFencesAndLinks(t *testing.T) {
	markdown := "# Documentation\n- [auth](auth.md)\n\n" + fence + "ts\nconst a = 1 < 2;\n" + fence + "\n"
	rendered, renderError := output.RenderHTML([]byte(markdown))
	require.NoError(t, renderError)
	html := string(rendered)
	require.Contains(t, html, "<h1>Documentation</h1>")
	require.Contains(t, html, `<a href="auth.md">auth</a>`)
	require.Contains(t, html, `<code class="language-ts">const a = 1 &lt; 2;`)
	require.True(t, strings.HasSuffix(strings.TrimSpace(html), "</pre>"))
}
