package output

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

const errorRenderHTMLFormat = "render markdown as HTML: %w"

var markdownRenderer = goldmark.New()

// RenderHTML converts markdown into an HTML fragment.
func RenderHTML(markdown []byte) ([]byte, error) {
	var buffer bytes.Buffer
	if convertError := markdownRenderer.Convert(markdown, &buffer); convertError != nil {
		return nil, fmt.Errorf(errorRenderHTMLFormat, convertError)
	}
	return buffer.Bytes(), nil
}
