package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	lineSeparator        = "\n"
	windowsLineSeparator = "\r\n"
	closingBrace         = "}"
	codeFence            = "```"
)

// callbackOpenings are the parameterless callback heads used by describe/it test suites.
// Any other callback shape is left untouched.
var callbackOpenings = []string{
	"async () => {",
	"() => {",
	"async function () {",
	"function () {",
	"async function() {",
	"function() {",
}

// NormalizeBody turns the source of an it callback into top-level code: the callback head and the
// closing brace are removed and the remaining lines are dedented.
func NormalizeBody(text string) string {
	normalized := strings.ReplaceAll(text, windowsLineSeparator, lineSeparator)
	normalized = stripCallbackOpening(normalized)
	normalized = strings.TrimSuffix(normalized, closingBrace)
	return Dedent(normalized)
}

func stripCallbackOpening(text string) string {
	for _, opening := range callbackOpenings {
		if strings.HasPrefix(text, opening+lineSeparator) {
			return text[len(opening)+len(lineSeparator):]
		}
		if strings.HasPrefix(text, opening) {
			return text[len(opening):]
		}
	}
	return text
}

// Dedent removes the indentation shared by every non-blank line. Blank lines lose up to the same
// amount. Text without indented non-blank lines is returned unchanged.
func Dedent(text string) string {
	lines := strings.Split(text, lineSeparator)
	minimumIndentation := -1
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		indentation := leadingWhitespaceWidth(line)
		if minimumIndentation < 0 || indentation < minimumIndentation {
			minimumIndentation = indentation
		}
	}
	if minimumIndentation <= 0 {
		return text
	}
	for index, line := range lines {
		if len(line) <= minimumIndentation {
			lines[index] = ""
			continue
		}
		lines[index] = trimIndentation(line, minimumIndentation)
	}
	return strings.Join(lines, lineSeparator)
}

// trimIndentation drops leading whitespace runes whose combined width stays within width bytes,
// so a multibyte space is never split.
func trimIndentation(line string, width int) string {
	consumed := 0
	for consumed < width {
		character, size := utf8.DecodeRuneInString(line[consumed:])
		if !unicode.IsSpace(character) || consumed+size > width {
			break
		}
		consumed += size
	}
	return line[consumed:]
}

// FencedBlock wraps body in a markdown code fence tagged with language. Blank lines at either end
// of body are dropped so the fences hug the code.
func FencedBlock(body string, language string) string {
	return codeFence + language + lineSeparator + trimBlankEdges(body) + lineSeparator + codeFence
}

func trimBlankEdges(text string) string {
	lines := strings.Split(text, lineSeparator)
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	end := len(lines)
	for end > start && isBlank(lines[end-1]) {
		end--
	}
	return strings.Join(lines[start:end], lineSeparator)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func leadingWhitespaceWidth(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}
