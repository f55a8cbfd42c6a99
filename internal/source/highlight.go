package source

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"

	"github.com/andyrewlee/marquee/internal/logging"
)

const defaultStyleName = "catppuccin-mocha"

// Highlighter colors source code for the terminal.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// NewHighlighter resolves a chroma style by name, falling back to the
// default style.
func NewHighlighter(styleName string) *Highlighter {
	if styleName == "" {
		styleName = defaultStyleName
	}
	return &Highlighter{
		style:     styles.Get(styleName),
		formatter: formatters.Get("terminal256"),
	}
}

// Language detects the language of a file from its name and contents.
func Language(path, text string) string {
	return enry.GetLanguage(filepath.Base(path), []byte(text))
}

// Highlight returns text with ANSI colors. Unknown languages and lexer
// failures return the text unchanged.
func (h *Highlighter) Highlight(path, text string) string {
	if text == "" {
		return text
	}
	lexer := h.lexerFor(path, text)
	if lexer == nil {
		return text
	}
	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, text)
	if err != nil {
		logging.Debug("highlight %s: %v", path, err)
		return text
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		logging.Debug("highlight %s: %v", path, err)
		return text
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *Highlighter) lexerFor(path, text string) chroma.Lexer {
	if lang := Language(path, text); lang != "" {
		if lexer := lexers.Get(lang); lexer != nil {
			return lexer
		}
	}
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return lexer
	}
	return lexers.Analyse(text)
}
