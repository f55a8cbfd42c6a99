package common

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/x/ansi"
)

var (
	// ErrNothingToCopy is returned when the content has no visible text.
	ErrNothingToCopy = errors.New("nothing to copy")
	// ErrNoClipboard is returned when no clipboard utility is installed.
	ErrNoClipboard = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")
)

// CopyToClipboard puts the plain text of the content, without styling
// escapes or trailing newlines, on the system clipboard.
func CopyToClipboard(text string) error {
	plain := plainText(text)
	if strings.TrimSpace(plain) == "" {
		return ErrNothingToCopy
	}
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return clipboard.WriteAll(plain)
}

func plainText(text string) string {
	return strings.TrimRight(ansi.Strip(text), "\n")
}
