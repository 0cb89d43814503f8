package commands

import (
	"github.com/atotto/clipboard"

	"proposer/internal/domain"
)

// systemClipboard adapts the OS clipboard to domain.Clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

var _ domain.Clipboard = systemClipboard{}
