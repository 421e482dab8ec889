package service

import "github.com/atotto/clipboard"

// Clipboard receives copied prompt text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard. It needs xclip, xsel or
// wl-clipboard on Linux.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
