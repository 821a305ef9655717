package platform

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard backs the GUI's clipboard hooks.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// NewSystemClipboard returns the system clipboard, or an in-memory one
// when the system has no supported clipboard utility.
func NewSystemClipboard() Clipboard {
	if clipboard.Unsupported {
		return NewMemoryClipboard()
	}
	return SystemClipboard{}
}

func (SystemClipboard) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (SystemClipboard) WriteText(text string) error {
	return clipboard.WriteAll(text)
}

// MemoryClipboard keeps clipboard text in process.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// NewMemoryClipboard returns an empty in-process clipboard.
func NewMemoryClipboard() *MemoryClipboard {
	return &MemoryClipboard{}
}

func (c *MemoryClipboard) ReadText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *MemoryClipboard) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}
