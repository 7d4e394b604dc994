// Package clipboard adapts the system clipboard to model.Clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/dtroode/gophkeeper-tui/internal/model"
)

var _ model.Clipboard = (*System)(nil)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not supported on this system")

// System writes to the OS clipboard.
type System struct {
	unsupported bool
	write       func(string) error
}

func NewSystem() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

func (s *System) WriteAll(text string) error {
	if s.unsupported {
		return ErrUnsupported
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
