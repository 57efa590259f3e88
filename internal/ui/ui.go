package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal menu and blocks until the user closes it or ctx is
// cancelled. Cancellation is a normal exit.
func Run(ctx context.Context, opts Options) error {
	if opts.Toggles == nil {
		return fmt.Errorf("ui requires toggles")
	}

	p := tea.NewProgram(New(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return fmt.Errorf("run terminal menu: %w", err)
	}
	return nil
}
