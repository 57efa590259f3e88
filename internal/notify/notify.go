// Package notify shows short user-visible notices.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Notifier shows a notice to the user and returns once it is dismissed or
// written.
type Notifier interface {
	Info(title, message string)
	Error(title, message string)
}

// New returns the platform notifier: a message box on Windows, stderr
// elsewhere.
func New() Notifier {
	return newPlatform()
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8be9fd"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true)
)

// Writer renders notices as styled lines on an io.Writer.
type Writer struct {
	W io.Writer
}

// NewStderr returns a Writer on os.Stderr.
func NewStderr() *Writer {
	return &Writer{W: os.Stderr}
}

func (w *Writer) Info(title, message string) {
	fmt.Fprintf(w.W, "  %s %s %s\n", infoStyle.Render("●"), titleStyle.Render(title), message)
}

func (w *Writer) Error(title, message string) {
	fmt.Fprintf(w.W, "  %s %s %s\n", errorStyle.Render("✖"), titleStyle.Render(title), message)
}
