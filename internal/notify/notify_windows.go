//go:build windows

package notify

import (
	"golang.org/x/sys/windows"
)

const (
	mbOK              = 0x00000000
	mbIconError       = 0x00000010
	mbIconInformation = 0x00000040
	mbSetForeground   = 0x00010000
)

type messageBox struct{}

func newPlatform() Notifier {
	return messageBox{}
}

func (messageBox) Info(title, message string) {
	show(title, message, mbOK|mbIconInformation|mbSetForeground)
}

func (messageBox) Error(title, message string) {
	show(title, message, mbOK|mbIconError|mbSetForeground)
}

func show(title, message string, flags uint32) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	_, _ = windows.MessageBox(0, text, caption, flags)
}
