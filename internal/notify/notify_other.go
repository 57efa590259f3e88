//go:build !windows

package notify

func newPlatform() Notifier {
	return NewStderr()
}
