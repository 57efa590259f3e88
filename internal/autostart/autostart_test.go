package autostart

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type fileLinker struct {
	err    error
	target string
}

func (f *fileLinker) CreateShortcut(target, path string) error {
	if f.err != nil {
		return f.err
	}
	f.target = target
	return os.WriteFile(path, []byte(target), 0o644)
}

func newTestRegistrar(t *testing.T, linker Linker) *Registrar {
	t.Helper()
	return &Registrar{
		Dir:     filepath.Join(t.TempDir(), "Startup"),
		AppName: "NoSleep",
		Target:  "/opt/nosleep/nosleep.exe",
		Linker:  linker,
	}
}

func TestRegistrar_RegisterAndUnregister(t *testing.T) {
	linker := &fileLinker{}
	r := newTestRegistrar(t, linker)

	if r.IsRegistered() {
		t.Fatal("IsRegistered = true before Register")
	}
	if err := r.Register(); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if !r.IsRegistered() {
		t.Fatal("IsRegistered = false after Register")
	}
	if linker.target != r.Target {
		t.Fatalf("shortcut target = %q, want %q", linker.target, r.Target)
	}
	if filepath.Base(r.ShortcutPath()) != "NoSleep.lnk" {
		t.Fatalf("ShortcutPath = %q, want NoSleep.lnk", r.ShortcutPath())
	}

	if err := r.Unregister(); err != nil {
		t.Fatalf("Unregister returned error: %v", err)
	}
	if r.IsRegistered() {
		t.Fatal("IsRegistered = true after Unregister")
	}
}

func TestRegistrar_UnregisterMissingIsSuccess(t *testing.T) {
	r := newTestRegistrar(t, &fileLinker{})
	if err := r.Unregister(); err != nil {
		t.Fatalf("Unregister returned error: %v", err)
	}
}

func TestRegistrar_RegisterErrorIncludesPath(t *testing.T) {
	r := newTestRegistrar(t, &fileLinker{err: errors.New("access is denied")})

	err := r.Register()
	if err == nil {
		t.Fatal("Register returned nil error")
	}
	if !strings.Contains(err.Error(), r.ShortcutPath()) || !strings.Contains(err.Error(), "access is denied") {
		t.Fatalf("Register error = %q, want path and cause", err)
	}
	if r.IsRegistered() {
		t.Fatal("failed Register must not leave a shortcut")
	}
}

func TestRegistrar_UnregisterErrorIncludesPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory removal semantics differ on windows")
	}
	r := newTestRegistrar(t, &fileLinker{})
	// A non-empty directory in place of the shortcut cannot be removed.
	if err := os.MkdirAll(filepath.Join(r.ShortcutPath(), "child"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	err := r.Unregister()
	if err == nil {
		t.Fatal("Unregister returned nil error")
	}
	if !strings.Contains(err.Error(), "remove autostart shortcut") {
		t.Fatalf("Unregister error = %q", err)
	}
}

func TestRegistrar_NoLinker(t *testing.T) {
	r := newTestRegistrar(t, nil)
	if err := r.Register(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Register error = %v, want ErrUnsupported", err)
	}
}
