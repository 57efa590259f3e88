//go:build windows

package autostart

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

func startupDir() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return "", fmt.Errorf("APPDATA is not set")
	}
	return filepath.Join(appData, `Microsoft\Windows\Start Menu\Programs\Startup`), nil
}

func defaultLinker() Linker {
	return wshLinker{}
}

// wshLinker creates .lnk files through the WScript.Shell automation object.
type wshLinker struct{}

func (wshLinker) CreateShortcut(target, path string) error {
	// COM apartments are per OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		// S_FALSE: COM already initialized on this thread.
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != 1 {
			return fmt.Errorf("CoInitialize failed: %w", err)
		}
	}
	defer ole.CoUninitialize()

	shellObj, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("CreateObject(WScript.Shell) failed: %w", err)
	}
	defer shellObj.Release()

	shellDisp, err := shellObj.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("QueryInterface IDispatch failed: %w", err)
	}
	defer shellDisp.Release()

	scV, err := oleutil.CallMethod(shellDisp, "CreateShortcut", path)
	if err != nil {
		return fmt.Errorf("CreateShortcut failed: %w", err)
	}
	sc := scV.ToIDispatch()
	defer sc.Release()

	if _, err := oleutil.PutProperty(sc, "TargetPath", target); err != nil {
		return fmt.Errorf("set TargetPath failed: %w", err)
	}
	_, _ = oleutil.PutProperty(sc, "WorkingDirectory", filepath.Dir(target))
	_, _ = oleutil.PutProperty(sc, "IconLocation", target)

	if _, err := oleutil.CallMethod(sc, "Save"); err != nil {
		return fmt.Errorf("shortcut Save failed: %w", err)
	}
	return nil
}
