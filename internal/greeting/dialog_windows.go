//go:build windows
// +build windows

package greeting

import "golang.org/x/sys/windows"

func showMessageBox(title, message string) error {
	titlePtr, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return err
	}
	messagePtr, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return err
	}
	// Owner-less box: modal to the calling thread, returns once OK is pressed.
	if _, err := windows.MessageBox(0, messagePtr, titlePtr, windows.MB_OK); err != nil {
		return err
	}
	return nil
}
