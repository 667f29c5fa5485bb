//go:build !windows
// +build !windows

package greeting

func showMessageBox(_, _ string) error {
	return ErrNoNativeDialog
}
