// Package open hands files to the operating system's default application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/huepick/huepick/constant"
)

// Start opens path with the default handler, or with app when it is not empty, without waiting for it to exit.
func Start(path, app string) error {
	cmd, err := Command(runtime.GOOS, path, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command builds the launcher invocation for the given GOOS.
func Command(goos, path, app string) (*exec.Cmd, error) {
	if app != "" {
		switch goos {
		case constant.Windows:
			return exec.Command("cmd", "/C", "start", "", app, path), nil
		case constant.Darwin:
			return exec.Command("open", "-a", app, path), nil
		case constant.Linux:
			return exec.Command(app, path), nil
		case constant.Android:
			return exec.Command("termux-open", "--choose", path), nil
		}
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}

	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", path), nil
	case constant.Darwin:
		return exec.Command("open", path), nil
	case constant.Linux:
		return exec.Command("xdg-open", path), nil
	case constant.Android:
		return exec.Command("termux-open", path), nil
	}
	return nil, fmt.Errorf("unsupported OS: %s", goos)
}
