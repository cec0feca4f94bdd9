package form

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// PrintOpener writes the URL instead of opening it.
type PrintOpener struct {
	W io.Writer
}

func (o PrintOpener) Open(url string) error {
	_, err := fmt.Fprintln(o.W, url)
	return err
}

// BrowserOpener hands the URL to the desktop's default handler.
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
