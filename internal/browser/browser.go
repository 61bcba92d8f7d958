// Package browser hands document links to the desktop.
package browser

import (
	"errors"
	"net/url"
	"os"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"

	"fnetgrip/internal/logging"
)

// EnvBrowser overrides the command used to open links
const EnvBrowser = "FNETGRIP_BROWSER"

// ErrUnsupportedURL is returned for anything that is not an absolute http(s) URL
var ErrUnsupportedURL = errors.New("only absolute http(s) links can be opened")

// Opener starts the platform browser for a URL
type Opener struct {
	command func(target string) *exec.Cmd
	copy    func(text string) error
}

// NewOpener returns an opener using the platform default handler
func NewOpener() *Opener {
	return &Opener{
		command: platformCommand,
		copy:    clipboard.WriteAll,
	}
}

func platformCommand(target string) *exec.Cmd {
	if bin := os.Getenv(EnvBrowser); bin != "" {
		return exec.Command(bin, target)
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", target)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		return exec.Command("xdg-open", target)
	}
}

// Validate checks that target can be handed to a browser
func Validate(target string) error {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrUnsupportedURL
	}
	return nil
}

// Open launches the browser detached from this process: no stdio is shared
// and the child is released immediately, so the opened page has no link back.
// Failures are logged and never reported to the caller's UI.
func (o *Opener) Open(target string) {
	logger := logging.Component("browser")
	if err := Validate(target); err != nil {
		logger.Warn().Str("url", target).Err(err).Msg("refusing to open link")
		return
	}

	cmd := o.command(target)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		logger.Warn().Str("url", target).Err(err).Msg("could not start browser")
		return
	}
	pid := cmd.Process.Pid
	// reap in the background so the child never becomes a zombie
	go func() { _ = cmd.Wait() }()
	logger.Info().Str("url", target).Int("pid", pid).Msg("opened link")
}

// Copy places target on the system clipboard
func (o *Opener) Copy(target string) error {
	return o.copy(target)
}
