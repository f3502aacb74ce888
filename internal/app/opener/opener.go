//go:generate mockgen -source=opener.go -destination=opener_mock.go -package=opener
package opener

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"kadry/internal/app/errors"
	"kadry/internal/config/logger"
)

// Opener hands a link target to the desktop: documents, mail addresses and web pages
type Opener interface {
	Open(target string) error
}

// OSOpenCmd allows mocking the open command
var OSOpenCmd = func(target string) *exec.Cmd {
	var cmd string

	var args []string

	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = "xdg-open"
		args = []string{target}
	case "windows":
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler", target}
	case "darwin":
		cmd = "open"
		args = []string{target}
	default:
		return nil
	}

	return exec.Command(cmd, args...) //nolint:gosec
}

type opener struct {
	log logger.Logger
}

// New creates an opener backed by the platform open command
func New(log logger.Logger) Opener {
	return &opener{log: log.WithComponent("OPENER")}
}

// Open resolves target and starts the platform open command without waiting for it
func (o *opener) Open(target string) error {
	resolved, err := Resolve(target)
	if err != nil {
		return err
	}

	cmd := OSOpenCmd(resolved)
	if cmd == nil {
		return fmt.Errorf("%w: unsupported platform %s", errors.ErrFailedToOpenLink, runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToOpenLink, err)
	}

	o.log.Debug().Str("target", resolved).Msg("Opened link")

	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

// Resolve keeps URLs as they are and turns document paths into existing absolute paths
func Resolve(target string) (string, error) {
	if target == "" {
		return "", fmt.Errorf("%w: empty target", errors.ErrFailedToOpenLink)
	}

	if hasScheme(target) {
		return target, nil
	}

	path, err := filepath.Abs(filepath.FromSlash(target))
	if err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToOpenLink, err)
	}

	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %w", errors.ErrFailedToOpenLink, err)
	}

	return path, nil
}

// hasScheme reports whether target is a URL; single letter schemes are Windows drive letters
func hasScheme(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}

	return len(u.Scheme) > 1
}
