package resources

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
)

// ErrNoLink is returned when opening a resource without a link.
var ErrNoLink = errors.New("resource has no link")

// Opener hands a URL to the desktop environment.
type Opener interface {
	Open(ctx context.Context, url string) error
}

// BrowserOpener launches the platform's URL handler.
type BrowserOpener struct{}

// Open starts the handler and does not wait for it to exit.
func (BrowserOpener) Open(ctx context.Context, url string) error {
	name, args := browserCommand(runtime.GOOS, url)
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// OpenResource opens r's link with o.
func OpenResource(ctx context.Context, o Opener, r LearningResource) error {
	if !r.HasLink() {
		return ErrNoLink
	}
	return o.Open(ctx, r.Link)
}
