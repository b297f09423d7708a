package backend

import (
	"context"
	"log/slog"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
)

// WindowState holds the backend resources of a single window.
type WindowState struct {
	Bundle
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

// Bundle is the set of backend services shared by every window.
type Bundle struct {
	Source *Source
}

func NewBundle(ctx context.Context, logger *slog.Logger, opts ...Option) (Bundle, error) {
	src, err := NewSource(ctx, logger, opts...)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{Source: src}, nil
}
