// Package theme resolves and persists the light/dark preference.
package theme

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"todotui/internal/model"
	"todotui/internal/storage"
)

// Applier receives every resolved theme value and applies it to the
// presentation layer (exactly one of two mutually exclusive palettes).
type Applier interface {
	Apply(model.Theme)
}

type NoopApplier struct{}

func (NoopApplier) Apply(model.Theme) {}

// Controller is a two-state machine over {light, dark}. Initial state
// comes from the stored preference when valid, else the terminal's
// dark-background signal, else light. Every resolution, initial or
// toggled, is applied and persisted.
type Controller struct {
	current model.Theme
	store   storage.Store
	ctx     context.Context
	logger  *log.Logger
	applier Applier
	dark    func() bool
}

func NewController(ctx context.Context, store storage.Store, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		store:   store,
		ctx:     ctx,
		logger:  logger,
		applier: NoopApplier{},
		dark:    termenv.HasDarkBackground,
	}
}

func (c *Controller) SetApplier(a Applier) {
	if a != nil {
		c.applier = a
	}
}

// SetDarkSignal overrides the environment dark-background probe.
func (c *Controller) SetDarkSignal(f func() bool) {
	if f != nil {
		c.dark = f
	}
}

// Resolve determines the initial theme and applies it.
func (c *Controller) Resolve() model.Theme {
	c.current = c.initial()
	c.apply()
	return c.current
}

func (c *Controller) initial() model.Theme {
	raw, err := c.store.Load(c.ctx, storage.KeyTheme)
	if err == nil {
		if stored := model.Theme(raw); stored.IsValid() {
			return stored
		}
		c.logger.Warn("ignoring invalid stored theme", "value", raw)
	} else if !errors.Is(err, storage.ErrNotFound) {
		c.logger.Error("load theme preference", "err", err)
	}
	if c.dark() {
		return model.ThemeDark
	}
	return model.ThemeLight
}

func (c *Controller) Current() model.Theme {
	return c.current
}

// Toggle flips the theme unconditionally, applies and persists it.
func (c *Controller) Toggle() model.Theme {
	c.current = c.current.Opposite()
	c.apply()
	return c.current
}

func (c *Controller) apply() {
	c.applier.Apply(c.current)
	if err := c.store.Save(c.ctx, storage.KeyTheme, string(c.current)); err != nil {
		c.logger.Error("save theme preference", "err", err)
	}
}
