package common

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/config"
	"github.com/wabridge/hookctl/pkg/ui/keymap"
	"github.com/wabridge/hookctl/pkg/ui/styles"
)

// Common is a struct all components should embed.
type Common struct {
	ctx           context.Context
	Width, Height int
	Styles        *styles.Styles
	KeyMap        *keymap.KeyMap
	Renderer      *lipgloss.Renderer
	Output        *termenv.Output
	Logger        *log.Logger
}

// NewCommon returns a new Common struct.
func NewCommon(ctx context.Context, out *lipgloss.Renderer, width, height int) Common {
	if ctx == nil {
		ctx = context.TODO()
	}
	return Common{
		ctx:      ctx,
		Width:    width,
		Height:   height,
		Renderer: out,
		Output:   out.Output(),
		Styles:   styles.DefaultStyles(out),
		KeyMap:   keymap.DefaultKeyMap(),
		Logger:   log.FromContext(ctx).WithPrefix("ui"),
	}
}

// SetSize sets the width and height of the common struct.
func (c *Common) SetSize(width, height int) {
	c.Width = width
	c.Height = height
}

// Context returns the context.
func (c *Common) Context() context.Context {
	return c.ctx
}

// Config returns the config.
func (c *Common) Config() *config.Config {
	return config.FromContext(c.ctx)
}

// Client returns the API client.
func (c *Common) Client() *client.Client {
	return client.FromContext(c.ctx)
}

// ColorProfile returns the color profile of the renderer.
func (c *Common) ColorProfile() termenv.Profile {
	return c.Renderer.ColorProfile()
}
