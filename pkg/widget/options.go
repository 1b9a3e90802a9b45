package widget

import (
	"github.com/google/uuid"
	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formmirror/pkg/formurl"
	"github.com/goliatone/go-formmirror/pkg/render"
	"github.com/goliatone/go-formmirror/pkg/submit"
)

// Option configures a Widget.
type Option func(*Widget)

// WithParser injects the URL parsing capability used for extraction and
// submission.
func WithParser(parser formurl.Parser) Option {
	return func(w *Widget) {
		if parser != nil {
			w.parser = parser
		}
	}
}

// WithNavigator injects the capability that opens the response URL.
func WithNavigator(nav submit.Navigator) Option {
	return func(w *Widget) {
		if nav != nil {
			w.navigator = nav
		}
	}
}

// WithRenderer selects the renderer used by Render.
func WithRenderer(renderer render.Renderer) Option {
	return func(w *Widget) {
		if renderer != nil {
			w.renderer = renderer
		}
	}
}

// WithPrefix changes the question key prefix.
func WithPrefix(prefix string) Option {
	return func(w *Widget) {
		w.prefix = prefix
	}
}

// WithThemeSelector resolves Config.Theme through a go-theme selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(w *Widget) {
		w.themes = selector
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Widget) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithID fixes the instance id used to namespace element ids.
func WithID(id string) Option {
	return func(w *Widget) {
		w.id = id
	}
}

func newInstanceID() string {
	return "formmirror-" + uuid.NewString()
}
