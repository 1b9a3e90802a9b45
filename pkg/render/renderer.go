package render

import (
	"context"
)

// Renderer turns a mirrored form into a byte representation (HTML markup,
// collected answers, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
