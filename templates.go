package formmirror

import (
	"io/fs"

	vanilla "github.com/goliatone/go-formmirror/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the class-based stylesheet used with unstyled
// renders.
//
// Typical mount:
//
//	mux.Handle("/formmirror/",
//	  http.StripPrefix("/formmirror/",
//	    http.FileServerFS(formmirror.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
