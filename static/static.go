// Package static holds the bundled front-end served under /static/.
package static

import (
	"embed"
	"net/http"
)

//go:embed index.html app.js styles.css
var files embed.FS

// FileSystem returns dir when set, otherwise the bundled files.
func FileSystem(dir string) http.FileSystem {
	if dir != "" {
		return http.Dir(dir)
	}
	return http.FS(files)
}
