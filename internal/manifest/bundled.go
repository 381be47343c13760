package manifest

import (
	"embed"
	"io/fs"
)

//go:embed bundled
var bundledFS embed.FS

// Bundled returns the manifests shipped with the harness, rooted so that
// "classpath:apps/weave-scope.json" resolves to bundled/apps/weave-scope.json.
func Bundled() fs.FS {
	sub, err := fs.Sub(bundledFS, "bundled")
	if err != nil {
		panic(err)
	}

	return sub
}
