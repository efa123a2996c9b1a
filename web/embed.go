// Package web holds the browser client's static files. The service serves
// them from the binary unless static.dir points at a directory on disk.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Assets returns the static tree rooted at static/, so "index.html" is the
// page served at "/". main.wasm and wasm_exec.js are copied in by
// `make wasm` and are absent from a plain checkout.
func Assets() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static is a literal directory embedded above.
		panic(err)
	}
	return sub
}
