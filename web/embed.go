// Package web bundles the single-page UI into the binary.
package web

import (
	_ "embed"
)

//go:embed index.html
var indexHTML []byte

// Index returns the UI page bytes.
func Index() []byte {
	return indexHTML
}
