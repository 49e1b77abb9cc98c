// Package web holds the embedded app shell: a landing view and the dashboard view.
package web

import _ "embed"

//go:embed index.html
var Landing []byte

//go:embed dashboard.html
var Dashboard []byte
