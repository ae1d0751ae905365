// Package assets embeds the static files of the HTML launcher.
package assets

import _ "embed"

// Launcher is the html/template source of the launcher page.
//
//go:embed launcher.html.tpl
var Launcher string

// Style is inlined into the launcher page.
//
//go:embed style.css
var Style string
