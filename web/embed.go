package web

import "embed"

// Public embeds the single-page application bundle.
//
//go:embed public
var Public embed.FS
