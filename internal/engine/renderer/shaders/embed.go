// Package shaders embeds the renderer's GLSL sources.
package shaders

import "embed"

// FS holds every *.vert and *.frag file of this directory.
//
//go:embed *.vert *.frag
var FS embed.FS
