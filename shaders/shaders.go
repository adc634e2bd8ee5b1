package shaders

import (
	_ "embed"
)

//go:embed glow.wgsl
var GlowWGSL string

//go:embed fullscreen.wgsl
var FullscreenWGSL string
