// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// WaterVertexShader displaces the flat plane by the wave elevation.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader colors fragments by interpolated elevation.
//
//go:embed water.frag
var WaterFragmentShader string
