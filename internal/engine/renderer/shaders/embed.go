// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TriangleVertexShader transforms homogeneous 2D vertices by the view matrix.
//
//go:embed triangle.vert
var TriangleVertexShader string

// TriangleFragmentShader outputs the interpolated vertex colour.
//
//go:embed triangle.frag
var TriangleFragmentShader string
