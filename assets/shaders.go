package assets

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// tintSrc washes the playfield toward a dimension colour and darkens the
// corners.
var tintSrc = []byte(`//kage:unit pixels
package main

var Tint vec4
var Strength float
var Center vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	d := distance(dstPos.xy, Center) / length(Center)
	shade := 1.0 - 0.35*d*d
	return vec4(mix(c.rgb, c.rgb*Tint.rgb, Strength)*shade, c.a)
}
`)

var (
	// DimensionShader tints the world layer for the active dimension
	DimensionShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error
	DimensionShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return err
	}
	return nil
}
