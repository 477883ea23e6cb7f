// Package scene recolors body-region meshes of a scene graph according to
// organ highlights.
package scene

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Scene is a traversable scene graph
type Scene interface {
	// Walk visits every mesh node, parents before children
	Walk(fn func(Mesh))
}

// Mesh is a named node carrying one material per primitive
type Mesh interface {
	// Key identifies the node for the lifetime of the scene
	Key() string
	Name() string
	Materials() []*Material
	SetMaterials(materials []*Material)
}

// Material holds the color properties the highlighter touches. Only
// Standard (lit PBR) materials are recolored.
type Material struct {
	Name             string
	Standard         bool
	BaseColor        [4]float64 // linear RGBA
	Emissive         [3]float64 // linear RGB
	EmissiveStrength float64

	source int // index of the material this one derives from, -1 if none
}

// Clone returns an independent copy; nil stays nil
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// Paint sets base and emissive color, keeping the base alpha
func (m *Material) Paint(rgb [3]float64, strength float64) {
	m.BaseColor = [4]float64{rgb[0], rgb[1], rgb[2], m.BaseColor[3]}
	m.Emissive = rgb
	m.EmissiveStrength = strength
}

// Meshes returns the meshes of s in traversal order
func Meshes(s Scene) []Mesh {
	var meshes []Mesh
	s.Walk(func(m Mesh) {
		meshes = append(meshes, m)
	})
	return meshes
}

// ParseHex parses "#RRGGBB" (or "RRGGBB") as sRGB and returns linear RGB
func ParseHex(hex string) ([3]float64, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return [3]float64{}, fmt.Errorf("invalid color %q: want #RRGGBB", hex)
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return [3]float64{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	r, g, b := c.LinearRgb()
	return [3]float64{r, g, b}, nil
}
