package scene

import (
	"strings"

	"go.uber.org/zap"

	"github.com/evanschultz/medcase-visualizer/pkg/models"
)

const DefaultEmissiveIntensity = 0.4

// Applied records which mesh a highlight landed on
type Applied struct {
	Highlight models.OrganHighlight
	MeshKey   string
	MeshName  string
}

// Result is the outcome of one Apply pass
type Result struct {
	Applied []Applied
	Missing []models.OrganHighlight
	Invalid []models.OrganHighlight // unparseable color
}

// ForMesh returns the highlights applied to the mesh with the given key
func (r Result) ForMesh(key string) []models.OrganHighlight {
	var out []models.OrganHighlight
	for _, a := range r.Applied {
		if a.MeshKey == key {
			out = append(out, a.Highlight)
		}
	}
	return out
}

// Identification is what a mesh click resolves to
type Identification struct {
	MeshName    string
	OrganName   string
	Description string
	Matched     bool
}

// Message is the text shown for a clicked mesh
func (id Identification) Message() string {
	if id.Matched && id.Description != "" {
		return id.Description
	}
	if id.Matched {
		return "Clicked: " + id.OrganName
	}
	return "Clicked: " + id.MeshName
}

// Highlighter applies organ highlights to a scene. Every pass restores the
// original materials and reapplies all highlights.
//
// Organ-to-mesh resolution is best-effort: the first mesh in traversal
// order whose name contains the organ name (case-insensitive) wins.
type Highlighter struct {
	log       *zap.Logger
	intensity float64

	scene      Scene
	originals  map[string][]*Material
	highlights []models.OrganHighlight
}

// NewHighlighter creates a highlighter; intensity <= 0 selects the default
func NewHighlighter(log *zap.Logger, intensity float64) *Highlighter {
	if log == nil {
		log = zap.NewNop()
	}
	if intensity <= 0 {
		intensity = DefaultEmissiveIntensity
	}
	return &Highlighter{
		log:       log,
		intensity: intensity,
		originals: make(map[string][]*Material),
	}
}

// Apply resets every mesh of s to a private clone of its original materials
// and paints the first matching mesh of each highlight.
func (h *Highlighter) Apply(s Scene, highlights []models.OrganHighlight) Result {
	if s != h.scene {
		h.scene = s
		h.originals = make(map[string][]*Material)
	}
	h.highlights = append([]models.OrganHighlight(nil), highlights...)

	var meshes []Mesh
	s.Walk(func(m Mesh) {
		original, ok := h.originals[m.Key()]
		if !ok {
			original = append([]*Material(nil), m.Materials()...)
			h.originals[m.Key()] = original
		}

		clones := make([]*Material, len(original))
		for i, mat := range original {
			clones[i] = mat.Clone()
		}
		m.SetMaterials(clones)
		meshes = append(meshes, m)
	})

	var result Result
	for _, hl := range highlights {
		rgb, err := ParseHex(hl.Color)
		if err != nil {
			h.log.Warn("skipping highlight with invalid color",
				zap.String("organ", hl.OrganName),
				zap.String("color", hl.Color),
				zap.Error(err))
			result.Invalid = append(result.Invalid, hl)
			continue
		}

		mesh := findMesh(meshes, hl.OrganName)
		if mesh == nil {
			h.log.Warn("mesh not found for organ, check mesh names",
				zap.String("organ", hl.OrganName))
			result.Missing = append(result.Missing, hl)
			continue
		}

		for _, mat := range mesh.Materials() {
			if mat != nil && mat.Standard {
				mat.Paint(rgb, h.intensity)
			}
		}
		result.Applied = append(result.Applied, Applied{
			Highlight: hl,
			MeshKey:   mesh.Key(),
			MeshName:  mesh.Name(),
		})
	}

	h.log.Debug("applied highlights",
		zap.Int("meshes", len(meshes)),
		zap.Int("applied", len(result.Applied)),
		zap.Int("missing", len(result.Missing)))

	return result
}

// Identify resolves a clicked mesh name against the current highlights
func (h *Highlighter) Identify(meshName string) Identification {
	lower := strings.ToLower(meshName)
	for _, hl := range h.highlights {
		if strings.Contains(lower, strings.ToLower(hl.OrganName)) {
			return Identification{
				MeshName:    meshName,
				OrganName:   hl.OrganName,
				Description: hl.Description,
				Matched:     true,
			}
		}
	}
	return Identification{MeshName: meshName}
}

func findMesh(meshes []Mesh, organ string) Mesh {
	organ = strings.ToLower(organ)
	for _, m := range meshes {
		if strings.Contains(strings.ToLower(m.Name()), organ) {
			return m
		}
	}
	return nil
}
