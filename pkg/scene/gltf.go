package scene

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qmuntal/gltf"
)

const emissiveStrengthExt = "KHR_materials_emissive_strength"

// GLTFScene adapts a glTF document to Scene. Each node with a mesh is one
// Mesh whose materials are those of its primitives. Nodes sharing a glTF
// mesh also share its primitives, so a highlight on one shows on all.
type GLTFScene struct {
	doc       *gltf.Document
	originals []*Material // one per document material at load time
	meshes    []*gltfMesh
	slots     map[[2]int]int // (mesh, primitive) -> material index holding its clone
}

type gltfMesh struct {
	node      int
	mesh      int
	name      string
	materials []*Material
}

// LoadGLTF opens a .gltf or .glb file
func LoadGLTF(path string) (*GLTFScene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading model %s: %w", path, err)
	}
	return NewGLTFScene(doc), nil
}

// NewGLTFScene wraps an already decoded document
func NewGLTFScene(doc *gltf.Document) *GLTFScene {
	s := &GLTFScene{
		doc:   doc,
		slots: make(map[[2]int]int),
	}

	for i, gm := range doc.Materials {
		s.originals = append(s.originals, fromGLTF(i, gm))
	}

	visited := make(map[int]bool)
	var visit func(idx int)
	visit = func(idx int) {
		if idx < 0 || idx >= len(doc.Nodes) || visited[idx] {
			return
		}
		visited[idx] = true
		node := doc.Nodes[idx]
		if node.Mesh != nil && *node.Mesh < len(doc.Meshes) {
			s.meshes = append(s.meshes, s.newMesh(idx, *node.Mesh))
		}
		for _, child := range node.Children {
			visit(child)
		}
	}
	for _, root := range rootNodes(doc) {
		visit(root)
	}

	return s
}

func (s *GLTFScene) newMesh(node, mesh int) *gltfMesh {
	name := s.doc.Nodes[node].Name
	if name == "" {
		name = s.doc.Meshes[mesh].Name
	}

	m := &gltfMesh{node: node, mesh: mesh, name: name}
	for _, prim := range s.doc.Meshes[mesh].Primitives {
		var mat *Material
		if prim.Material != nil && *prim.Material < len(s.originals) {
			mat = s.originals[*prim.Material]
		}
		m.materials = append(m.materials, mat)
	}
	return m
}

// rootNodes returns the nodes of the default scene, or every node that is
// nobody's child when the document declares no scenes.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		idx := 0
		if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
			idx = *doc.Scene
		}
		return doc.Scenes[idx].Nodes
	}

	child := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			child[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !child[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func fromGLTF(idx int, gm *gltf.Material) *Material {
	m := &Material{
		Name:             gm.Name,
		Standard:         true,
		BaseColor:        [4]float64{1, 1, 1, 1},
		Emissive:         gm.EmissiveFactor,
		EmissiveStrength: 1,
		source:           idx,
	}
	if gm.PBRMetallicRoughness != nil && gm.PBRMetallicRoughness.BaseColorFactor != nil {
		m.BaseColor = *gm.PBRMetallicRoughness.BaseColorFactor
	}
	if _, unlit := gm.Extensions["KHR_materials_unlit"]; unlit {
		m.Standard = false
	}
	if strength, ok := emissiveStrength(gm.Extensions); ok {
		m.EmissiveStrength = strength
	}
	return m
}

// emissiveStrength reads KHR_materials_emissive_strength. Decoded documents
// carry the extension as raw JSON, documents built in memory as a map.
func emissiveStrength(ext gltf.Extensions) (float64, bool) {
	var raw []byte
	switch v := ext[emissiveStrengthExt].(type) {
	case map[string]any:
		f, ok := v["emissiveStrength"].(float64)
		return f, ok
	case json.RawMessage:
		raw = v
	case []byte:
		raw = v
	default:
		return 0, false
	}

	var payload struct {
		EmissiveStrength *float64 `json:"emissiveStrength"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || payload.EmissiveStrength == nil {
		return 0, false
	}
	return *payload.EmissiveStrength, true
}

// Walk visits mesh nodes depth-first from the scene roots
func (s *GLTFScene) Walk(fn func(Mesh)) {
	for _, m := range s.meshes {
		fn(m)
	}
}

// Document returns the underlying document; call Sync first to see the
// current highlight state.
func (s *GLTFScene) Document() *gltf.Document {
	return s.doc
}

// Sync writes the current materials back into the document. Materials equal
// to their source keep pointing at it; changed ones are written to a
// per-primitive slot that is reused by later passes. When several nodes
// share a glTF mesh, a painted material wins over an unpainted one.
func (s *GLTFScene) Sync() {
	resolved := make(map[[2]int]*Material)
	var order [][2]int
	for _, m := range s.meshes {
		for i, mat := range m.materials {
			if mat == nil || mat.source < 0 || mat.source >= len(s.originals) {
				continue
			}
			key := [2]int{m.mesh, i}
			if _, seen := resolved[key]; !seen {
				order = append(order, key)
				resolved[key] = mat
				continue
			}
			if s.painted(mat) {
				resolved[key] = mat
			}
		}
	}

	usesStrength := false
	for _, key := range order {
		prims := s.doc.Meshes[key[0]].Primitives
		if key[1] >= len(prims) {
			continue
		}
		mat := resolved[key]
		if !s.painted(mat) {
			prims[key[1]].Material = index(mat.source)
			continue
		}

		slot, ok := s.slots[key]
		if !ok {
			slot = len(s.doc.Materials)
			s.doc.Materials = append(s.doc.Materials, &gltf.Material{})
			s.slots[key] = slot
		}
		s.doc.Materials[slot] = toGLTF(s.doc.Materials[mat.source], mat)
		prims[key[1]].Material = index(slot)
		if mat.EmissiveStrength != 1 {
			usesStrength = true
		}
	}

	if usesStrength && !contains(s.doc.ExtensionsUsed, emissiveStrengthExt) {
		s.doc.ExtensionsUsed = append(s.doc.ExtensionsUsed, emissiveStrengthExt)
	}
}

func (s *GLTFScene) painted(mat *Material) bool {
	return *mat != *s.originals[mat.source]
}

// Save syncs and writes the document; a .glb suffix selects binary output
func (s *GLTFScene) Save(path string) error {
	s.Sync()

	var err error
	if strings.HasSuffix(strings.ToLower(path), ".glb") {
		err = gltf.SaveBinary(s.doc, path)
	} else {
		err = gltf.Save(s.doc, path)
	}
	if err != nil {
		return fmt.Errorf("saving model %s: %w", path, err)
	}
	return nil
}

// toGLTF copies the source material and overwrites the color properties
func toGLTF(src *gltf.Material, mat *Material) *gltf.Material {
	out := *src
	out.Name = mat.Name

	pbr := gltf.PBRMetallicRoughness{}
	if src.PBRMetallicRoughness != nil {
		pbr = *src.PBRMetallicRoughness
	}
	base := mat.BaseColor
	pbr.BaseColorFactor = &base
	out.PBRMetallicRoughness = &pbr
	out.EmissiveFactor = mat.Emissive

	ext := make(gltf.Extensions, len(src.Extensions)+1)
	for k, v := range src.Extensions {
		ext[k] = v
	}
	if mat.EmissiveStrength != 1 {
		ext[emissiveStrengthExt] = map[string]any{"emissiveStrength": mat.EmissiveStrength}
	} else {
		delete(ext, emissiveStrengthExt)
	}
	out.Extensions = ext

	return &out
}

func (m *gltfMesh) Key() string                   { return fmt.Sprintf("node:%d", m.node) }
func (m *gltfMesh) Name() string                  { return m.name }
func (m *gltfMesh) Materials() []*Material        { return m.materials }
func (m *gltfMesh) SetMaterials(mats []*Material) { m.materials = mats }

func index(i int) *int {
	return &i
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
