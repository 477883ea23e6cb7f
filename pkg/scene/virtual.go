package scene

import "fmt"

// VirtualBody is an in-memory scene with one mesh per region name, all
// sharing a single grey material. It stands in for a model file.
type VirtualBody struct {
	meshes []*virtualMesh
}

type virtualMesh struct {
	key       string
	name      string
	materials []*Material
}

// NewVirtualBody builds a scene whose meshes are named after names
func NewVirtualBody(names []string) *VirtualBody {
	skin := &Material{
		Name:             "skin",
		Standard:         true,
		BaseColor:        [4]float64{0.8, 0.8, 0.8, 1},
		EmissiveStrength: 1,
		source:           -1,
	}

	vb := &VirtualBody{}
	for i, name := range names {
		vb.meshes = append(vb.meshes, &virtualMesh{
			key:       fmt.Sprintf("virtual:%d", i),
			name:      name,
			materials: []*Material{skin},
		})
	}
	return vb
}

func (vb *VirtualBody) Walk(fn func(Mesh)) {
	for _, m := range vb.meshes {
		fn(m)
	}
}

func (m *virtualMesh) Key() string                   { return m.key }
func (m *virtualMesh) Name() string                  { return m.name }
func (m *virtualMesh) Materials() []*Material        { return m.materials }
func (m *virtualMesh) SetMaterials(mats []*Material) { m.materials = mats }
