package gltfutils

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/offmesh/off"
)

// ExportDocument builds a single mesh glTF scene from a triangle document.
func ExportDocument(d *off.Document, name string) (*gltf.Document, error) {
	if err := d.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Cannot export %q", name)
	}

	doc := gltf.NewDocument()

	positions := make([][3]float32, len(d.Vertices))
	for i, v := range d.Vertices {
		positions[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}
	positionAccessor := modeler.WritePosition(doc, positions)

	indices := make([]uint32, 0, len(d.Faces)*3)
	for _, f := range d.Faces {
		for _, idx := range f {
			indices = append(indices, uint32(idx))
		}
	}
	indicesAccessor := modeler.WriteIndices(doc, indices)

	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:        "default",
		DoubleSided: true,
	})

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Indices:    gltf.Index(indicesAccessor),
				Attributes: map[string]uint32{"POSITION": positionAccessor},
				Material:   gltf.Index(0),
			},
		},
	})

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})

	return doc, nil
}

func ExportBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrapf(err, "Failed to encode glb")
	}
	return nil
}
