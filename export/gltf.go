package export

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/MarongHappy/Uranium/scene"
	"github.com/MarongHappy/Uranium/utils"
)

// GLTFDocument builds a glTF document mirroring the scene hierarchy, one
// glTF node per scene node carrying its decomposed TRS.
func GLTFDocument(root *scene.SceneNode) *gltf.Document {
	doc := gltf.NewDocument()
	rootIndex := addNode(doc, root)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, rootIndex)
	return doc
}

func addNode(doc *gltf.Document, n *scene.SceneNode) uint32 {
	t := n.LocalTransformation()
	node := &gltf.Node{
		Name:        n.Name(),
		Translation: utils.Vec3To32(t.Position),
		Rotation: [4]float32{
			float32(t.Rotation.X()),
			float32(t.Rotation.Y()),
			float32(t.Rotation.Z()),
			float32(t.Rotation.W),
		},
		Scale: utils.Vec3To32(t.Scale),
	}
	index := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, node)
	for _, child := range n.Children() {
		node.Children = append(node.Children, addNode(doc, child))
	}
	return index
}

// ExportBinary writes the document as binary glTF (.glb).
func ExportBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode gltf document")
	}
	return nil
}
