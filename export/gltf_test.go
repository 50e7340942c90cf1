package export_test

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/MarongHappy/Uranium/export"
	"github.com/MarongHappy/Uranium/scene"
)

func TestGLTFDocumentMirrorsHierarchy(t *testing.T) {
	root := scene.NewSceneNode("root")
	a := scene.NewSceneNode("a")
	a.SetPosition(mgl64.Vec3{1, 2, 3})
	a.SetScale(mgl64.Vec3{2, 0.5, 1}, scene.TransformSpaceParent)
	b := scene.NewSceneNode("b")
	root.AddChild(a)
	a.AddChild(b)

	doc := export.GLTFDocument(root)

	if len(doc.Nodes) != 3 {
		t.Fatalf("node count = %d; expected 3", len(doc.Nodes))
	}
	if len(doc.Scenes[0].Nodes) != 1 {
		t.Fatalf("scene roots = %d; expected 1", len(doc.Scenes[0].Nodes))
	}

	rootNode := doc.Nodes[doc.Scenes[0].Nodes[0]]
	if rootNode.Name != "root" || len(rootNode.Children) != 1 {
		t.Fatalf("unexpected root node %+v", rootNode)
	}

	aNode := doc.Nodes[rootNode.Children[0]]
	if aNode.Name != "a" {
		t.Fatalf("child name = %q", aNode.Name)
	}
	if aNode.Translation != [3]float32{1, 2, 3} {
		t.Errorf("translation = %v", aNode.Translation)
	}
	if aNode.Scale != [3]float32{2, 0.5, 1} {
		t.Errorf("scale = %v", aNode.Scale)
	}
	if aNode.Rotation != [4]float32{0, 0, 0, 1} {
		t.Errorf("rotation = %v; expected identity", aNode.Rotation)
	}
	if len(aNode.Children) != 1 || doc.Nodes[aNode.Children[0]].Name != "b" {
		t.Errorf("grandchild missing: %+v", aNode)
	}
}

func TestExportBinaryWritesGlb(t *testing.T) {
	root := scene.NewSceneNode("root")

	var buf bytes.Buffer
	if err := export.ExportBinary(&buf, export.GLTFDocument(root)); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("glTF")) {
		t.Errorf("missing glb magic, got % x", buf.Bytes()[:4])
	}
}
