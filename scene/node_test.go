package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHierarchy(t *testing.T) {
	root := NewSceneNode("root")
	a := NewSceneNode("a")
	b := NewSceneNode("b")
	root.AddChild(a)
	a.AddChild(b)

	if b.Parent() != a || a.Parent() != root {
		t.Fatal("parent links broken")
	}
	if root.Find("b") != b {
		t.Error("Find did not locate grandchild")
	}
	if root.Find("missing") != nil {
		t.Error("Find located a missing node")
	}

	// Re-adding under a new parent detaches from the old one.
	root.AddChild(b)
	if len(a.Children()) != 0 {
		t.Errorf("old parent kept child: %v", a.Children())
	}
	if b.Parent() != root {
		t.Error("reparenting failed")
	}

	if !root.RemoveChild(b) {
		t.Error("RemoveChild failed")
	}
	if root.RemoveChild(b) {
		t.Error("RemoveChild removed twice")
	}
}

func TestWorldScaleComposition(t *testing.T) {
	root := NewSceneNode("root")
	child := NewSceneNode("child")
	root.AddChild(child)

	root.SetScale(mgl64.Vec3{2, 2, 2}, TransformSpaceParent)
	child.SetScale(mgl64.Vec3{3, 1, 0.5}, TransformSpaceParent)

	if got := child.WorldScale(); got != (mgl64.Vec3{6, 2, 1}) {
		t.Errorf("world scale = %v; expected (6,2,1)", got)
	}

	// Setting a world scale divides out the ancestor product.
	child.SetScale(mgl64.Vec3{4, 4, 4}, TransformSpaceWorld)
	if got := child.GetScale(); got != (mgl64.Vec3{2, 2, 2}) {
		t.Errorf("local scale = %v; expected (2,2,2)", got)
	}
	if got := child.WorldScale(); got != (mgl64.Vec3{4, 4, 4}) {
		t.Errorf("world scale = %v; expected (4,4,4)", got)
	}
}

func TestScaleZeroFactorIsIdentity(t *testing.T) {
	node := NewSceneNode("n")
	node.SetScale(mgl64.Vec3{2, 3, 4}, TransformSpaceParent)

	node.Scale(mgl64.Vec3{0, 2, 0}, TransformSpaceLocal)

	if got := node.GetScale(); got != (mgl64.Vec3{2, 6, 4}) {
		t.Errorf("scale = %v; expected (2,6,4)", got)
	}
}

func TestScaleParentSpaceScalesPosition(t *testing.T) {
	node := NewSceneNode("n")
	node.SetPosition(mgl64.Vec3{1, 2, 3})

	node.Scale(mgl64.Vec3{2, 2, 2}, TransformSpaceParent)

	if got := node.Position(); got != (mgl64.Vec3{2, 4, 6}) {
		t.Errorf("position = %v; expected (2,4,6)", got)
	}
	if got := node.GetScale(); got != (mgl64.Vec3{2, 2, 2}) {
		t.Errorf("scale = %v; expected (2,2,2)", got)
	}
}

func TestScaleLocalSpaceKeepsPosition(t *testing.T) {
	node := NewSceneNode("n")
	node.SetPosition(mgl64.Vec3{1, 2, 3})

	node.Scale(mgl64.Vec3{2, 2, 2}, TransformSpaceLocal)

	if got := node.Position(); got != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("position = %v; expected unchanged (1,2,3)", got)
	}
}

func TestTranslateSpaces(t *testing.T) {
	parent := NewSceneNode("parent")
	parent.SetPosition(mgl64.Vec3{10, 0, 0})
	child := NewSceneNode("child")
	parent.AddChild(child)

	child.Translate(mgl64.Vec3{1, 0, 0}, TransformSpaceParent)
	if got := child.Position(); got != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("parent-space translate: position = %v", got)
	}

	// Parent has no rotation or scale, so a world-space move is the same
	// delta in parent coordinates.
	child.Translate(mgl64.Vec3{0, 1, 0}, TransformSpaceWorld)
	if got := child.Position(); got != (mgl64.Vec3{1, 1, 0}) {
		t.Errorf("world-space translate: position = %v", got)
	}
}

func TestTransformationSnapshotRestore(t *testing.T) {
	node := NewSceneNode("n")
	node.SetPosition(mgl64.Vec3{1, 2, 3})
	node.SetScale(mgl64.Vec3{2, 2, 2}, TransformSpaceParent)
	node.Rotate(mgl64.QuatRotate(1.0, mgl64.Vec3{0, 1, 0}), TransformSpaceLocal)

	snapshot := node.LocalTransformation()

	node.SetPosition(mgl64.Vec3{9, 9, 9})
	node.Scale(mgl64.Vec3{3, 3, 3}, TransformSpaceParent)
	node.SetTransformation(snapshot)

	if got := node.LocalTransformation(); got != snapshot {
		t.Errorf("restored transformation %+v; expected %+v", got, snapshot)
	}
}

func TestWorldTransformationTranslation(t *testing.T) {
	parent := NewSceneNode("parent")
	parent.SetPosition(mgl64.Vec3{1, 0, 0})
	parent.SetScale(mgl64.Vec3{2, 2, 2}, TransformSpaceParent)
	child := NewSceneNode("child")
	child.SetPosition(mgl64.Vec3{1, 0, 0})
	parent.AddChild(child)

	// Child local (1,0,0) under a parent scaled x2 at (1,0,0): world (3,0,0).
	if got := child.WorldPosition(); !got.ApproxEqual(mgl64.Vec3{3, 0, 0}) {
		t.Errorf("world position = %v; expected (3,0,0)", got)
	}
}
