package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/MarongHappy/Uranium/utils"
)

// SceneNode is an entity in the scene hierarchy. Its transform is kept
// decomposed (position, rotation, scale) relative to the parent node.
// Scale matrices are assumed diagonal: scaling under a rotated parent is
// not supported.
type SceneNode struct {
	name string

	parent   *SceneNode
	children []*SceneNode

	position mgl64.Vec3
	rotation mgl64.Quat
	scale    mgl64.Vec3
}

func NewSceneNode(name string) *SceneNode {
	return &SceneNode{
		name:     name,
		rotation: mgl64.QuatIdent(),
		scale:    mgl64.Vec3{1, 1, 1},
	}
}

func (n *SceneNode) Name() string { return n.name }

func (n *SceneNode) String() string {
	return fmt.Sprintf("SceneNode(%q)", n.name)
}

func (n *SceneNode) Parent() *SceneNode { return n.parent }

func (n *SceneNode) Children() []*SceneNode {
	childs := make([]*SceneNode, len(n.children))
	copy(childs, n.children)
	return childs
}

func (n *SceneNode) AddChild(child *SceneNode) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *SceneNode) RemoveChild(child *SceneNode) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Find walks the subtree rooted at n and returns the first node with the
// given name, or nil.
func (n *SceneNode) Find(name string) *SceneNode {
	if n.name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// LocalTransformation returns a snapshot of the node's local transform.
func (n *SceneNode) LocalTransformation() Transformation {
	return Transformation{
		Position: n.position,
		Rotation: n.rotation,
		Scale:    n.scale,
	}
}

// SetTransformation overwrites the node's local transform wholesale,
// discarding everything applied since the snapshot was taken.
func (n *SceneNode) SetTransformation(t Transformation) {
	n.position = t.Position
	n.rotation = t.Rotation
	n.scale = t.Scale
}

func (n *SceneNode) Position() mgl64.Vec3 { return n.position }

func (n *SceneNode) SetPosition(position mgl64.Vec3) {
	n.position = position
}

func (n *SceneNode) Rotation() mgl64.Quat { return n.rotation }

func (n *SceneNode) SetRotation(rotation mgl64.Quat) {
	n.rotation = rotation
}

func (n *SceneNode) Rotate(q mgl64.Quat, space TransformSpace) {
	if space == TransformSpaceLocal {
		n.rotation = n.rotation.Mul(q)
	} else {
		n.rotation = q.Mul(n.rotation)
	}
	n.rotation = n.rotation.Normalize()
}

func (n *SceneNode) Translate(translation mgl64.Vec3, space TransformSpace) {
	switch space {
	case TransformSpaceLocal:
		n.position = n.position.Add(n.rotation.Rotate(translation))
	case TransformSpaceParent:
		n.position = n.position.Add(translation)
	case TransformSpaceWorld:
		if n.parent == nil {
			n.position = n.position.Add(translation)
			return
		}
		inv := n.parent.WorldTransformation().Inv()
		n.position = n.position.Add(inv.Mul4x1(translation.Vec4(0)).Vec3())
	}
}

// GetScale returns the node's local scale.
func (n *SceneNode) GetScale() mgl64.Vec3 { return n.scale }

// ancestorScale is the component-wise product of local scales of all
// ancestors, excluding the node itself.
func (n *SceneNode) ancestorScale() mgl64.Vec3 {
	s := mgl64.Vec3{1, 1, 1}
	for p := n.parent; p != nil; p = p.parent {
		s = utils.MulV3(s, p.scale)
	}
	return s
}

func (n *SceneNode) WorldScale() mgl64.Vec3 {
	return utils.MulV3(n.ancestorScale(), n.scale)
}

// SetScale sets the node's scale in the given space. A zero ancestor scale
// component makes the world conversion degenerate; such axes take the
// requested value as-is.
func (n *SceneNode) SetScale(scale mgl64.Vec3, space TransformSpace) {
	switch space {
	case TransformSpaceLocal, TransformSpaceParent:
		n.scale = scale
	case TransformSpaceWorld:
		ancestor := n.ancestorScale()
		for i := 0; i < 3; i++ {
			if ancestor[i] != 0 {
				n.scale[i] = scale[i] / ancestor[i]
			} else {
				n.scale[i] = scale[i]
			}
		}
	}
}

// Scale multiplies the node's scale component-wise by factor. A zero factor
// component means "leave that axis alone". Parent space additionally scales
// the node's position, making the parent origin the fixed point; world space
// keeps the world origin fixed.
func (n *SceneNode) Scale(factor mgl64.Vec3, space TransformSpace) {
	f := factor
	for i := 0; i < 3; i++ {
		if f[i] == 0 {
			f[i] = 1
		}
	}
	switch space {
	case TransformSpaceLocal:
		n.scale = utils.MulV3(n.scale, f)
	case TransformSpaceParent:
		n.scale = utils.MulV3(n.scale, f)
		n.position = utils.MulV3(n.position, f)
	case TransformSpaceWorld:
		world := n.WorldPosition()
		n.scale = utils.MulV3(n.scale, f)
		n.setWorldPosition(utils.MulV3(world, f))
	}
}

func (n *SceneNode) WorldTransformation() mgl64.Mat4 {
	local := n.LocalTransformation().Matrix()
	if n.parent == nil {
		return local
	}
	return n.parent.WorldTransformation().Mul4(local)
}

func (n *SceneNode) WorldPosition() mgl64.Vec3 {
	return n.WorldTransformation().Col(3).Vec3()
}

func (n *SceneNode) setWorldPosition(position mgl64.Vec3) {
	if n.parent == nil {
		n.position = position
		return
	}
	inv := n.parent.WorldTransformation().Inv()
	n.position = inv.Mul4x1(position.Vec4(1)).Vec3()
}
