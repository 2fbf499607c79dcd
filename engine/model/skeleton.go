// package model holds the skeletal data consumed by the animation system:
// a tree of bones with optional identifiers, optional deformer indices,
// and static bind-pose offset matrices.
package model

import "github.com/Carmen-Shannon/medley-go/common"

// NoIndex marks a bone that carries no deformer slot.
const NoIndex int32 = -1

// Bone is a single node in a skeleton hierarchy.
type Bone struct {
	// Identifier is the bone's name, used to match animation layers.
	// Empty for unnamed helper bones.
	Identifier string

	// Index is the bone's slot in the deformer matrix array, or NoIndex
	// when the bone does not deform the mesh.
	Index int32

	// OffsetMatrix is the bone's static bind-pose offset, premultiplied
	// onto the bone's absolute transform when writing the deformer.
	OffsetMatrix common.Matrix

	// Children are the bone's child bones.
	Children []*Bone
}

// Skeleton is a bone hierarchy for skeletal animation. The tree is fixed
// after construction; animation code builds parallel structures from it
// once and only reads it afterwards.
type Skeleton struct {
	// Roots are the skeleton's root bones.
	Roots []*Bone
}

// Walk visits every bone in depth-first pre-order, passing each bone and
// its parent (nil for roots). Returning false from the visitor stops the
// traversal.
//
// Parameters:
//   - visit: the visitor callback
func (s *Skeleton) Walk(visit func(bone, parent *Bone) bool) {
	var rec func(b, parent *Bone) bool
	rec = func(b, parent *Bone) bool {
		if !visit(b, parent) {
			return false
		}
		for _, c := range b.Children {
			if !rec(c, b) {
				return false
			}
		}
		return true
	}
	for _, r := range s.Roots {
		if !rec(r, nil) {
			return
		}
	}
}

// HighestIndex returns the largest deformer index present in the skeleton,
// or NoIndex when no bone carries one. The deformer array is sized to
// HighestIndex + 1.
//
// Returns:
//   - int32: the highest bone index, or NoIndex
func (s *Skeleton) HighestIndex() int32 {
	highest := NoIndex
	s.Walk(func(b, _ *Bone) bool {
		if b.Index > highest {
			highest = b.Index
		}
		return true
	})
	return highest
}
