package model

import (
	"testing"

	"github.com/Carmen-Shannon/medley-go/common"
)

func testSkeleton() *Skeleton {
	// root(0) -> spine(2) -> arm(1)
	//         -> tail(no index)
	arm := &Bone{Identifier: "arm", Index: 1, OffsetMatrix: common.MatrixIdentity()}
	spine := &Bone{Identifier: "spine", Index: 2, OffsetMatrix: common.MatrixIdentity(), Children: []*Bone{arm}}
	tail := &Bone{Identifier: "tail", Index: NoIndex, OffsetMatrix: common.MatrixIdentity()}
	root := &Bone{Identifier: "root", Index: 0, OffsetMatrix: common.MatrixIdentity(), Children: []*Bone{spine, tail}}
	return &Skeleton{Roots: []*Bone{root}}
}

func TestWalkOrder(t *testing.T) {
	s := testSkeleton()

	var order []string
	var parents []string
	s.Walk(func(bone, parent *Bone) bool {
		order = append(order, bone.Identifier)
		if parent == nil {
			parents = append(parents, "")
		} else {
			parents = append(parents, parent.Identifier)
		}
		return true
	})

	wantOrder := []string{"root", "spine", "arm", "tail"}
	wantParents := []string{"", "root", "spine", "root"}
	if len(order) != len(wantOrder) {
		t.Fatalf("visited %d bones, want %d", len(order), len(wantOrder))
	}
	for i := range wantOrder {
		if order[i] != wantOrder[i] {
			t.Errorf("visit %d = %q, want %q", i, order[i], wantOrder[i])
		}
		if parents[i] != wantParents[i] {
			t.Errorf("parent of %q = %q, want %q", order[i], parents[i], wantParents[i])
		}
	}
}

func TestWalkEarlyStop(t *testing.T) {
	s := testSkeleton()

	var visited int
	s.Walk(func(bone, parent *Bone) bool {
		visited++
		return bone.Identifier != "spine"
	})
	if visited != 2 {
		t.Errorf("visited %d bones after early stop, want 2", visited)
	}
}

func TestHighestIndex(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		if got := testSkeleton().HighestIndex(); got != 2 {
			t.Errorf("HighestIndex = %d, want 2", got)
		}
	})

	t.Run("no indexed bones", func(t *testing.T) {
		s := &Skeleton{Roots: []*Bone{{Identifier: "root", Index: NoIndex}}}
		if got := s.HighestIndex(); got != NoIndex {
			t.Errorf("HighestIndex = %d, want NoIndex", got)
		}
	})

	t.Run("empty skeleton", func(t *testing.T) {
		s := &Skeleton{}
		if got := s.HighestIndex(); got != NoIndex {
			t.Errorf("HighestIndex = %d, want NoIndex", got)
		}
	})
}
