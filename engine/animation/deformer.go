package animation

import "github.com/Carmen-Shannon/medley-go/common"

// Deformer is the output of skeletal resolution: one absolute bone
// transform per deformer index, consumed by a downstream skinning stage.
type Deformer struct {
	matrices []common.Matrix
}

// NewDeformer wraps a computed matrix array.
//
// Parameters:
//   - matrices: absolute bone transforms indexed by bone index
//
// Returns:
//   - *Deformer: the deformer
func NewDeformer(matrices []common.Matrix) *Deformer {
	return &Deformer{matrices: matrices}
}

// Matrices returns the absolute bone transforms indexed by bone index.
// The returned slice is the deformer's backing storage - do not modify.
//
// Returns:
//   - []common.Matrix: the bone transform array
func (d *Deformer) Matrices() []common.Matrix { return d.matrices }

// Len returns the number of bone slots in the deformer.
func (d *Deformer) Len() int { return len(d.matrices) }

// Bytes returns a raw byte view of the matrix array for GPU buffer
// uploads. The view shares memory with the deformer - do not modify, and
// do not retain past the deformer's lifetime.
//
// Returns:
//   - []byte: the matrix array as bytes
func (d *Deformer) Bytes() []byte { return common.SliceToBytes(d.matrices) }
