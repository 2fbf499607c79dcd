package animation

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/medley-go/common"
	"github.com/Carmen-Shannon/medley-go/engine/model"
	"github.com/Carmen-Shannon/medley-go/engine/timeline"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Channel identifiers a bone layer is probed for when building the
// attachment tree. A layer either carries one combined Transformation
// matrix channel or separate Position/Scale/Rotation channels.
const (
	ChannelTransformation = "Transformation"
	ChannelPosition       = "Position"
	ChannelScale          = "Scale"
	ChannelRotation       = "Rotation"
)

// channelPair couples the main and overlay sampler for one bone channel.
// Both samplers come from Animations over the same Timeline, so a pair is
// always complete.
type channelPair[T any] struct {
	main, overlay *Parameter[T]
}

// boneAttachment is one node of the hierarchy mirroring the skeleton. It
// borrows its samplers from the owning DeformerAnimation's two Animations;
// the tree structure is fixed after construction.
type boneAttachment struct {
	bone *model.Bone

	transform *channelPair[common.Matrix]
	position  *channelPair[common.Vector3]
	scale     *channelPair[common.Vector3]
	rotation  *channelPair[common.Quaternion]

	hasWorkingAttachment bool

	children []*boneAttachment
}

// DeformerAnimation couples a main and an overlay Animation over one
// shared Timeline to a Skeleton, resolving per-bone relative channels into
// the absolute deformation matrix array each frame. The attachment tree is
// fixed after construction; only channel values and the overlay influence
// vary at runtime.
type DeformerAnimation struct {
	main, overlay *Animation
	skeleton      *model.Skeleton
	hierarchy     []*boneAttachment

	overlayInfluence float32
	fade             *gween.Tween

	deformerSize int
}

// NewDeformerAnimation builds the attachment hierarchy for a skeleton over
// a timeline. Both the main and the overlay playback instance are created
// from the same timeline; bones are matched to layers by identifier, and
// bones with no matching channels contribute identity transforms without
// blocking their descendants.
//
// Parameters:
//   - tl: the shared source timeline (must not be nil)
//   - skeleton: the bone hierarchy to animate (must not be nil)
//
// Returns:
//   - *DeformerAnimation: the resolver
//   - error: argument error on nil inputs, or any Animation construction
//     error
func NewDeformerAnimation(tl *timeline.Timeline, skeleton *model.Skeleton) (*DeformerAnimation, error) {
	if skeleton == nil {
		return nil, fmt.Errorf("deformer animation requires a non-nil skeleton")
	}

	main, err := NewAnimation(tl)
	if err != nil {
		return nil, fmt.Errorf("main animation: %w", err)
	}
	overlay, err := NewAnimation(tl)
	if err != nil {
		return nil, fmt.Errorf("overlay animation: %w", err)
	}

	d := &DeformerAnimation{
		main:         main,
		overlay:      overlay,
		skeleton:     skeleton,
		deformerSize: int(skeleton.HighestIndex()) + 1,
	}

	for _, root := range skeleton.Roots {
		d.hierarchy = append(d.hierarchy, d.attach(root))
	}

	return d, nil
}

// attach builds the attachment node for one bone and recurses into its
// children.
func (d *DeformerAnimation) attach(bone *model.Bone) *boneAttachment {
	att := &boneAttachment{bone: bone}

	if bone.Identifier != "" {
		if mainLayer, ok := d.main.TryLayer(bone.Identifier); ok {
			// Both Animations are built from the same Timeline, so the
			// overlay layer and channels mirror the main ones exactly.
			overlayLayer, _ := d.overlay.TryLayer(bone.Identifier)

			if mt, ok := TryParameterOf[common.Matrix](mainLayer, ChannelTransformation); ok {
				ot, _ := TryParameterOf[common.Matrix](overlayLayer, ChannelTransformation)
				att.transform = &channelPair[common.Matrix]{main: mt, overlay: ot}
			} else {
				if mp, ok := TryParameterOf[common.Vector3](mainLayer, ChannelPosition); ok {
					op, _ := TryParameterOf[common.Vector3](overlayLayer, ChannelPosition)
					att.position = &channelPair[common.Vector3]{main: mp, overlay: op}
				}
				if ms, ok := TryParameterOf[common.Vector3](mainLayer, ChannelScale); ok {
					os, _ := TryParameterOf[common.Vector3](overlayLayer, ChannelScale)
					att.scale = &channelPair[common.Vector3]{main: ms, overlay: os}
				}
				if mr, ok := TryParameterOf[common.Quaternion](mainLayer, ChannelRotation); ok {
					or, _ := TryParameterOf[common.Quaternion](overlayLayer, ChannelRotation)
					att.rotation = &channelPair[common.Quaternion]{main: mr, overlay: or}
				}
			}
		}
	}
	att.hasWorkingAttachment = att.transform != nil || att.position != nil || att.scale != nil || att.rotation != nil

	for _, child := range bone.Children {
		att.children = append(att.children, d.attach(child))
	}
	return att
}

// Main returns the primary playback instance.
func (d *DeformerAnimation) Main() *Animation { return d.main }

// Overlay returns the secondary playback instance blended in at runtime.
func (d *DeformerAnimation) Overlay() *Animation { return d.overlay }

// OverlayInfluence returns the current overlay blend factor in [0, 1].
func (d *DeformerAnimation) OverlayInfluence() float32 { return d.overlayInfluence }

// SetOverlayInfluence sets the overlay blend factor, clamped to [0, 1].
// 0 plays only the main animation, 1 only the overlay. Setting the
// influence directly cancels any running fade.
//
// Parameters:
//   - influence: the target blend factor
func (d *DeformerAnimation) SetOverlayInfluence(influence float32) {
	d.fade = nil
	d.overlayInfluence = clamp01(influence)
}

// FadeOverlay ramps the overlay influence to a target value over a
// duration using an easing function, advanced by Update. A zero or
// negative duration applies the target immediately.
//
// Parameters:
//   - target: the target blend factor, clamped to [0, 1]
//   - duration: the ramp duration
//   - easing: the easing curve (nil uses linear)
func (d *DeformerAnimation) FadeOverlay(target float32, duration time.Duration, easing ease.TweenFunc) {
	target = clamp01(target)
	if duration <= 0 {
		d.fade = nil
		d.overlayInfluence = target
		return
	}
	if easing == nil {
		easing = ease.Linear
	}
	d.fade = gween.New(d.overlayInfluence, target, float32(duration.Seconds()), easing)
}

// Update advances both playback instances and any running influence fade.
//
// Parameters:
//   - delta: elapsed time since the previous update (must not be negative)
//
// Returns:
//   - error: argument error on negative delta
func (d *DeformerAnimation) Update(delta time.Duration) error {
	if delta < 0 {
		return fmt.Errorf("update delta must not be negative, got %v", delta)
	}

	if d.fade != nil {
		value, finished := d.fade.Update(float32(delta.Seconds()))
		d.overlayInfluence = clamp01(value)
		if finished {
			d.fade = nil
		}
	}

	if err := d.main.Update(delta); err != nil {
		return err
	}
	return d.overlay.Update(delta)
}

// GetCurrentDeformer resolves the skeleton's absolute bone transforms at
// the current playback positions. The array has one slot per deformer
// index (HighestIndex + 1); slots whose bones carry no channels inherit
// their parent's absolute transform under the bone's offset matrix. Two
// bones sharing an index overwrite in depth-first order - no error is
// raised.
//
// Returns:
//   - *Deformer: the absolute bone transform array
func (d *DeformerAnimation) GetCurrentDeformer() *Deformer {
	matrices := make([]common.Matrix, d.deformerSize)
	for i := range matrices {
		matrices[i] = common.MatrixIdentity()
	}

	for _, root := range d.hierarchy {
		d.calculateAbsoluteTransformation(root, common.MatrixIdentity(), matrices)
	}

	return NewDeformer(matrices)
}

// calculateAbsoluteTransformation resolves one attachment node and
// recurses depth-first: relative * parentAbsolute composes the absolute
// transform, and bones with a deformer index write offset * absolute into
// the output array.
func (d *DeformerAnimation) calculateAbsoluteTransformation(att *boneAttachment, parentAbsolute common.Matrix, out []common.Matrix) {
	relative := d.relativeTransform(att)
	absolute := relative.Mul(parentAbsolute)

	if idx := att.bone.Index; idx != model.NoIndex && int(idx) < len(out) {
		out[idx] = att.bone.OffsetMatrix.Mul(absolute)
	}

	for _, child := range att.children {
		d.calculateAbsoluteTransformation(child, absolute, out)
	}
}

// relativeTransform computes the blended local transform for one bone:
// either the combined Transformation channel blend, or Scale * Rotation *
// Translation composed from the decomposed channel blends. A bone with no
// working attachment is identity.
func (d *DeformerAnimation) relativeTransform(att *boneAttachment) common.Matrix {
	if !att.hasWorkingAttachment {
		return common.MatrixIdentity()
	}

	influence := d.overlayInfluence

	if att.transform != nil {
		main := att.transform.main.CurrentValue()
		if influence <= 0 {
			return main
		}
		return main.Lerp(att.transform.overlay.CurrentValue(), influence)
	}

	position := common.Vector3{}
	if att.position != nil {
		position = att.position.main.CurrentValue()
		if influence > 0 {
			position = position.Lerp(att.position.overlay.CurrentValue(), influence)
		}
	}

	// A bone without a scale channel keeps unit scale; the zero vector
	// would collapse the whole subtree.
	scale := common.Vector3{1, 1, 1}
	if att.scale != nil {
		scale = att.scale.main.CurrentValue()
		if influence > 0 {
			scale = scale.Lerp(att.scale.overlay.CurrentValue(), influence)
		}
	}

	rotation := common.QuaternionIdentity()
	if att.rotation != nil {
		rotation = att.rotation.main.CurrentValue()
		if influence > 0 {
			rotation = rotation.Slerp(att.rotation.overlay.CurrentValue(), influence)
		}
	}

	return common.ComposeTransform(scale, rotation, position)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
