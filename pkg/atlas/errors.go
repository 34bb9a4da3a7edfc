package atlas

import "errors"

// Compiler errors. Everything here is a defect in the caller's document or
// configuration, never a transient condition — the pipeline is a pure
// transform and nothing is retried. Conditions that upstream editors
// produce as normal artifacts (unsupported cel kinds, pixels placed outside
// the frame, layers excluded by a filter) are silent skips, not errors.
var (
	// ErrCelLinkCycle reports a linked-cel chain that revisits a cel it
	// already walked through and therefore cannot terminate.
	ErrCelLinkCycle = errors.New("cel link chain revisits a cel")

	// ErrFrameSizeMismatch reports frames of differing sizes presented to
	// the packer, which only handles uniform grids.
	ErrFrameSizeMismatch = errors.New("frames passed to packer differ in size")

	// ErrEmptyDocument reports a compile of a document with no frames.
	ErrEmptyDocument = errors.New("document has no frames")

	// ErrTagOutOfRange reports a tag whose frame range falls outside the
	// document. Unlike pixel placement, a malformed tag is a document
	// defect and is never clamped silently.
	ErrTagOutOfRange = errors.New("tag frame range outside document bounds")

	// ErrFrameOutOfRange reports a 1-based frame number outside the
	// document at the single-frame entry point.
	ErrFrameOutOfRange = errors.New("frame number outside document bounds")
)
