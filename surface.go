package loupe

// Surface is the host the controller zooms: anything exposing a mutable
// scale and a normalized scale center. The controller holds a non-owning
// reference and mutates nothing else.
//
// Scale is a positive unit-less multiplier. ScaleCenter is the anchor point
// scale changes are visually anchored around, each axis normalized to [0, 1]
// within the surface's viewport.
//
// Zoom limits are the surface's responsibility: the controller passes scale
// factors through arithmetic as-is, and SetScale may clamp.
type Surface interface {
	Scale() float64
	SetScale(s float64)
	ScaleCenter() Vec2
	SetScaleCenter(p Vec2)

	// UpdateScaleCenter recomputes the scale center from a point in screen
	// pixel coordinates.
	UpdateScaleCenter(client Vec2)

	// SetTransforming hints that a continuous transform is starting (true)
	// or has ended (false), so the surface may trade rendering quality for
	// per-frame cost while the scale is changing every frame.
	SetTransforming(active bool)
}

// ScrollSurface is an optional extension for surfaces that do their own
// scroll/pan input handling. The controller detaches the surface's scroll
// listeners for the duration of a pinch so continuous zoom and scroll never
// fight over the same touch stream, and reattaches them when the pinch ends.
type ScrollSurface interface {
	AttachScrollListeners()
	DetachScrollListeners()
}
