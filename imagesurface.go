package loupe

import "github.com/hajimehoshi/ebiten/v2"

// Default zoom limits for ImageSurface. Enforcing limits is the surface's
// job; the controller passes scale factors through unclamped.
const (
	defaultMinScale = 0.05
	defaultMaxScale = 20.0
)

// ImageSurface renders an *ebiten.Image into a screen-space viewport and
// implements Surface and ScrollSurface.
//
// The image is drawn scaled about the scale center: the normalized anchor
// point of the image stays pinned to the same normalized point of the
// viewport while the scale changes, so zooming feels anchored under the
// user's fingers or cursor. Pan offsets shift the anchored position.
//
// Scroll listeners, when attached, handle plain wheel (vertical pan,
// shift-wheel horizontal) and left-drag pan. Ctrl-modified wheel is left
// alone — it belongs to the zoom controller.
type ImageSurface struct {
	// Viewport is the screen-space rectangle the surface occupies.
	Viewport Rect
	// MinScale and MaxScale bound SetScale.
	MinScale, MaxScale float64
	// PanStep is the pan distance in pixels per wheel notch.
	PanStep float64

	img          *ebiten.Image
	scale        float64
	center       Vec2
	panX, panY   float64
	transforming bool

	scrollAttached bool
	dragging       bool
	dragX, dragY   int

	// Seams for tests; default to the ebiten package functions.
	wheel              func() (float64, float64)
	cursorPosition     func() (int, int)
	keyPressed         func(ebiten.Key) bool
	mouseButtonPressed func(ebiten.MouseButton) bool
}

// NewImageSurface creates a surface showing img in the given viewport, at
// scale 1 with the scale center at the midpoint and scroll listeners
// attached.
func NewImageSurface(img *ebiten.Image, viewport Rect) *ImageSurface {
	return &ImageSurface{
		Viewport:           viewport,
		MinScale:           defaultMinScale,
		MaxScale:           defaultMaxScale,
		PanStep:            40,
		img:                img,
		scale:              1,
		center:             Vec2{X: 0.5, Y: 0.5},
		scrollAttached:     true,
		wheel:              ebiten.Wheel,
		cursorPosition:     ebiten.CursorPosition,
		keyPressed:         ebiten.IsKeyPressed,
		mouseButtonPressed: ebiten.IsMouseButtonPressed,
	}
}

// SetImage replaces the displayed image. Scale, center, and pan are kept;
// call Reset to start fresh for a new image.
func (s *ImageSurface) SetImage(img *ebiten.Image) {
	s.img = img
}

// Reset restores scale 1, a centered anchor, and zero pan.
func (s *ImageSurface) Reset() {
	s.scale = 1
	s.center = Vec2{X: 0.5, Y: 0.5}
	s.panX, s.panY = 0, 0
}

// --- Surface ---

// Scale returns the current scale multiplier.
func (s *ImageSurface) Scale() float64 {
	return s.scale
}

// SetScale sets the scale, clamped to [MinScale, MaxScale].
func (s *ImageSurface) SetScale(v float64) {
	s.scale = clamp(v, s.MinScale, s.MaxScale)
}

// ScaleCenter returns the normalized anchor point.
func (s *ImageSurface) ScaleCenter() Vec2 {
	return s.center
}

// SetScaleCenter sets the normalized anchor point directly.
func (s *ImageSurface) SetScaleCenter(p Vec2) {
	s.center = p
}

// UpdateScaleCenter recomputes the anchor from a screen pixel position,
// clamped so points outside the viewport anchor at the nearest edge.
func (s *ImageSurface) UpdateScaleCenter(client Vec2) {
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		return
	}
	s.center = Vec2{
		X: clamp((client.X-s.Viewport.X)/s.Viewport.Width, 0, 1),
		Y: clamp((client.Y-s.Viewport.Y)/s.Viewport.Height, 0, 1),
	}
}

// SetTransforming records the continuous-transform hint. While active, Draw
// uses nearest filtering: the scale changes every frame anyway, so per-frame
// cost wins over sampling quality until the gesture settles.
func (s *ImageSurface) SetTransforming(active bool) {
	s.transforming = active
}

// Transforming reports whether the continuous-transform hint is set.
func (s *ImageSurface) Transforming() bool {
	return s.transforming
}

// --- ScrollSurface ---

// AttachScrollListeners enables the surface's own wheel and drag panning.
func (s *ImageSurface) AttachScrollListeners() {
	s.scrollAttached = true
}

// DetachScrollListeners disables wheel and drag panning. Called by the zoom
// controller for the duration of a pinch. Any drag in progress is dropped.
func (s *ImageSurface) DetachScrollListeners() {
	s.scrollAttached = false
	s.dragging = false
}

// --- Per-frame input ---

// Update polls scroll input for this frame. Call once per frame before the
// zoom controller's Update. No-op while scroll listeners are detached.
func (s *ImageSurface) Update() {
	if !s.scrollAttached {
		return
	}
	s.updateWheelPan()
	s.updateDragPan()
}

func (s *ImageSurface) updateWheelPan() {
	_, dy := s.wheel()
	if dy == 0 {
		return
	}
	// Ctrl-wheel is the zoom controller's input, not scroll.
	if s.keyPressed(ebiten.KeyControl) ||
		s.keyPressed(ebiten.KeyControlLeft) ||
		s.keyPressed(ebiten.KeyControlRight) {
		return
	}
	if s.keyPressed(ebiten.KeyShift) ||
		s.keyPressed(ebiten.KeyShiftLeft) ||
		s.keyPressed(ebiten.KeyShiftRight) {
		s.panX += dy * s.PanStep
		return
	}
	s.panY += dy * s.PanStep
}

func (s *ImageSurface) updateDragPan() {
	x, y := s.cursorPosition()
	pressed := s.mouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !s.dragging:
		if s.Viewport.Contains(float64(x), float64(y)) {
			s.dragging = true
			s.dragX, s.dragY = x, y
		}
	case pressed && s.dragging:
		s.panX += float64(x - s.dragX)
		s.panY += float64(y - s.dragY)
		s.dragX, s.dragY = x, y
	default:
		s.dragging = false
	}
}

// --- Rendering ---

// Pan returns the current pan offset in screen pixels.
func (s *ImageSurface) Pan() (x, y float64) {
	return s.panX, s.panY
}

// origin returns the screen position of the image's top-left corner: the
// anchor point of the image, scaled, pinned to the same normalized point of
// the viewport, shifted by the pan offset.
func (s *ImageSurface) origin() (x, y float64) {
	w := float64(s.img.Bounds().Dx())
	h := float64(s.img.Bounds().Dy())
	x = s.Viewport.X + s.Viewport.Width*s.center.X - w*s.scale*s.center.X + s.panX
	y = s.Viewport.Y + s.Viewport.Height*s.center.Y - h*s.scale*s.center.Y + s.panY
	return x, y
}

// Draw renders the image into screen with the current scale, anchor, and pan.
func (s *ImageSurface) Draw(screen *ebiten.Image) {
	if s.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear
	if s.transforming {
		op.Filter = ebiten.FilterNearest
	}
	op.GeoM.Scale(s.scale, s.scale)
	op.GeoM.Translate(s.origin())
	screen.DrawImage(s.img, op)
}
