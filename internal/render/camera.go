package render

// CellWidth is the number of terminal columns one map tile occupies.
const CellWidth = 2

// Camera translates between world coordinates and screen coordinates.
type Camera struct {
	OffsetX, OffsetY      int
	ViewWidth, ViewHeight int // in terminal columns / rows
}

// NewCamera creates a camera centered on (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Resize changes the viewport, keeping the current center.
func (c *Camera) Resize(viewW, viewH int) {
	cx := c.OffsetX + c.tilesWide()/2
	cy := c.OffsetY + c.ViewHeight/2
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.Center(cx, cy)
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.tilesWide()/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Follow centers on (cx, cy) but keeps a map of mapW×mapH tiles from
// scrolling off screen when it fits.
func (c *Camera) Follow(cx, cy, mapW, mapH int) {
	c.Center(cx, cy)
	c.OffsetX = clampOffset(c.OffsetX, mapW, c.tilesWide())
	c.OffsetY = clampOffset(c.OffsetY, mapH, c.ViewHeight)
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = (wx - c.OffsetX) * CellWidth
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx+CellWidth <= c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) (int, int) {
	return sx/CellWidth + c.OffsetX, sy + c.OffsetY
}

func (c *Camera) tilesWide() int { return c.ViewWidth / CellWidth }

func clampOffset(off, size, view int) int {
	if size <= view {
		// Whole map fits: pin it to the top-left.
		return 0
	}
	return max(0, min(off, size-view))
}
