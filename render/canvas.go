package render

// Canvas binds a Surface to its host Viewport
// It keeps the backing store sized to the viewport and owns the resize listener
type Canvas struct {
	surface  Surface
	viewport Viewport

	width, height int
	listener      int
	mounted       bool
	onResize      func(width, height int)
}

// NewCanvas creates an unmounted canvas
func NewCanvas(surface Surface, viewport Viewport) *Canvas {
	return &Canvas{
		surface:  surface,
		viewport: viewport,
	}
}

// Mount sizes the backing store and registers the resize listener
// onResize runs after every resize with the new backing size and may be nil
// Returns false when no usable surface exists; the canvas stays unmounted
func (c *Canvas) Mount(onResize func(width, height int)) bool {
	if c.mounted {
		return c.Valid()
	}
	if c.surface == nil || c.viewport == nil {
		return false
	}

	c.onResize = onResize
	c.mounted = true
	c.listener = c.viewport.AddResizeListener(c.Resize)
	c.Resize()

	if !c.Valid() {
		c.Teardown()
		return false
	}
	return true
}

// Resize copies the current viewport size into the backing store
func (c *Canvas) Resize() {
	if !c.mounted {
		return
	}
	w, h := c.viewport.ViewportSize()
	c.surface.SetSize(w, h)
	c.width, c.height = c.surface.Size()
	if c.onResize != nil {
		c.onResize(c.width, c.height)
	}
}

// ToLocal converts host pointer coordinates to surface pixels
// ok is false when the canvas is not mounted and the event should be discarded
func (c *Canvas) ToLocal(clientX, clientY float64) (x, y float64, ok bool) {
	if !c.mounted {
		return 0, 0, false
	}
	ox, oy := c.viewport.Origin()
	sx, sy := c.viewport.Scale()
	return (clientX - ox) * sx, (clientY - oy) * sy, true
}

// Teardown removes the resize listener, safe to call repeatedly
func (c *Canvas) Teardown() {
	if !c.mounted {
		return
	}
	c.viewport.RemoveResizeListener(c.listener)
	c.mounted = false
	c.listener = 0
	c.onResize = nil
}

// Valid reports a mounted canvas with a non-empty backing store
func (c *Canvas) Valid() bool {
	return c.mounted && c.width > 0 && c.height > 0
}

// Mounted reports whether the resize listener is registered
func (c *Canvas) Mounted() bool {
	return c.mounted
}

// Size returns the backing-store size applied by the last resize
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Surface returns the drawing surface
func (c *Canvas) Surface() Surface {
	return c.surface
}
