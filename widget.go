package arcbar

// LayoutBox is the part of the host layout the widget resizes.
type LayoutBox interface {
	SetSizeRequest(width, height int)
}

// Widget is the host facing progress indicator. It owns a Config snapshot
// and keeps the host layout box square and in sync with Config.Size.
type Widget struct {
	cfg Config
	box LayoutBox
}

// NewWidget creates a widget and sizes the layout box to match cfg.
// The box may be nil when the widget is not part of a layout.
func NewWidget(cfg Config, box LayoutBox) *Widget {
	w := &Widget{cfg: cfg, box: box}
	w.sizeChanged()
	return w
}

// Config returns a copy of the current configuration.
func (w *Widget) Config() Config {
	return w.cfg
}

// Update applies fn to a copy of the configuration and stores the result.
// Changing the size also resizes the layout box.
func (w *Widget) Update(fn func(*Config)) {
	cfg := w.cfg
	fn(&cfg)

	resized := cfg.Size != w.cfg.Size
	w.cfg = cfg
	if resized {
		w.sizeChanged()
	}
}

// SetProgress is a shorthand for updating the progress value only.
func (w *Widget) SetProgress(progress int) {
	w.Update(func(c *Config) { c.Progress = progress })
}

// SetSize changes the indicator size and the layout box with it.
func (w *Widget) SetSize(size int) {
	w.Update(func(c *Config) { c.Size = size })
}

// Draw renders the current configuration onto s.
func (w *Widget) Draw(s Surface) {
	Render(w.cfg, s)
}

// sizeChanged is the post-set hook for Config.Size.
func (w *Widget) sizeChanged() {
	if w.box == nil {
		return
	}
	w.box.SetSizeRequest(w.cfg.Size, w.cfg.Size)
}
