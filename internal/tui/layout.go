package tui

// updateLayout updates component sizes based on window size. The nav bar
// shrinks once the page scrolls, so this runs every frame.
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}

	m.nav.SetWidth(m.Width)
	m.Loading.SetSize(m.Width, m.Height)
	m.Jump.SetSize(m.Width, m.Height)
	m.help.Width = m.Width
	m.bar.Width = max(m.Width/4, 10)

	// The hero fills the screen below the full-size nav bar.
	m.doc.Layout(m.Width, max(m.Height-3-FooterHeight, 1))

	vp := &m.stage.viewport
	height := max(m.Height-m.nav.Height()-FooterHeight, 1)
	if vp.Width != m.Width || vp.Height != height {
		vp.Width = m.Width
		vp.Height = height
		m.publisher.HandleScroll()
	}
}
