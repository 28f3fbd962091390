package tui

type confirmModel struct {
	noteID int64
	title  string
}

func (m confirmModel) View() string {
	content := "Delete \"" + valueOrDash(m.title) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
