package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

type AppData struct {
	Header        string
	Sidebar       string
	Main          string
	Context       string
	Dialog        string
	Palette       string
	Help          string
	StatusLine    string
	StatusIsError bool
	Footer        string
	Width         int
}

var (
	accent = lipgloss.AdaptiveColor{Light: "#1f6feb", Dark: "#58a6ff"}
	muted  = lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#8b949e"}
	good   = lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"}
	bad    = lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}
	warm   = lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"}

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	statusStyle = lipgloss.NewStyle().Foreground(good)
	errorStyle  = lipgloss.NewStyle().Foreground(bad)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1)
	dialogStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(accent).Padding(0, 2)
	footerStyle = lipgloss.NewStyle().Foreground(muted)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(muted)
	starStyle   = lipgloss.NewStyle().Foreground(warm)
)

const (
	sidebarWidth = 24
	contextWidth = 36
	minMainWidth = 30
)

func RenderApp(data AppData) string {
	mainWidth := data.Width - sidebarWidth - 4
	if data.Context != "" {
		mainWidth -= contextWidth + 4
	}
	if mainWidth < minMainWidth {
		mainWidth = minMainWidth
	}

	columns := []string{
		panelStyle.Width(sidebarWidth).Render(data.Sidebar),
		panelStyle.Width(mainWidth).Render(data.Main),
	}
	if data.Context != "" {
		columns = append(columns, panelStyle.Width(contextWidth).Render(data.Context))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	lines := []string{headerStyle.Render(data.Header), row}
	if data.Dialog != "" {
		lines = append(lines, dialogStyle.Render(data.Dialog))
	}
	if data.Palette != "" {
		lines = append(lines, data.Palette)
	}
	if data.Help != "" {
		lines = append(lines, panelStyle.Render(data.Help))
	}
	if data.StatusLine != "" {
		if data.StatusIsError {
			lines = append(lines, errorStyle.Render(data.StatusLine))
		} else {
			lines = append(lines, statusStyle.Render(data.StatusLine))
		}
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders md with the glamour style matching the theme.
func RenderMarkdown(md string, dark bool, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if dark {
		style = "dark"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
