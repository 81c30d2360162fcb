package views

import (
	"fmt"
	"strings"
)

type NavEntryData struct {
	Label  string
	Active bool
}

type TaskRowData struct {
	Title     string
	Priority  string
	Completed bool
	Favorite  bool
	Selected  bool
}

type ContentPanelData struct {
	ListName  string
	HasList   bool
	Loading   bool
	Spinner   string
	Tasks     []TaskRowData
	InputView string
}

type DetailsPanelData struct {
	HasTask    bool
	TitleView  string
	Priority   int
	Priorities []string
	Completed  bool
	Favorite   bool
	Notes      string
}

type AboutPanelData struct {
	AppName       string
	Version       string
	Commit        string
	Date          string
	RepositoryURL string
	CommitURL     string
	Dark          bool
}

type SettingsPanelData struct {
	Themes []string
	Active int
}

type DialogData struct {
	Title     string
	Body      string
	InputView string
	Editable  bool
	Queued    int
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

func RenderNav(entries []NavEntryData) string {
	var b strings.Builder
	b.WriteString("lists:\n")
	if len(entries) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, e := range entries {
		if e.Active {
			b.WriteString(activeStyle.Render("> "+e.Label) + "\n")
			continue
		}
		b.WriteString("  " + e.Label + "\n")
	}
	b.WriteString("\n[tab] next list")
	return b.String()
}

func RenderContentPanel(data ContentPanelData) string {
	if !data.HasList {
		return "no list selected\n\n[ctrl+n] new list"
	}
	var b strings.Builder
	b.WriteString(activeStyle.Render(data.ListName) + "\n")
	if data.Loading {
		b.WriteString(data.Spinner + " loading tasks\n")
		return strings.TrimSuffix(b.String(), "\n")
	}
	if len(data.Tasks) == 0 {
		b.WriteString("  (no tasks)\n")
	}
	for _, task := range data.Tasks {
		b.WriteString(renderTaskRow(task) + "\n")
	}
	b.WriteString("\n" + data.InputView + "\n")
	b.WriteString("actions: [a]add [enter]details [x]done [f]star [p]priority [d]delete")
	return b.String()
}

func renderTaskRow(task TaskRowData) string {
	cursor := " "
	if task.Selected {
		cursor = ">"
	}
	check := "[ ]"
	title := task.Title
	if task.Completed {
		check = "[x]"
		title = doneStyle.Render(title)
	}
	star := " "
	if task.Favorite {
		star = starStyle.Render("*")
	}
	return fmt.Sprintf("%s %s %s %s (%s)", cursor, check, star, title, strings.ToLower(task.Priority))
}

func RenderDetailsPanel(data DetailsPanelData) string {
	if !data.HasTask {
		return "details:\n(no task)"
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(data.TitleView + "\n\n")
	b.WriteString("priority:")
	for i, p := range data.Priorities {
		if i == data.Priority {
			b.WriteString(" " + activeStyle.Render("("+p+")"))
			continue
		}
		b.WriteString(" " + p)
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("completed: %t  favorite: %t\n", data.Completed, data.Favorite))
	if data.Notes != "" {
		b.WriteString("\nnotes:\n" + data.Notes + "\n")
	}
	b.WriteString("\nactions: [e]rename [p]priority [x]done [f]star [d]delete")
	return b.String()
}

func RenderAboutPanel(data AboutPanelData) string {
	var md strings.Builder
	md.WriteString(fmt.Sprintf("# %s\n\n", data.AppName))
	md.WriteString(fmt.Sprintf("Version **%s**\n\n", data.Version))
	if data.Commit != "" {
		md.WriteString(fmt.Sprintf("Commit `%s`", data.Commit))
		if data.Date != "" {
			md.WriteString(fmt.Sprintf(" (%s)", data.Date))
		}
		md.WriteString("\n\n")
	}
	md.WriteString(data.RepositoryURL + "\n")
	out := RenderMarkdown(md.String(), data.Dark, contextWidth)

	keys := "[o] open repository"
	if data.CommitURL != "" {
		keys += " [c] open commit"
	}
	return "about:\n" + out + "\n\n" + keys
}

func RenderSettingsPanel(data SettingsPanelData) string {
	var b strings.Builder
	b.WriteString("settings:\n\nappearance:\n")
	for i, theme := range data.Themes {
		if i == data.Active {
			b.WriteString(activeStyle.Render("(*) "+theme) + "\n")
			continue
		}
		b.WriteString("( ) " + theme + "\n")
	}
	b.WriteString("\n[t] cycle theme")
	return b.String()
}

func RenderDialog(data DialogData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n")
	if data.Body != "" {
		b.WriteString(data.Body + "\n")
	}
	if data.Editable {
		b.WriteString(data.InputView + "\n[enter] save [esc] cancel")
	} else {
		b.WriteString("[enter/y] confirm [esc/n] cancel")
	}
	if data.Queued > 0 {
		b.WriteString(fmt.Sprintf("\n(%d more queued)", data.Queued))
	}
	return b.String()
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n\n%s", strings.Join(data.Bindings, "\n"), data.HelpView)
}
