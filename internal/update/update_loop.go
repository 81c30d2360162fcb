package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/dialog"
	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/views"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !m.content.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)
		return m, cmd
	}

	wasLoading := m.content.Loading()
	next, cmds := m.Step(msg)

	var batch []tea.Cmd
	if next.runner != nil {
		if cmd := next.runner.Batch(cmds); cmd != nil {
			batch = append(batch, cmd)
		}
	}
	if !wasLoading && next.content.Loading() {
		batch = append(batch, next.spinner.Tick)
	}
	if _, ok := msg.(SystemThemeModeChangeMsg); ok && next.configChanges != nil {
		batch = append(batch, waitForConfigCmd(next.configChanges))
	}
	return next, tea.Batch(batch...)
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	header := AppName
	if m.selectedList != nil {
		header = fmt.Sprintf("%s | %s", AppName, m.selectedList.Name)
	}

	var status string
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	return views.RenderApp(views.AppData{
		Header:        header,
		Sidebar:       m.renderNav(),
		Main:          m.renderContent(),
		Context:       m.renderContext(),
		Dialog:        m.renderDialog(),
		Palette:       views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		Help:          m.renderHelpIfVisible(),
		StatusLine:    status,
		StatusIsError: m.Status.IsError,
		Footer:        "keys: ctrl+n new | ctrl+r rename | ctrl+d delete | ctrl+s settings | ctrl+o about | / cmd | ? help | ctrl+q quit",
		Width:         m.width,
	})
}

func (m Model) renderNav() string {
	active := m.nav.ActiveID()
	entries := m.nav.Entries()
	data := make([]views.NavEntryData, 0, len(entries))
	for _, e := range entries {
		data = append(data, views.NavEntryData{Label: e.Label, Active: e.ID == active})
	}
	return views.RenderNav(data)
}

func (m Model) renderContent() string {
	list := m.content.List()
	data := views.ContentPanelData{
		HasList:   list != nil,
		Loading:   m.content.Loading(),
		Spinner:   m.spinner.View(),
		InputView: m.content.InputView(),
	}
	if list != nil {
		data.ListName = list.Name
	}
	cursor := m.content.Cursor()
	for i, task := range m.content.Tasks() {
		data.Tasks = append(data.Tasks, views.TaskRowData{
			Title:     task.Title,
			Priority:  task.Priority.String(),
			Completed: task.Completed,
			Favorite:  task.Favorite,
			Selected:  i == cursor,
		})
	}
	return views.RenderContentPanel(data)
}

func (m Model) renderContext() string {
	if !m.showContext {
		return ""
	}
	switch m.contextPage {
	case ContextAbout:
		version := m.build.Version
		if version == "" {
			version = "dev"
		}
		return views.RenderAboutPanel(views.AboutPanelData{
			AppName:       AppName,
			Version:       version,
			Commit:        shortHash(m.build.Commit),
			Date:          m.build.Date,
			RepositoryURL: RepositoryURL,
			CommitURL:     m.build.CommitURL(),
			Dark:          m.darkTheme,
		})
	case ContextSettings:
		themes := config.AppThemes()
		labels := make([]string, 0, len(themes))
		active := 0
		for i, theme := range themes {
			labels = append(labels, theme.Label())
			if theme == m.config.AppTheme {
				active = i
			}
		}
		return views.RenderSettingsPanel(views.SettingsPanelData{Themes: labels, Active: active})
	case ContextTaskDetails:
		task, ok := m.details.Task()
		if !ok {
			return views.RenderDetailsPanel(views.DetailsPanelData{})
		}
		priorities := model.Priorities()
		names := make([]string, 0, len(priorities))
		for _, p := range priorities {
			names = append(names, p.String())
		}
		return views.RenderDetailsPanel(views.DetailsPanelData{
			HasTask:    true,
			TitleView:  m.details.TitleView(),
			Priority:   int(m.details.Priority()),
			Priorities: names,
			Completed:  task.Completed,
			Favorite:   task.Favorite,
			Notes:      views.RenderMarkdown(task.Notes, m.darkTheme, 32),
		})
	}
	return ""
}

func (m Model) renderDialog() string {
	front, ok := m.dialogs.Front()
	if !ok {
		return ""
	}
	var body string
	switch page := front.(type) {
	case dialog.DeleteItem:
		body = fmt.Sprintf("Delete %q and all of its tasks?", page.Name)
	case dialog.RenameItem:
		body = fmt.Sprintf("Renaming %q", page.From)
	}
	return views.RenderDialog(views.DialogData{
		Title:     front.Title(),
		Body:      body,
		InputView: m.dialogInput.View(),
		Editable:  front.Editable(),
		Queued:    m.dialogs.Len() - 1,
	})
}

func shortHash(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
