package update

import (
	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/content"
	"github.com/sandeepkv93/done/internal/details"
	"github.com/sandeepkv93/done/internal/dialog"
	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/nav"
)

type ContextPage int

const (
	ContextAbout ContextPage = iota
	ContextTaskDetails
	ContextSettings
)

func (p ContextPage) String() string {
	switch p {
	case ContextAbout:
		return "about"
	case ContextTaskDetails:
		return "details"
	case ContextSettings:
		return "settings"
	default:
		return "unknown"
	}
}

type ContentMsg struct {
	Msg content.Msg
}

type DetailsMsg struct {
	Msg details.Msg
}

type ToggleContextPageMsg struct {
	Page ContextPage
}

type LaunchURLMsg struct {
	URL string
}

type PopulateListsMsg struct {
	Lists []model.List
}

type WindowCloseMsg struct{}

type WindowNewMsg struct{}

type DialogCancelMsg struct{}

type DialogCompleteMsg struct{}

// DialogUpdateMsg replaces the front dialog page. Sending it with no
// dialog open is a programming error and panics.
type DialogUpdateMsg struct {
	Page dialog.Page
}

type AppThemeMsg struct {
	Theme config.AppTheme
}

// SystemThemeModeChangeMsg carries a config changed outside the app.
type SystemThemeModeChangeMsg struct {
	Config config.Config
}

type ThemeAppliedMsg struct {
	Theme config.AppTheme
	Dark  bool
}

type OpenNewListDialogMsg struct{}

type OpenRenameListDialogMsg struct{}

type OpenDeleteListDialogMsg struct{}

type AddListMsg struct {
	List model.List
}

type DeleteListMsg struct{}

type UpdateListMsg struct {
	List model.List
}

type EscapeMsg struct{}

type NavSelectMsg struct {
	Entity nav.EntityID
}

// BackendErrorMsg reports a failed backend write.
type BackendErrorMsg struct {
	Op  string
	Err error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

// ClearStatusMsg clears the status line if it still shows status Seq.
type ClearStatusMsg struct {
	Seq int
}

type PaletteSubmitMsg struct {
	Input string
}
