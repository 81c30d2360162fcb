package update

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/done/internal/config"
	"github.com/sandeepkv93/done/internal/content"
	"github.com/sandeepkv93/done/internal/details"
	"github.com/sandeepkv93/done/internal/dialog"
	"github.com/sandeepkv93/done/internal/effect"
	"github.com/sandeepkv93/done/internal/keybind"
	"github.com/sandeepkv93/done/internal/model"
	"github.com/sandeepkv93/done/internal/nav"
)

const (
	AppName       = "done"
	RepositoryURL = "https://github.com/sandeepkv93/done"

	statusTTL = 4 * time.Second
)

// BuildInfo is set at link time by cmd/done.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// CommitURL links to the build commit, or is empty for dev builds.
func (b BuildInfo) CommitURL() string {
	if b.Commit == "" {
		return ""
	}
	return RepositoryURL + "/commit/" + b.Commit
}

type StatusBar struct {
	Text    string
	IsError bool
	seq     int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Options struct {
	Config        config.Config
	ConfigHandle  *config.Handle
	ConfigChanges <-chan config.Config
	Runner        *effect.Runner
	Logger        *slog.Logger
	Keys          keybind.Table
	// DefaultProvider owns lists created from the new-list dialog.
	DefaultProvider model.Provider
	Build           BuildInfo
}

type Model struct {
	config        config.Config
	configHandle  *config.Handle
	configChanges <-chan config.Config
	runner        *effect.Runner
	logger        *slog.Logger
	keys          keybind.Table

	nav          *nav.Model
	selectedList *model.List
	dialogs      *dialog.Stack
	content      *content.Model
	details      *details.Model

	contextPage     ContextPage
	showContext     bool
	darkTheme       bool
	defaultProvider model.Provider
	build           BuildInfo

	Status      StatusBar
	Palette     CommandPaletteState
	HelpVisible bool
	Quitting    bool

	commandInput textinput.Model
	dialogInput  textinput.Model
	spinner      spinner.Model
	helpModel    help.Model
	width        int
}

func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	keys := opts.Keys
	if keys == nil {
		keys = keybind.Default()
	}
	provider := opts.DefaultProvider
	if !provider.IsValid() {
		provider = model.ProviderComputer
	}
	cfg := opts.Config
	if !cfg.AppTheme.IsValid() {
		cfg = config.Default()
	}

	commandInput := textinput.New()
	commandInput.Placeholder = "new, rename, delete, theme, add, notes, about, settings"
	commandInput.Prompt = "/"

	dialogInput := textinput.New()
	dialogInput.Prompt = "> "
	dialogInput.CharLimit = 128

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	m := Model{
		config:          cfg,
		configHandle:    opts.ConfigHandle,
		configChanges:   opts.ConfigChanges,
		runner:          opts.Runner,
		logger:          logger,
		keys:            keys,
		nav:             nav.New(),
		dialogs:         &dialog.Stack{},
		content:         content.New(),
		details:         details.New(),
		contextPage:     ContextAbout,
		defaultProvider: provider,
		build:           opts.Build,
		commandInput:    commandInput,
		dialogInput:     dialogInput,
		spinner:         spin,
		helpModel:       help.New(),
		width:           120,
	}
	for _, dup := range keys.Duplicates() {
		logger.Warn("duplicate key binding, only the first is used", "chord", dup.String())
	}
	return m
}

// InitCommands are the commands run once at startup.
func (m Model) InitCommands() []effect.Command {
	return []effect.Command{
		effect.FetchLists{Then: func(lists []model.List) tea.Msg { return PopulateListsMsg{Lists: lists} }},
		m.applyTheme(),
	}
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.runner != nil {
		cmds = append(cmds, m.runner.Batch(m.InitCommands()))
	}
	if m.configChanges != nil {
		cmds = append(cmds, waitForConfigCmd(m.configChanges))
	}
	return tea.Batch(cmds...)
}

func waitForConfigCmd(ch <-chan config.Config) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return SystemThemeModeChangeMsg{Config: cfg}
	}
}

func (m Model) applyTheme() effect.Command {
	return effect.ApplyTheme{
		Theme: m.config.AppTheme,
		Then: func(theme config.AppTheme, dark bool) tea.Msg {
			return ThemeAppliedMsg{Theme: theme, Dark: dark}
		},
	}
}

func (m Model) Config() config.Config { return m.config }

func (m Model) SelectedList() (model.List, bool) {
	if m.selectedList == nil {
		return model.List{}, false
	}
	return *m.selectedList, true
}

func (m Model) ContextPage() (ContextPage, bool) { return m.contextPage, m.showContext }
