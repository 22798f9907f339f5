package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"wtthemes/internal/catalog"
	"wtthemes/internal/domain"
	"wtthemes/internal/fuzzy"
	"wtthemes/internal/state"
	"wtthemes/internal/theme"
	"wtthemes/internal/viewport"
)

type uiMode int

const (
	normalMode uiMode = iota
	searchingMode
)

// Options wires the model to its collaborators.
type Options struct {
	Loader  *catalog.Loader
	Reducer *state.Reducer
	Watcher viewport.Watcher
	Logger  zerolog.Logger

	// Fs receives downloads.
	Fs          afero.Fs
	DownloadDir string

	// InitialWidth is the terminal width known before the first resize, or 0.
	InitialWidth  int
	StrictCatalog bool
	FetchTimeout  time.Duration
}

type Model struct {
	loader  *catalog.Loader
	reducer *state.Reducer
	watcher viewport.Watcher
	logger  zerolog.Logger

	fs          afero.Fs
	downloadDir string

	strict       bool
	fetchTimeout time.Duration

	state state.State

	keys        keyMap
	help        help.Model
	searchInput textinput.Model
	query       string
	uiMode      uiMode

	err      error
	width    int
	height   int
	showHelp bool
	loading  bool
	message  string

	theme  *theme.Theme
	styles *theme.Styles

	ctx context.Context
}

func NewModel(opts Options) Model {
	si := textinput.New()
	si.Placeholder = "Search themes..."
	si.CharLimit = 60
	si.Width = 30

	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	width, height := 100, 30 // default until the first resize
	if opts.InitialWidth > 0 {
		width = opts.InitialWidth
	}

	m := Model{
		loader:       opts.Loader,
		reducer:      opts.Reducer,
		watcher:      opts.Watcher,
		logger:       opts.Logger,
		fs:           opts.Fs,
		downloadDir:  opts.DownloadDir,
		strict:       opts.StrictCatalog,
		fetchTimeout: opts.FetchTimeout,
		state:        state.Initial(opts.InitialWidth > 0 && opts.Watcher.IsSmall(opts.InitialWidth)),
		keys:         defaultKeyMap(),
		help:         help.New(),
		searchInput:  si,
		uiMode:       normalMode,
		width:        width,
		height:       height,
		loading:      opts.Loader != nil,
		ctx:          context.Background(),
	}
	m.refreshStyles()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	return loadCatalogCmd(m.ctx, m.loader, m.fetchTimeout)
}

// State returns the current snapshot.
func (m Model) State() state.State {
	return m.state
}

// Err is the error that ended the program, if any.
func (m Model) Err() error {
	return m.err
}

// dispatch runs an action through the reducer and restyles the chrome.
func (m *Model) dispatch(a state.Action) error {
	next, err := m.reducer.Reduce(m.state, a)
	m.state = next
	m.refreshStyles()

	if err != nil {
		m.logger.Warn().Err(err).Msgf("%T", a)
	}
	return err
}

func (m *Model) refreshStyles() {
	m.theme = theme.FromState(m.state)
	m.styles = theme.NewStyles(m.theme)
}

// visibleThemes is the filtered list narrowed by the search query.
func (m Model) visibleThemes() []*domain.Theme {
	if m.query == "" {
		return m.state.FilteredThemes
	}

	results := fuzzy.MatchThemes(m.query, m.state.FilteredThemes, fuzzy.DefaultThreshold)
	themes := make([]*domain.Theme, len(results))
	for i, r := range results {
		themes[i] = r.Theme
	}
	return themes
}

func (m Model) activeIndex(themes []*domain.Theme) int {
	for i, t := range themes {
		if t.Name == m.state.ActiveTheme {
			return i
		}
	}
	return -1
}

func nextShade(s domain.Shade, step int) domain.Shade {
	order := []domain.Shade{domain.ShadeDark, domain.ShadeLight, domain.ShadeAny}
	i := 0
	for j, o := range order {
		if o == s {
			i = j
		}
	}
	return order[((i+step)%len(order)+len(order))%len(order)]
}

func isEmptyShade(err error) bool {
	return errors.Is(err, state.ErrNoThemesInShade)
}
