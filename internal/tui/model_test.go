package tui

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wtthemes/internal/catalog"
	"wtthemes/internal/domain"
	"wtthemes/internal/palette"
	"wtthemes/internal/state"
	"wtthemes/internal/viewport"
)

const testCatalog = `[
	{"name":"beta dark","background":"#101010","black":"#000000","white":"#eeeeee"},
	{"name":"Alpha Dark","background":"#000000","black":"#000000","white":"#ffffff","red":"#ff5555"},
	{"name":"Gamma Light","background":"#ffffff","black":"#000000","white":"#ffffff"}
]`

const darkOnlyCatalog = `[
	{"name":"Only Dark","background":"#000000","black":"#000000","white":"#ffffff"}
]`

func newTestModel(t *testing.T, catalogJSON string, strict bool) (Model, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/themes/colour-schemes.json", []byte(catalogJSON), 0644))

	m := NewModel(Options{
		Loader:        catalog.NewLoader("/themes", zerolog.Nop(), catalog.WithFs(fs)),
		Reducer:       state.NewReducer(palette.NewPicker(rand.New(rand.NewPCG(1, 2)))),
		Watcher:       viewport.NewWatcher(100),
		Logger:        zerolog.Nop(),
		Fs:            fs,
		DownloadDir:   "/downloads",
		InitialWidth:  120,
		StrictCatalog: strict,
	})
	return m, fs
}

// loadModel runs the initial catalog fetch through Update.
func loadModel(t *testing.T, m Model) Model {
	t.Helper()

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, catalogLoadedMsg{}, msg)

	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func names(themes []*domain.Theme) []string {
	out := make([]string, len(themes))
	for i, th := range themes {
		out[i] = th.Name
	}
	return out
}

func TestNewModel_InitialState(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	s := m.State()

	assert.Empty(t, s.Themes)
	assert.Empty(t, s.FilteredThemes)
	assert.Equal(t, domain.ShadeDark, s.ThemeShade)
	assert.Equal(t, state.DefaultPrimaryColour, s.PrimaryColour)
	assert.Equal(t, state.DefaultBackgroundColour, s.BackgroundColour)
	assert.False(t, s.IsSmallScreenSize)
	assert.True(t, m.loading)
}

func TestNewModel_NarrowTerminalStartsSmall(t *testing.T) {
	m := NewModel(Options{
		Reducer:      state.NewReducer(palette.NewPicker(nil)),
		Watcher:      viewport.NewWatcher(100),
		Logger:       zerolog.Nop(),
		InitialWidth: 60,
	})

	assert.True(t, m.State().IsSmallScreenSize)
	assert.Nil(t, m.Init())
}

func TestUpdate_CatalogLoaded(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)
	s := m.State()

	assert.Equal(t, []string{"Alpha Dark", "beta dark", "Gamma Light"}, names(s.Themes))
	assert.Equal(t, []string{"Alpha Dark", "beta dark"}, names(s.FilteredThemes))
	assert.Equal(t, "Alpha Dark", s.ActiveTheme)

	// loading selects a theme but keeps the default colours
	assert.Equal(t, state.DefaultPrimaryColour, s.PrimaryColour)
	assert.Equal(t, state.DefaultBackgroundColour, s.BackgroundColour)
	assert.False(t, m.loading)
}

func TestUpdate_CatalogFailed(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)

	updated, cmd := m.Update(catalogFailedMsg{err: assert.AnError})
	m = updated.(Model)

	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Empty(t, m.State().Themes)
	assert.NoError(t, m.Err())
	assert.Contains(t, m.View(), "No themes loaded.")
}

func TestUpdate_Navigation(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)

	m, _ = press(t, m, runes("j"))
	s := m.State()
	assert.Equal(t, "beta dark", s.ActiveTheme)
	assert.Equal(t, "#101010", s.BackgroundColour)
	assert.Equal(t, "#eeeeee", s.PrimaryColour, "white is the only slot readable on #101010")

	// clamps at the end of the list
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "beta dark", m.State().ActiveTheme)

	m, _ = press(t, m, runes("k"))
	assert.Equal(t, "Alpha Dark", m.State().ActiveTheme)
	assert.Equal(t, "#000000", m.State().BackgroundColour)

	m, _ = press(t, m, runes("G"))
	assert.Equal(t, "beta dark", m.State().ActiveTheme)

	m, _ = press(t, m, runes("g"))
	assert.Equal(t, "Alpha Dark", m.State().ActiveTheme)
}

func TestUpdate_ShadeCycling(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	s := m.State()
	assert.Equal(t, domain.ShadeLight, s.ThemeShade)
	assert.Equal(t, []string{"Gamma Light"}, names(s.FilteredThemes))
	assert.Equal(t, "Gamma Light", s.ActiveTheme)
	assert.Equal(t, "#ffffff", s.BackgroundColour)
	assert.Equal(t, "#000000", s.PrimaryColour)

	// any keeps the previous filter
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	s = m.State()
	assert.Equal(t, domain.ShadeAny, s.ThemeShade)
	assert.Equal(t, []string{"Gamma Light"}, names(s.FilteredThemes))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, domain.ShadeLight, m.State().ThemeShade)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	s = m.State()
	assert.Equal(t, domain.ShadeDark, s.ThemeShade)
	assert.Equal(t, "Alpha Dark", s.ActiveTheme)
}

func TestUpdate_DirectShadeKeys(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)

	tests := []struct {
		key       string
		wantShade domain.Shade
		wantNames []string
	}{
		{"l", domain.ShadeLight, []string{"Gamma Light"}},
		{"a", domain.ShadeAny, []string{"Gamma Light"}},
		{"d", domain.ShadeDark, []string{"Alpha Dark", "beta dark"}},
		{"a", domain.ShadeAny, []string{"Alpha Dark", "beta dark"}},
	}

	for _, tt := range tests {
		m, _ = press(t, m, runes(tt.key))
		assert.Equal(t, tt.wantShade, m.State().ThemeShade, tt.key)
		assert.Equal(t, tt.wantNames, names(m.State().FilteredThemes), tt.key)
	}
}

func TestUpdate_EmptyShade(t *testing.T) {
	m, _ := newTestModel(t, darkOnlyCatalog, false)
	m = loadModel(t, m)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	s := m.State()

	assert.Equal(t, domain.ShadeLight, s.ThemeShade)
	assert.Empty(t, s.FilteredThemes)
	assert.Empty(t, s.ActiveTheme)
	assert.Contains(t, m.message, "No LIGHT themes")

	// navigation on an empty list is a no-op
	m, _ = press(t, m, runes("j"))
	assert.Empty(t, m.State().ActiveTheme)
}

func TestUpdate_StrictCatalogQuitsWithoutDarkThemes(t *testing.T) {
	lightOnly := `[{"name":"Paper","background":"#ffffff","black":"#000000"}]`

	t.Run("strict", func(t *testing.T) {
		m, _ := newTestModel(t, lightOnly, true)
		msg := m.Init()()

		updated, cmd := m.Update(msg)
		m = updated.(Model)

		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.ErrorIs(t, m.Err(), state.ErrNoThemesInShade)
	})

	t.Run("lenient", func(t *testing.T) {
		m, _ := newTestModel(t, lightOnly, false)
		msg := m.Init()()

		updated, cmd := m.Update(msg)
		m = updated.(Model)

		assert.Nil(t, cmd)
		assert.NoError(t, m.Err())
		assert.Equal(t, []string{"Paper"}, names(m.State().Themes))
		assert.Empty(t, m.State().FilteredThemes)
	})
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)

	tests := []struct {
		name      string
		width     int
		wantSmall bool
	}{
		{"narrow", 80, true},
		{"at breakpoint keeps previous", 100, true},
		{"wide", 140, false},
		{"at breakpoint again", 100, false},
	}

	for _, tt := range tests {
		updated, _ := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: 40})
		m = updated.(Model)
		assert.Equal(t, tt.wantSmall, m.State().IsSmallScreenSize, tt.name)
	}
}

func TestUpdate_Download(t *testing.T) {
	m, fs := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)

	// narrowing the list must not narrow the download
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	m, cmd := press(t, m, runes("s"))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, downloadSavedMsg{}, msg)

	updated, _ := m.Update(msg)
	m = updated.(Model)
	assert.Contains(t, m.message, "Saved 3 themes")

	data, err := afero.ReadFile(fs, "/downloads/windows-terminal-themes.json")
	require.NoError(t, err)
	for _, name := range []string{"Alpha Dark", "beta dark", "Gamma Light"} {
		assert.Contains(t, string(data), name)
	}
}

func TestUpdate_DownloadBeforeLoad(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)

	m, cmd := press(t, m, runes("s"))
	assert.Nil(t, cmd)
	assert.Equal(t, "No themes loaded yet.", m.message)
}

func TestUpdate_DownloadFailure(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)
	m.fs = afero.NewReadOnlyFs(afero.NewMemMapFs())

	m, cmd := press(t, m, runes("s"))
	require.NotNil(t, cmd)

	updated, _ := m.Update(cmd())
	m = updated.(Model)
	assert.True(t, strings.HasPrefix(m.message, "Download failed"), m.message)
}

func TestUpdate_Search(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)

	m, _ = press(t, m, runes("/"))
	assert.Equal(t, searchingMode, m.uiMode)

	// keys are typed, not interpreted
	for _, r := range "beta" {
		m, _ = press(t, m, runes(string(r)))
	}
	assert.Equal(t, "beta", m.query)
	assert.Equal(t, []string{"beta dark"}, names(m.visibleThemes()))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, normalMode, m.uiMode)
	assert.Equal(t, "beta dark", m.State().ActiveTheme)

	// the reducer's filter is untouched by search
	assert.Len(t, m.State().FilteredThemes, 2)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.query)
	assert.Len(t, m.visibleThemes(), 2)
}

func TestUpdate_SearchCancel(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)

	m, _ = press(t, m, runes("/"))
	m, _ = press(t, m, runes("q"))
	assert.Equal(t, "q", m.query)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, normalMode, m.uiMode)
	assert.Empty(t, m.query)
}

func TestUpdate_Reload(t *testing.T) {
	m, fs := newTestModel(t, testCatalog, false)
	m = loadModel(t, m)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})

	require.NoError(t, afero.WriteFile(fs, "/themes/colour-schemes.json", []byte(`[
		{"name":"Gamma Light","background":"#ffffff","black":"#000000"},
		{"name":"Delta Light","background":"#fafafa","black":"#000000"}
	]`), 0644))

	m, cmd := press(t, m, runes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	// a second reload while one is in flight is ignored
	_, again := press(t, m, runes("r"))
	assert.Nil(t, again)

	updated, _ := m.Update(cmd())
	m = updated.(Model)
	s := m.State()

	assert.Equal(t, domain.ShadeLight, s.ThemeShade)
	assert.Equal(t, []string{"Delta Light", "Gamma Light"}, names(s.FilteredThemes))
	assert.Equal(t, "Delta Light", s.ActiveTheme)
}

func TestUpdate_HelpAndQuit(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)

	m, _ = press(t, m, runes("?"))
	assert.True(t, m.showHelp)
	assert.True(t, m.help.ShowAll)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, testCatalog, false)

	out := m.View()
	assert.Contains(t, out, "Windows Terminal Themes")
	assert.Contains(t, out, "Loading themes...")

	m = loadModel(t, m)
	out = m.View()
	assert.Contains(t, out, "iTerm2 Color Schemes")
	assert.Contains(t, out, "Alpha Dark")
	assert.Contains(t, out, "2 of 3 themes")

	// small layout still shows the preview
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = updated.(Model)
	assert.True(t, m.State().IsSmallScreenSize)
	assert.Contains(t, m.View(), `"name": "Alpha Dark"`)
}

func TestNextShade(t *testing.T) {
	tests := []struct {
		from domain.Shade
		step int
		want domain.Shade
	}{
		{domain.ShadeDark, 1, domain.ShadeLight},
		{domain.ShadeLight, 1, domain.ShadeAny},
		{domain.ShadeAny, 1, domain.ShadeDark},
		{domain.ShadeDark, -1, domain.ShadeAny},
		{domain.ShadeAny, -1, domain.ShadeLight},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextShade(tt.from, tt.step), "%s%+d", tt.from, tt.step)
	}
}
