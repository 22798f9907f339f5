package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wtthemes/internal/domain"
	"wtthemes/internal/state"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if action, ok := m.watcher.Observe(msg.Width); ok {
			_ = m.dispatch(action)
		}
		return m, nil

	case catalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case catalogFailedMsg:
		// already logged by the loader; state stays as it was
		m.loading = false
		return m, nil

	case downloadSavedMsg:
		m.message = fmt.Sprintf("✓ Saved %d themes to %s", len(m.state.Themes), msg.path)
		return m, nil

	case errMsg:
		m.logger.Error().Err(msg.err).Msg("download failed")
		m.message = "Download failed: " + msg.Error()
		return m, nil
	}

	if m.uiMode == searchingMode {
		return m.updateSearchMode(msg)
	}
	return m.updateNormalMode(msg)
}

func (m Model) handleCatalogLoaded(msg catalogLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	shade := m.state.ThemeShade

	err := m.dispatch(state.LoadAction{Themes: msg.themes})
	if shade != domain.ShadeDark {
		// a reload keeps the shade the user had picked
		err = m.dispatch(state.ShadeAction{Shade: shade})
	}

	if err != nil && isEmptyShade(err) {
		if m.strict {
			m.err = fmt.Errorf("theme catalog is unusable: %w", err)
			return m, tea.Quit
		}
		m.message = "No themes in this shade."
	}
	return m, nil
}

func (m Model) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.message = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.Up):
		m.move(-1)
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		m.move(1)
		return m, nil

	case key.Matches(keyMsg, m.keys.Top):
		m.selectAt(0)
		return m, nil

	case key.Matches(keyMsg, m.keys.Bottom):
		m.selectAt(len(m.visibleThemes()) - 1)
		return m, nil

	case key.Matches(keyMsg, m.keys.NextShade):
		m.changeShade(nextShade(m.state.ThemeShade, 1))
		return m, nil

	case key.Matches(keyMsg, m.keys.PrevShade):
		m.changeShade(nextShade(m.state.ThemeShade, -1))
		return m, nil

	case key.Matches(keyMsg, m.keys.Dark):
		m.changeShade(domain.ShadeDark)
		return m, nil

	case key.Matches(keyMsg, m.keys.Light):
		m.changeShade(domain.ShadeLight)
		return m, nil

	case key.Matches(keyMsg, m.keys.AnyShade):
		m.changeShade(domain.ShadeAny)
		return m, nil

	case key.Matches(keyMsg, m.keys.Search):
		m.uiMode = searchingMode
		m.searchInput.SetValue(m.query)
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(keyMsg, m.keys.ClearSearch):
		m.query = ""
		m.searchInput.SetValue("")
		return m, nil

	case key.Matches(keyMsg, m.keys.Download):
		if len(m.state.Themes) == 0 {
			m.message = "No themes loaded yet."
			return m, nil
		}
		return m, saveDownloadCmd(m.fs, m.downloadDir, m.state.Themes)

	case key.Matches(keyMsg, m.keys.Reload):
		if m.loader == nil || m.loading {
			return m, nil
		}
		m.loading = true
		return m, loadCatalogCmd(m.ctx, m.loader, m.fetchTimeout)
	}

	return m, nil
}

func (m Model) updateSearchMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.ClearSearch):
			m.uiMode = normalMode
			m.searchInput.Blur()
			m.searchInput.SetValue("")
			m.query = ""
			return m, nil

		case key.Matches(keyMsg, m.keys.Apply):
			m.uiMode = normalMode
			m.searchInput.Blur()
			m.selectAt(0)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.query = m.searchInput.Value()
	return m, cmd
}

// move previews the theme step places away from the active one.
func (m *Model) move(step int) {
	themes := m.visibleThemes()
	if len(themes) == 0 {
		return
	}

	i := m.activeIndex(themes)
	if i < 0 {
		m.selectAt(0)
		return
	}
	m.selectAt(i + step)
}

func (m *Model) selectAt(i int) {
	themes := m.visibleThemes()
	if len(themes) == 0 {
		return
	}
	i = max(0, min(i, len(themes)-1))
	_ = m.dispatch(state.SetAction{Theme: themes[i].Name})
}

func (m *Model) changeShade(shade domain.Shade) {
	if len(m.state.Themes) == 0 {
		return
	}
	if err := m.dispatch(state.ShadeAction{Shade: shade}); err != nil && isEmptyShade(err) {
		m.message = fmt.Sprintf("No %s themes in the catalog.", shade)
	}
}
