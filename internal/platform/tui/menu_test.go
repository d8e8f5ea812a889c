package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
)

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

type fakeScorer map[string]int

func (s fakeScorer) HighScore(gameID string) (int, error) {
	best, ok := s[gameID]
	if !ok {
		return 0, errors.New("no runs")
	}
	return best, nil
}

func menuAfter(t *testing.T, scores HighScorer, keys ...tea.KeyMsg) (MenuModel, tea.Cmd) {
	t.Helper()
	m := NewMenuModel(scores, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuListsGamesWithBest(t *testing.T) {
	m, _ := menuAfter(t, fakeScorer{"fake": 90})

	view := m.View()
	for _, want := range []string{"S T A R", "> Fake", "(best 90)", "In game:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	plain, _ := menuAfter(t, nil)
	if strings.Contains(plain.View(), "(best") {
		t.Error("menu without a store should not show best scores")
	}
}

func TestMenuResults(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuResult
	}{
		{
			name: "enter plays",
			keys: []tea.KeyMsg{{Type: tea.KeyEnter}},
			want: MenuResult{GameID: "fake"},
		},
		{
			name: "tab opens the scoreboard for the highlighted game",
			keys: []tea.KeyMsg{{Type: tea.KeyTab}},
			want: MenuResult{GameID: "fake", WantsScoreboard: true},
		},
		{
			name: "q quits",
			keys: []tea.KeyMsg{runeKey('q')},
			want: MenuResult{Quit: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := menuAfter(t, nil, tt.keys...)
			if cmd == nil {
				t.Error("every choice should end the menu program")
			}
			got := m.Result()
			got.Config = core.RuntimeConfig{}
			if got != tt.want {
				t.Errorf("Result() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(MenuModel)

	cfg := m.Config()
	if cfg.ScreenW != 120 || cfg.ScreenH != 40 || cfg.TickRate != 30 {
		t.Errorf("Config() = %+v", cfg)
	}
}
