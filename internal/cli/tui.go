package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/goban-dev/goban/pkg/board"
	"github.com/goban-dev/goban/pkg/config"
	"github.com/goban-dev/goban/pkg/overlay"
	"github.com/goban-dev/goban/pkg/sgf"
)

// tuiCommand creates the tui command: an interactive terminal viewer that
// steps through an SGF game move by move.
func (c *CLI) tuiCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "tui <sgf-file>",
		Short: "Step through a game record in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			rec, err := sgf.Parse(string(data))
			if err != nil {
				return err
			}
			model, err := newGameModel(cfg, rec)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "configuration file")
	return cmd
}

// gameModel is the bubbletea model for the move stepper. cursor counts
// how many placed moves are shown; passes never consume a step.
type gameModel struct {
	spec   board.Spec
	rec    sgf.Record
	cursor int
	total  int
}

func newGameModel(cfg config.Config, rec sgf.Record) (gameModel, error) {
	size := cfg.GridSize
	switch rec.Size {
	case 9, 13, 19:
		size = rec.Size
	}
	spec, err := board.ComputeSpec(size)
	if err != nil {
		return gameModel{}, err
	}

	total := 0
	for _, mv := range rec.Moves {
		if _, ok := sgf.ToRowCol(mv.Coord); ok {
			total++
		}
	}

	return gameModel{spec: spec, rec: rec, cursor: total, total: total}, nil
}

// Init implements tea.Model.
func (m gameModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m gameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "right", "l", " ":
		if m.cursor < m.total {
			m.cursor++
		}
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = m.total
	}
	return m, nil
}

// View implements tea.Model.
func (m gameModel) View() string {
	stones, last, hasLast := m.position()

	layout := make(map[board.Point]sgf.Color, len(stones))
	for _, s := range stones {
		layout[s.Point] = s.Color
	}
	stars := make(map[board.Point]bool, len(m.spec.StarPoints))
	for _, p := range m.spec.StarPoints {
		stars[p] = true
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("goban · %dx%d", m.spec.Size, m.spec.Size)))
	b.WriteString("\n\n")
	for row := 1; row <= m.spec.Size; row++ {
		for col := 1; col <= m.spec.Size; col++ {
			p := board.Point{Row: row, Col: col}
			b.WriteString(m.cell(p, layout, stars, last, hasLast))
			if col < m.spec.Size {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleStatus.Render(fmt.Sprintf("move %d/%d · ←/→ step · home/end jump · q quit", m.cursor, m.total)))

	return styleBoardPane.Render(b.String())
}

func (m gameModel) cell(p board.Point, layout map[board.Point]sgf.Color, stars map[board.Point]bool, last board.Point, hasLast bool) string {
	if color, ok := layout[p]; ok {
		glyph := "●"
		style := styleBlack
		if color == sgf.White {
			glyph = "○"
			style = styleWhiteSt
		}
		if hasLast && p == last {
			return styleLastMove.Render(glyph)
		}
		return style.Render(glyph)
	}
	if stars[p] {
		return styleStar.Render("+")
	}
	return styleGrid.Render("·")
}

// position builds the stone layout for the current cursor and reports the
// most recently played point, if any move is shown.
func (m gameModel) position() ([]overlay.Stone, board.Point, bool) {
	rec := m.rec
	if m.cursor == 0 {
		rec.Moves = nil
	}
	layout, numbers := overlay.Build(rec, overlay.Options{
		Mode:       overlay.ModeMoves,
		MovesLimit: m.cursor,
		Numbering:  overlay.NumberingMoves,
	})
	if len(numbers) == 0 {
		return layout.Stones(), board.Point{}, false
	}
	return layout.Stones(), numbers[len(numbers)-1].Point, true
}

var _ tea.Model = gameModel{}
