package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/mwhite/tictactoe-ui/internal/common"
	"github.com/mwhite/tictactoe-ui/internal/config"
	"github.com/mwhite/tictactoe-ui/internal/game"
	"github.com/mwhite/tictactoe-ui/internal/ui/input"
	"github.com/mwhite/tictactoe-ui/internal/ui/renderer"
)

// UI configuration functions
func ScreenWidth() int {
	return config.Get().UI.Window.Width
}

func ScreenHeight() int {
	return config.Get().UI.Window.Height
}

// Game wires the controller to the screen: it polls input, forwards
// click intents, and draws the viewed snapshot, the status line and the
// history list. It holds no game state of its own.
type Game struct {
	ctrl            *game.Controller
	boardRenderer   *renderer.BoardRenderer
	historyRenderer *renderer.HistoryRenderer
	inputHandler    *input.Handler
	defaultFont     font.Face

	statusX int
	statusY int
}

// New creates a new Ebitengine game instance around ctrl.
func New(ctrl *game.Controller) *Game {
	cfg := config.Get()
	ApplyPalette(cfg)

	boardX := cfg.UI.Board.OffsetX
	boardY := cfg.UI.Board.OffsetY
	histX := boardX + game.Cols*cfg.UI.Board.CellSize + cfg.UI.History.Margin
	histY := boardY

	g := &Game{
		ctrl:        ctrl,
		defaultFont: basicfont.Face7x13,
		statusX:     boardX,
		statusY:     common.Max(boardY-20, 16),
	}

	g.boardRenderer = renderer.NewBoardRenderer(cfg.UI.Board.CellSize, boardX, boardY, g.defaultFont)
	g.historyRenderer = renderer.NewHistoryRenderer(
		cfg.UI.History.EntryWidth, cfg.UI.History.EntryHeight, histX, histY, g.defaultFont)
	g.inputHandler = input.NewHandler(input.Layout{
		CellSize:     cfg.UI.Board.CellSize,
		BoardOffsetX: boardX,
		BoardOffsetY: boardY,
		HistOffsetX:  histX,
		HistOffsetY:  histY,
		EntryWidth:   cfg.UI.History.EntryWidth,
		EntryHeight:  cfg.UI.History.EntryHeight,
	})

	return g
}

// ApplyPalette copies the configured colors into the shared palette.
// Called again by the config watcher when the file changes.
func ApplyPalette(cfg *config.Config) {
	common.BackgroundColor = common.RGB(cfg.Colors.Background)
	common.XColor = common.RGB(cfg.Colors.MarkX)
	common.OColor = common.RGB(cfg.Colors.MarkO)
	common.HighlightColor = common.RGB(cfg.Colors.Highlight)
}

// Update polls input and dispatches click intents to the controller.
// Both Play and JumpTo run to completion here, inside the frame
// callback, so no other state change can interleave.
func (g *Game) Update() error {
	g.inputHandler.Update()

	if cell, ok := g.inputHandler.CellClicked(); ok {
		g.ctrl.Play(cell)
		return nil
	}

	if entry, ok := g.inputHandler.HistoryClicked(g.ctrl.MoveCount()); ok {
		if entry != g.ctrl.Current() {
			g.ctrl.JumpTo(entry)
		}
	}

	return nil
}

// Draw renders the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)

	text.Draw(screen, g.ctrl.Status(), g.defaultFont, g.statusX, g.statusY, common.StatusTextColor)

	line, hasLine := g.ctrl.WinningLine()
	g.boardRenderer.Draw(screen, g.ctrl.ViewedBoard(), line, hasLine)
	g.historyRenderer.Draw(screen, g.ctrl.MoveCount(), g.ctrl.Current())
}

// Layout defines the Ebitengine screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return ScreenWidth(), ScreenHeight()
}
