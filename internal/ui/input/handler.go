package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/mwhite/tictactoe-ui/internal/game"
)

// Handler polls the mouse once per frame and maps clicks onto the two
// interactive regions: the 3x3 grid and the history list. The geometry
// math lives in CellAt / HistoryEntryAt so it can be tested without a
// display.
type Handler struct {
	cellSize     int
	boardOffsetX int
	boardOffsetY int

	histOffsetX int
	histOffsetY int
	entryWidth  int
	entryHeight int

	mouseX, mouseY int
	clicked        bool
}

// Layout carries the screen geometry the handler shares with the renderers.
type Layout struct {
	CellSize     int
	BoardOffsetX int
	BoardOffsetY int

	HistOffsetX int
	HistOffsetY int
	EntryWidth  int
	EntryHeight int
}

func NewHandler(l Layout) *Handler {
	return &Handler{
		cellSize:     l.CellSize,
		boardOffsetX: l.BoardOffsetX,
		boardOffsetY: l.BoardOffsetY,
		histOffsetX:  l.HistOffsetX,
		histOffsetY:  l.HistOffsetY,
		entryWidth:   l.EntryWidth,
		entryHeight:  l.EntryHeight,
	}
}

// Update refreshes the mouse state. Call once per frame before the
// Clicked accessors.
func (h *Handler) Update() {
	h.mouseX, h.mouseY = ebiten.CursorPosition()
	h.clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// CellClicked reports a left click on a board cell this frame.
func (h *Handler) CellClicked() (int, bool) {
	if !h.clicked {
		return 0, false
	}
	return h.CellAt(h.mouseX, h.mouseY)
}

// HistoryClicked reports a left click on one of the first `entries`
// history list rows this frame.
func (h *Handler) HistoryClicked(entries int) (int, bool) {
	if !h.clicked {
		return 0, false
	}
	return h.HistoryEntryAt(h.mouseX, h.mouseY, entries)
}

// CellAt maps a screen position to a board cell index, row-major
// (index = row*3 + col).
func (h *Handler) CellAt(x, y int) (int, bool) {
	x -= h.boardOffsetX
	y -= h.boardOffsetY
	if x < 0 || y < 0 {
		return 0, false
	}
	col := x / h.cellSize
	row := y / h.cellSize
	if row >= game.Rows || col >= game.Cols {
		return 0, false
	}
	return game.Idx(row, col), true
}

// HistoryEntryAt maps a screen position to a history list index.
func (h *Handler) HistoryEntryAt(x, y, entries int) (int, bool) {
	x -= h.histOffsetX
	y -= h.histOffsetY
	if x < 0 || x >= h.entryWidth || y < 0 {
		return 0, false
	}
	entry := y / h.entryHeight
	if entry >= entries {
		return 0, false
	}
	return entry, true
}
