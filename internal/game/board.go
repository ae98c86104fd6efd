package game

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/avyukov/minesolver/internal/solver"
)

type GameParams struct {
	Height    int `schema:"height,required" json:"height"`
	Width     int `schema:"width,required" json:"width"`
	MineCount int `schema:"mine_count,required" json:"mine_count"`
}

var (
	ErrBadDimensions = fmt.Errorf("board dimensions must be positive")
	ErrTooManyMines  = fmt.Errorf("mine count must leave at least one safe cell")
	ErrBadMineCount  = fmt.Errorf("mine count must not be negative")
)

func (p GameParams) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return ErrBadDimensions
	}
	if p.MineCount < 0 {
		return ErrBadMineCount
	}
	if p.MineCount >= p.Height*p.Width {
		return ErrTooManyMines
	}
	return nil
}

func (p GameParams) CellInBounds(c solver.Cell) bool {
	return 0 <= c.Row && c.Row < p.Height && 0 <= c.Col && c.Col < p.Width
}

/*
Board is the ground-truth mine layout the solver plays against. The
solver never sees it; the caller opens cells here and reports the
neighbor counts back.
*/
type Board struct {
	GameParams
	Mined []bool // row-major
}

// NewBoard lays out MineCount mines uniformly at random.
func NewBoard(params GameParams, rnd *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		GameParams: params,
		Mined:      make([]bool, params.Height*params.Width),
	}
	for planted := 0; planted < params.MineCount; {
		i := rnd.IntN(len(b.Mined))
		if !b.Mined[i] {
			b.Mined[i] = true
			planted++
		}
	}
	return b, nil
}

func (b Board) index(c solver.Cell) int {
	return c.Row*b.Width + c.Col
}

func (b Board) MineAt(c solver.Cell) bool {
	return b.Mined[b.index(c)]
}

// NearbyMines counts the mines within one row and column of c, the
// cell itself excluded.
func (b Board) NearbyMines(c solver.Cell) (count int) {
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := solver.Cell{Row: row, Col: col}
			if n != c && b.CellInBounds(n) && b.MineAt(n) {
				count++
			}
		}
	}
	return
}

func (b Board) MineCells() (cells []solver.Cell) {
	for i, mined := range b.Mined {
		if mined {
			cells = append(cells, solver.Cell{Row: i / b.Width, Col: i % b.Width})
		}
	}
	return
}

// SafeCellCount is the number of cells a solver must open to win.
func (b Board) SafeCellCount() int {
	return b.Height*b.Width - b.MineCount
}

func (b Board) String() string {
	var sb strings.Builder
	for row := range b.Height {
		for col := range b.Width {
			if b.Mined[row*b.Width+col] {
				fmt.Fprint(&sb, "* ")
			} else {
				fmt.Fprint(&sb, "- ")
			}
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}

func (b Board) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeBoard(buf []byte) (*Board, error) {
	var b Board
	if err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}
