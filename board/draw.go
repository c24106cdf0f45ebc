package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/mkamel/chesskit/position"
)

var (
	lightCell = color.New(color.FgBlack, color.BgHiWhite)
	darkCell  = color.New(color.FgBlack, color.BgHiGreen)
	rankFile  = color.New(color.Bold)
)

// Draw renders the board as a checkered ANSI grid, rank 8 on top.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		_, _ = builder.WriteString(rankFile.Sprintf(" %d ", 8-row))
		for col := int8(0); col < Width; col++ {
			p := b.At(position.Square{Row: row, Col: col})
			sym := p.SymbolUnicode()
			if p.IsNone() {
				sym = " "
			}
			cell := lightCell
			if (row+col)%2 == 1 {
				cell = darkCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for col := int8(0); col < Width; col++ {
		_, _ = builder.WriteString(rankFile.Sprintf(" %c ", 'a'+col))
	}
	return builder.String()
}

// Dump renders the board as plain ASCII using FEN symbols, for logs and
// debugging.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for row := int8(0); row < Height; row++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", 8-row))
		for col := int8(0); col < Width; col++ {
			p := b.At(position.Square{Row: row, Col: col})
			sym := p.SymbolFEN()
			if p.IsNone() {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for col := int8(0); col < Width; col++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %c ", 'a'+col))
	}
	return builder.String()
}
