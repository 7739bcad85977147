/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package position implements the board representation and move maker:
// a Position holds the full state of a chess game (piece placement,
// castling rights, en passant square, move clocks, Zobrist key) and
// knows how to apply and undo moves on itself.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chessforge/engine/internal/assert"
	"github.com/chessforge/engine/internal/logging"
	. "github.com/chessforge/engine/internal/types"
	"github.com/chessforge/engine/internal/zobrist"
)

var log = logging.GetPositionLog()

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// historyEntry captures everything UndoMove needs to reverse a DoMove
// that cannot be recovered from the post-move board alone.
type historyEntry struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	zobristKey      zobrist.Key
}

// Position is the full state of a chess game at one point in time.
type Position struct {
	board [SqLength]Piece

	piecesBb    [ColorLength][PtLength]Bitboard
	occupiedBb  [ColorLength]Bitboard
	occupiedAll Bitboard

	nextPlayer      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	nextMoveNumber  int

	zobristKey zobrist.Key

	history []historyEntry
}

// NewPosition returns the standard chess starting position.
func NewPosition() *Position {
	p, err := PositionFromFEN(StartFen)
	if err != nil {
		panic(fmt.Sprintf("position: start FEN failed to parse: %v", err))
	}
	return p
}

// PositionFromFEN parses a FEN string into a Position.
func PositionFromFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("position: invalid fen %q: need at least 4 fields", fen)
	}

	p := &Position{enPassantSquare: SqNone, nextMoveNumber: 1}

	rank := Rank8
	file := FileA
	for _, c := range fields[0] {
		switch {
		case c == '/':
			if rank == Rank1 {
				return nil, fmt.Errorf("position: invalid fen %q: too many ranks", fen)
			}
			rank--
			file = FileA
		case c >= '1' && c <= '8':
			file += File(c - '0')
		default:
			pc := PieceFromChar(string(c))
			if pc == PieceNone || !file.IsValid() {
				return nil, fmt.Errorf("position: invalid fen %q: bad piece placement", fen)
			}
			p.putPiece(pc, SquareOf(file, rank))
			file++
		}
	}

	switch fields[1] {
	case "w":
		p.nextPlayer = White
	case "b":
		p.nextPlayer = Black
		p.zobristKey ^= zobrist.Key(zobrist.NextPlayer)
	default:
		return nil, fmt.Errorf("position: invalid fen %q: bad side to move", fen)
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.castlingRights.Add(CastlingWhiteOO)
		case 'Q':
			p.castlingRights.Add(CastlingWhiteOOO)
		case 'k':
			p.castlingRights.Add(CastlingBlackOO)
		case 'q':
			p.castlingRights.Add(CastlingBlackOOO)
		case '-':
		default:
			return nil, fmt.Errorf("position: invalid fen %q: bad castling field", fen)
		}
	}
	p.zobristKey ^= zobrist.Key(zobrist.Castling[p.castlingRights])

	if fields[3] != "-" {
		sq := MakeSquare(fields[3])
		if sq == SqNone {
			return nil, fmt.Errorf("position: invalid fen %q: bad en passant square", fen)
		}
		p.enPassantSquare = sq
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[sq.FileOf()])
	} else {
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[FileNone])
	}

	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("position: invalid fen %q: bad halfmove clock: %w", fen, err)
		}
		p.halfMoveClock = n
	}
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, fmt.Errorf("position: invalid fen %q: bad fullmove number: %w", fen, err)
		}
		p.nextMoveNumber = n
	}

	log.Debugf("parsed fen %q", fen)
	return p, nil
}

// ToFEN serializes the position back to FEN notation.
func (p *Position) ToFEN() string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}
	b.WriteString(" ")
	b.WriteString(p.nextPlayer.String())
	b.WriteString(" ")
	b.WriteString(p.castlingRights.String())
	b.WriteString(" ")
	b.WriteString(p.enPassantSquare.String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.halfMoveClock))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.nextMoveNumber))
	return b.String()
}

func (p *Position) String() string {
	return p.ToFEN()
}

// NextPlayer returns the color to move.
func (p *Position) NextPlayer() Color { return p.nextPlayer }

// CastlingRights returns the currently available castling rights.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantSquare returns the currently valid en passant target square,
// or SqNone.
func (p *Position) EnPassantSquare() Square { return p.enPassantSquare }

// HalfMoveClock returns the number of reversible half-moves since the
// last pawn move or capture.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// ZobristKey returns the current Zobrist hash.
func (p *Position) ZobristKey() zobrist.Key { return p.zobristKey }

// PieceAt returns the piece on sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.board[sq] }

// OccupiedBb returns the full board occupancy.
func (p *Position) OccupiedBb() Bitboard { return p.occupiedAll }

// ColorBb returns every square occupied by c.
func (p *Position) ColorBb(c Color) Bitboard { return p.occupiedBb[c] }

// PieceTypeBb returns every square occupied by a piece of type pt
// belonging to c.
func (p *Position) PieceTypeBb(c Color, pt PieceType) Bitboard { return p.piecesBb[c][pt] }

// KingSquare returns the square of c's king.
func (p *Position) KingSquare(c Color) Square { return p.piecesBb[c][King].Lsb() }

func (p *Position) putPiece(pc Piece, sq Square) {
	p.board[sq] = pc
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.piecesBb[c][pt].PushSquare(sq)
	p.occupiedBb[c].PushSquare(sq)
	p.occupiedAll.PushSquare(sq)
	p.zobristKey ^= zobrist.Key(zobrist.Pieces[pc][sq])
}

func (p *Position) removePiece(sq Square) Piece {
	pc := p.board[sq]
	if assert.DEBUG {
		assert.Assert(pc != PieceNone, "removePiece called on empty square %s", sq)
	}
	c, pt := pc.ColorOf(), pc.TypeOf()
	p.board[sq] = PieceNone
	p.piecesBb[c][pt].PopSquare(sq)
	p.occupiedBb[c].PopSquare(sq)
	p.occupiedAll.PopSquare(sq)
	p.zobristKey ^= zobrist.Key(zobrist.Pieces[pc][sq])
	return pc
}

func (p *Position) movePiece(from, to Square) {
	pc := p.removePiece(from)
	p.putPiece(pc, to)
}

// recomputeZobrist walks the board state from scratch and returns the
// Zobrist key that describes it. Used only to check that the
// incrementally maintained zobristKey never drifts from a fresh
// computation; production code paths read p.zobristKey directly.
func (p *Position) recomputeZobrist() zobrist.Key {
	var key zobrist.Key
	for sq := SqA1; sq < SqNone; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			key ^= zobrist.Pieces[pc][sq]
		}
	}
	key ^= zobrist.Castling[p.castlingRights]
	if p.enPassantSquare != SqNone {
		key ^= zobrist.EnPassantFile[p.enPassantSquare.FileOf()]
	} else {
		key ^= zobrist.EnPassantFile[FileNone]
	}
	if p.nextPlayer == Black {
		key ^= zobrist.NextPlayer
	}
	return key
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	if GetPawnAttacks(by.Flip(), sq)&p.piecesBb[by][Pawn] != 0 {
		return true
	}
	if GetAttacksBb(Knight, sq, p.occupiedAll)&p.piecesBb[by][Knight] != 0 {
		return true
	}
	if GetAttacksBb(King, sq, p.occupiedAll)&p.piecesBb[by][King] != 0 {
		return true
	}
	bishopLike := p.piecesBb[by][Bishop] | p.piecesBb[by][Queen]
	if GetAttacksBb(Bishop, sq, p.occupiedAll)&bishopLike != 0 {
		return true
	}
	rookLike := p.piecesBb[by][Rook] | p.piecesBb[by][Queen]
	if GetAttacksBb(Rook, sq, p.occupiedAll)&rookLike != 0 {
		return true
	}
	return false
}

// HasCheck reports whether the side to move is in check.
func (p *Position) HasCheck() bool {
	return p.IsAttacked(p.KingSquare(p.nextPlayer), p.nextPlayer.Flip())
}

// GivesCheck reports whether m would put the opponent in check. The move
// must be pseudo-legal for p.
func (p *Position) GivesCheck(m Move) bool {
	p.DoMove(m)
	check := p.IsAttacked(p.KingSquare(p.nextPlayer), p.nextPlayer.Flip())
	p.UndoMove()
	return check
}

// IsLegalMove reports whether making m leaves the mover's own king safe.
// m must already be pseudo-legal (the move generator never offers moves
// whose from-square isn't the mover's own piece of the right kind).
func (p *Position) IsLegalMove(m Move) bool {
	mover := p.nextPlayer
	p.DoMove(m)
	legal := !p.IsAttacked(p.KingSquare(mover), p.nextPlayer)
	p.UndoMove()
	return legal
}

// DoMove applies m to the position, pushing enough history to UndoMove it.
func (p *Position) DoMove(m Move) {
	from, to := m.From(), m.To()
	piece := p.board[from]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "DoMove: no piece on from-square %s", from)
		assert.Assert(piece.ColorOf() == p.nextPlayer, "DoMove: piece on %s is not the side to move", from)
	}

	entry := historyEntry{
		move:            m,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfMoveClock:   p.halfMoveClock,
		zobristKey:      p.zobristKey,
	}

	us, them := p.nextPlayer, p.nextPlayer.Flip()
	pt := piece.TypeOf()

	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[p.enPassantSquare.FileOf()])
	} else {
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[FileNone])
	}
	p.enPassantSquare = SqNone

	captured := PieceNone
	switch m.MoveType() {
	case EnPassant:
		capSq := SquareOf(to.FileOf(), from.RankOf())
		captured = p.removePiece(capSq)
		p.movePiece(from, to)
	case Castling:
		p.movePiece(from, to)
		rookFrom, rookTo := castlingRookSquares(to)
		p.movePiece(rookFrom, rookTo)
	case Promotion:
		if p.board[to] != PieceNone {
			captured = p.removePiece(to)
		}
		p.removePiece(from)
		p.putPiece(MakePiece(us, m.PromotionType()), to)
	default:
		if p.board[to] != PieceNone {
			captured = p.removePiece(to)
		}
		p.movePiece(from, to)
	}
	entry.capturedPiece = captured

	if pt == Pawn && m.MoveType() == Normal && SquareDistance(from, to) == 2 {
		p.enPassantSquare = SquareOf(from.FileOf(), (from.RankOf()+to.RankOf())/2)
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[p.enPassantSquare.FileOf()])
	} else {
		p.zobristKey ^= zobrist.Key(zobrist.EnPassantFile[FileNone])
	}

	p.zobristKey ^= zobrist.Key(zobrist.Castling[p.castlingRights])
	p.updateCastlingRights(from, to, piece)
	p.zobristKey ^= zobrist.Key(zobrist.Castling[p.castlingRights])

	if pt == Pawn || captured != PieceNone {
		p.halfMoveClock = 0
	} else {
		p.halfMoveClock++
	}

	if us == Black {
		p.nextMoveNumber++
	}
	p.nextPlayer = them
	p.zobristKey ^= zobrist.Key(zobrist.NextPlayer)

	p.history = append(p.history, entry)

	if assert.DEBUG {
		assert.Assert(p.zobristKey == p.recomputeZobrist(), "DoMove: incremental zobrist key drifted from a fresh computation")
	}
}

// UndoMove reverses the most recent DoMove.
func (p *Position) UndoMove() {
	if assert.DEBUG {
		assert.Assert(len(p.history) > 0, "UndoMove: history is empty")
	}
	last := len(p.history) - 1
	entry := p.history[last]
	p.history = p.history[:last]

	m := entry.move
	from, to := m.From(), m.To()

	p.nextPlayer = p.nextPlayer.Flip()
	if p.nextPlayer == Black {
		p.nextMoveNumber--
	}
	us := p.nextPlayer

	switch m.MoveType() {
	case EnPassant:
		p.movePiece(to, from)
		capSq := SquareOf(to.FileOf(), from.RankOf())
		p.putPiece(MakePiece(us.Flip(), Pawn), capSq)
	case Castling:
		rookFrom, rookTo := castlingRookSquares(to)
		p.movePiece(rookTo, rookFrom)
		p.movePiece(to, from)
	case Promotion:
		p.removePiece(to)
		p.putPiece(MakePiece(us, Pawn), from)
		if entry.capturedPiece != PieceNone {
			p.putPiece(entry.capturedPiece, to)
		}
	default:
		p.movePiece(to, from)
		if entry.capturedPiece != PieceNone {
			p.putPiece(entry.capturedPiece, to)
		}
	}

	p.castlingRights = entry.castlingRights
	p.enPassantSquare = entry.enPassantSquare
	p.halfMoveClock = entry.halfMoveClock
	p.zobristKey = entry.zobristKey
}

// castlingRookSquares returns the rook's from/to squares for a castling
// move whose king destination is kingTo.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic(fmt.Sprintf("position: invalid castling king destination %s", kingTo))
	}
}

func (p *Position) updateCastlingRights(from, to Square, moved Piece) {
	if p.castlingRights == CastlingNone {
		return
	}
	if moved.TypeOf() == King {
		switch moved.ColorOf() {
		case White:
			p.castlingRights.Remove(CastlingWhite)
		case Black:
			p.castlingRights.Remove(CastlingBlack)
		}
	}
	for _, sq := range [2]Square{from, to} {
		switch sq {
		case SqA1:
			p.castlingRights.Remove(CastlingWhiteOOO)
		case SqH1:
			p.castlingRights.Remove(CastlingWhiteOO)
		case SqA8:
			p.castlingRights.Remove(CastlingBlackOOO)
		case SqH8:
			p.castlingRights.Remove(CastlingBlackOO)
		}
	}
}

// IsRepetition reports whether the current position has occurred at
// least count times in total (including the current occurrence),
// scanning back only as far as the last irreversible (pawn/capture) move
// recorded in the half-move clock.
func (p *Position) IsRepetition(count int) bool {
	occurrences := 1
	key := p.zobristKey
	limit := len(p.history) - p.halfMoveClock
	if limit < 0 {
		limit = 0
	}
	for i := len(p.history) - 2; i >= limit; i -= 2 {
		if p.history[i].zobristKey == key {
			occurrences++
			if occurrences >= count {
				return true
			}
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate (bare kings, K+minor vs K, or same-color
// bishops on both sides).
func (p *Position) HasInsufficientMaterial() bool {
	for _, pt := range [3]PieceType{Pawn, Rook, Queen} {
		if p.piecesBb[White][pt]|p.piecesBb[Black][pt] != BbZero {
			return false
		}
	}
	whiteMinors := p.piecesBb[White][Knight].PopCount() + p.piecesBb[White][Bishop].PopCount()
	blackMinors := p.piecesBb[Black][Knight].PopCount() + p.piecesBb[Black][Bishop].PopCount()
	switch {
	case whiteMinors+blackMinors == 0:
		return true
	case whiteMinors+blackMinors == 1:
		return true
	case whiteMinors == 1 && blackMinors == 1 &&
		p.piecesBb[White][Knight] == BbZero && p.piecesBb[Black][Knight] == BbZero:
		wSq := p.piecesBb[White][Bishop].Lsb()
		bSq := p.piecesBb[Black][Bishop].Lsb()
		return squareColor(wSq) == squareColor(bSq)
	default:
		return false
	}
}

func squareColor(sq Square) Color {
	if (int(sq.FileOf())+int(sq.RankOf()))%2 == 0 {
		return Black
	}
	return White
}
