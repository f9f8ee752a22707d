// Package hashing provides Zobrist position keys and a transposition table
// for counting move trees.
package hashing

import (
	"math/rand"

	"github.com/KDaiyan/EECS22L-Chess/internal/chess"
)

const zobristSeed = 0x5eed

const numKinds = int(chess.King) + 1

var (
	pieceKeys [2][numKinds][chess.BoardSize][chess.BoardSize]uint64
	movedKeys [2][chess.NumEntities]uint64
	blackKey  uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // keys need to be fixed, not secret
	for c := range pieceKeys {
		for k := 1; k < numKinds; k++ {
			for r := 0; r < chess.BoardSize; r++ {
				for f := 0; f < chess.BoardSize; f++ {
					pieceKeys[c][k][r][f] = rng.Uint64()
				}
			}
		}
	}
	for c := range movedKeys {
		for e := range movedKeys[c] {
			movedKeys[c][e] = rng.Uint64()
		}
	}
	blackKey = rng.Uint64()
}

// Key returns the Zobrist key of the position: piece placement, side to
// move and the castling "moved" flags. The view orientation is ignored.
func Key(board *chess.Board) uint64 {
	var key uint64
	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			p := board.Squares[r][f]
			if p.IsEmpty() {
				continue
			}
			key ^= pieceKeys[p.Colour][p.Kind][r][f]
		}
	}
	for c := range movedKeys {
		for e := range movedKeys[c] {
			if board.Moved[c][e] {
				key ^= movedKeys[c][e]
			}
		}
	}
	if board.Turn == chess.Black {
		key ^= blackKey
	}
	return key
}
