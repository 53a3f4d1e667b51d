package cryptography

import (
	"fmt"
	"math/big"
	"strings"

	rsaDomain "textbook_rsa_service/internal/domain/rsa"
	"textbook_rsa_service/internal/pkg/logger"
)

var byteCeiling = big.NewInt(255)

// blockCodec struct that implements the BlockCodec interface
type blockCodec struct {
	logger logger.Logger
}

// NewBlockCodec creates and returns a new instance of blockCodec
func NewBlockCodec(logger logger.Logger) (rsaDomain.BlockCodec, error) {
	return &blockCodec{
		logger: logger,
	}, nil
}

// Encode partitions message into consecutive groups of up to chunkSize code
// units (the last group may be shorter) and packs each group into one
// integer, code unit j contributing value << 8j. Only single-byte code
// units are representable; anything above 255 is rejected. The codec does
// not know the modulus: choosing a chunkSize small enough that every block
// stays below n is the caller's responsibility, and a violation surfaces at
// encryption time.
func (c *blockCodec) Encode(message string, chunkSize int) ([]*big.Int, error) {
	if chunkSize < 1 {
		return nil, fmt.Errorf("chunk size must be at least 1, got %d", chunkSize)
	}

	units := []rune(message)
	var blocks []*big.Int

	for start := 0; start < len(units); start += chunkSize {
		end := start + chunkSize
		if end > len(units) {
			end = len(units)
		}

		block := new(big.Int)
		for j, unit := range units[start:end] {
			if unit > 255 {
				return nil, fmt.Errorf("code unit %q at position %d: %w",
					unit, start+j, rsaDomain.ErrByteOutOfRange)
			}
			contribution := new(big.Int).Lsh(big.NewInt(int64(unit)), uint(8*j))
			block.Or(block, contribution)
		}
		blocks = append(blocks, block)
	}

	return blocks, nil
}

// Decode reverses Encode: each block's low byte is extracted and the block
// shifted right by 8 until the residue fits in a single byte, which is the
// group's final code unit. Groups are concatenated in sequence order, so
// the original text is reconstructed exactly.
func (c *blockCodec) Decode(blocks []*big.Int) (string, error) {
	var builder strings.Builder

	for i, block := range blocks {
		if block == nil || block.Sign() < 0 {
			return "", fmt.Errorf("block %d is not a non-negative integer", i)
		}

		remaining := new(big.Int).Set(block)
		low := new(big.Int)
		for remaining.Cmp(byteCeiling) > 0 {
			low.And(remaining, byteCeiling)
			builder.WriteRune(rune(low.Int64()))
			remaining.Rsh(remaining, 8)
		}
		builder.WriteRune(rune(remaining.Int64()))
	}

	return builder.String(), nil
}
