package decode

import (
	"encoding/binary"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/motion.report/internal/frames"
)

// Balance mat block layout.
const (
	BalanceMatBlockSize = 58 // bytes per line, including 2 bytes of padding
	BalanceMatSlots     = 28 // little-endian uint16 values in the first 56 bytes
)

// leftSlots[i] and rightSlots[i] are the decoded slots wired to sensor
// positions L<i> and R<i>. This is physical mat wiring; slots 0 and 1 are
// unused.
var (
	leftSlots  = [frames.PressureChannels]int{9, 4, 12, 6, 14, 8, 3, 11, 5, 13, 7, 2, 10}
	rightSlots = [frames.PressureChannels]int{27, 22, 17, 24, 19, 26, 21, 16, 23, 18, 25, 20, 15}
)

// DecodeBalanceMat decodes a .bmr stream.
func DecodeBalanceMat(r io.Reader) ([]frames.BalanceMatFrame, Result, error) {
	return decodeLines(r, parseBalanceMatLine)
}

// parseBalanceMatLine accepts "b0,...,b57-timestamp". A single bad byte token
// drops the whole line.
func parseBalanceMatLine(line string) (frames.BalanceMatFrame, error) {
	var f frames.BalanceMatFrame

	data, tsText, ok := strings.Cut(line, "-")
	if !ok {
		return f, faultf(ErrDelimiter, "missing '-' before timestamp")
	}
	toks := strings.Split(data, ",")
	if len(toks) != BalanceMatBlockSize {
		return f, faultf(ErrFieldCount, "want %d bytes, got %d", BalanceMatBlockSize, len(toks))
	}

	block := make([]byte, BalanceMatBlockSize)
	for i, tok := range toks {
		b, err := strconv.ParseUint(strings.TrimSpace(tok), 10, 8)
		if err != nil {
			return f, faultf(ErrByteRange, "byte %d %q", i, tok)
		}
		block[i] = byte(b)
	}

	slots, err := DecodeBalanceMatBlock(block)
	if err != nil {
		return f, err
	}
	ts, err := parseTimestamp(tsText)
	if err != nil {
		return f, err
	}

	f.Left, f.Right = RemapBalanceMat(slots)
	f.Timestamp = ts
	return f, nil
}

// DecodeBalanceMatBlock reads the 28 little-endian sensor slots from a
// 58-byte block.
func DecodeBalanceMatBlock(block []byte) ([BalanceMatSlots]uint16, error) {
	var slots [BalanceMatSlots]uint16
	if len(block) != BalanceMatBlockSize {
		return slots, faultf(ErrBlockSize, "got %d", len(block))
	}
	for i := range slots {
		slots[i] = binary.LittleEndian.Uint16(block[i*2:])
	}
	return slots, nil
}

// RemapBalanceMat applies the slot-to-anatomy wiring table.
func RemapBalanceMat(slots [BalanceMatSlots]uint16) (left, right [frames.PressureChannels]uint16) {
	for i := range left {
		left[i] = slots[leftSlots[i]]
		right[i] = slots[rightSlots[i]]
	}
	return left, right
}
