// Package instruction decodes the nested section inside a complex-mode
// ("0xC0") texture body that lists, per chunk, the second-stage
// compressor to use, the chunk's byte size, and (optionally) its byte
// offset within the chunk data that follows the complex header.
package instruction

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/namachan10777/hapcodec/internal/section"
	"github.com/namachan10777/hapcodec/internal/wire"
)

// Chunk describes one independently (de)compressed range of a
// complex-mode texture body.
type Chunk struct {
	Offset     int
	Size       int
	Compressor byte // wire.ChunkCompressorNone or wire.ChunkCompressorSnappy
}

// UnknownCompressorError reports a chunk-compressor byte that is neither
// the canonical nor the legacy encoding of None or Snappy.
type UnknownCompressorError struct{ Byte byte }

func (e *UnknownCompressorError) Error() string {
	return fmt.Sprintf("instruction: unknown chunk compressor byte %#02x", e.Byte)
}

// ErrTableLengthMismatch is returned when the compressor, size, and (if
// present) offset tables parsed from the complex header don't all agree
// on the chunk count.
var ErrTableLengthMismatch = fmt.Errorf("instruction: compressor/size/offset table length mismatch")

// ErrShortComplexHeader is returned when the sub-sections inside the
// complex header do not exactly sum to its declared size.
var ErrShortComplexHeader = fmt.Errorf("instruction: complex header sub-sections do not sum to its declared size")

// Parse reads the complex-header section at the current position of r
// and returns the number of bytes it occupies on the wire (preamble plus
// payload) and the chunk table it describes.
//
// Any sub-section tag other than the compressor table (0x02), size table
// (0x03), or offset table (0x04) is consumed and ignored, permitting
// forward-compatible extension of the complex header.
func Parse(r io.Reader) (consumed int, chunks []Chunk, err error) {
	header, err := section.Read(r)
	if err != nil {
		return 0, nil, fmt.Errorf("instruction: reading complex header: %w", err)
	}

	remaining := int(header.Size)
	var compressors []byte
	var sizes []uint32
	var offsets []uint32

	for remaining > 0 {
		sub, err := section.Read(r)
		if err != nil {
			return 0, nil, fmt.Errorf("instruction: reading sub-section: %w", err)
		}
		remaining -= sub.Consumed()
		if remaining < 0 {
			return 0, nil, ErrShortComplexHeader
		}
		buf, err := section.ReadBody(r, sub)
		if err != nil {
			return 0, nil, err
		}
		switch sub.Type {
		case wire.SubSectionCompressorTable:
			compressors = buf
		case wire.SubSectionSizeTable:
			sizes = decodeUint32LEs(buf)
		case wire.SubSectionOffsetTable:
			offsets = decodeUint32LEs(buf)
		default:
			log.Warn().Uint8("tag", sub.Type).Msg("instruction: skipping unrecognized complex sub-section")
		}
	}
	if remaining != 0 {
		return 0, nil, ErrShortComplexHeader
	}

	if len(compressors) != len(sizes) || (len(offsets) != 0 && len(offsets) != len(sizes)) {
		return 0, nil, ErrTableLengthMismatch
	}

	chunks = make([]Chunk, len(sizes))
	loggedLegacy := false
	var runningOffset uint32
	for i, size := range sizes {
		canonical, legacy, ok := wire.NormalizeChunkCompressor(compressors[i])
		if !ok {
			return 0, nil, &UnknownCompressorError{Byte: compressors[i]}
		}
		if legacy && !loggedLegacy {
			log.Warn().Uint8("byte", compressors[i]).Msg("instruction: chunk compressor table uses legacy high-nibble encoding")
			loggedLegacy = true
		}
		offset := runningOffset
		if len(offsets) != 0 {
			offset = offsets[i]
		}
		chunks[i] = Chunk{Offset: int(offset), Size: int(size), Compressor: canonical}
		runningOffset += size
	}

	return header.Consumed(), chunks, nil
}

func decodeUint32LEs(buf []byte) []uint32 {
	out := make([]uint32, len(buf)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
	return out
}
