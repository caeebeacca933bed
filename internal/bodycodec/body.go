// Package bodycodec turns the raw bytes of a texture section's body into
// fully second-stage-decompressed texture data, dispatching on the
// section's compressor nibble: none, whole-body Snappy, or a
// complex-mode chunk stream.
package bodycodec

import (
	"bytes"
	"fmt"

	"github.com/golang/snappy"

	"github.com/namachan10777/hapcodec/internal/instruction"
	"github.com/namachan10777/hapcodec/internal/section"
	"github.com/namachan10777/hapcodec/internal/wire"
)

// ChunkPool decodes a batch of Snappy-compressed chunks concurrently and
// returns their decoded payloads in input order. *workerpool.Pool
// satisfies this interface; bodycodec depends on it only through this
// narrow seam so a nil ChunkPool can mean "decode serially" without an
// import cycle.
type ChunkPool interface {
	DecodeSnappy(chunks [][]byte) ([][]byte, error)
}

// UnknownCompressorError reports a section-type high nibble that is
// none of the recognized second-stage compressor codes.
type UnknownCompressorError struct{ Byte byte }

func (e *UnknownCompressorError) Error() string {
	return fmt.Sprintf("bodycodec: unknown second-stage compressor nibble %#02x", e.Byte)
}

// Decode reads sec's body from body (sized to exactly sec.Size, as
// returned by section.ReadBody) and returns it fully decompressed. pool
// may be nil, in which case complex-mode chunks are decoded serially on
// the calling goroutine.
func Decode(body []byte, sec section.Raw, pool ChunkPool) ([]byte, error) {
	switch sec.CompressorNibble() {
	case wire.CompressorNone:
		return body, nil
	case wire.CompressorSnappy:
		out, err := snappy.Decode(nil, body)
		if err != nil {
			return nil, fmt.Errorf("bodycodec: snappy decode: %w", err)
		}
		return out, nil
	case wire.CompressorComplex:
		return decodeComplex(body, pool)
	default:
		return nil, &UnknownCompressorError{Byte: sec.CompressorNibble()}
	}
}

func decodeComplex(body []byte, pool ChunkPool) ([]byte, error) {
	consumed, chunks, err := instruction.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	chunkData := body[consumed:]

	raw := make([][]byte, len(chunks))
	for i, c := range chunks {
		// The chunk's own byte range, never the whole remaining buffer:
		// an earlier decoder generation appended the rest of chunkData
		// on every iteration, which happened to work only for a
		// single-chunk body.
		end := c.Offset + c.Size
		if c.Offset < 0 || end > len(chunkData) {
			return nil, fmt.Errorf("bodycodec: chunk %d range [%d:%d) out of bounds (body has %d bytes)", i, c.Offset, end, len(chunkData))
		}
		raw[i] = chunkData[c.Offset:end]
	}

	snappyIdx := make([]int, 0, len(chunks))
	snappyChunks := make([][]byte, 0, len(chunks))
	for i, c := range chunks {
		if c.Compressor == wire.ChunkCompressorSnappy {
			snappyIdx = append(snappyIdx, i)
			snappyChunks = append(snappyChunks, raw[i])
		}
	}

	decodedSnappy := snappyChunks
	var decodeErr error
	if len(snappyChunks) > 0 {
		if pool != nil {
			decodedSnappy, decodeErr = pool.DecodeSnappy(snappyChunks)
		} else {
			decodedSnappy = make([][]byte, len(snappyChunks))
			for i, c := range snappyChunks {
				decodedSnappy[i], decodeErr = snappy.Decode(nil, c)
				if decodeErr != nil {
					break
				}
			}
		}
		if decodeErr != nil {
			return nil, fmt.Errorf("bodycodec: decoding complex-mode chunk: %w", decodeErr)
		}
	}
	for j, i := range snappyIdx {
		raw[i] = decodedSnappy[j]
	}

	total := 0
	for _, c := range raw {
		total += len(c)
	}
	out := make([]byte, total)
	pos := 0
	for _, c := range raw {
		pos += copy(out[pos:], c)
	}
	return out, nil
}
