package hapcodec

import (
	"fmt"
	"io"

	"github.com/namachan10777/hapcodec/internal/section"
	"github.com/namachan10777/hapcodec/internal/wire"
)

// Header is a frame's outer section preamble, decoded without touching
// its body. It is useful for inspecting a frame (size, declared format,
// multi-image or not) without paying for a full decode.
type Header struct {
	// Size is the outer section's payload size in bytes, not counting
	// the preamble itself.
	Size uint32
	// MultiImage is true when the outer section is the multi-image
	// marker (format nibble 0x0D). Such a frame usually carries a
	// color/alpha texture pair, but the marker can also wrap a single
	// texture; ParseHeader does not read the inner sections to tell.
	MultiImage bool
	// Format is the zero value when MultiImage is true; the inner
	// sections' formats are not read by ParseHeader.
	Format PixelFormat
	// Compression is the GPU block-compression scheme paired with
	// Format. Like Format, it is the zero value when MultiImage is true.
	Compression PixelCompression
	// Compressor is the zero value when MultiImage is true: the outer
	// section for a multi-image frame carries no second-stage
	// compressor byte of its own, only its two inner sections do.
	Compressor SecondStageCompressor
}

// ParseHeader reads just the outer section's preamble (and, for a
// single-texture frame, classifies its format and compressor nibbles)
// from r, without decoding the texture body. It does not consume the
// texture body itself, so r is left positioned at the start of it.
func ParseHeader(r io.Reader) (Header, error) {
	sec, err := section.Read(r)
	if err != nil {
		return Header{}, fmt.Errorf("hapcodec: parsing header: %w", err)
	}

	if sec.FormatNibble() == wire.FormatMultipleImages {
		return Header{Size: sec.Size, MultiImage: true}, nil
	}

	format, compression, ok := pixelFormatForNibble(sec.FormatNibble())
	if !ok {
		return Header{}, &UnknownTextureFormatError{Nibble: sec.FormatNibble()}
	}
	compressor, ok := secondStageForNibble(sec.CompressorNibble())
	if !ok {
		return Header{}, &UnknownCompressorError{Byte: sec.CompressorNibble()}
	}

	return Header{Size: sec.Size, Format: format, Compression: compression, Compressor: compressor}, nil
}
