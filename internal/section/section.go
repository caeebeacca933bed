// Package section reads the 4- or 8-byte preamble that fronts every Hap
// section, from the outermost frame section down through complex-mode
// sub-sections.
package section

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/namachan10777/hapcodec/internal/wire"
)

// Raw is one decoded section preamble. Size is the payload byte count,
// excluding the preamble itself. HeaderSize is 4 or 8, reflecting which
// form of the preamble was present on the wire.
type Raw struct {
	Size       uint32
	Type       byte
	HeaderSize int
}

// Read decodes one section preamble from r and advances r by the
// returned HeaderSize bytes.
//
// The preamble is a 24-bit little-endian size, an 8-bit type, and —
// only when the 24-bit size is zero — a trailing 32-bit little-endian
// size that replaces it.
func Read(r io.Reader) (Raw, error) {
	var buf [wire.LongHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:wire.ShortHeaderSize]); err != nil {
		return Raw{}, fmt.Errorf("section: reading preamble: %w", err)
	}
	size := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16
	sectionType := buf[3]
	if size != 0 {
		return Raw{Size: size, Type: sectionType, HeaderSize: wire.ShortHeaderSize}, nil
	}
	if _, err := io.ReadFull(r, buf[4:8]); err != nil {
		return Raw{}, fmt.Errorf("section: reading extended size: %w", err)
	}
	size = binary.LittleEndian.Uint32(buf[4:8])
	return Raw{Size: size, Type: sectionType, HeaderSize: wire.LongHeaderSize}, nil
}

// ReadBody reads exactly sec.Size bytes from r, the section's payload.
func ReadBody(r io.Reader, sec Raw) ([]byte, error) {
	buf := make([]byte, sec.Size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("section: reading body (%d bytes): %w", sec.Size, err)
	}
	return buf, nil
}

// FormatNibble returns the low nibble of the section type: the pixel
// format/compression code for a texture-bearing section.
func (s Raw) FormatNibble() byte { return s.Type & 0x0F }

// CompressorNibble returns the high nibble of the section type: the
// second-stage compressor code for a texture-bearing section.
func (s Raw) CompressorNibble() byte { return s.Type & 0xF0 }

// Consumed returns the total bytes this section occupies on the wire,
// preamble included.
func (s Raw) Consumed() int { return s.HeaderSize + int(s.Size) }
