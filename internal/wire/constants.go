// Package wire defines the byte-level constants shared by the section
// header reader, the instruction-stream parser, and the texture-body
// decoder: section-type nibbles, complex-header sub-section tags, and
// per-chunk compressor byte values (both the canonical and legacy forms).
package wire

// Section preamble layout.
const (
	ShortHeaderSize = 4 // 24-bit size + 8-bit type
	LongHeaderSize  = 8 // short header with size_low == 0, plus a 32-bit size
)

// MultiImageSectionType is the outer section type marking a multi-image
// (ScaledYCoCg + Alpha) frame. It never appears as an inner texture
// section's low nibble.
const MultiImageSectionType = 0x0D

// Pixel-format low nibbles (section_type & 0x0F).
const (
	FormatAlpha            = 0x01
	FormatRGBUnsignedFloat = 0x02
	FormatRGBSignedFloat   = 0x03
	FormatRGB              = 0x0B
	FormatRGBA             = 0x0C
	FormatMultipleImages   = 0x0D
	FormatRGBADXT5         = 0x0E
	FormatScaledYCoCg      = 0x0F
)

// Second-stage compressor high nibbles (section_type & 0xF0), for the
// outer texture section only.
const (
	CompressorNone    = 0xA0
	CompressorSnappy  = 0xB0
	CompressorComplex = 0xC0
)

// Complex-header sub-section tags.
const (
	SubSectionCompressorTable = 0x02
	SubSectionSizeTable       = 0x03
	SubSectionOffsetTable     = 0x04
)

// Per-chunk compressor byte, canonical (raw-value) form. This is the
// convention used inside a complex header's compressor table, distinct
// from the outer section's high-nibble convention above.
const (
	ChunkCompressorNone   = 0x0A
	ChunkCompressorSnappy = 0x0B
)

// legacyChunkCompressor reports whether b is the older high-nibble
// encoding of a per-chunk compressor byte (0xA0/0xB0 rather than
// 0x0A/0x0B), and if so returns its canonical equivalent.
//
// Two conventions for this byte appear across known Hap encoders: later
// tools emit the raw value, earlier ones emit it shifted into the high
// nibble as if it were a section type. Both are accepted; the high-nibble
// form is treated as a legacy quirk, not an error.
func legacyChunkCompressor(b byte) (canonical byte, isLegacy bool) {
	switch b {
	case CompressorNone:
		return ChunkCompressorNone, true
	case CompressorSnappy:
		return ChunkCompressorSnappy, true
	default:
		return 0, false
	}
}

// NormalizeChunkCompressor maps a raw chunk-compressor byte to its
// canonical form, accepting both the canonical (0x0A/0x0B) and legacy
// (0xA0/0xB0) encodings. ok is false for any other byte value.
func NormalizeChunkCompressor(b byte) (canonical byte, legacy bool, ok bool) {
	switch b {
	case ChunkCompressorNone, ChunkCompressorSnappy:
		return b, false, true
	}
	if canon, isLegacy := legacyChunkCompressor(b); isLegacy {
		return canon, true, true
	}
	return 0, false, false
}
