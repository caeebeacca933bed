package hapcodec

import "github.com/namachan10777/hapcodec/internal/wire"

// PixelFormat identifies the semantic channel layout of a texture
// section's payload: what the decoded pixels mean, independent of how
// they are GPU block-compressed. See PixelCompression for the other
// axis.
type PixelFormat byte

const (
	// FormatRGB is an opaque RGB image.
	FormatRGB PixelFormat = iota
	// FormatRGBA is an RGB image with alpha.
	FormatRGBA
	// FormatScaledYCoCg is a scaled YCoCg color encoding, used by Hap Q
	// and as the first image of Hap Q Alpha. It needs a shader pass to
	// become displayable RGB.
	FormatScaledYCoCg
	// FormatAlpha is a single-channel alpha plane, carried as the
	// second image of a Hap Q Alpha frame.
	FormatAlpha
	// FormatRGBUnsignedFloat is an HDR RGB image with no alpha, unsigned.
	FormatRGBUnsignedFloat
	// FormatRGBSignedFloat is an HDR RGB image with no alpha, signed.
	FormatRGBSignedFloat
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRGB:
		return "RGB"
	case FormatRGBA:
		return "RGBA"
	case FormatScaledYCoCg:
		return "ScaledYCoCg"
	case FormatAlpha:
		return "Alpha"
	case FormatRGBUnsignedFloat:
		return "RGBUnsignedFloat"
	case FormatRGBSignedFloat:
		return "RGBSignedFloat"
	default:
		return "Unknown"
	}
}

// PixelCompression identifies the GPU block-compression scheme backing
// a texture section's payload. Paired with PixelFormat, it fully
// determines how to interpret and upload a texture's decoded bytes.
type PixelCompression byte

const (
	// CompressionNotApplicable marks a PixelFormat that never occurs on
	// its own, such as the multi-image marker's low nibble.
	CompressionNotApplicable PixelCompression = iota
	// CompressionDXT1 is DXT1/BC1.
	CompressionDXT1
	// CompressionDXT5 is DXT5/BC3.
	CompressionDXT5
	// CompressionBC7 is BC7.
	CompressionBC7
	// CompressionRGTC1 is RGTC1/BC4.
	CompressionRGTC1
	// CompressionBC6Unsigned is BC6H unsigned.
	CompressionBC6Unsigned
	// CompressionBC6Signed is BC6H signed.
	CompressionBC6Signed
)

func (c PixelCompression) String() string {
	switch c {
	case CompressionNotApplicable:
		return "NotApplicable"
	case CompressionDXT1:
		return "DXT1_BC1"
	case CompressionDXT5:
		return "DXT5_BC3"
	case CompressionBC7:
		return "BC7"
	case CompressionRGTC1:
		return "RGTC1_BC4"
	case CompressionBC6Unsigned:
		return "BC6U"
	case CompressionBC6Signed:
		return "BC6S"
	default:
		return "Unknown"
	}
}

// pixelFormatForNibble maps a texture section's format low nibble to
// its PixelFormat/PixelCompression pair. wire.FormatMultipleImages is
// handled separately by the frame decoder, since it names a container
// rather than a leaf format.
func pixelFormatForNibble(nibble byte) (PixelFormat, PixelCompression, bool) {
	switch nibble {
	case wire.FormatRGB:
		return FormatRGB, CompressionDXT1, true
	case wire.FormatRGBA:
		return FormatRGBA, CompressionBC7, true
	case wire.FormatRGBADXT5:
		return FormatRGBA, CompressionDXT5, true
	case wire.FormatAlpha:
		return FormatAlpha, CompressionRGTC1, true
	case wire.FormatScaledYCoCg:
		return FormatScaledYCoCg, CompressionDXT5, true
	case wire.FormatRGBUnsignedFloat:
		return FormatRGBUnsignedFloat, CompressionBC6Unsigned, true
	case wire.FormatRGBSignedFloat:
		return FormatRGBSignedFloat, CompressionBC6Signed, true
	default:
		return 0, 0, false
	}
}

// SecondStageCompressor identifies how a texture section's body was
// compressed beyond the GPU block compression baked into its pixels.
type SecondStageCompressor byte

const (
	SecondStageNone SecondStageCompressor = iota
	SecondStageSnappy
	SecondStageComplex
)

func (c SecondStageCompressor) String() string {
	switch c {
	case SecondStageNone:
		return "None"
	case SecondStageSnappy:
		return "Snappy"
	case SecondStageComplex:
		return "Complex"
	default:
		return "Unknown"
	}
}

func secondStageForNibble(nibble byte) (SecondStageCompressor, bool) {
	switch nibble {
	case wire.CompressorNone:
		return SecondStageNone, true
	case wire.CompressorSnappy:
		return SecondStageSnappy, true
	case wire.CompressorComplex:
		return SecondStageComplex, true
	default:
		return 0, false
	}
}
