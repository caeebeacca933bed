//go:build !nogl

package hapcodec

// OpenGLFormatID is an OpenGL internal-format enum value, suitable for
// passing straight to glCompressedTexImage2D without a local lookup
// table. Uploading the bytes is out of scope for this package; this
// only spares the caller from re-deriving the mapping themselves.
//
// glUnknownFormatID marks formats this table deliberately does not
// resolve: ScaledYCoCg and Alpha/RGTC1 decode to real, uploadable GPU
// textures, but neither is directly displayable as an RGBA texture — a
// caller needs a YCoCg-to-RGB shader pass, or to recombine the pair
// with its alpha plane, before the pixels mean anything. Forcing those
// callers through the zero value rather than a plausible-looking ID
// keeps a naive glCompressedTexImage2D call from silently rendering
// garbage.
type OpenGLFormatID uint32

// Values match GL_COMPRESSED_RGB_S3TC_DXT1_EXT and friends from the
// khronos EXT_texture_compression_s3tc and ARB/EXT_texture_compression_bptc
// extensions.
const (
	glRGBDXT1         OpenGLFormatID = 0x83F0
	glRGBADXT5        OpenGLFormatID = 0x83F3
	glRGBABPTCUnorm   OpenGLFormatID = 0x8E8C
	glRGBBPTCUfloat   OpenGLFormatID = 0x8E8F
	glRGBBPTCSfloat   OpenGLFormatID = 0x8E8E
	glUnknownFormatID OpenGLFormatID = 0
)

func openGLFormatIDFor(f PixelFormat, c PixelCompression) OpenGLFormatID {
	if f == FormatScaledYCoCg {
		// Same DXT5 compression as plain RGBA, but the bytes are a YCoCg
		// encoding: unsupported without a caller-side shader pass.
		return glUnknownFormatID
	}
	switch c {
	case CompressionDXT1:
		return glRGBDXT1
	case CompressionDXT5:
		return glRGBADXT5
	case CompressionBC7:
		return glRGBABPTCUnorm
	case CompressionBC6Unsigned:
		return glRGBBPTCUfloat
	case CompressionBC6Signed:
		return glRGBBPTCSfloat
	default:
		// CompressionRGTC1: unsupported by design (Alpha/RGTC1 needs a
		// caller-side shader pass, never a bare glCompressedTexImage2D).
		return glUnknownFormatID
	}
}
