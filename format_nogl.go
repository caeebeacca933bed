//go:build nogl

package hapcodec

// OpenGLFormatID is a stand-in for the OpenGL internal-format enum when
// built with the nogl tag, for callers that never touch a GL context
// and don't want the identifier type in their API surface at all.
type OpenGLFormatID uint32

const glUnknownFormatID OpenGLFormatID = 0

func openGLFormatIDFor(PixelFormat, PixelCompression) OpenGLFormatID {
	return glUnknownFormatID
}
