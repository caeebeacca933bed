package hapcodec

import "fmt"

// TextureKind distinguishes a frame carrying one GPU texture from a Hap
// Q Alpha frame carrying two.
type TextureKind int

const (
	// KindSingle is every Hap variant except Hap Q Alpha: one texture
	// section, one PixelFormat/PixelCompression pair, one payload.
	KindSingle TextureKind = iota
	// KindPair is Hap Q Alpha: a ScaledYCoCg color image followed by a
	// separate RGTC1 alpha image, decoded from one outer section.
	KindPair
)

func (k TextureKind) String() string {
	if k == KindPair {
		return "Pair"
	}
	return "Single"
}

// Texture is the decoded result of one DecodeFrame call: the
// second-stage-decompressed, but still GPU-block-compressed, bytes for
// one or two GPU textures, tagged with enough format information to
// upload them.
//
// The zero Texture is not meaningful; values are only produced by
// DecodeFrame.
type Texture struct {
	kind TextureKind

	format      PixelFormat
	compression PixelCompression
	data        []byte

	colorFormat      PixelFormat
	colorCompression PixelCompression
	alphaFormat      PixelFormat
	alphaCompression PixelCompression
	color            []byte
	alpha            []byte
}

func singleTexture(format PixelFormat, compression PixelCompression, data []byte) Texture {
	return Texture{kind: KindSingle, format: format, compression: compression, data: data}
}

func pairTexture(colorFormat, alphaFormat PixelFormat, colorCompression, alphaCompression PixelCompression, color, alpha []byte) Texture {
	return Texture{
		kind:             KindPair,
		colorFormat:      colorFormat,
		alphaFormat:      alphaFormat,
		colorCompression: colorCompression,
		alphaCompression: alphaCompression,
		color:            color,
		alpha:            alpha,
	}
}

// Kind reports whether t holds one texture or a color/alpha pair.
func (t Texture) Kind() TextureKind { return t.kind }

// Format returns t's pixel format. It panics if t.Kind() is not
// KindSingle; use PairFormats for a KindPair texture.
func (t Texture) Format() PixelFormat {
	if t.kind != KindSingle {
		panic("hapcodec: Format called on a non-single Texture")
	}
	return t.format
}

// Compression returns t's GPU block-compression scheme. It panics if
// t.Kind() is not KindSingle; use PairCompressions for a KindPair
// texture.
func (t Texture) Compression() PixelCompression {
	if t.kind != KindSingle {
		panic("hapcodec: Compression called on a non-single Texture")
	}
	return t.compression
}

// PairFormats returns the color and alpha image formats of a KindPair
// texture. ok is false if t.Kind() is not KindPair.
func (t Texture) PairFormats() (color, alpha PixelFormat, ok bool) {
	if t.kind != KindPair {
		return 0, 0, false
	}
	return t.colorFormat, t.alphaFormat, true
}

// PairCompressions returns the color and alpha image compression
// schemes of a KindPair texture. ok is false if t.Kind() is not
// KindPair.
func (t Texture) PairCompressions() (color, alpha PixelCompression, ok bool) {
	if t.kind != KindPair {
		return 0, 0, false
	}
	return t.colorCompression, t.alphaCompression, true
}

// SingleRaw returns the decoded texture bytes of a KindSingle texture.
// ok is false if t.Kind() is not KindSingle.
func (t Texture) SingleRaw() ([]byte, bool) {
	if t.kind != KindSingle {
		return nil, false
	}
	return t.data, true
}

// PairRaw returns the decoded color and alpha texture bytes of a
// KindPair texture. ok is false if t.Kind() is not KindPair.
func (t Texture) PairRaw() (color, alpha []byte, ok bool) {
	if t.kind != KindPair {
		return nil, nil, false
	}
	return t.color, t.alpha, true
}

// OpenGLPixelFormatKind distinguishes the three shapes OpenGLPixelFormat
// can take: one GL format id, two (for a KindPair texture), or none,
// when the compression scheme has no direct GL representation.
type OpenGLPixelFormatKind int

const (
	OpenGLUnsupported OpenGLPixelFormatKind = iota
	OpenGLSingle
	OpenGLDouble
)

// OpenGLPixelFormat is the result of resolving a Texture's
// PixelCompression(s) against the GL internal-format table. Second is
// only meaningful when Kind is OpenGLDouble.
type OpenGLPixelFormat struct {
	Kind          OpenGLPixelFormatKind
	First, Second OpenGLFormatID
}

// OpenGLPixelFormatID resolves t's compression scheme(s) to their
// OpenGL internal-format ids. ScaledYCoCg and Alpha/RGTC1 images have
// no direct GL representation a naive glCompressedTexImage2D call
// could use, so any Texture touching either resolves to
// OpenGLUnsupported.
func (t Texture) OpenGLPixelFormatID() OpenGLPixelFormat {
	if t.kind == KindPair {
		first := openGLFormatIDFor(t.colorFormat, t.colorCompression)
		second := openGLFormatIDFor(t.alphaFormat, t.alphaCompression)
		if first == glUnknownFormatID || second == glUnknownFormatID {
			return OpenGLPixelFormat{Kind: OpenGLUnsupported}
		}
		return OpenGLPixelFormat{Kind: OpenGLDouble, First: first, Second: second}
	}
	id := openGLFormatIDFor(t.format, t.compression)
	if id == glUnknownFormatID {
		return OpenGLPixelFormat{Kind: OpenGLUnsupported}
	}
	return OpenGLPixelFormat{Kind: OpenGLSingle, First: id}
}

// String renders a compact summary of t: its kind, format(s), and
// payload length(s), not the payload bytes themselves.
func (t Texture) String() string {
	if t.kind == KindPair {
		return fmt.Sprintf("Texture{Pair color=%s/%s(%d bytes) alpha=%s/%s(%d bytes)}",
			t.colorFormat, t.colorCompression, len(t.color), t.alphaFormat, t.alphaCompression, len(t.alpha))
	}
	return fmt.Sprintf("Texture{Single format=%s/%s (%d bytes)}", t.format, t.compression, len(t.data))
}
