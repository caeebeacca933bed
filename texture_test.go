package hapcodec

import "testing"

func TestSingleTextureAccessors(t *testing.T) {
	tex := singleTexture(FormatRGB, CompressionDXT1, []byte{1, 2, 3})
	if tex.Kind() != KindSingle {
		t.Fatalf("Kind() = %v, want KindSingle", tex.Kind())
	}
	if tex.Format() != FormatRGB {
		t.Errorf("Format() = %v, want FormatRGB", tex.Format())
	}
	if tex.Compression() != CompressionDXT1 {
		t.Errorf("Compression() = %v, want CompressionDXT1", tex.Compression())
	}
	data, ok := tex.SingleRaw()
	if !ok || len(data) != 3 {
		t.Errorf("SingleRaw() = %v, %v", data, ok)
	}
	if _, _, ok := tex.PairRaw(); ok {
		t.Error("PairRaw() should report ok=false on a single texture")
	}
}

func TestPairTextureAccessors(t *testing.T) {
	tex := pairTexture(FormatScaledYCoCg, FormatAlpha, CompressionDXT5, CompressionRGTC1, []byte{1}, []byte{2, 2})
	if tex.Kind() != KindPair {
		t.Fatalf("Kind() = %v, want KindPair", tex.Kind())
	}
	color, alpha, ok := tex.PairRaw()
	if !ok || len(color) != 1 || len(alpha) != 2 {
		t.Errorf("PairRaw() = %v, %v, %v", color, alpha, ok)
	}
	cf, af, ok := tex.PairFormats()
	if !ok || cf != FormatScaledYCoCg || af != FormatAlpha {
		t.Errorf("PairFormats() = %v, %v, %v", cf, af, ok)
	}
	cc, ac, ok := tex.PairCompressions()
	if !ok || cc != CompressionDXT5 || ac != CompressionRGTC1 {
		t.Errorf("PairCompressions() = %v, %v, %v", cc, ac, ok)
	}
	if _, ok := tex.SingleRaw(); ok {
		t.Error("SingleRaw() should report ok=false on a pair texture")
	}
}

func TestFormatPanicsOnPairTexture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Format() to panic on a pair texture")
		}
	}()
	pairTexture(FormatScaledYCoCg, FormatAlpha, CompressionDXT5, CompressionRGTC1, nil, nil).Format()
}

func TestCompressionPanicsOnPairTexture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Compression() to panic on a pair texture")
		}
	}()
	pairTexture(FormatScaledYCoCg, FormatAlpha, CompressionDXT5, CompressionRGTC1, nil, nil).Compression()
}

func TestTextureStringReportsLengthNotPayload(t *testing.T) {
	tex := singleTexture(FormatRGBA, CompressionDXT5, make([]byte, 4096))
	want := "Texture{Single format=RGBA/DXT5_BC3 (4096 bytes)}"
	if got := tex.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestOpenGLPixelFormatIDSingleSupported(t *testing.T) {
	tex := singleTexture(FormatRGB, CompressionDXT1, nil)
	got := tex.OpenGLPixelFormatID()
	if got.Kind != OpenGLSingle || got.First != glRGBDXT1 {
		t.Errorf("OpenGLPixelFormatID() = %+v", got)
	}
}

func TestOpenGLPixelFormatIDUnsupportedFormats(t *testing.T) {
	cases := []struct {
		format      PixelFormat
		compression PixelCompression
	}{
		{FormatAlpha, CompressionRGTC1},
		{FormatScaledYCoCg, CompressionDXT5},
	}
	for _, c := range cases {
		tex := singleTexture(c.format, c.compression, nil)
		if got := tex.OpenGLPixelFormatID(); got.Kind != OpenGLUnsupported {
			t.Errorf("OpenGLPixelFormatID() for %v/%v = %+v, want OpenGLUnsupported", c.format, c.compression, got)
		}
	}
}

func TestOpenGLPixelFormatIDDistinguishesRGBAFromScaledYCoCg(t *testing.T) {
	// Both are DXT5-compressed, but only RGBA has a direct GL mapping:
	// ScaledYCoCg needs a shader pass despite sharing the compression.
	rgba := singleTexture(FormatRGBA, CompressionDXT5, nil)
	if got := rgba.OpenGLPixelFormatID(); got.Kind != OpenGLSingle || got.First != glRGBADXT5 {
		t.Errorf("OpenGLPixelFormatID() for RGBA/DXT5 = %+v, want OpenGLSingle/glRGBADXT5", got)
	}
	ycocg := singleTexture(FormatScaledYCoCg, CompressionDXT5, nil)
	if got := ycocg.OpenGLPixelFormatID(); got.Kind != OpenGLUnsupported {
		t.Errorf("OpenGLPixelFormatID() for ScaledYCoCg/DXT5 = %+v, want OpenGLUnsupported", got)
	}
}

func TestOpenGLPixelFormatIDPairIsUnsupported(t *testing.T) {
	// A Hap Q Alpha pair is always ScaledYCoCg + Alpha/RGTC1, both of
	// which are individually unsupported, so the pair is too.
	tex := pairTexture(FormatScaledYCoCg, FormatAlpha, CompressionDXT5, CompressionRGTC1, nil, nil)
	if got := tex.OpenGLPixelFormatID(); got.Kind != OpenGLUnsupported {
		t.Errorf("OpenGLPixelFormatID() = %+v, want OpenGLUnsupported", got)
	}
}
