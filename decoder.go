package hapcodec

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/namachan10777/hapcodec/internal/bodycodec"
	"github.com/namachan10777/hapcodec/internal/instruction"
	"github.com/namachan10777/hapcodec/internal/section"
	"github.com/namachan10777/hapcodec/internal/wire"
	"github.com/namachan10777/hapcodec/internal/workerpool"
)

// Decoder decodes Hap frames read from an io.Reader. The zero Decoder is
// not usable; construct one with NewDecoder or NewPooledDecoder.
//
// A Decoder returned by NewDecoder is stateless and safe for concurrent
// use by multiple goroutines, each decoding a different frame. A
// Decoder returned by NewPooledDecoder owns a shared worker pool and
// serializes DecodeFrame calls against it: concurrent calls succeed but
// do not run concurrently with each other.
type Decoder struct {
	pool *workerpool.Pool
	mu   sync.Mutex
}

// NewDecoder returns a Decoder that decodes the Snappy second stage
// serially on the calling goroutine. Close is a no-op.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// NewPooledDecoder returns a Decoder that decodes complex-mode chunks
// across workers long-lived goroutines, reused across every DecodeFrame
// call. Call Close once the Decoder is no longer needed.
func NewPooledDecoder(workers int) *Decoder {
	return &Decoder{pool: workerpool.New(workers)}
}

// Close releases the Decoder's worker pool, if any. It is a no-op for a
// Decoder returned by NewDecoder.
func (d *Decoder) Close() error {
	if d.pool == nil {
		return nil
	}
	return d.pool.Close()
}

// chunkPool adapts d.pool to bodycodec.ChunkPool, returning a true nil
// interface when d.pool is nil rather than an interface wrapping a nil
// *workerpool.Pool.
func (d *Decoder) chunkPool() bodycodec.ChunkPool {
	if d.pool == nil {
		return nil
	}
	return d.pool
}

// DecodeFrame reads exactly one Hap frame from r: its outer section,
// and either the single texture it wraps or the two inner sections of a
// multi-image (Hap Q Alpha) frame.
func (d *Decoder) DecodeFrame(r io.Reader) (Texture, error) {
	if d.pool != nil {
		d.mu.Lock()
		defer d.mu.Unlock()
	}

	outer, err := section.Read(r)
	if err != nil {
		return Texture{}, fmt.Errorf("hapcodec: reading frame: %w", err)
	}

	if outer.FormatNibble() == wire.FormatMultipleImages {
		return d.decodeMultiImageMarker(r, outer)
	}
	return d.decodeSingle(r, outer)
}

func (d *Decoder) decodeSingle(r io.Reader, sec section.Raw) (Texture, error) {
	format, compression, ok := pixelFormatForNibble(sec.FormatNibble())
	if !ok {
		return Texture{}, &UnknownTextureFormatError{Nibble: sec.FormatNibble()}
	}
	body, err := section.ReadBody(r, sec)
	if err != nil {
		return Texture{}, err
	}
	data, err := bodycodec.Decode(body, sec, d.chunkPool())
	if err != nil {
		return Texture{}, translateBodyError(err)
	}
	return singleTexture(format, compression, data), nil
}

func (d *Decoder) decodeInner(r io.Reader, inner section.Raw) (PixelFormat, PixelCompression, []byte, error) {
	format, compression, ok := pixelFormatForNibble(inner.FormatNibble())
	if !ok {
		return 0, 0, nil, &UnknownTextureFormatError{Nibble: inner.FormatNibble()}
	}
	body, err := section.ReadBody(r, inner)
	if err != nil {
		return 0, 0, nil, err
	}
	data, err := bodycodec.Decode(body, inner, d.chunkPool())
	if err != nil {
		return 0, 0, nil, translateBodyError(err)
	}
	return format, compression, data, nil
}

// decodeMultiImageMarker handles the outer 0x0D marker. Its variant is
// decided entirely by the inner section(s) it wraps, not by 0x0D
// itself: if the first inner section alone consumes the whole outer
// section, the marker wraps a single texture (by the inner section's
// own format nibble); otherwise it wraps a ScaledYCoCg color image
// followed immediately by an RGTC1 alpha image.
func (d *Decoder) decodeMultiImageMarker(r io.Reader, outer section.Raw) (Texture, error) {
	first, err := section.Read(r)
	if err != nil {
		return Texture{}, fmt.Errorf("hapcodec: reading multi-image inner section: %w", err)
	}
	firstFormat, firstCompression, firstData, err := d.decodeInner(r, first)
	if err != nil {
		return Texture{}, err
	}

	if first.Consumed() == int(outer.Size) {
		return singleTexture(firstFormat, firstCompression, firstData), nil
	}

	second, err := section.Read(r)
	if err != nil {
		return Texture{}, fmt.Errorf("hapcodec: reading multi-image inner section: %w", err)
	}
	secondFormat, secondCompression, secondData, err := d.decodeInner(r, second)
	if err != nil {
		return Texture{}, err
	}

	return pairTexture(firstFormat, secondFormat, firstCompression, secondCompression, firstData, secondData), nil
}

func translateBodyError(err error) error {
	var uc *bodycodec.UnknownCompressorError
	if errors.As(err, &uc) {
		return &UnknownCompressorError{Byte: uc.Byte}
	}
	var ic *instruction.UnknownCompressorError
	if errors.As(err, &ic) {
		return &UnknownDecodeInstructionError{Tag: ic.Byte}
	}
	if errors.Is(err, workerpool.ErrClosed) {
		return ErrInternalThreadProblem
	}
	return err
}
