package bodycodec

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/golang/snappy"

	"github.com/namachan10777/hapcodec/internal/section"
	"github.com/namachan10777/hapcodec/internal/wire"
)

func TestDecodeNone(t *testing.T) {
	body := []byte{1, 2, 3, 4}
	sec := section.Raw{Type: wire.CompressorNone | 0x0B}
	out, err := Decode(body, sec, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out, body) {
		t.Errorf("Decode() = %x, want %x", out, body)
	}
}

func TestDecodeSnappy(t *testing.T) {
	plain := bytes.Repeat([]byte("hap"), 100)
	body := snappy.Encode(nil, plain)
	sec := section.Raw{Type: wire.CompressorSnappy | 0x0B}
	out, err := Decode(body, sec, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(out, plain) {
		t.Errorf("Decode() mismatch")
	}
}

func TestDecodeUnknownCompressor(t *testing.T) {
	sec := section.Raw{Type: 0x70}
	_, err := Decode(nil, sec, nil)
	if err == nil {
		t.Fatal("expected error for unrecognized compressor nibble")
	}
}

func writeSub(buf *bytes.Buffer, tag byte, payload []byte) {
	size := len(payload)
	buf.Write([]byte{byte(size), byte(size >> 8), byte(size >> 16), tag})
	buf.Write(payload)
}

func uint32LEs(vs []uint32) []byte {
	out := make([]byte, len(vs)*4)
	for i, v := range vs {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// buildComplexBody assembles a full complex-mode texture body: the
// nested complex header followed by the chunk payloads it describes,
// in offset order.
func buildComplexBody(compressors []byte, chunkPayloads [][]byte) []byte {
	sizes := make([]uint32, len(chunkPayloads))
	for i, p := range chunkPayloads {
		sizes[i] = uint32(len(p))
	}

	var headerBody bytes.Buffer
	writeSub(&headerBody, wire.SubSectionCompressorTable, compressors)
	writeSub(&headerBody, wire.SubSectionSizeTable, uint32LEs(sizes))

	var header bytes.Buffer
	sz := headerBody.Len()
	header.Write([]byte{byte(sz), byte(sz >> 8), byte(sz >> 16), 0x00})
	header.Write(headerBody.Bytes())

	var out bytes.Buffer
	out.Write(header.Bytes())
	for _, p := range chunkPayloads {
		out.Write(p)
	}
	return out.Bytes()
}

func TestDecodeComplexMixedCompressors(t *testing.T) {
	plainA := []byte("uncompressed chunk")
	plainB := bytes.Repeat([]byte("x"), 500)
	body := buildComplexBody(
		[]byte{wire.ChunkCompressorNone, wire.ChunkCompressorSnappy},
		[][]byte{plainA, snappy.Encode(nil, plainB)},
	)
	sec := section.Raw{Type: wire.CompressorComplex | 0x0B}
	out, err := Decode(body, sec, nil)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := append(append([]byte{}, plainA...), plainB...)
	if !bytes.Equal(out, want) {
		t.Errorf("Decode() = %d bytes, want %d bytes matching concatenation", len(out), len(want))
	}
}

type fakePool struct {
	calls int
}

func (p *fakePool) DecodeSnappy(chunks [][]byte) ([][]byte, error) {
	p.calls++
	out := make([][]byte, len(chunks))
	for i, c := range chunks {
		d, err := snappy.Decode(nil, c)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

func TestDecodeComplexUsesPool(t *testing.T) {
	plain := bytes.Repeat([]byte("y"), 64)
	body := buildComplexBody(
		[]byte{wire.ChunkCompressorSnappy},
		[][]byte{snappy.Encode(nil, plain)},
	)
	sec := section.Raw{Type: wire.CompressorComplex | 0x0B}
	pool := &fakePool{}
	out, err := Decode(body, sec, pool)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if pool.calls != 1 {
		t.Errorf("pool.calls = %d, want 1", pool.calls)
	}
	if !bytes.Equal(out, plain) {
		t.Errorf("Decode() mismatch")
	}
}

func TestDecodeComplexChunkOutOfBounds(t *testing.T) {
	var headerBody bytes.Buffer
	writeSub(&headerBody, wire.SubSectionCompressorTable, []byte{wire.ChunkCompressorNone})
	writeSub(&headerBody, wire.SubSectionSizeTable, uint32LEs([]uint32{1000}))
	var header bytes.Buffer
	sz := headerBody.Len()
	header.Write([]byte{byte(sz), byte(sz >> 8), byte(sz >> 16), 0x00})
	header.Write(headerBody.Bytes())
	header.Write([]byte{1, 2, 3}) // far short of the declared 1000 bytes

	sec := section.Raw{Type: wire.CompressorComplex | 0x0B}
	_, err := Decode(header.Bytes(), sec, nil)
	if err == nil {
		t.Fatal("expected out-of-bounds error")
	}
}
