package hapcodec

import (
	"errors"
	"fmt"
)

// UnknownCompressorError reports a section-type high nibble that does
// not match any known second-stage compressor.
type UnknownCompressorError struct{ Byte byte }

func (e *UnknownCompressorError) Error() string {
	return fmt.Sprintf("hapcodec: unknown second-stage compressor nibble %#02x", e.Byte)
}

// UnknownTextureFormatError reports a section-type low nibble that does
// not match any known pixel format.
type UnknownTextureFormatError struct{ Nibble byte }

func (e *UnknownTextureFormatError) Error() string {
	return fmt.Sprintf("hapcodec: unknown texture format nibble %#02x", e.Nibble)
}

// UnknownDecodeInstructionError reports an unrecognized tag inside a
// complex-mode chunk table where a compressor byte was expected.
type UnknownDecodeInstructionError struct{ Tag byte }

func (e *UnknownDecodeInstructionError) Error() string {
	return fmt.Sprintf("hapcodec: unknown decode instruction byte %#02x", e.Tag)
}

// ErrInternalThreadProblem is returned when a pooled Decoder's worker
// goroutines stop responding, for example because the pool was closed
// while a decode was in flight.
var ErrInternalThreadProblem = errors.New("hapcodec: internal thread problem")
