// Package hapcodec decodes Hap family GPU-texture video frames: Hap,
// Hap Alpha, Hap Q, Hap Q Alpha, and the HapR/HapM variants built on
// BC7 and RGTC/BC6U/BC6S textures.
//
// A Hap frame is a nested section format. The outer section wraps
// either a single texture or, for Hap Q Alpha, a pair of textures
// (a ScaledYCoCg color image and a separate alpha image). Each texture
// section is itself second-stage compressed with nothing, whole-body
// Snappy, or a chunked ("complex") scheme that Snappy-compresses
// independent ranges of the GPU-compressed payload, optionally in
// parallel.
//
// Basic usage for decoding a single frame:
//
//	dec := hapcodec.NewDecoder()
//	tex, err := dec.DecodeFrame(r)
//
// DecodeFrame returns the decompressed, but still GPU-block-compressed,
// texture bytes: the caller is expected to hand them to a graphics API
// (DXT1, DXT5, BC7, RGTC1, BC6U, or BC6S, depending on
// Texture.Compression) rather than a CPU-side image.Image. For workloads
// decoding many frames, NewPooledDecoder decodes the Snappy chunks of
// complex-mode bodies across a fixed worker pool instead of serially on
// the calling goroutine; whole-body Snappy is still decoded on the
// calling goroutine.
package hapcodec
