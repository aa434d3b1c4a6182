package wkb

import (
	"encoding/binary"
	"fmt"

	"github.com/temporalcore/tempo/compress"
	"github.com/temporalcore/tempo/errs"
	"github.com/temporalcore/tempo/format"
	"github.com/temporalcore/tempo/temporal"
)

// compressedMagic distinguishes a CompressedFrame from a plain WKB frame:
// a plain frame's first byte is always the 0/1 endian marker, so a value
// outside that range can never collide with one.
const compressedMagic byte = 0xC0

// WriteCompressed encodes t exactly as Encode does, then wraps the result
// in a CompressedFrame (magic byte, algorithm tag, original length,
// compressed payload) using cfg.Compression whenever the encoded frame
// exceeds cfg.CompressionThreshold. Below the threshold, or when
// Compression is format.CompressionNone, the plain WKB frame is returned
// unwrapped, matching compress's own "compression with overhead headroom
// only" contract from the teacher's codec selection logic.
func WriteCompressed(t temporal.Temporal, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	raw, err := Encode(t, opts...)
	if err != nil {
		return nil, err
	}

	if cfg.Compression == format.CompressionNone || len(raw) < cfg.CompressionThreshold {
		return raw, nil
	}

	codec, err := compress.GetCodec(cfg.Compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(raw)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 1+1+4+len(compressed))
	out = append(out, compressedMagic, byte(cfg.Compression))

	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(raw)))
	out = append(out, lenBuf[:]...)
	out = append(out, compressed...)

	return out, nil
}

// ReadCompressed is the inverse of WriteCompressed: it detects a
// CompressedFrame via the leading magic byte and decompresses before
// handing the recovered bytes to Decode, or falls through to Decode
// directly for a plain WKB frame.
func ReadCompressed(b []byte, opts ...Option) (temporal.Temporal, error) {
	if len(b) == 0 || b[0] != compressedMagic {
		return Decode(b, opts...)
	}

	if len(b) < 6 {
		return nil, fmt.Errorf("%w: truncated compressed WKB frame", errs.ErrBinaryInput)
	}

	algo := format.CompressionType(b[1])
	originalLen := binary.LittleEndian.Uint32(b[2:6])

	codec, err := compress.GetCodec(algo)
	if err != nil {
		return nil, err
	}

	raw, err := codec.Decompress(b[6:])
	if err != nil {
		return nil, err
	}
	if uint32(len(raw)) != originalLen {
		return nil, fmt.Errorf("%w: decompressed WKB frame size mismatch: got %d, want %d", errs.ErrBinaryInput, len(raw), originalLen)
	}

	return Decode(raw, opts...)
}
