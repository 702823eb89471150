// Package pack wraps encoded CDR streams in an optional outer compression
// frame. The kind is chosen by flag when writing and recovered from the
// file extension when reading.
package pack

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

type Kind string

const (
	None Kind = "none"
	Zstd Kind = "zstd"
	LZ4  Kind = "lz4"
)

// ErrUnknownKind indicates an unsupported packing kind.
var ErrUnknownKind = errors.New("unknown pack kind")

var extensions = map[Kind]string{
	None: "",
	Zstd: ".zst",
	LZ4:  ".lz4",
}

// Ext returns the suffix appended after ".cdr" for k.
func (k Kind) Ext() string {
	return extensions[k]
}

// FromPath guesses the kind from the file name suffix.
func FromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst":
		return Zstd
	case ".lz4":
		return LZ4
	default:
		return None
	}
}

// Compress packs data with k.
func Compress(data []byte, k Kind) ([]byte, error) {
	switch k {
	case None, "":
		return data, nil
	case Zstd:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return nil, fmt.Errorf("could not create zstd encoder: %w", err)
		}
		defer func() { _ = enc.Close() }()
		return enc.EncodeAll(data, nil), nil
	case LZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if err := zw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
			return nil, fmt.Errorf("could not configure lz4 writer: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("could not lz4 compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("could not finish lz4 frame: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}

// Decompress reverses Compress.
func Decompress(data []byte, k Kind) ([]byte, error) {
	switch k {
	case None, "":
		return data, nil
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("could not zstd decompress: %w", err)
		}
		return out, nil
	case LZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("could not lz4 decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
}
