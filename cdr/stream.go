package cdr

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
)

const (
	// HeaderSize is the size of the width/height header.
	HeaderSize = 4
	// RecordSize is the size of one encoded record.
	RecordSize = 11

	maxDimension = 1<<16 - 1
)

// Record is one rectangle of uniform color. Extents are zero-based: the
// rectangle spans HExtent+1 columns and VExtent+1 rows.
type Record struct {
	X       uint16
	Y       uint16
	HExtent uint16
	VExtent uint16
	Color   RGB
}

// Bounds returns the pixels covered by r.
func (r Record) Bounds() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.X)+int(r.HExtent)+1, int(r.Y)+int(r.VExtent)+1)
}

// Stream is a decoded CDR stream: image dimensions and records in
// emission order.
type Stream struct {
	Width   uint16
	Height  uint16
	Records []Record
}

// Size returns the encoded length of s in bytes.
func (s *Stream) Size() int {
	return HeaderSize + RecordSize*len(s.Records)
}

// MarshalBinary encodes s into the CDR wire format.
func (s *Stream) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, s.Size())
	buf = binary.BigEndian.AppendUint16(buf, s.Width)
	buf = binary.BigEndian.AppendUint16(buf, s.Height)
	for _, r := range s.Records {
		buf = appendRecord(buf, r)
	}
	return buf, nil
}

func appendRecord(buf []byte, r Record) []byte {
	buf = binary.BigEndian.AppendUint16(buf, r.X)
	buf = binary.BigEndian.AppendUint16(buf, r.Y)
	buf = binary.BigEndian.AppendUint16(buf, r.HExtent)
	buf = binary.BigEndian.AppendUint16(buf, r.VExtent)
	return append(buf, r.Color.R, r.Color.G, r.Color.B)
}

// UnmarshalBinary decodes data into s. The data after the header must be
// a whole number of records.
func (s *Stream) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}

	body := data[HeaderSize:]
	if rem := len(body) % RecordSize; rem != 0 {
		return fmt.Errorf("%w: %d trailing bytes after %d records", ErrMalformedStream, rem, len(body)/RecordSize)
	}

	s.Width = binary.BigEndian.Uint16(data[0:2])
	s.Height = binary.BigEndian.Uint16(data[2:4])
	s.Records = make([]Record, 0, len(body)/RecordSize)
	for off := 0; off < len(body); off += RecordSize {
		s.Records = append(s.Records, readRecord(body[off:off+RecordSize]))
	}
	return nil
}

func readRecord(b []byte) Record {
	return Record{
		X:       binary.BigEndian.Uint16(b[0:2]),
		Y:       binary.BigEndian.Uint16(b[2:4]),
		HExtent: binary.BigEndian.Uint16(b[4:6]),
		VExtent: binary.BigEndian.Uint16(b[6:8]),
		Color:   RGB{R: b[8], G: b[9], B: b[10]},
	}
}

// WriteTo writes the encoded stream to w.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	data, err := s.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadStream reads and decodes a whole stream from r.
func ReadStream(r io.Reader) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read stream: %w", err)
	}

	s := &Stream{}
	if err := s.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return s, nil
}
