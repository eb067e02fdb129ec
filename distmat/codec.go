// SPDX-License-Identifier: MIT

package distmat

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/golang/snappy"
)

// Binary layout before compression (little endian):
//
//	magic "QDST" | version u8 | size u32 | method (u16 len + bytes)
//	| size × label (u16 len + bytes) | C(size,2) × float64
//
// The whole buffer is snappy block-compressed.
const (
	codecMagic   = "QDST"
	codecVersion = 1
)

// Save writes d to w in the compressed binary format.
func (d *Distance) Save(w io.Writer) error {
	var buf bytes.Buffer
	buf.WriteString(codecMagic)
	buf.WriteByte(codecVersion)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(d.size))
	if err := writeString(&buf, d.method); err != nil {
		return err
	}
	for _, l := range d.labels {
		if err := writeString(&buf, l); err != nil {
			return err
		}
	}
	for _, v := range d.values {
		_ = binary.Write(&buf, binary.LittleEndian, math.Float64bits(v))
	}
	if _, err := w.Write(snappy.Encode(nil, buf.Bytes())); err != nil {
		return fmt.Errorf("distmat: save: %w", err)
	}

	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("distmat: string of %d bytes too long to encode", len(s))
	}
	_ = binary.Write(buf, binary.LittleEndian, uint16(len(s)))
	buf.WriteString(s)

	return nil
}

// Load reads a Distance written by Save.
//
// Errors:
//   - ErrCorruptDistance (joined with the cause) for undecodable input.
//   - the validation errors of New.
func Load(r io.Reader) (*Distance, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("distmat: load: %w", err)
	}
	data, err := snappy.Decode(nil, raw)
	if err != nil {
		return nil, fmt.Errorf("distmat: load: %w", errors.Join(ErrCorruptDistance, err))
	}
	br := bytes.NewReader(data)
	magic := make([]byte, len(codecMagic))
	if _, err := io.ReadFull(br, magic); err != nil || string(magic) != codecMagic {
		return nil, fmt.Errorf("distmat: load: bad magic: %w", ErrCorruptDistance)
	}
	version, err := br.ReadByte()
	if err != nil || version != codecVersion {
		return nil, fmt.Errorf("distmat: load: unsupported version %d: %w", version, ErrCorruptDistance)
	}
	var size uint32
	if err := binary.Read(br, binary.LittleEndian, &size); err != nil {
		return nil, corrupt("size", err)
	}
	// Every label needs at least two bytes, every value eight.
	n := int(size)
	if n < 1 || int64(n)*2 > int64(br.Len()) {
		return nil, fmt.Errorf("distmat: load: size %d: %w", n, ErrCorruptDistance)
	}
	method, err := readString(br)
	if err != nil {
		return nil, corrupt("method", err)
	}
	labels := make([]string, n)
	for i := range labels {
		if labels[i], err = readString(br); err != nil {
			return nil, corrupt(fmt.Sprintf("label %d", i), err)
		}
	}
	total := n * (n - 1) / 2
	if br.Len() != total*8 {
		return nil, fmt.Errorf("distmat: load: %d value bytes for size %d: %w", br.Len(), n, ErrCorruptDistance)
	}
	values := make([]float64, total)
	for k := range values {
		var bits uint64
		if err := binary.Read(br, binary.LittleEndian, &bits); err != nil {
			return nil, corrupt(fmt.Sprintf("value %d", k), err)
		}
		values[k] = math.Float64frombits(bits)
	}

	return New(n, values, labels, method)
}

func readString(br *bytes.Reader) (string, error) {
	var l uint16
	if err := binary.Read(br, binary.LittleEndian, &l); err != nil {
		return "", err
	}
	b := make([]byte, l)
	if _, err := io.ReadFull(br, b); err != nil {
		return "", err
	}

	return string(b), nil
}

func corrupt(what string, err error) error {
	return fmt.Errorf("distmat: load: %s: %w", what, errors.Join(ErrCorruptDistance, err))
}
