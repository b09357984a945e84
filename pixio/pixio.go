// Package pixio serializes packed raster images to a compact stream.
//
// The stream is a fixed header, the colormap entries, a zstd-compressed
// payload holding the raw image words in big-endian byte order, and a
// CRC-32 trailer. Layout, all integers big-endian:
//
//	magic    "PIXZ"
//	version  uint32
//	width    uint32
//	height   uint32
//	depth    uint32
//	wpl      uint32
//	ncolors  uint32
//	colors   ncolors * 3 bytes (R, G, B)
//	clen     uint32
//	payload  clen bytes of zstd-compressed words
//	crc      uint32, IEEE CRC-32 of the header fields, the colors and
//	         the uncompressed payload
package pixio

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/gopix/pix"
)

const (
	streamMagic   = "PIXZ"
	streamVersion = 1
)

var (
	// ErrBadMagic is returned when a stream does not start with "PIXZ".
	ErrBadMagic = errors.New("pixio: bad magic")
	// ErrBadVersion is returned for a stream written by a newer format.
	ErrBadVersion = errors.New("pixio: unsupported version")
	// ErrCorrupt is returned when the header fields are inconsistent
	// with each other or with the payload.
	ErrCorrupt = errors.New("pixio: corrupt stream")
	// ErrChecksum is returned when the CRC trailer does not match.
	ErrChecksum = errors.New("pixio: checksum mismatch")
)

var encPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithLowerEncoderMem(true),
		)
		if err != nil {
			panic(err)
		}
		return enc
	},
}

var decPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			panic(err)
		}
		return dec
	},
}

// Write serializes p to w.
func Write(w io.Writer, p *pix.Pix) error {
	if p == nil {
		return pix.ErrMissingBuffer
	}

	ncolors := 0
	cm := p.Colormap()
	if cm != nil {
		ncolors = cm.Len()
	}

	header := make([]byte, 0, 24+3*ncolors)
	header = be32(header, streamVersion)
	header = be32(header, uint32(p.Width()))
	header = be32(header, uint32(p.Height()))
	header = be32(header, uint32(p.Depth()))
	header = be32(header, uint32(p.Wpl()))
	header = be32(header, uint32(ncolors))
	for i := 0; i < ncolors; i++ {
		e, err := cm.Color(i)
		if err != nil {
			return err
		}
		header = append(header, e.R, e.G, e.B)
	}

	words := p.Data()
	raw := make([]byte, 4*len(words))
	for i, word := range words {
		binary.BigEndian.PutUint32(raw[4*i:], word)
	}

	crc := crc32.ChecksumIEEE(header)
	crc = crc32.Update(crc, crc32.IEEETable, raw)

	enc := encPool.Get().(*zstd.Encoder)
	payload := enc.EncodeAll(raw, nil)
	encPool.Put(enc)

	if _, err := io.WriteString(w, streamMagic); err != nil {
		return err
	}
	if _, err := w.Write(header); err != nil {
		return err
	}
	var u32 [4]byte
	binary.BigEndian.PutUint32(u32[:], uint32(len(payload)))
	if _, err := w.Write(u32[:]); err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(u32[:], crc)
	_, err := w.Write(u32[:])
	return err
}

// Read deserializes one image from r.
func Read(r io.Reader) (*pix.Pix, error) {
	var head [28]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	if string(head[:4]) != streamMagic {
		return nil, ErrBadMagic
	}
	if binary.BigEndian.Uint32(head[4:]) != streamVersion {
		return nil, ErrBadVersion
	}
	w := int(binary.BigEndian.Uint32(head[8:]))
	h := int(binary.BigEndian.Uint32(head[12:]))
	d := pix.Depth(binary.BigEndian.Uint32(head[16:]))
	wpl := int(binary.BigEndian.Uint32(head[20:]))
	ncolors := int(binary.BigEndian.Uint32(head[24:]))

	crc := crc32.ChecksumIEEE(head[4:])

	out, err := pix.New(w, h, d)
	if err != nil {
		return nil, err
	}
	if wpl != out.Wpl() {
		return nil, ErrCorrupt
	}

	if ncolors > 0 {
		colors := make([]byte, 3*ncolors)
		if _, err := io.ReadFull(r, colors); err != nil {
			return nil, err
		}
		crc = crc32.Update(crc, crc32.IEEETable, colors)
		cm, err := pix.NewColormap(d)
		if err != nil {
			return nil, ErrCorrupt
		}
		for i := 0; i < ncolors; i++ {
			if _, err := cm.AddColor(colors[3*i], colors[3*i+1], colors[3*i+2]); err != nil {
				return nil, ErrCorrupt
			}
		}
		if err := out.SetColormap(cm); err != nil {
			return nil, ErrCorrupt
		}
	}

	var u32 [4]byte
	if _, err := io.ReadFull(r, u32[:]); err != nil {
		return nil, err
	}
	clen := int(binary.BigEndian.Uint32(u32[:]))
	rawLen := 4 * len(out.Data())
	// Worst-case zstd expansion bound for incompressible input.
	if clen > rawLen+rawLen/128+256 {
		return nil, ErrCorrupt
	}
	payload := make([]byte, clen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}

	dec := decPool.Get().(*zstd.Decoder)
	raw, err := dec.DecodeAll(payload, nil)
	decPool.Put(dec)
	if err != nil {
		return nil, err
	}
	if len(raw) != rawLen {
		return nil, ErrCorrupt
	}
	crc = crc32.Update(crc, crc32.IEEETable, raw)

	if _, err := io.ReadFull(r, u32[:]); err != nil {
		return nil, err
	}
	if binary.BigEndian.Uint32(u32[:]) != crc {
		return nil, ErrChecksum
	}

	data := out.Data()
	for i := range data {
		data[i] = binary.BigEndian.Uint32(raw[4*i:])
	}
	return out, nil
}

func be32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
