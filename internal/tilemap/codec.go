package tilemap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Binary file layout: a 32-byte header (magic "PVTM", u32 version, u32 width,
// u32 height, u32 chunk columns, u32 chunk rows, 8 reserved bytes) followed
// by chunks in row-major order. Each chunk is 4096 terrain bytes, 4096
// little-endian u32 building ids, 4096 little-endian u16 block ids, then
// 4096 quartier bytes — 32768 bytes per chunk. Temperature is transient and
// excluded; it resets to DefaultTemperature on load. This layout is the
// bit-exact persistence contract; readers reject anything they cannot prove
// they understand instead of attempting repair.

var magic = [4]byte{'P', 'V', 'T', 'M'}

const (
	// FormatVersion is the only file version this build reads and writes.
	FormatVersion uint32 = 1

	headerSize    = 32
	chunkDataSize = ChunkTiles + 4*ChunkTiles + 2*ChunkTiles + ChunkTiles
)

var (
	// ErrBadMagic means the file is not a tile-map file at all.
	ErrBadMagic = errors.New("tilemap: bad magic")
	// ErrUnsupportedVersion means the magic matched but the version did not.
	ErrUnsupportedVersion = errors.New("tilemap: unsupported version")
)

// Write serializes the map. All chunks are written whether dirty or not;
// dirty flags clear afterwards.
func (m *Map) Write(w io.Writer) error {
	var hdr [headerSize]byte
	copy(hdr[0:4], magic[:])
	binary.LittleEndian.PutUint32(hdr[4:8], FormatVersion)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(m.width))
	binary.LittleEndian.PutUint32(hdr[12:16], uint32(m.height))
	binary.LittleEndian.PutUint32(hdr[16:20], uint32(m.cols))
	binary.LittleEndian.PutUint32(hdr[20:24], uint32(m.rows))
	// hdr[24:32] reserved, zero
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	buf := make([]byte, chunkDataSize)
	for i, c := range m.chunks {
		encodeChunk(c, buf)
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("write chunk %d: %w", i, err)
		}
		c.ClearDirty()
	}
	return nil
}

// Read deserializes a map, validating magic and version with distinct errors
// and failing on any short read.
func Read(r io.Reader) (*Map, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if [4]byte(hdr[0:4]) != magic {
		return nil, ErrBadMagic
	}
	if v := binary.LittleEndian.Uint32(hdr[4:8]); v != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	width := int32(binary.LittleEndian.Uint32(hdr[8:12]))
	height := int32(binary.LittleEndian.Uint32(hdr[12:16]))
	cols := int32(binary.LittleEndian.Uint32(hdr[16:20]))
	rows := int32(binary.LittleEndian.Uint32(hdr[20:24]))

	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if m.cols != cols || m.rows != rows {
		return nil, fmt.Errorf("tilemap: chunk grid %dx%d inconsistent with size %dx%d", cols, rows, width, height)
	}

	buf := make([]byte, chunkDataSize)
	for i, c := range m.chunks {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("read chunk %d: %w", i, err)
		}
		decodeChunk(c, buf)
	}
	return m, nil
}

// Load reads a map from a file on disk.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Save writes the map to a file on disk.
func (m *Map) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeChunk(c *Chunk, buf []byte) {
	off := 0
	for i := 0; i < ChunkTiles; i++ {
		buf[off+i] = byte(c.Terrain[i])
	}
	off += ChunkTiles
	for i := 0; i < ChunkTiles; i++ {
		binary.LittleEndian.PutUint32(buf[off+4*i:], c.Building[i])
	}
	off += 4 * ChunkTiles
	for i := 0; i < ChunkTiles; i++ {
		binary.LittleEndian.PutUint16(buf[off+2*i:], c.Block[i])
	}
	off += 2 * ChunkTiles
	copy(buf[off:], c.Quartier[:])
}

func decodeChunk(c *Chunk, buf []byte) {
	off := 0
	for i := 0; i < ChunkTiles; i++ {
		c.Terrain[i] = Terrain(buf[off+i])
	}
	off += ChunkTiles
	for i := 0; i < ChunkTiles; i++ {
		c.Building[i] = binary.LittleEndian.Uint32(buf[off+4*i:])
	}
	off += 4 * ChunkTiles
	for i := 0; i < ChunkTiles; i++ {
		c.Block[i] = binary.LittleEndian.Uint16(buf[off+2*i:])
	}
	off += 2 * ChunkTiles
	copy(c.Quartier[:], buf[off:off+ChunkTiles])
	for i := range c.Temperature {
		c.Temperature[i] = DefaultTemperature
	}
	c.settled = false
	c.dirty = false
}
