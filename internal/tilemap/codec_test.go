package tilemap

import (
	"bytes"
	"errors"
	"testing"
)

func buildTagged(t *testing.T) *Map {
	t.Helper()
	m, err := New(130, 70)
	if err != nil {
		t.Fatal(err)
	}
	m.SetTerrain(65, 3, Water, 1)
	m.SetTerrain(0, 0, Garden, 1)
	m.SetBuilding(10, 10, 1234567, 2)
	m.SetBlock(2, 69, 999, 3)
	m.SetQuartier(129, 69, 7, 4)
	return m
}

func TestChunkRoundTrip(t *testing.T) {
	m := buildTagged(t)
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatal(err)
	}

	wantSize := 32 + m.ChunkCount()*32768
	if buf.Len() != wantSize {
		t.Fatalf("serialized size %d, want %d", buf.Len(), wantSize)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.Width() != 130 || got.Height() != 70 {
		t.Fatalf("size %dx%d, want 130x70", got.Width(), got.Height())
	}
	if terr, _ := got.TerrainAt(65, 3); terr != Water {
		t.Errorf("terrain (65,3) = %s, want water", terr)
	}
	if terr, _ := got.TerrainAt(0, 0); terr != Garden {
		t.Errorf("terrain (0,0) = %s, want garden", terr)
	}
	if b, _ := got.BuildingAt(10, 10); b != 1234567 {
		t.Errorf("building (10,10) = %d, want 1234567", b)
	}
	if bl, _ := got.BlockAt(2, 69); bl != 999 {
		t.Errorf("block (2,69) = %d, want 999", bl)
	}
	if q, _ := got.QuartierAt(129, 69); q != 7 {
		t.Errorf("quartier (129,69) = %d, want 7", q)
	}
}

func TestTemperatureResetsOnLoad(t *testing.T) {
	m := buildTagged(t)
	// Drift temperatures away from the default before serializing.
	for i := 0; i < 30; i++ {
		m.RelaxTemperature()
	}
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatal(err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int32{{65, 3}, {0, 0}, {129, 69}} {
		temp, _ := got.TemperatureAt(p[0], p[1])
		if temp != DefaultTemperature {
			t.Fatalf("temperature at (%d,%d) = %v, want default %v", p[0], p[1], temp, DefaultTemperature)
		}
	}
}

func TestReadBadMagic(t *testing.T) {
	m := buildTagged(t)
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()
	raw[0] = 'X'
	_, err := Read(bytes.NewReader(raw))
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestReadUnsupportedVersion(t *testing.T) {
	m := buildTagged(t)
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()
	raw[4] = 99
	_, err := Read(bytes.NewReader(raw))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("err = %v, want ErrUnsupportedVersion", err)
	}
}

func TestReadTruncated(t *testing.T) {
	m := buildTagged(t)
	var buf bytes.Buffer
	if err := m.Write(&buf); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()

	for _, cut := range []int{10, 32, 32 + 100, len(raw) - 1} {
		_, err := Read(bytes.NewReader(raw[:cut]))
		if err == nil {
			t.Fatalf("truncated read at %d bytes succeeded", cut)
		}
		if errors.Is(err, ErrBadMagic) || errors.Is(err, ErrUnsupportedVersion) {
			t.Fatalf("truncated read at %d misreported as %v", cut, err)
		}
	}
}
