package aei

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

const elementOut = `
 Number of planets: 2
 (header)
 (header)
 (header)
  Name     a        e       i      mass
 PLANET2  2.0000  0.0100  1.000  1.5000
 PLANET1  1.0000  0.0500  0.500  0.5000
`

const planet1Aei = ` PLANET1
 (header)
 (header)
   Time (years)  a  e  i  g  n  M  mass
   0.0  1.0000  0.0500  0.50  10.0  20.0  30.0  1.5e-6
   1.0  1.0010  0.0510  0.51  11.0  21.0  31.0  1.5e-6
   ***  ******  ******  ****  ****  ****  ****  ******
   2.0  1.0020  0.0520  0.52  12.0  22.0  32.0  1.5e-6
`

const planet2Aei = ` PLANET2
 (header)
 (header)
   Time (years)  a  e  i  g  n  M  mass
   0.0  2.0000  0.0100  1.00  40.0  50.0  60.0  4.5e-6
   1.0  2.0010  0.0110  1.01  41.0  51.0  61.0  4.5e-6
`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	// Strip the leading newline of the raw literals.
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content[1:]), 0644); err != nil {
		t.Fatal(err)
	}
}

func testReader() *Reader {
	return NewReader(zerolog.Nop())
}

func TestReadElements(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "element.out", elementOut)

	elements, err := testReader().ReadElements(filepath.Join(dir, "element.out"))
	if err != nil {
		t.Fatalf("ReadElements: %v", err)
	}
	if len(elements) != 2 {
		t.Fatalf("got %d elements, want 2", len(elements))
	}
	if elements[0].Name != "PLANET2" || elements[0].SemiMajorAxis != 2.0 {
		t.Errorf("elements[0] = %+v", elements[0])
	}
	if elements[1].Name != "PLANET1" || elements[1].Mass != 0.5 {
		t.Errorf("elements[1] = %+v", elements[1])
	}
}

func TestReadTrackSkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "PLANET1.aei", planet1Aei)

	track, err := testReader().ReadTrack(filepath.Join(dir, "PLANET1.aei"), "PLANET1")
	if err != nil {
		t.Fatalf("ReadTrack: %v", err)
	}
	if track.Name != "PLANET1" {
		t.Errorf("track name = %q", track.Name)
	}
	// The starred placeholder row must be skipped, the rest kept.
	if len(track.Samples) != 3 {
		t.Fatalf("got %d samples, want 3", len(track.Samples))
	}

	s := track.Samples[1]
	if s.Time != 1.0 || s.SemiMajorAxis != 1.001 || s.Eccentricity != 0.051 {
		t.Errorf("sample[1] = %+v", s)
	}
	if s.ArgPericentre != 11 || s.AscendingNode != 21 || s.MeanAnomaly != 31 {
		t.Errorf("sample[1] angles = %+v", s)
	}
	if s.Mass != 1.5e-6 {
		t.Errorf("sample[1] mass = %g", s.Mass)
	}

	// Time must come out strictly increasing.
	for i := 1; i < len(track.Samples); i++ {
		if track.Samples[i].Time <= track.Samples[i-1].Time {
			t.Errorf("times not increasing at %d: %g then %g", i, track.Samples[i-1].Time, track.Samples[i].Time)
		}
	}
}

func TestReadTrackMissingFile(t *testing.T) {
	track, err := testReader().ReadTrack(filepath.Join(t.TempDir(), "NOPE.aei"), "NOPE")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
	if track.Len() != 0 {
		t.Errorf("track has %d samples, want 0", track.Len())
	}
}

func TestReadSystem(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "element.out", elementOut)
	writeFile(t, dir, "PLANET1.aei", planet1Aei)
	writeFile(t, dir, "PLANET2.aei", planet2Aei)

	tracks, err := testReader().ReadSystem(dir)
	if err != nil {
		t.Fatalf("ReadSystem: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}

	// element.out lists PLANET2 first; tracks must be sorted by
	// ascending semi-major axis.
	if tracks[0].Name != "PLANET1" || tracks[1].Name != "PLANET2" {
		t.Errorf("track order = %s, %s; want PLANET1, PLANET2", tracks[0].Name, tracks[1].Name)
	}
	if tracks[0].Len() != 3 || tracks[1].Len() != 2 {
		t.Errorf("track lengths = %d, %d", tracks[0].Len(), tracks[1].Len())
	}
}

func TestReadSystemMissingTrackFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "element.out", elementOut)
	writeFile(t, dir, "PLANET2.aei", planet2Aei)
	// PLANET1.aei deliberately absent: an ejected body.

	tracks, err := testReader().ReadSystem(dir)
	if err != nil {
		t.Fatalf("ReadSystem: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want 2", len(tracks))
	}
	if tracks[0].Name != "PLANET1" || tracks[0].Len() != 0 {
		t.Errorf("missing body: got %q with %d samples, want empty PLANET1", tracks[0].Name, tracks[0].Len())
	}
	if tracks[1].Len() != 2 {
		t.Errorf("present body lost samples: %d", tracks[1].Len())
	}
}

func TestReadSystemMissingElementFile(t *testing.T) {
	if _, err := testReader().ReadSystem(t.TempDir()); err == nil {
		t.Fatal("expected error when element.out is absent")
	}
}
