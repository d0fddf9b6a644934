// Package aei reads the output files of a mercury N-body simulation:
// the element.out summary and the per-body .aei trajectory files that
// feed the resonance analysis.
package aei

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/autiwa/mercurygo/pkg/orbital"
)

const (
	// Header lines preceding the data rows.
	elementHeaderLines = 5
	trackHeaderLines   = 4
)

// Element is one row of element.out: the final elements of a body that
// survived to the end of the simulation.
type Element struct {
	Name          string
	SemiMajorAxis float64 // AU
	Eccentricity  float64
	Mass          float64 // Earth masses
}

// Reader loads simulation output from a directory.
type Reader struct {
	log zerolog.Logger
}

// NewReader returns a Reader that logs skipped rows through l.
func NewReader(l zerolog.Logger) *Reader {
	return &Reader{log: l}
}

// ReadElements parses element.out. Columns are name, semi-major axis,
// eccentricity, inclination and mass.
func (r *Reader) ReadElements(path string) ([]Element, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var elements []Element
	scanner := bufio.NewScanner(file)
	for line := 0; scanner.Scan(); line++ {
		if line < elementHeaderLines {
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 5 {
			continue
		}
		el := Element{Name: fields[0]}
		if el.SemiMajorAxis, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid semi-major axis: %w", path, line+1, err)
		}
		if el.Eccentricity, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid eccentricity: %w", path, line+1, err)
		}
		if el.Mass, err = strconv.ParseFloat(fields[4], 64); err != nil {
			return nil, fmt.Errorf("%s line %d: invalid mass: %w", path, line+1, err)
		}
		elements = append(elements, el)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return elements, nil
}

// ReadTrack parses one body's .aei file into a track. Rows that do not
// parse as numbers are skipped with a warning; the simulator pads
// ejected bodies with placeholder text.
func (r *Reader) ReadTrack(path, name string) (orbital.Track, error) {
	track := orbital.Track{Name: name}

	file, err := os.Open(path)
	if err != nil {
		return track, err
	}
	defer file.Close()

	skipped := 0
	scanner := bufio.NewScanner(file)
	for line := 0; scanner.Scan(); line++ {
		if line < trackHeaderLines {
			continue
		}
		sample, err := parseSample(strings.Fields(scanner.Text()))
		if err != nil {
			skipped++
			r.log.Debug().Str("file", path).Int("line", line+1).Err(err).Msg("skipping row")
			continue
		}
		track.Samples = append(track.Samples, sample)
	}
	if err := scanner.Err(); err != nil {
		return track, fmt.Errorf("reading %s: %w", path, err)
	}
	if skipped > 0 {
		r.log.Warn().Str("file", path).Int("rows", skipped).Msg("skipped unparseable rows")
	}
	return track, nil
}

// parseSample converts one .aei data row. Columns are t, a, e, i, g, n,
// M and optionally mass (plus cartesian coordinates, ignored here).
func parseSample(fields []string) (orbital.Sample, error) {
	var s orbital.Sample
	if len(fields) < 7 {
		return s, fmt.Errorf("expected at least 7 columns, got %d", len(fields))
	}

	cols := []struct {
		idx int
		dst *float64
	}{
		{0, &s.Time},
		{1, &s.SemiMajorAxis},
		{2, &s.Eccentricity},
		{4, &s.ArgPericentre},
		{5, &s.AscendingNode},
		{6, &s.MeanAnomaly},
	}
	for _, c := range cols {
		v, err := strconv.ParseFloat(fields[c.idx], 64)
		if err != nil {
			return s, fmt.Errorf("column %d: %w", c.idx+1, err)
		}
		*c.dst = v
	}
	if len(fields) > 7 {
		// Mass column is absent from older output formats.
		if v, err := strconv.ParseFloat(fields[7], 64); err == nil {
			s.Mass = v
		}
	}
	return s, nil
}

// ReadSystem loads the whole system from a simulation directory: the
// body set comes from element.out, each body's trajectory from its
// <NAME>.aei file. A missing trajectory file yields an empty track
// rather than an error, so an ejected body does not abort the analysis
// of the remaining pairs. Tracks are returned ordered by ascending
// final semi-major axis, the adjacency order the detector expects.
func (r *Reader) ReadSystem(dir string) ([]orbital.Track, error) {
	elements, err := r.ReadElements(filepath.Join(dir, "element.out"))
	if err != nil {
		return nil, fmt.Errorf("loading element.out: %w", err)
	}

	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].SemiMajorAxis < elements[j].SemiMajorAxis
	})

	tracks := make([]orbital.Track, 0, len(elements))
	for _, el := range elements {
		path := filepath.Join(dir, el.Name+".aei")
		track, err := r.ReadTrack(path, el.Name)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
			r.log.Warn().Str("body", el.Name).Msg("no trajectory file, treating as empty track")
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}
