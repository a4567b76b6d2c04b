// Package contours loads Melodia contour candidate files and melody
// annotation files, and computes each candidate's overlap with the
// annotated melody.
package contours

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/jaki95/melodist/internal/domain"
)

// Contour files carry the scalar feature columns first, then a variable
// number of (time, pitch, salience) trajectory triples.
const numScalarColumns = 11

// LoadContourData reads a track's contour candidates file. When normalize
// is set, every feature column is standardized to zero mean and unit
// standard deviation across the file (constant columns are only centered).
func LoadContourData(path string, normalize bool) (*domain.ContourSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open contour file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ','
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read contour header: %w", err)
	}
	slog.Debug("contour header", "path", path, "columns", len(header))

	set := &domain.ContourSet{}
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read contour record: %w", err)
		}
		line++

		record, err := parseContourRow(row, len(set.Records))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		set.Records = append(set.Records, record)
	}

	if len(set.Records) == 0 {
		return nil, fmt.Errorf("no contours found in %s", path)
	}

	if normalize {
		normalizeFeatures(set)
	}

	return set, nil
}

func parseContourRow(row []string, number int) (*domain.ContourRecord, error) {
	if len(row) < numScalarColumns {
		return nil, fmt.Errorf("invalid contour record: expected at least %d fields, got %d", numScalarColumns, len(row))
	}
	if (len(row)-numScalarColumns)%3 != 0 {
		return nil, fmt.Errorf("invalid contour record: trajectory fields not a multiple of 3 (%d trailing)", len(row)-numScalarColumns)
	}

	values := make([]float64, len(row))
	for i, field := range row {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid contour field %d (%q): %w", i, field, err)
		}
		values[i] = v
	}

	record := &domain.ContourRecord{
		Number:          number,
		Onset:           values[0],
		Offset:          values[1],
		Duration:        values[2],
		PitchMean:       values[3],
		PitchStd:        values[4],
		SalienceMean:    values[5],
		SalienceStd:     values[6],
		SalienceTotal:   values[7],
		VibratoRate:     values[8],
		VibratoExtent:   values[9],
		VibratoCoverage: values[10],
		Label:           domain.LabelUnset,
		MelProb:         domain.MelProbUnset,
	}

	for i := numScalarColumns; i < len(values); i += 3 {
		record.Times = append(record.Times, values[i])
		record.Pitches = append(record.Pitches, values[i+1])
		record.Saliences = append(record.Saliences, values[i+2])
	}

	return record, nil
}

func normalizeFeatures(set *domain.ContourSet) {
	column := make([]float64, len(set.Records))
	for feat := 0; feat < domain.NumFeatures; feat++ {
		for i, r := range set.Records {
			column[i] = r.Features()[feat]
		}
		mean, std := stat.MeanStdDev(column, nil)

		for _, r := range set.Records {
			f := r.Features()
			v := f[feat] - mean
			if std > 0 {
				v /= std
			}
			f[feat] = v
			setFeatures(r, f)
		}
	}
}

func setFeatures(r *domain.ContourRecord, f []float64) {
	r.Duration = f[domain.FeatDuration]
	r.PitchMean = f[domain.FeatPitchMean]
	r.PitchStd = f[domain.FeatPitchStd]
	r.SalienceMean = f[domain.FeatSalienceMean]
	r.SalienceStd = f[domain.FeatSalienceStd]
	r.SalienceTotal = f[domain.FeatSalienceTotal]
	r.VibratoRate = f[domain.FeatVibratoRate]
	r.VibratoExtent = f[domain.FeatVibratoExtent]
	r.VibratoCoverage = f[domain.FeatVibratoCoverage]
}

// LoadAnnotation reads a melody annotation file: headerless rows of
// time,frequency where frequency 0 marks unvoiced frames.
func LoadAnnotation(path string) (*domain.Annotation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open annotation file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ','
	reader.FieldsPerRecord = -1

	annot := &domain.Annotation{}
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read annotation record: %w", err)
		}
		line++

		if len(row) < 2 {
			return nil, fmt.Errorf("%s:%d: invalid annotation record: expected at least 2 fields, got %d", path, line, len(row))
		}

		t, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid annotation time %q: %w", path, line, row[0], err)
		}
		f, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid annotation frequency %q: %w", path, line, row[1], err)
		}

		annot.Times = append(annot.Times, t)
		annot.Frequencies = append(annot.Frequencies, f)
	}

	if annot.Len() == 0 {
		return nil, fmt.Errorf("no annotation samples found in %s", path)
	}

	return annot, nil
}
