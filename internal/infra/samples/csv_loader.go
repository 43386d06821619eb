// Package samples loads recorded position traces for replaying through a tracker.
package samples

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"saferoute/internal/domain/entity"

	"github.com/pkg/errors"
)

// Sample is one recorded position fix
type Sample struct {
	Position entity.RoutePoint
	Accuracy *float64 // Meters, nil when the column is absent or empty
}

// LoadFile loads samples from a CSV file
func LoadFile(path string) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	return Load(file)
}

// Load reads rows of lat,lng[,accuracy]. A first row whose latitude is not a
// number is treated as a header. Blank lines and lines starting with # are skipped.
func Load(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var samples []Sample
	lineNum := 0

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if lineNum == 1 && isHeader(record) {
			continue
		}

		if len(record) < 2 {
			return nil, errors.Errorf("invalid samples format at line %d: expected at least 2 columns, got %d", lineNum, len(record))
		}

		sample, parseErr := parseSample(record, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		samples = append(samples, sample)
	}

	return samples, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)

	return err != nil
}

// parseSample parses a single CSV record into a Sample
func parseSample(record []string, lineNum int) (Sample, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	if err != nil {
		return Sample{}, errors.Wrapf(err, "invalid latitude at line %d", lineNum)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return Sample{}, errors.Wrapf(err, "invalid longitude at line %d", lineNum)
	}

	sample := Sample{Position: entity.RoutePoint{Lat: lat, Lng: lng}}

	if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
		accuracy, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return Sample{}, errors.Wrapf(err, "invalid accuracy at line %d", lineNum)
		}
		sample.Accuracy = &accuracy
	}

	return sample, nil
}
