package utils

import (
	"encoding/csv"
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/logger"
	"io"
	"os"
	"path"
	"slices"
	"strings"
)

var ErrConflictingRow = errors.New("conflicting row")

type GetHashFunc func(columns []string) uint64

type Row struct {
	Line    int
	Columns []string
}

// HashKey is the default GetHashFunc: the first column is the key of a row.
func HashKey(columns []string) uint64 {
	return HashString(columns[0])
}

// ReadTable reads a comma separated (or, for .tsv files, tab separated)
// resource table. Lines starting with # are comments. A row repeating an
// earlier row is dropped; a row sharing its hash with a different earlier
// row fails the read.
func ReadTable(tablePath string, getHash GetHashFunc) ([]Row, error) {
	_, fileName := path.Split(tablePath)
	tableLogger := logger.NewLogger("TableReader (" + fileName + ")")

	f, err := os.Open(tablePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comment = '#'
	r.FieldsPerRecord = -1
	if strings.HasSuffix(fileName, ".tsv") {
		r.Comma = '\t'
		r.LazyQuotes = true
	}

	var rows []Row
	seen := make(map[uint64]int)
	duplicates := 0
	for {
		columns, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		line, _ := r.FieldPos(0)

		hash := getHash(columns)
		if i, ok := seen[hash]; ok {
			if !slices.Equal(rows[i].Columns, columns) {
				return nil, fmt.Errorf("%s:%d: %w: %q is already defined on line %d",
					fileName, line, ErrConflictingRow, columns[0], rows[i].Line)
			}
			duplicates++
			continue
		}
		seen[hash] = len(rows)
		rows = append(rows, Row{Line: line, Columns: columns})
	}

	if duplicates > 0 {
		tableLogger.Debug().Int("duplicates", duplicates).Msg("Skipped duplicate rows")
	}
	return rows, nil
}
