package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrNoHeader: в файле нет строки с нужным номером или она пустая.
var ErrNoHeader = errors.New("header row not found")

// ErrUnsupportedFile is returned for extensions other than .csv/.txt/.xls/.xlsx.
var ErrUnsupportedFile = errors.New("unsupported file")

// ReadHeaders выберет парсер по расширению и вернёт только ячейки строки заголовков.
// headerRow: номер строки заголовков (1-based); данные ниже не читаются.
func ReadHeaders(r io.Reader, filename string, headerRow int) ([]string, error) {
	if headerRow < 1 {
		headerRow = 1
	}
	var (
		row []string
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx":
		row, err = readXLSXRow(r, headerRow)
	case ".xls":
		row, err = readXLSRow(r, headerRow)
	case ".csv", ".txt":
		row, err = readCSVRow(r, headerRow)
	default:
		return nil, errors.Mark(errors.Newf("unsupported file: %s", filename), ErrUnsupportedFile)
	}
	if err != nil {
		return nil, err
	}
	h := pickHeader(row)
	if len(h) == 0 {
		return nil, errors.Mark(errors.Newf("%s: row %d is empty", filename, headerRow), ErrNoHeader)
	}
	return h, nil
}

// Format is the source format hint for the mapper: "excel" for .xls/.xlsx, else "csv".
func Format(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return "excel"
	}
	return "csv"
}

// pickHeader чистит ячейки шапки и подставляет Column N для пустых в середине.
// Хвостовые пустые ячейки отбрасываются.
func pickHeader(row []string) []string {
	end := len(row)
	for end > 0 && normalizeCell(row[end-1]) == "" {
		end--
	}
	out := make([]string, end)
	for i := 0; i < end; i++ {
		v := normalizeCell(row[i])
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

var cellCleaner = strings.NewReplacer("\ufeff", "", "\u00a0", " ")

func normalizeCell(s string) string {
	return strings.Join(strings.Fields(cellCleaner.Replace(s)), " ")
}
