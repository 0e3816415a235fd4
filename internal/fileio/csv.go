package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/transform"

	"fieldmap-service/internal/preset"
)

const sniffSize = 4096

// readCSVRow returns line headerRow (1-based), auto-detecting encoding and delimiter.
// Lines before the header are skipped as plain text.
func readCSVRow(r io.Reader, headerRow int) ([]string, error) {
	br := bufio.NewReaderSize(r, sniffSize)

	// Peek a bit to detect encoding
	peek, _ := br.Peek(sniffSize)
	var src io.Reader = br
	if dec := preset.Decoder(preset.DetectEncoding(trimPartialRune(peek))); dec != nil {
		src = transform.NewReader(br, dec)
	}

	// пропускаем преамбулу до шапки
	dr := bufio.NewReaderSize(src, sniffSize)
	for i := 1; i < headerRow; i++ {
		if _, err := dr.ReadString('\n'); err != nil {
			if err == io.EOF {
				return nil, errors.Mark(errors.Newf("csv: only %d rows, header row %d requested", i, headerRow), ErrNoHeader)
			}
			return nil, errors.Wrap(err, "csv")
		}
	}

	// разделитель ищем по строке шапки, уже декодированной
	head, _ := dr.Peek(sniffSize)

	cr := csv.NewReader(dr)
	cr.Comma = []rune(preset.DetectDelimiter(string(head)))[0]
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rec, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Mark(errors.Newf("csv: header row %d not found", headerRow), ErrNoHeader)
	}
	if err != nil {
		return nil, errors.Wrap(err, "csv")
	}
	return rec, nil
}

// trimPartialRune отрезает незавершённый UTF-8 символ на границе окна.
func trimPartialRune(b []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size > 1 {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}
