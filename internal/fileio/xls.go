// Парсер .xls: ширину шапки определяем сами, Row.LastCol() врёт на файлах из старых программ.
package fileio

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	xls "github.com/extrame/xls"
)

const probeMaxCols = 512

// .xls из македонских программ чаще всего cp1251, но иногда UTF-8/cp1250
var xlsCharsets = []string{"windows-1251", "utf-8", "windows-1250"}

func readXLSRow(r io.Reader, headerRow int) ([]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var (
		wb      *xls.WorkBook
		lastErr error
	)
	for _, ch := range xlsCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("failed to open workbook")
		}
		return nil, errors.Wrap(lastErr, "xls")
	}

	sheet := wb.GetSheet(0)
	if sheet == nil || headerRow-1 > int(sheet.MaxRow) {
		return nil, errors.Mark(errors.Newf("xls: header row %d not found", headerRow), ErrNoHeader)
	}
	row := sheet.Row(headerRow - 1)
	if row == nil {
		return nil, errors.Mark(errors.Newf("xls: header row %d is empty", headerRow), ErrNoHeader)
	}

	// пробегаем разумное число колонок и запоминаем последнюю непустую
	width := 0
	for j := 0; j < probeMaxCols; j++ {
		if normalizeCell(row.Col(j)) != "" {
			width = j + 1
		}
	}
	cols := make([]string, width)
	for j := range cols {
		cols[j] = row.Col(j)
	}
	return cols, nil
}
