package fileio

import (
	"io"

	"github.com/cockroachdb/errors"
	excelize "github.com/xuri/excelize/v2"
)

func readXLSXRow(r io.Reader, headerRow int) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "xlsx")
	}
	defer f.Close()

	rows, err := f.Rows(f.GetSheetName(0))
	if err != nil {
		return nil, errors.Wrap(err, "xlsx")
	}
	defer rows.Close()

	// потоково, до строки шапки
	for i := 1; rows.Next(); i++ {
		if i < headerRow {
			continue
		}
		return rows.Columns()
	}
	if err := rows.Error(); err != nil {
		return nil, errors.Wrap(err, "xlsx")
	}
	return nil, errors.Mark(errors.Newf("xlsx: header row %d not found", headerRow), ErrNoHeader)
}
