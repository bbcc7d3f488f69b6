package report

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/c9s/tradereport/pkg/types"
)

// WriteCsv dumps any CsvFormatter to the writer, header first.
func WriteCsv(w io.Writer, f types.CsvFormatter) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(f.CsvHeader()); err != nil {
		return err
	}

	return cw.WriteAll(f.CsvRecords())
}

// WriteCsvFile dumps a CsvFormatter into the given file path.
func WriteCsvFile(path string, f types.CsvFormatter) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCsv(file, f)
}
