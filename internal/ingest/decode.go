package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// decode reads the raw payload into a cell grid according to the
// declared extension. Text files become single-cell rows so detection
// and block scanning can treat every source uniformly. Failures here
// are the only fatal per-file errors besides an unrecognized layout.
func decode(data []byte, ext string) ([][]string, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "csv":
		return decodeCSV(data)
	case "xlsx", "xls":
		return decodeSpreadsheet(data, ext)
	case "txt":
		return decodeText(data, ext)
	default:
		return nil, &DecodeError{Ext: ext, Err: fmt.Errorf("unsupported extension %q", ext)}
	}
}

func decodeCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // ragged rows are normal in hand-edited sheets
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, &DecodeError{Ext: "csv", Err: err}
	}
	return rows, nil
}

// decodeSpreadsheet reads the first sheet of an xlsx workbook. Legacy
// .xls uploads go through the same reader; genuinely old BIFF files are
// not a zip archive and fail here, which is the intended fatal path.
func decodeSpreadsheet(data []byte, ext string) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Ext: ext, Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &DecodeError{Ext: ext, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &DecodeError{Ext: ext, Err: err}
	}
	return rows, nil
}

func decodeText(data []byte, ext string) ([][]string, error) {
	if !utf8.Valid(data) {
		return nil, &DecodeError{Ext: ext, Err: errors.New("payload is not valid UTF-8")}
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	var rows [][]string
	for _, line := range strings.Split(text, "\n") {
		rows = append(rows, []string{line})
	}
	return rows, nil
}
