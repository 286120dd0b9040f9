// Package xlsx reads input URL datasets from Excel workbooks and writes
// batch results back as success and failure sheets.
package xlsx

import (
	"github.com/mishra-anubhav/addrfind"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the output workbook.
const (
	SuccessSheet = "Addresses"
	FailureSheet = "Failed"
)

// Output column headers appended to the passthrough columns.
const (
	addressesHeader = "Extracted Addresses"
	errorHeader     = "Error"
)

// Ensure implementations satisfy the domain interfaces at compile time.
var (
	_ addrfind.DatasetReader = (*Reader)(nil)
	_ addrfind.DatasetWriter = (*Writer)(nil)
)

// Reader loads a tabular dataset from the first sheet of an Excel
// workbook. The first row is the header.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read opens the workbook at path and returns its first sheet as a
// Dataset. The dataset is not validated here; callers check for the
// required URL column before processing.
func (r *Reader) Read(path string) (*addrfind.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, addrfind.Errorf(addrfind.EINVALID, "opening workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, addrfind.Errorf(addrfind.EINVALID, "workbook has no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, addrfind.Errorf(addrfind.EINVALID, "reading sheet %q: %v", sheet, err)
	}
	if len(rows) == 0 {
		return nil, addrfind.Errorf(addrfind.EINVALID, "sheet %q is empty", sheet)
	}

	return &addrfind.Dataset{
		Columns: rows[0],
		Rows:    rows[1:],
	}, nil
}

// Writer persists batch results to an Excel workbook with a success sheet
// and a failure sheet.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteResults writes the workbook at path. Rows keep input order; when
// dataset is non-nil every original column is passed through untouched and
// the result column is appended.
func (w *Writer) WriteResults(path string, dataset *addrfind.Dataset, result *addrfind.BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SuccessSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(FailureSheet); err != nil {
		return err
	}

	columns := []string{addrfind.URLColumn}
	if dataset != nil {
		columns = dataset.Columns
	}

	if err := writeRow(f, SuccessSheet, 1, append(append([]string{}, columns...), addressesHeader)); err != nil {
		return err
	}
	if err := writeRow(f, FailureSheet, 1, append(append([]string{}, columns...), errorHeader)); err != nil {
		return err
	}

	successRow, failureRow := 2, 2
	for i, res := range result.Results {
		passthrough := []string{res.URL}
		if dataset != nil && i < len(dataset.Rows) {
			passthrough = append([]string{}, dataset.Rows[i]...)
			for len(passthrough) < len(columns) {
				passthrough = append(passthrough, "")
			}
		}

		if res.Status == addrfind.StatusSuccess {
			if err := writeRow(f, SuccessSheet, successRow, append(passthrough, addrfind.JoinAddresses(res.Addresses))); err != nil {
				return err
			}
			successRow++
			continue
		}

		if err := writeRow(f, FailureSheet, failureRow, append(passthrough, res.Reason)); err != nil {
			return err
		}
		failureRow++
	}

	return f.SaveAs(path)
}

// writeRow sets one row of cell values starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
