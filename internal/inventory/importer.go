package inventory

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Import modes.
const (
	ImportSkip   = "skip"
	ImportUpdate = "update"
)

// ErrInvalidCSV is returned when the file cannot be read as a name,quantity table.
var ErrInvalidCSV = errors.New("invalid CSV")

type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

type ImportResult struct {
	Imported int        `json:"imported"`
	Errors   []RowError `json:"errors"`
}

type csvRow struct {
	Name     string
	Quantity string
}

func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: missing header", ErrInvalidCSV)
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	nameIdx, okName := index["name"]
	qtyIdx, okQty := index["quantity"]
	if !okName || !okQty {
		return nil, fmt.Errorf("%w: header must contain name and quantity", ErrInvalidCSV)
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
		}

		rows = append(rows, csvRow{
			Name:     strings.TrimSpace(record[nameIdx]),
			Quantity: strings.TrimSpace(record[qtyIdx]),
		})
	}
	return rows, nil
}

func validateRow(r csvRow) (int, error) {
	if r.Name == "" {
		return 0, errors.New("missing name")
	}
	qty, err := strconv.Atoi(r.Quantity)
	if err != nil || qty < 0 {
		return 0, errors.New("invalid quantity")
	}
	return qty, nil
}

// Import applies every valid row of a name,quantity CSV through SetQuantity,
// so a quantity of 0 deletes the item. In ImportSkip mode rows naming an
// existing item are reported instead of applied. Row errors are collected;
// the first store error aborts the import.
func (s *Synchronizer) Import(ctx context.Context, file io.Reader, mode string) (ImportResult, error) {
	if mode != ImportUpdate {
		mode = ImportSkip
	}

	rows, err := parseCSV(file)
	if err != nil {
		return ImportResult{}, err
	}

	if _, err := s.Refresh(ctx); err != nil {
		return ImportResult{}, err
	}

	result := ImportResult{Errors: []RowError{}}
	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		qty, err := validateRow(row)
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		if _, exists := s.Lookup(row.Name); exists && mode == ImportSkip {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: fmt.Sprintf("item '%s' already exists", row.Name)})
			continue
		}

		if err := s.SetQuantity(ctx, row.Name, Count(qty)); err != nil {
			return result, err
		}
		result.Imported++
	}

	return result, nil
}
