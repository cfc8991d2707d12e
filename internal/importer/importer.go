// Package importer reads asset CSV exports into create params. Bank exports
// are frequently EUC-KR encoded, so all input goes through charset detection
// first.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jihopark/moneydash/internal/asset"
	enc "github.com/jihopark/moneydash/internal/encoding"
)

// Expected column order. A header row is detected by a non-numeric amount
// column and skipped.
const (
	colName = iota
	colAmount
	colCategory
	colPlatform
	colDescription

	minColumns = 3
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Parse reads CSV rows of name,amount,category[,platform[,description]].
// Amounts are integers in the smallest currency unit; thousands separators
// are tolerated. Any malformed row fails the whole import so nothing is
// half-loaded.
func (s *Service) Parse(r io.Reader) ([]asset.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var params []asset.CreateParams

	for i, row := range rows {
		rowNum := i + 1

		if len(row) == 0 || (len(row) == 1 && strings.TrimSpace(row[0]) == "") {
			continue
		}

		if len(row) < minColumns {
			return nil, fmt.Errorf("row %d: expected at least %d columns, got %d", rowNum, minColumns, len(row))
		}

		// Header row.
		if i == 0 {
			if _, err := parseAmount(row[colAmount]); err != nil {
				continue
			}
		}

		amount, err := parseAmount(row[colAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		category := asset.Category(strings.ToUpper(strings.TrimSpace(row[colCategory])))
		if !category.Valid() {
			return nil, fmt.Errorf("row %d: %w: %q", rowNum, asset.ErrInvalidCategory, row[colCategory])
		}

		p := asset.CreateParams{
			Name:     strings.TrimSpace(row[colName]),
			Amount:   amount,
			Category: category,
		}

		if len(row) > colPlatform {
			p.Platform = strings.TrimSpace(row[colPlatform])
		}

		if len(row) > colDescription {
			p.Description = strings.TrimSpace(row[colDescription])
		}

		if p.Name == "" {
			return nil, fmt.Errorf("row %d: %w", rowNum, asset.ErrNameRequired)
		}

		params = append(params, p)
	}

	return params, nil
}

// parseAmount accepts "5000000", "5,000,000" and "₩5,000,000".
func parseAmount(s string) (int64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "₩", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")

	amount, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return amount, nil
}
