package montecarlo

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/etnz/montecarlo/date"
)

// This file handles import and export of the historical return table, so a
// fetched table can be reused offline by later runs.

// WriteCSV exports the return table: a header of "date" followed by the
// asset tickers, then one row per observation.
func WriteCSV(w io.Writer, table *ReturnTable) error {
	cw := csv.NewWriter(w)

	header := append([]string{"date"}, table.Assets()...)
	if err := cw.Write(header); err != nil {
		return err
	}

	row := make([]string, 1+table.Assets().N())
	for i, day := range table.Dates() {
		row[0] = day.String()
		for j := range table.Assets() {
			row[j+1] = strconv.FormatFloat(table.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV imports a return table previously exported by WriteCSV.
func ReadCSV(r io.Reader) (*ReturnTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read returns header: %w", err)
	}
	if len(header) < 2 || header[0] != "date" {
		return nil, fmt.Errorf("invalid returns header %q: want date,TICKER...", header)
	}
	assets, err := NewAssetUniverse(header[1:]...)
	if err != nil {
		return nil, err
	}

	var dates []date.Date
	var rows [][]float64
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read returns line %d: %w", line, err)
		}
		day, err := date.Parse(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid date on line %d: %w", line, err)
		}
		row := make([]float64, assets.N())
		for j, field := range record[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid return for %s on line %d: %w", assets[j], line, err)
			}
			row[j] = v
		}
		dates = append(dates, day)
		rows = append(rows, row)
	}
	return NewReturnTable(assets, dates, rows)
}
