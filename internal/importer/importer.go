// Package importer provides CSV and Excel import functionality for cargo lists.
// It supports automatic delimiter detection, flexible column mapping, and
// case-insensitive header recognition in English and Indonesian.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yudhap/stowplan/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Specs    []model.ItemSpec
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name      int
	Length    int
	Width     int
	Height    int
	Weight    int
	Quantity  int
	Stackable int
	Fragile   int
	MaxStack  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":      {"name", "label", "item", "item name", "description", "desc", "cargo", "nama", "barang"},
	"length":    {"length", "len", "l", "dx", "panjang"},
	"width":     {"width", "w", "dy", "lebar"},
	"height":    {"height", "h", "dz", "tinggi"},
	"weight":    {"weight", "wt", "kg", "mass", "berat"},
	"quantity":  {"quantity", "qty", "count", "num", "amount", "pcs", "pieces", "jumlah"},
	"stackable": {"stackable", "stack", "can stack", "tumpuk"},
	"fragile":   {"fragile", "breakable", "rapuh", "pecah belah"},
	"maxstack":  {"max stack weight", "max stack", "max load", "stack limit", "beban maks"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:      -1,
		Length:    -1,
		Width:     -1,
		Height:    -1,
		Weight:    -1,
		Quantity:  -1,
		Stackable: -1,
		Fragile:   -1,
		MaxStack:  -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "length":
						if mapping.Length == -1 {
							mapping.Length = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "weight":
						if mapping.Weight == -1 {
							mapping.Weight = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					case "stackable":
						if mapping.Stackable == -1 {
							mapping.Stackable = i
						}
					case "fragile":
						if mapping.Fragile == -1 {
							mapping.Fragile = i
						}
					case "maxstack":
						if mapping.MaxStack == -1 {
							mapping.MaxStack = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping:
		// Name, Length, Width, Height, Weight, Quantity, Stackable, Fragile, MaxStack
		return ColumnMapping{
			Name:      0,
			Length:    1,
			Width:     2,
			Height:    3,
			Weight:    4,
			Quantity:  5,
			Stackable: 6,
			Fragile:   7,
			MaxStack:  8,
		}, false
	}

	return mapping, true
}

// parseBool converts a yes/no style cell to a bool.
// It returns the value and a boolean indicating whether the string was recognized.
func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "ya":
		return true, true
	case "", "no", "n", "false", "0", "-", "tidak":
		return false, true
	default:
		return false, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDimension reads a required positive float cell.
func parseDimension(row []string, idx int, field, rowLabel string) (float64, string) {
	str := getCell(row, idx)
	if str == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, field)
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, field, str)
	}
	return v, ""
}

// parseRow extracts an ItemSpec from a row using the given column mapping.
// Returns the spec, any error message, and any warning messages.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, specCount int) (model.ItemSpec, string, []string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Item %d", specCount+1)
	}

	length, errMsg := parseDimension(row, mapping.Length, "length", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg, nil
	}
	width, errMsg := parseDimension(row, mapping.Width, "width", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg, nil
	}
	height, errMsg := parseDimension(row, mapping.Height, "height", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg, nil
	}
	weight, errMsg := parseDimension(row, mapping.Weight, "weight", rowLabel)
	if errMsg != "" {
		return model.ItemSpec{}, errMsg, nil
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		var err error
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return model.ItemSpec{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
		}
	}

	if length <= 0 || width <= 0 || height <= 0 {
		return model.ItemSpec{}, fmt.Sprintf("%s: Length, width, and height must be positive", rowLabel), nil
	}
	if weight < 0 {
		return model.ItemSpec{}, fmt.Sprintf("%s: Weight must not be negative", rowLabel), nil
	}
	if qty <= 0 {
		return model.ItemSpec{}, fmt.Sprintf("%s: Quantity must be positive", rowLabel), nil
	}

	spec := model.NewItemSpec(name, length, width, height, weight, qty)

	var warnings []string

	if stackStr := getCell(row, mapping.Stackable); stackStr != "" {
		stackable, ok := parseBool(stackStr)
		if ok {
			spec.Stackable = stackable
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown stackable value '%s', treating as no", rowLabel, stackStr))
		}
	}

	if fragileStr := getCell(row, mapping.Fragile); fragileStr != "" {
		fragile, ok := parseBool(fragileStr)
		if ok {
			spec.Fragile = fragile
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown fragile value '%s', treating as no", rowLabel, fragileStr))
		}
	}

	if maxStr := getCell(row, mapping.MaxStack); maxStr != "" {
		maxStack, err := strconv.ParseFloat(maxStr, 64)
		if err != nil || maxStack < 0 {
			warnings = append(warnings, fmt.Sprintf("%s: Invalid max stack weight '%s', ignoring", rowLabel, maxStr))
		} else {
			spec.MaxStackWeight = maxStack
		}
	}

	// Stackable with zero declared capacity cannot carry anything, so the
	// flag is downgraded rather than silently kept.
	if spec.Stackable && spec.MaxStackWeight == 0 {
		spec.Stackable = false
		warnings = append(warnings, fmt.Sprintf("%s: Stackable without max stack weight, treating as non-stackable", rowLabel))
	}

	return spec, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports cargo specs from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports cargo specs from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports cargo specs from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into specs.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Validate that required columns were found
		missing := []string{}
		if mapping.Length == -1 {
			missing = append(missing, "Length")
		}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Weight == -1 {
			missing = append(missing, "Weight")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if first row is numeric (positional mapping)
		if len(rows[0]) >= 4 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// First column after the name is not numeric - might be an
				// unrecognized header. Skip it but use positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		spec, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Specs))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Warnings = append(result.Warnings, warnings...)

		result.Specs = append(result.Specs, spec)
	}

	return result
}
