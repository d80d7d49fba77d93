package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pos/pkg/domain/entities"
)

var (
	catalogHeader  = []string{"id", "name", "sku", "price", "stock", "tax_rate", "unit", "category"}
	customerHeader = []string{"id", "name", "email", "phone"}
)

// Loader handles loading checkout reference data from CSV or XLSX files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCatalog loads sellable items. Every row is validated the same way items
// from the backend are before they may enter a cart.
func (l *Loader) LoadCatalog(filename string) ([]*entities.CatalogItem, error) {
	records, err := readRecords(filename, "catalog", catalogHeader)
	if err != nil {
		return nil, err
	}

	seen := make(map[entities.ItemID]bool, len(records))
	var items []*entities.CatalogItem
	for i, record := range records {
		item, err := parseCatalogItem(record)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", i+2, err)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("catalog row %d: duplicate id %s", i+2, item.ID)
		}
		seen[item.ID] = true

		items = append(items, item)
	}

	return items, nil
}

// LoadCustomers loads registered customers
func (l *Loader) LoadCustomers(filename string) ([]*entities.Customer, error) {
	records, err := readRecords(filename, "customers", customerHeader)
	if err != nil {
		return nil, err
	}

	var customers []*entities.Customer
	for i, record := range records {
		customer, err := parseCustomer(record)
		if err != nil {
			return nil, fmt.Errorf("customers row %d: %w", i+2, err)
		}
		customers = append(customers, &customer)
	}

	return customers, nil
}

// readRecords returns the data rows of a file after checking its header and
// column counts. The format is chosen by extension.
func readRecords(filename, kind string, expectedHeader []string) ([][]string, error) {
	var (
		records [][]string
		err     error
	)
	if strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		records, err = readWorkbook(filename)
	} else {
		records, err = readCSV(filename)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s file %s: %w", kind, filename, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s file must have header and at least one data row", kind)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s header mismatch. Expected: %v, Got: %v", kind, expectedHeader, header)
	}

	rows := records[1:]
	for i, record := range rows {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", kind, i+2, len(expectedHeader), len(record))
		}
	}
	return rows, nil
}

func readCSV(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	return reader.ReadAll()
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

func parseCatalogItem(record []string) (*entities.CatalogItem, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, fmt.Errorf("invalid price: %s", record[3])
	}

	stock, err := strconv.ParseInt(strings.TrimSpace(record[4]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stock: %s", record[4])
	}

	taxRate := decimal.Zero
	if raw := strings.TrimSpace(record[5]); raw != "" {
		taxRate, err = decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid tax_rate: %s", record[5])
		}
	}

	return entities.NewCatalogItem(
		entities.ItemID(strings.TrimSpace(record[0])),
		strings.TrimSpace(record[1]),
		strings.TrimSpace(record[2]),
		price,
		entities.Quantity(stock),
		taxRate,
		strings.TrimSpace(record[6]),
		strings.TrimSpace(record[7]),
	)
}

func parseCustomer(record []string) (entities.Customer, error) {
	customer := entities.Customer{
		ID:    entities.CustomerID(strings.TrimSpace(record[0])),
		Name:  strings.TrimSpace(record[1]),
		Email: strings.TrimSpace(record[2]),
		Phone: strings.TrimSpace(record[3]),
	}
	if customer.Name == "" {
		return entities.Customer{}, fmt.Errorf("customer name cannot be empty")
	}
	if customer.Email == "" {
		return entities.Customer{}, fmt.Errorf("customer email cannot be empty")
	}
	return customer, nil
}
