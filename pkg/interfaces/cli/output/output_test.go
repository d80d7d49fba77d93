package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pos/pkg/application/dto"
	"github.com/vsinha/pos/pkg/domain/cart"
	"github.com/vsinha/pos/pkg/domain/entities"
)

func sampleSummary() dto.CheckoutSummary {
	m := func(s string) entities.Money { return entities.NewMoney(decimal.RequireFromString(s)) }
	return dto.CheckoutSummary{
		SessionID: "s-1",
		Lines: []dto.SummaryLine{
			{ItemID: "1", Name: "Bread", Quantity: 2, Stock: 2, UnitPrice: m("5.99"), LineTotal: m("11.98"), AtStockCeiling: true},
		},
		ItemCount:       2,
		DiscountPercent: decimal.NewFromInt(10),
		Totals: cart.RoundedTotals{
			Subtotal:       m("11.98"),
			Tax:            m("1.797"),
			DiscountAmount: m("1.198"),
			Total:          m("12.579"),
		},
	}
}

func TestSummary_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, FormatText, sampleSummary()))

	out := buf.String()
	assert.Contains(t, out, "Customer: walk-in")
	assert.Contains(t, out, "Bread")
	assert.Contains(t, out, "(max)")
	assert.Contains(t, out, "Discount:       1.20 (10%)")
	assert.Contains(t, out, "Total:         12.58")
}

func TestSummary_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, FormatJSON, sampleSummary()))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	totals := doc["totals"].(map[string]interface{})
	assert.Equal(t, 12.58, totals["total"])
	assert.Equal(t, 1.8, totals["tax"])
	assert.Nil(t, doc["customer"])
}

func TestUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.EqualError(t, Summary(&buf, "csv", sampleSummary()), "unsupported output format: csv")
	assert.Error(t, Transaction(&buf, "xml", dto.CompletedTransaction{}))
	assert.Empty(t, buf.String())
}
