package cart

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/pos/pkg/domain/entities"
)

func item(id entities.ItemID, price string, stock entities.Quantity, taxRate string) entities.CatalogItem {
	return entities.CatalogItem{
		ID:      id,
		Name:    "Item " + string(id),
		SKU:     "SKU-" + string(id),
		Price:   decimal.RequireFromString(price),
		Stock:   stock,
		TaxRate: decimal.RequireFromString(taxRate),
		Unit:    "EA",
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCart_AddOrMerge_MergesByIdentity(t *testing.T) {
	c := New()
	a := item("1", "2.50", 100, "0.15")

	for _, qty := range []entities.Quantity{1, 4, 2} {
		clamped, err := c.AddOrMerge(a, qty)
		require.NoError(t, err)
		require.False(t, clamped)
	}

	require.Equal(t, 1, c.Len())
	line, ok := c.Line("1")
	require.True(t, ok)
	assert.Equal(t, entities.Quantity(7), line.Quantity)
}

func TestCart_AddOrMerge_ClampsToCurrentStock(t *testing.T) {
	c := New()

	clamped, err := c.AddOrMerge(item("1", "1.00", 5, "0"), 3)
	require.NoError(t, err)
	require.False(t, clamped)

	// A newer catalog snapshot reports less stock than the cart holds plus the addition
	clamped, err = c.AddOrMerge(item("1", "1.00", 4, "0"), 3)
	require.NoError(t, err)
	assert.True(t, clamped)

	line, _ := c.Line("1")
	assert.Equal(t, entities.Quantity(4), line.Quantity)
	assert.Equal(t, entities.Quantity(4), line.Stock)

	clamped, err = c.AddOrMerge(item("2", "1.00", 2, "0"), 9)
	require.NoError(t, err)
	assert.True(t, clamped)
	line, _ = c.Line("2")
	assert.Equal(t, entities.Quantity(2), line.Quantity)
}

func TestCart_AddOrMerge_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		item     entities.CatalogItem
		quantity entities.Quantity
		target   error
	}{
		{"zero quantity", item("1", "1.00", 5, "0"), 0, ErrQuantityOutOfRange},
		{"negative quantity", item("1", "1.00", 5, "0"), -2, ErrQuantityOutOfRange},
		{"out of stock", item("1", "1.00", 0, "0"), 1, ErrOutOfStock},
		{"negative price", item("1", "-1.00", 5, "0"), 1, ErrInvalidItem},
		{"tax rate as percent", item("1", "1.00", 5, "15"), 1, ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			_, err := c.AddOrMerge(tt.item, tt.quantity)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.target), "expected %v, got %v", tt.target, err)
			assert.True(t, c.IsEmpty())
		})
	}
}

func TestCart_AddOrMerge_SnapshotsItem(t *testing.T) {
	c := New()
	a := item("1", "5.99", 10, "0.15")
	_, err := c.AddOrMerge(a, 1)
	require.NoError(t, err)

	// Later catalog price changes do not reprice an existing line
	a.Price = dec("9.99")
	_, err = c.AddOrMerge(a, 1)
	require.NoError(t, err)

	line, _ := c.Line("1")
	assert.True(t, line.UnitPrice.Equal(dec("5.99")))
	assert.Equal(t, "SKU-1", line.SKU)
	assert.Equal(t, entities.Quantity(2), line.Quantity)
}

func TestCart_RemoveLine(t *testing.T) {
	c := New()
	_, _ = c.AddOrMerge(item("1", "1.00", 5, "0"), 1)
	_, _ = c.AddOrMerge(item("2", "1.00", 5, "0"), 1)
	_, _ = c.AddOrMerge(item("3", "1.00", 5, "0"), 1)

	c.RemoveLine("2")
	c.RemoveLine("missing")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, entities.ItemID("1"), lines[0].ItemID)
	assert.Equal(t, entities.ItemID("3"), lines[1].ItemID)
}

func TestCart_SetLineQuantity(t *testing.T) {
	tests := []struct {
		name          string
		itemID        entities.ItemID
		quantity      entities.Quantity
		currentStock  entities.Quantity
		expectClamped bool
		expectLines   int
		expectQty     entities.Quantity
	}{
		{"within stock", "1", 4, 10, false, 1, 4},
		{"above stock clamps to ceiling", "1", 12, 10, true, 1, 10},
		{"stock dropped since add", "1", 3, 2, true, 1, 2},
		{"zero removes", "1", 0, 10, false, 0, 0},
		{"negative removes", "1", -1, 10, true, 0, 0},
		{"sold out removes", "1", 1, 0, true, 0, 0},
		{"absent item is a no-op", "9", 5, 10, false, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			_, err := c.AddOrMerge(item("1", "1.00", 10, "0"), 2)
			require.NoError(t, err)

			clamped := c.SetLineQuantity(tt.itemID, tt.quantity, tt.currentStock)

			assert.Equal(t, tt.expectClamped, clamped)
			require.Equal(t, tt.expectLines, c.Len())
			if tt.expectLines > 0 {
				line, _ := c.Line("1")
				assert.Equal(t, tt.expectQty, line.Quantity)
			}
		})
	}
}

func TestCart_SetDiscountPercent_Clamps(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"150", "100"},
		{"-5", "0"},
		{"10", "10"},
		{"0", "0"},
		{"100", "100"},
		{"12.5", "12.5"},
	}

	c := New()
	for _, tt := range tests {
		c.SetDiscountPercent(dec(tt.value))
		assert.True(t, c.DiscountPercent().Equal(dec(tt.expected)),
			"SetDiscountPercent(%s): expected %s, got %s", tt.value, tt.expected, c.DiscountPercent())
	}
}

func TestCart_TotalsArePure(t *testing.T) {
	c := New()
	_, _ = c.AddOrMerge(item("1", "3.33", 10, "0.16"), 3)
	c.SetDiscountPercent(dec("7"))

	before := c.ComputeTotals()
	again := c.ComputeTotals()
	assert.True(t, before.Total.Equal(again.Total))
	assert.True(t, before.Tax.Equal(again.Tax))

	_, err := c.AddOrMerge(item("2", "8.10", 10, "0.15"), 2)
	require.NoError(t, err)
	assert.NotEqual(t, before.Subtotal.String(), c.ComputeTotals().Subtotal.String())

	c.RemoveLine("2")
	after := c.ComputeTotals()
	assert.True(t, before.Subtotal.Equal(after.Subtotal))
	assert.True(t, before.Tax.Equal(after.Tax))
	assert.True(t, before.DiscountAmount.Equal(after.DiscountAmount))
	assert.True(t, before.Total.Equal(after.Total))
}

func TestCart_TaxIsPerLine(t *testing.T) {
	c := New()
	_, _ = c.AddOrMerge(item("1", "10.00", 10, "0.15"), 2)
	_, _ = c.AddOrMerge(item("2", "30.00", 10, "0"), 1)

	totals := c.ComputeTotals()

	assert.True(t, totals.Subtotal.Equal(dec("50")))
	assert.True(t, totals.Tax.Equal(dec("3")), "expected 3.00, got %s", totals.Tax)
	assert.False(t, totals.Tax.Equal(totals.Subtotal.Mul(dec("0.15"))))
}

func TestCart_EndToEndScenario(t *testing.T) {
	c := New()
	_, err := c.AddOrMerge(item("A", "5.99", 50, "0.15"), 2)
	require.NoError(t, err)
	_, err = c.AddOrMerge(item("B", "12.50", 50, "0"), 1)
	require.NoError(t, err)
	c.SetDiscountPercent(dec("10"))

	exact := c.ComputeTotals()
	assert.True(t, exact.Subtotal.Equal(dec("24.48")))
	assert.True(t, exact.Tax.Equal(dec("1.797")))
	assert.True(t, exact.DiscountAmount.Equal(dec("2.448")))
	assert.True(t, exact.Total.Equal(dec("23.829")))

	payload, err := c.BuildTransactionPayload("cash", "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, "24.48", payload.Subtotal.String())
	assert.Equal(t, "1.80", payload.Tax.String())
	assert.Equal(t, "2.45", payload.Discount.String())
	assert.Equal(t, "23.83", payload.Total.String())
	assert.Equal(t, entities.PaymentCash, payload.PaymentMethod)
	assert.Equal(t, entities.StatusCompleted, payload.Status)
	assert.Nil(t, payload.Customer)
	require.Len(t, payload.Items, 2)
	assert.Equal(t, entities.ItemID("A"), payload.Items[0].Item)
	assert.Equal(t, entities.Quantity(2), payload.Items[0].Quantity)
	assert.Equal(t, "5.99", payload.Items[0].PriceAtSale.String())
}

func TestCart_RoundingBoundary(t *testing.T) {
	c := New()
	_, err := c.AddOrMerge(item("1", "19.995", 5, "0"), 1)
	require.NoError(t, err)

	assert.True(t, c.ComputeTotals().Subtotal.Equal(dec("19.995")))

	payload, err := c.BuildTransactionPayload("mpesa", "")
	require.NoError(t, err)
	assert.Equal(t, "20.00", payload.Subtotal.String())
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "20.00", payload.Items[0].PriceAtSale.String())
}

func TestCart_RoundsOnlyAtBoundary(t *testing.T) {
	// 300 lines of 0.333 × 0.15 tax: per-line rounding would give 300 × 0.05 = 15.00
	c := New()
	for i := 0; i < 300; i++ {
		id := entities.ItemID(decimal.NewFromInt(int64(i + 1)).String())
		_, err := c.AddOrMerge(item(id, "0.333", 10, "0.15"), 1)
		require.NoError(t, err)
	}

	payload, err := c.BuildTransactionPayload("cash", "")
	require.NoError(t, err)
	assert.Equal(t, "99.90", payload.Subtotal.String())
	assert.Equal(t, "14.99", payload.Tax.String())
}

func TestCart_BuildPayloads_EmptyCart(t *testing.T) {
	c := New()

	_, err := c.BuildTransactionPayload("cash", "COMPLETED")
	require.ErrorIs(t, err, ErrEmptyCart)

	_, err = c.BuildSavedCartPayload()
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, "Cart is empty", err.Error())
}

func TestCart_BuildSavedCartPayload(t *testing.T) {
	c := New()
	_, _ = c.AddOrMerge(item("7", "3.00", 10, "0.15"), 3)
	c.SetCustomer(entities.CustomerRef("12"))

	payload, err := c.BuildSavedCartPayload()
	require.NoError(t, err)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"customer":12,"items":[{"item":7,"quantity":3}]}`, string(data))
	assert.Equal(t, entities.SavedCartPayloadKind, payload.Kind())
}

func TestCart_TransactionPayloadJSON(t *testing.T) {
	c := New()
	_, _ = c.AddOrMerge(item("3", "4.50", 10, "0.15"), 2)
	c.SetCustomer(entities.CustomerRef("cust-9"))
	c.SetDiscountPercent(dec("5"))

	payload, err := c.BuildTransactionPayload("ecocash", "completed")
	require.NoError(t, err)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"customer": "cust-9",
		"paymentMethod": "ECOCASH",
		"subtotal": 9.00,
		"tax": 1.35,
		"discount": 0.45,
		"total": 9.90,
		"status": "COMPLETED",
		"items": [{"item": 3, "quantity": 2, "price_at_sale": 4.50}]
	}`, string(data))
	assert.Contains(t, string(data), `"subtotal":9.00`)
}

func TestCart_Clear(t *testing.T) {
	c := New()
	_, _ = c.AddOrMerge(item("1", "1.00", 10, "0"), 2)
	c.SetDiscountPercent(dec("20"))
	c.SetCustomer(entities.CustomerRef("5"))

	c.Clear()

	snap := c.Snapshot()
	assert.Empty(t, snap.Lines)
	assert.True(t, snap.DiscountPercent.IsZero())
	assert.Nil(t, snap.Customer)
}

func TestCart_CustomerIsCopied(t *testing.T) {
	c := New()
	id := entities.CustomerID("5")
	c.SetCustomer(&id)
	id = "6"

	require.NotNil(t, c.Customer())
	assert.Equal(t, entities.CustomerID("5"), *c.Customer())

	c.SetCustomer(nil)
	assert.Nil(t, c.Customer())
}
