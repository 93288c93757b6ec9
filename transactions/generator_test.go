package transactions

import (
	"fmt"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/grilldesk/sampledata/catalog"
	"github.com/grilldesk/sampledata/randx"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Scripts the exact draws for a single-item ticket: one Classic Burger,
// qty 1, fees 1.50, discount 3.25. Unscripted draws fall back to their
// lower bounds.
func TestSingleItemTicket(t *testing.T) {
	is := is.New(t)

	src := &randx.Scripted{
		// days, hours, minutes, customer index, item count, product index, qty
		Ints:   []int{0, 0, 0, 0, 1, 0, 1},
		Floats: []float64{1.50, 3.25},
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tx := NewGenerator(src, now).Transaction(0)

	is.Equal(tx.ID, "TX-1000")
	is.Equal(tx.CreatedAt, "2025-06-01T12:00:00Z")
	is.Equal(tx.Customer, Party{Name: "Alice Chen", Email: "alice@example.com"})
	is.Equal(len(tx.Items), 1)
	is.Equal(tx.Items[0], LineItem{Name: "Classic Burger", Price: 12.99, Qty: 1, Category: "Mains"})
	is.Equal(tx.Subtotal, 12.99)
	is.Equal(tx.Tax, 0.65)
	is.Equal(tx.Fees, 1.50)
	is.Equal(tx.Discount, 3.25)
	is.True(closeTo(tx.Total, 11.89))
	is.Equal(tx.Currency, "USD")
	is.Equal(tx.Channel, "online")
	is.Equal(tx.PaymentMethod, "credit")
	is.Equal(tx.Status, "paid")
}

func TestBatchInvariants(t *testing.T) {
	is := is.New(t)

	gen := NewGenerator(randx.New(42), time.Now())
	batch := gen.Batch(100)
	is.Equal(len(batch), 100)

	for i, tx := range batch {
		is.Equal(tx.ID, fmt.Sprintf("TX-%d", 1000+i))

		is.True(len(tx.Items) >= 1 && len(tx.Items) <= 4)
		var sum float64
		for _, it := range tx.Items {
			is.True(it.Qty >= 1 && it.Qty <= 3)
			is.True(slices.ContainsFunc(catalog.Products, func(p catalog.Product) bool {
				return p.Name == it.Name && p.Price == it.Price && p.Category == it.Category
			}))
			sum += it.Price * float64(it.Qty)
		}
		is.True(closeTo(tx.Subtotal, math.Round(sum*100)/100))

		// rollups compound per-step rounding, never recomputed from scratch
		is.True(closeTo(tx.Tax, math.Round(tx.Subtotal*0.05*100)/100))
		is.True(closeTo(tx.Total, math.Round((tx.Subtotal+tx.Tax+tx.Fees-tx.Discount)*100)/100))
		is.True(tx.Fees >= 0 && tx.Fees <= 2)
		is.True(tx.Discount >= 0 && tx.Discount <= 5)

		idx := slices.Index(catalog.Names, tx.Customer.Name)
		is.True(idx >= 0)
		is.Equal(tx.Customer.Email, catalog.Emails[idx]) // name/email from the same pool index

		_, err := time.Parse(time.RFC3339, tx.CreatedAt)
		is.NoErr(err)
	}
}

func TestMetaBag(t *testing.T) {
	is := is.New(t)

	gen := NewGenerator(randx.New(7), time.Now())
	for i := 0; i < 50; i++ {
		m := gen.metaBag("USD")

		is.Equal(m.PaidAt, (*string)(nil))
		is.Equal(m.FulfilledAt, (*string)(nil))
		is.Equal(m.RefundedAt, (*string)(nil))

		is.True(len(m.Tags) <= 3)
		seen := map[string]bool{}
		for _, tag := range m.Tags {
			is.True(slices.Contains(catalog.Tags, tag))
			is.True(!seen[tag]) // drawn without replacement
			seen[tag] = true
		}
		is.True(m.Tags != nil)

		is.True(m.RiskScore >= 1 && m.RiskScore <= 10)
		is.True(m.ShippingCost >= 0 && m.ShippingCost <= 5)
		is.True(m.ServiceFee >= 0 && m.ServiceFee <= 2)
		is.Equal(m.UserAgent, "Mozilla/5.0")
		is.Equal(m.TaxRegion, "Taiwan")
		is.Equal(m.TaxRate, 0.05)
		is.Equal(len(m.Attachments), 0)
		is.Equal(m.NotesInternal, "")
	}
}

func TestCreatedAtIsNeverInTheFuture(t *testing.T) {
	is := is.New(t)

	now := time.Now()
	gen := NewGenerator(randx.New(13), now)
	for _, tx := range gen.Batch(50) {
		created, err := time.Parse(time.RFC3339, tx.CreatedAt)
		is.NoErr(err)
		is.True(!created.After(now))
		is.True(created.After(now.AddDate(0, 0, -182)))
	}
}
