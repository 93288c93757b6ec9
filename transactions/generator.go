// Package transactions builds synthetic order-ticket records for the demo
// front-end: nested line items, per-step-rounded money rollups and a meta
// sidecar of gateway attributes.
package transactions

import (
	"fmt"
	"math"
	"time"

	"github.com/grilldesk/sampledata/catalog"
	"github.com/grilldesk/sampledata/randx"
)

const (
	taxRate  = 0.05
	currency = "USD"
	idBase   = 1000
)

type Generator struct {
	rnd randx.Source
	now time.Time
}

func NewGenerator(rnd randx.Source, now time.Time) *Generator {
	return &Generator{rnd: rnd, now: now}
}

// Batch builds n transactions with sequential IDs starting at TX-1000.
func (g *Generator) Batch(n int) []Transaction {
	out := make([]Transaction, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Transaction(i))
	}
	return out
}

// Transaction assembles record i. The creation time is sampled in three
// independent stages (days back, hours, minutes), not one uniform span.
// Customer name and email are taken from the same pool index.
func (g *Generator) Transaction(i int) Transaction {
	createdAt := g.now.
		AddDate(0, 0, -g.rnd.IntBetween(0, 180)).
		Add(-time.Duration(g.rnd.IntBetween(0, 23)) * time.Hour).
		Add(-time.Duration(g.rnd.IntBetween(0, 59)) * time.Minute)

	ci := g.rnd.IntBetween(0, len(catalog.Names)-1)
	items, subtotal := g.lineItems()

	tax := round2(subtotal * taxRate)
	fees := round2(g.rnd.Uniform(0, 2))
	discount := round2(g.rnd.Uniform(0, 5))
	// discount may exceed tax+fees; the total is intentionally not clamped
	total := round2(subtotal + tax + fees - discount)

	return Transaction{
		ID:            fmt.Sprintf("TX-%d", idBase+i),
		CreatedAt:     createdAt.Format(time.RFC3339),
		Customer:      Party{Name: catalog.Names[ci], Email: catalog.Emails[ci]},
		Channel:       randx.Pick(g.rnd, catalog.Channels),
		PaymentMethod: randx.Pick(g.rnd, catalog.PaymentMethods),
		Status:        randx.Pick(g.rnd, catalog.Statuses),
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Fees:          fees,
		Discount:      discount,
		Total:         total,
		Currency:      currency,
		Meta:          g.metaBag(currency),
	}
}

// lineItems draws 1-4 catalog picks with quantities 1-3 and returns them
// with the rounded subtotal.
func (g *Generator) lineItems() ([]LineItem, float64) {
	count := g.rnd.IntBetween(1, 4)
	items := make([]LineItem, 0, count)
	var subtotal float64
	for i := 0; i < count; i++ {
		p := randx.Pick(g.rnd, catalog.Products)
		qty := g.rnd.IntBetween(1, 3)
		items = append(items, LineItem{Name: p.Name, Price: p.Price, Qty: qty, Category: p.Category})
		subtotal += p.Price * float64(qty)
	}
	return items, round2(subtotal)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
