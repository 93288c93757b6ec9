// Package customers builds synthetic customer profiles: personal fields
// from the fake-data collaborator, a home address, and three buckets of
// orders sharing one sequential order-ID counter.
package customers

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/grilldesk/sampledata/catalog"
	"github.com/grilldesk/sampledata/fake"
	"github.com/grilldesk/sampledata/randx"
)

const taxRate = 0.08

// Config bounds the order count drawn for each bucket. Each draw is
// uniform over [0, max], zero included.
type Config struct {
	MaxCompleted int
	MaxPending   int
	MaxCurrent   int
}

func DefaultConfig() Config {
	return Config{MaxCompleted: 10, MaxPending: 3, MaxCurrent: 3}
}

type Generator struct {
	rnd randx.Source
	fk  *fake.Faker
	cfg Config
	now time.Time
}

func NewGenerator(rnd randx.Source, fk *fake.Faker, cfg Config, now time.Time) *Generator {
	return &Generator{rnd: rnd, fk: fk, cfg: cfg, now: now}
}

// Batch builds n customers with sequential IDs 1..n, consuming order IDs
// from alloc across all of them.
func (g *Generator) Batch(n int, alloc *IDAllocator) []Customer {
	out := make([]Customer, 0, n)
	for id := 1; id <= n; id++ {
		out = append(out, g.Customer(id, alloc))
	}
	return out
}

// Customer assembles one profile. Buckets are generated completed, then
// pending, then current, and alloc advances by exactly the number of
// orders each batch produced.
func (g *Generator) Customer(id int, alloc *IDAllocator) Customer {
	first := g.fk.FirstName()
	last := g.fk.LastName()
	accountDate := g.fk.DateBetween(g.now.AddDate(-2, 0, 0), g.now)
	dob := g.fk.DateOfBirth(18, 80)

	completed := g.orderBatch(alloc, BucketCompleted, g.cfg.MaxCompleted)
	pending := g.orderBatch(alloc, BucketPending, g.cfg.MaxPending)
	current := g.orderBatch(alloc, BucketCurrent, g.cfg.MaxCurrent)

	lastPurchase := g.fk.DateBetween(accountDate, g.now)

	return Customer{
		ID:                  id,
		FirstName:           first,
		LastName:            last,
		Phone:               g.fk.Phone(),
		Email:               g.fk.Email(),
		DOB:                 dob.Format(time.DateOnly),
		Gender:              randx.Pick(g.rnd, catalog.Genders),
		Username:            strings.ToLower(first) + "_" + strings.ToLower(last),
		AccountCreationDate: accountDate.Format(time.DateOnly),
		LoyaltyPoints:       g.rnd.IntBetween(0, 2000),
		LastPurchaseDate:    lastPurchase.Format(time.DateOnly),
		HomeAddress:         g.address(),
		Orders: Orders{
			Completed: completed,
			Pending:   pending,
			Current:   current,
		},
	}
}

func (g *Generator) address() Address {
	return Address{
		Street:  g.fk.Street(),
		City:    g.fk.City(),
		State:   g.fk.StateAbr(),
		Zip:     g.fk.Zip(),
		Country: "USA",
		Coordinates: Coordinates{
			Lat: g.fk.Latitude(),
			Lng: g.fk.Longitude(),
		},
	}
}

func (g *Generator) orderBatch(alloc *IDAllocator, b Bucket, max int) []Order {
	n := g.rnd.IntBetween(0, max)
	out := make([]Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.order(alloc.Take(), b))
	}
	return out
}

// order builds one bucket order. Dates fall within the last year; money
// fields are rounded at each step so the total carries the compounded
// per-step rounding, not a recomputed ideal.
func (g *Generator) order(orderID int, b Bucket) Order {
	date := g.fk.DateTimeBetween(g.now.AddDate(-1, 0, 0), g.now)
	items, subtotal := g.lineItems()

	tax := round2(subtotal * taxRate)
	var tip float64
	if rate := b.tipRate(); rate > 0 {
		tip = round2(subtotal * rate)
	}
	total := round2(subtotal + tax + tip)

	o := Order{
		OrderID:       fmt.Sprintf("ORD-%d", orderID),
		Date:          date.Format(time.RFC3339),
		Total:         total,
		Tax:           tax,
		Subtotal:      subtotal,
		Tip:           tip,
		PaymentMethod: randx.Pick(g.rnd, catalog.OrderPaymentMethods),
		Items:         items,
		DeliveryType:  randx.Pick(g.rnd, catalog.DeliveryTypes),
	}
	if b.hasReceipt() {
		u := fmt.Sprintf("/receipts/ord%d.pdf", orderID)
		o.ReceiptURL = &u
	}
	if b.fillerStatus() {
		o.Status = capitalize(g.fk.Word())
	}
	return o
}

func (g *Generator) lineItems() ([]LineItem, float64) {
	count := g.rnd.IntBetween(1, 4)
	items := make([]LineItem, 0, count)
	var subtotal float64
	for i := 0; i < count; i++ {
		p := randx.Pick(g.rnd, catalog.MenuItems)
		qty := g.rnd.IntBetween(1, 3)
		items = append(items, LineItem{Name: p.Name, Price: p.Price, Quantity: qty, Category: p.Category})
		subtotal += p.Price * float64(qty)
	}
	return items, round2(subtotal)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
