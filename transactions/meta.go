package transactions

import (
	"fmt"

	"github.com/grilldesk/sampledata/catalog"
	"github.com/grilldesk/sampledata/randx"
)

// metaBag samples the gateway sidecar. The currency parameter is accepted
// for parity with the transaction fields but nothing in the bag depends on
// it yet.
func (g *Generator) metaBag(currency string) Meta {
	_ = currency
	return Meta{
		PaymentID:         fmt.Sprintf("PAY-%d", g.rnd.IntBetween(1000, 9999)),
		Provider:          randx.Pick(g.rnd, catalog.Providers),
		TransactionRef:    fmt.Sprintf("REF-%d", g.rnd.IntBetween(100000, 999999)),
		IP:                fmt.Sprintf("192.168.%d.%d", g.rnd.IntBetween(0, 255), g.rnd.IntBetween(0, 255)),
		UserAgent:         "Mozilla/5.0",
		Device:            randx.Pick(g.rnd, catalog.Devices),
		AppVersion:        fmt.Sprintf("v%d.%d", g.rnd.IntBetween(1, 4), g.rnd.IntBetween(0, 9)),
		Language:          randx.Pick(g.rnd, catalog.Languages),
		Geo:               randx.Pick(g.rnd, catalog.Geos),
		CouponCode:        randx.Pick(g.rnd, catalog.Coupons),
		ShippingMethod:    randx.Pick(g.rnd, catalog.ShippingMethods),
		ShippingCost:      round2(g.rnd.Uniform(0, 5)),
		ServiceFee:        round2(g.rnd.Uniform(0, 2)),
		RiskScore:         g.rnd.IntBetween(1, 10),
		ReviewRequired:    g.rnd.IntBetween(0, 1) == 1,
		PaidAt:            nil,
		FulfilledAt:       nil,
		RefundedAt:        nil,
		FulfillmentStatus: randx.Pick(g.rnd, catalog.FulfillmentStatuses),
		StoreLocation:     randx.Pick(g.rnd, catalog.StoreLocations),
		Cashier:           randx.Pick(g.rnd, catalog.Cashiers),
		RegisterID:        fmt.Sprintf("REG-%d", g.rnd.IntBetween(1, 10)),
		TaxRegion:         "Taiwan",
		TaxRate:           taxRate,
		TaxID:             fmt.Sprintf("TXID-%d", g.rnd.IntBetween(10000, 99999)),
		CustomerTaxID:     fmt.Sprintf("CTID-%d", g.rnd.IntBetween(10000, 99999)),
		Tags:              randx.Sample(g.rnd, catalog.Tags, g.rnd.IntBetween(0, 3)),
		Attachments:       []string{},
		NotesInternal:     "",
	}
}
