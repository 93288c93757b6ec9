package transactions

// LineItem is one priced row inside a transaction. Prices come verbatim
// from the catalog.
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Qty      int     `json:"qty"`
	Category string  `json:"category"`
}

type Party struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Meta is the flat bag of payment-gateway, geo and fulfillment attributes
// attached to every transaction. Every field is sampled independently;
// PaidAt/FulfilledAt/RefundedAt are always null placeholders.
type Meta struct {
	PaymentID         string   `json:"paymentId"`
	Provider          string   `json:"provider"`
	TransactionRef    string   `json:"transactionRef"`
	IP                string   `json:"ip"`
	UserAgent         string   `json:"userAgent"`
	Device            string   `json:"device"`
	AppVersion        string   `json:"appVersion"`
	Language          string   `json:"language"`
	Geo               string   `json:"geo"`
	CouponCode        string   `json:"couponCode"`
	ShippingMethod    string   `json:"shippingMethod"`
	ShippingCost      float64  `json:"shippingCost"`
	ServiceFee        float64  `json:"serviceFee"`
	RiskScore         int      `json:"riskScore"`
	ReviewRequired    bool     `json:"reviewRequired"`
	PaidAt            *string  `json:"paidAt"`
	FulfilledAt       *string  `json:"fulfilledAt"`
	RefundedAt        *string  `json:"refundedAt"`
	FulfillmentStatus string   `json:"fulfillmentStatus"`
	StoreLocation     string   `json:"storeLocation"`
	Cashier           string   `json:"cashier"`
	RegisterID        string   `json:"registerId"`
	TaxRegion         string   `json:"taxRegion"`
	TaxRate           float64  `json:"taxRate"`
	TaxID             string   `json:"taxId"`
	CustomerTaxID     string   `json:"customerTaxId"`
	Tags              []string `json:"tags"`
	Attachments       []string `json:"attachments"`
	NotesInternal     string   `json:"notesInternal"`
}

type Transaction struct {
	ID            string     `json:"id"`
	CreatedAt     string     `json:"createdAt"`
	Customer      Party      `json:"customer"`
	Channel       string     `json:"channel"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	Items         []LineItem `json:"items"`
	Subtotal      float64    `json:"subtotal"`
	Tax           float64    `json:"tax"`
	Fees          float64    `json:"fees"`
	Discount      float64    `json:"discount"`
	Total         float64    `json:"total"`
	Currency      string     `json:"currency"`
	Meta          Meta       `json:"meta"`
}
