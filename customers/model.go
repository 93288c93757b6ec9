package customers

// Dataset is the shape the customers module exports: a default object
// wrapping the customer array.
type Dataset struct {
	Customers []Customer `json:"customers"`
}

type Customer struct {
	ID                  int     `json:"id"`
	FirstName           string  `json:"firstName"`
	LastName            string  `json:"lastName"`
	Phone               string  `json:"phone"`
	Email               string  `json:"email"`
	DOB                 string  `json:"dob"`
	Gender              string  `json:"gender"`
	Username            string  `json:"username"`
	AccountCreationDate string  `json:"accountCreationDate"`
	LoyaltyPoints       int     `json:"loyaltyPoints"`
	LastPurchaseDate    string  `json:"lastPurchaseDate"`
	HomeAddress         Address `json:"homeAddress"`
	Orders              Orders  `json:"orders"`
}

type Address struct {
	Street      string      `json:"street"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Zip         string      `json:"zip"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Orders groups a customer's synthetic orders by lifecycle. All three
// slices are always present, empty rather than null when a bucket drew
// zero orders.
type Orders struct {
	Completed []Order `json:"completed"`
	Pending   []Order `json:"pending"`
	Current   []Order `json:"current"`
}

type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Category string  `json:"category"`
}

// Order is one synthetic order inside a bucket. ReceiptURL is null only
// for pending orders; Status is only present outside the completed bucket.
type Order struct {
	OrderID       string     `json:"orderId"`
	Date          string     `json:"date"`
	Total         float64    `json:"total"`
	Tax           float64    `json:"tax"`
	Subtotal      float64    `json:"subtotal"`
	Tip           float64    `json:"tip"`
	PaymentMethod string     `json:"paymentMethod"`
	Items         []LineItem `json:"items"`
	DeliveryType  string     `json:"deliveryType"`
	ReceiptURL    *string    `json:"receiptUrl"`
	Status        string     `json:"status,omitempty"`
}
