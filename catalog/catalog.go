// Package catalog holds the static reference pools every generator draws
// from. Pools are immutable for the duration of a run; callers take
// independent uniform picks with replacement.
package catalog

type Product struct {
	Name     string
	Price    float64
	Category string
}

// Names and Emails are paired by index: the customer at Names[i] owns
// Emails[i], and a draw must use the same index for both.
var Names = []string{
	"Alice Chen", "Brian Wang", "Cathy Lee", "David Lin", "Emily Wu",
	"Frank Huang", "Grace Chang", "Henry Liu", "Ivy Hsu", "Jack Tsai",
}

var Emails = []string{
	"alice@example.com", "brian@example.com", "cathy@example.com",
	"david@example.com", "emily@example.com", "frank@example.com",
	"grace@example.com", "henry@example.com", "ivy@example.com", "jack@example.com",
}

var Channels = []string{"online", "in-store", "phone", "app"}

var PaymentMethods = []string{"credit", "cash", "debit", "mobile"}

var Statuses = []string{"paid", "pending", "refunded", "cancelled"}

var Products = []Product{
	{"Classic Burger", 12.99, "Mains"},
	{"Cheeseburger", 14.99, "Mains"},
	{"Bacon Burger", 16.99, "Mains"},
	{"Veggie Burger", 13.99, "Mains"},
	{"Chicken Sandwich", 11.99, "Mains"},
	{"French Fries", 3.99, "Sides"},
	{"Onion Rings", 4.99, "Sides"},
	{"Caesar Salad", 8.99, "Salads"},
	{"Greek Salad", 9.99, "Salads"},
	{"Soda", 2.50, "Drinks"},
	{"Iced Tea", 2.75, "Drinks"},
	{"Beer", 5.99, "Drinks"},
	{"Wine", 7.50, "Drinks"},
	{"Chocolate Cake", 6.99, "Desserts"},
	{"Cheesecake", 7.99, "Desserts"},
}

// Customer-profile order pools.

var OrderPaymentMethods = []string{"credit", "debit", "mobile", "cash", "giftcard"}

var DeliveryTypes = []string{"pickup", "delivery", "shipping", "dine-in"}

var Genders = []string{"Male", "Female"}

var MenuItems = []Product{
	{"Premium Burger", 12.99, "Mains"},
	{"Veggie Burger", 13.99, "Mains"},
	{"Truffle Fries", 8.99, "Sides"},
	{"Sweet Potato Fries", 4.99, "Sides"},
	{"Craft Beer", 7.50, "Drinks"},
	{"Gourmet Pizza", 18.99, "Mains"},
	{"Garlic Bread", 5.99, "Sides"},
	{"Caesar Salad", 8.99, "Salads"},
	{"Grilled Salmon", 22.99, "Mains"},
	{"Sparkling Water", 2.50, "Drinks"},
	{"Lobster Roll", 24.99, "Mains"},
	{"Coleslaw", 3.99, "Sides"},
	{"Breakfast Burrito", 9.99, "Mains"},
	{"Orange Juice", 3.50, "Drinks"},
	{"Gluten-Free Pasta", 16.99, "Mains"},
	{"House Salad (GF)", 7.99, "Salads"},
	{"Taco Set", 9.80, "Mains"},
	{"Bagel Combo", 6.10, "Breakfast"},
}

// Meta-bag pools.

var Providers = []string{"Visa", "Mastercard", "Apple Pay", "Google Pay", "CashDesk"}

var Devices = []string{"Desktop", "Mobile", "Tablet"}

var Languages = []string{"en-US", "zh-TW", "ja-JP"}

var Geos = []string{"Taipei, Taiwan", "Kaohsiung, Taiwan", "Taichung, Taiwan"}

var Coupons = []string{"", "SAVE10", "FREESHIP", "WELCOME"}

var ShippingMethods = []string{"Pickup", "Delivery"}

var FulfillmentStatuses = []string{"Shipped", "Completed", "Pending"}

var StoreLocations = []string{"Main Branch", "Online Warehouse", "Call Center"}

var Cashiers = []string{"", "Staff A", "Staff B", "Staff C"}

var Tags = []string{"food", "dessert", "ecommerce", "promo"}
