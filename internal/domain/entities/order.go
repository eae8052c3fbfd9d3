package entities

// Order is the external order reference a quote is priced against. The order
// service owns it; this service only reads the terms needed for validation
// and currency defaulting.

type Order struct {
	ID          string  `json:"id"`
	CustomerID  string  `json:"customer_id"`
	Currency    string  `json:"currency"`
	TargetPrice float64 `json:"target_price"`
	Description string  `json:"description"`
}

// QuoteTemplate is a read-only bundle of default values consumed at quote
// creation. Template CRUD lives outside this service.

type QuoteTemplate struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Breakdown    PricingBreakdown `json:"breakdown"`
	DeliveryDays int              `json:"delivery_days"`
	PaymentTerms string           `json:"payment_terms"`
	Warranty     string           `json:"warranty"`
	Material     string           `json:"material"`
	Process      string           `json:"process"`
	Finish       string           `json:"finish"`
	Tolerance    string           `json:"tolerance"`
	Notes        string           `json:"notes"`
}
