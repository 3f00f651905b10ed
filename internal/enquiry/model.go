package enquiry

import "time"

// Enquiry is written by the customer-facing site and only read here, apart
// from IsRead.
type Enquiry struct {
	ID           int       `json:"id"`
	CustomerName string    `json:"customer_name"`
	ProductName  string    `json:"product_name"`
	ProductID    *int      `json:"product_id"`
	Message      string    `json:"message"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}
