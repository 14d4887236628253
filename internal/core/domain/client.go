package domain

// Client is a billable customer, referenced by invoices.
type Client struct {
	ClientID string `json:"clientID"` // Primary key (UUID)
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
