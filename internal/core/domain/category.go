package domain

// Category tags transactions for reporting.
// System categories cannot be deleted or disabled through category management.
type Category struct {
	CategoryID string `json:"categoryID"` // Primary key (UUID)
	Name       string `json:"name"`
	IsEnabled  bool   `json:"isEnabled"`
	IsSystem   bool   `json:"isSystem"`
	AuditFields
}
