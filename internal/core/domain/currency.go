package domain

// Currency represents a registered currency in the domain.
type Currency struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"` // ISO 4217 code (e.g., "USD"), unique
	Name   string `json:"name"` // e.g., "US Dollar"
	Symbol string `json:"sign"` // e.g., "$"
}
