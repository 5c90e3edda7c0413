package models

// Currency is a row of the currencies table.
type Currency struct {
	ID       int64  `json:"id"`       // Primary Key (serial)
	Code     string `json:"code"`     // Unique, e.g. "USD"
	FullName string `json:"fullName"` // e.g. "US Dollar"
	Sign     string `json:"sign"`     // e.g. "$"
}
