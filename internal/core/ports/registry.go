package ports

// CurrencyRegistry validates currency codes against the real-world ISO list
// and supplies canonical display data. It is consulted before the exchange
// core is invoked.
type CurrencyRegistry interface {
	IsValidCode(code string) bool
	CanonicalName(code string) (string, bool)
	CanonicalSymbol(code string) (string, bool)
}
