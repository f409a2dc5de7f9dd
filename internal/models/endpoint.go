package models

// IBAN identifies a bank account. It is treated as opaque by the core;
// structure and check digits are the concern of the iban package.
type IBAN string

func (i IBAN) String() string {
	return string(i)
}

// CashLabel is the wire representation of the Cash endpoint.
const CashLabel = "CASH"

// Endpoint is one leg of a transaction: either a bank account or Cash, money
// entering or leaving the banking system. The zero value is Cash, so a leg is
// never an implicit nil.
type Endpoint struct {
	iban IBAN
}

// Cash is the endpoint for money crossing the boundary of the banking system.
var Cash = Endpoint{}

// AccountOf returns the endpoint for the given account.
func AccountOf(iban IBAN) Endpoint {
	return Endpoint{iban: iban}
}

// IsCash reports whether this leg is outside money rather than an account.
func (e Endpoint) IsCash() bool {
	return e.iban == ""
}

// IBAN returns the account identifier, and false when the endpoint is Cash.
func (e Endpoint) IBAN() (IBAN, bool) {
	return e.iban, e.iban != ""
}

func (e Endpoint) String() string {
	if e.IsCash() {
		return CashLabel
	}
	return string(e.iban)
}

// ParseEndpoint maps the wire representation back to an endpoint.
func ParseEndpoint(s string) Endpoint {
	if s == "" || s == CashLabel {
		return Cash
	}
	return AccountOf(IBAN(s))
}
