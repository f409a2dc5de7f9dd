// Package iban generates account identifiers for this bank and tells this
// bank's accounts apart from external ones.
package iban

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/otterbank/bank/internal/models"
)

// AccountNumberLength is the fixed width of the BBAN account number part.
const AccountNumberLength = 10

// Service issues IBANs under a single country and bank code and answers the
// "is this account ours" question for the admission policies.
type Service struct {
	countryCode string
	bankCode    string
	accountNum  func() int64
}

// NewService creates a Service for the given country code (two uppercase
// letters) and national bank code.
func NewService(countryCode, bankCode string) *Service {
	return &Service{
		countryCode: countryCode,
		bankCode:    bankCode,
		accountNum:  func() int64 { return rand.Int64N(1e10) },
	}
}

// Generate builds a new IBAN of this bank with valid check digits and a
// random 10-digit account number.
func (s *Service) Generate() models.IBAN {
	bban := fmt.Sprintf("%s%0*d", s.bankCode, AccountNumberLength, s.accountNum())
	check := checkDigits(s.countryCode, bban)
	return models.IBAN(fmt.Sprintf("%s%02d%s", s.countryCode, check, bban))
}

// BelongsToOurBank reports whether the IBAN carries this bank's country and
// bank code. Malformed or foreign identifiers are simply not ours.
func (s *Service) BelongsToOurBank(iban models.IBAN) bool {
	v := string(iban)
	if len(v) < 4+len(s.bankCode) {
		return false
	}
	return v[:2] == s.countryCode && v[4:4+len(s.bankCode)] == s.bankCode
}

// checkDigits computes the two ISO 13616 check digits for countryCode+bban.
func checkDigits(countryCode, bban string) int {
	return 98 - mod97(bban+countryCode+"00")
}

// mod97 folds the IBAN character expansion (A=10 .. Z=35) into a running
// remainder so arbitrarily long identifiers never overflow.
func mod97(s string) int {
	rem := 0
	for _, r := range strings.ToUpper(s) {
		switch {
		case r >= '0' && r <= '9':
			rem = (rem*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			rem = (rem*100 + int(r-'A') + 10) % 97
		}
	}
	return rem
}
