package domain

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrCardName   = errors.New("cardholder name is required")
	ErrCardNumber = errors.New("card number must have 16 digits")
	ErrCardExpiry = errors.New("expiry must be MM/YY")
	ErrCardCVV    = errors.New("cvv must have at least 3 digits")
)

// PaymentInfo holds the simulated card form. It is validated locally and
// never sent anywhere beyond the order endpoint.
type PaymentInfo struct {
	CardName   string
	CardNumber string
	Expiry     string
	CVV        string
}

// Validate checks the card fields before any backend call is made.
func (p PaymentInfo) Validate() error {
	if strings.TrimSpace(p.CardName) == "" {
		return ErrCardName
	}
	if len(digitsOf(p.CardNumber)) != 16 {
		return ErrCardNumber
	}
	mm, yy, ok := strings.Cut(p.Expiry, "/")
	if !ok || len(mm) != 2 || len(yy) != 2 {
		return ErrCardExpiry
	}
	month, err := strconv.Atoi(mm)
	if err != nil || month < 1 || month > 12 {
		return ErrCardExpiry
	}
	if _, err := strconv.Atoi(yy); err != nil {
		return ErrCardExpiry
	}
	cvv := digitsOf(p.CVV)
	if len(cvv) < 3 || len(cvv) > 4 || cvv != p.CVV {
		return ErrCardCVV
	}
	return nil
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
