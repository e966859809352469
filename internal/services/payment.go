package services

import (
	"math"

	"github.com/google/uuid"
)

// IntentCreator is the payment provider boundary: given an amount in minor
// units it hands back a client secret the frontend completes payment with.
type IntentCreator interface {
	CreateIntent(amountMinorUnits int64, currency string) (clientSecret string, err error)
}

// MinorUnits converts a decimal currency amount to integer minor units.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// LocalIntentCreator is the development stand-in for the real provider. It
// never fails and issues opaque uuid-based secrets.
type LocalIntentCreator struct{}

func (LocalIntentCreator) CreateIntent(amountMinorUnits int64, currency string) (string, error) {
	return "pi_" + uuid.NewString(), nil
}
