package enum

import (
	"encoding/json"
	"fmt"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod int

const (
	PaymentMethodCash  PaymentMethod = 0
	PaymentMethodMpesa PaymentMethod = 1
	PaymentMethodCard  PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	switch m {
	case PaymentMethodMpesa:
		return "mpesa"
	case PaymentMethodCard:
		return "card"
	default:
		return "cash"
	}
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParsePaymentMethod maps a wire value to a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch s {
	case "cash":
		return PaymentMethodCash, nil
	case "mpesa":
		return PaymentMethodMpesa, nil
	case "card":
		return PaymentMethodCard, nil
	default:
		return PaymentMethodCash, fmt.Errorf("unknown payment method %q", s)
	}
}
