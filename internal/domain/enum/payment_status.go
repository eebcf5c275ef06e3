package enum

import (
	"encoding/json"
	"fmt"
)

// PaymentStatus represents whether a sale has been settled
type PaymentStatus int

const (
	PaymentStatusUnpaid PaymentStatus = 0
	PaymentStatusPaid   PaymentStatus = 1
)

// String returns the wire value used by the sales endpoint.
func (s PaymentStatus) String() string {
	if s == PaymentStatusPaid {
		return "paid"
	}
	return "unpaid"
}

func (s PaymentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PaymentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "unpaid":
		*s = PaymentStatusUnpaid
	case "paid":
		*s = PaymentStatusPaid
	default:
		return fmt.Errorf("unknown payment status %q", str)
	}
	return nil
}
