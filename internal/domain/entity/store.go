package entity

// Store is the store profile printed on receipt headers.
type Store struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	TypeOfBusiness   string `json:"typebusiness,omitempty"`
	Website          string `json:"link,omitempty"`
	SubscriptionPlan string `json:"subscriptionplan,omitempty"`
	ExpiryDate       string `json:"expirydate,omitempty"`
}
