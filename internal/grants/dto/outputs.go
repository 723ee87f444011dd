package dto

import "time"

// GrantBag is a signed grant token and when it stops working
type GrantBag struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type GrantOutput struct {
	Body GrantBag
}
