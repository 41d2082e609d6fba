package entity

import "time"

// User is the slice of the platform user the ledger needs: an owner for
// transaction records. Account management lives in the auth service.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// FallbackUsername is resolved or created for webhook payloads that carry
// no user id.
const FallbackUsername = "test_user"
