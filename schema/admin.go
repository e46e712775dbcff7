package schema

import "time"

const (
	AdminAccountCollection = "adminAccounts"
)

// AdminAccount is the administrator credential record. It is seeded once at
// startup from configuration and mutated only by the change-password API.
type AdminAccount struct {
	Email        string    `json:"email" bson:"email"`
	PasswordHash []byte    `json:"-" bson:"password_hash"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
