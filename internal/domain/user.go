package domain

import "time"

// User is a login account. OTPHash holds the bcrypt hash of the last
// issued one-time password; it is cleared on successful login.
type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	Role           Role       `json:"role"`
	OTPHash        string     `json:"-"`
	OTPRequestedAt *time.Time `json:"-"`
	CreatedOn      time.Time  `json:"created_on"`
}
