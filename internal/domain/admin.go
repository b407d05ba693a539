package domain

import "time"

// AdminUser es la cuenta del dueño del sitio; es la única identidad real
// del sistema (los visitantes del guestbook no tienen cuenta).
type AdminUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
