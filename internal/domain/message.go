package domain

import "time"

// GuestMessage es una entrada pública del guestbook. El DeleteToken se
// entrega una única vez en la respuesta de creación; nunca se serializa
// en lecturas.
type GuestMessage struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Body        string    `json:"message"`
	DeleteToken string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
