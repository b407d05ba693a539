package domain

import "time"

// Project es un item del portfolio administrado por el dueño del sitio.
type Project struct {
	ID         string    `json:"_id"`
	Title      string    `json:"title"`
	ShortDesc  string    `json:"short_desc"`
	LongDesc   string    `json:"long_desc"`
	TechStack  []string  `json:"tech_stack"`
	LinkToDemo string    `json:"link_to_demo,omitempty"`
	ModelType  string    `json:"model_type"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
