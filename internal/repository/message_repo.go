package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-api/internal/domain"
)

// MessageRepository define el contrato de persistencia para mensajes del guestbook.
type MessageRepository interface {
	Create(ctx context.Context, msg domain.GuestMessage) error
	List(ctx context.Context) ([]domain.GuestMessage, error)
	GetByID(ctx context.Context, id string) (domain.GuestMessage, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PgMessageRepository implementa MessageRepository usando pgxpool.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

func (r *PgMessageRepository) Create(ctx context.Context, msg domain.GuestMessage) error {
	const query = `
		INSERT INTO guest_messages (id, name, email, body, delete_token, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.Name,
		msg.Email,
		msg.Body,
		msg.DeleteToken,
		msg.CreatedAt,
	)
	return err
}

func (r *PgMessageRepository) List(ctx context.Context) ([]domain.GuestMessage, error) {
	const query = `
		SELECT id, name, email, body, created_at
		FROM guest_messages
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.GuestMessage
	for rows.Next() {
		var msg domain.GuestMessage
		// El delete_token no se selecciona: ninguna lectura lo expone.
		err = rows.Scan(
			&msg.ID,
			&msg.Name,
			&msg.Email,
			&msg.Body,
			&msg.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *PgMessageRepository) GetByID(ctx context.Context, id string) (domain.GuestMessage, error) {
	const query = `
		SELECT id, name, email, body, delete_token, created_at
		FROM guest_messages
		WHERE id = $1
	`
	var msg domain.GuestMessage
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Body,
		&msg.DeleteToken,
		&msg.CreatedAt,
	)
	if err != nil {
		return domain.GuestMessage{}, err
	}
	return msg, nil
}

// Delete borra por id y reporta si existía la fila. Con dos borrados
// concurrentes del mismo id exactamente uno observa true.
func (r *PgMessageRepository) Delete(ctx context.Context, id string) (bool, error) {
	const query = `DELETE FROM guest_messages WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
