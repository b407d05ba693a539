package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

// GuestbookService encapsula el núcleo del guestbook: alta pública de
// mensajes, listado sin tokens, y borrado autorizado por capability token.
// No hay cuentas de visitante; poseer el token es la autorización.
type GuestbookService struct {
	repo repository.MessageRepository
}

var (
	ErrGuestbookNotConfigured = errors.New("guestbook service not configured")
	ErrMessageInvalidInput    = errors.New("message invalid input")
	ErrMessageNotFound        = errors.New("message not found")
	ErrInvalidDeleteToken     = errors.New("invalid delete token")
)

// Topes livianos para inserts públicos; la validación de formato queda en
// el cliente, igual que en el resto del sitio.
const (
	maxNameLen  = 200
	maxEmailLen = 200
	maxBodyLen  = 2000
)

func NewGuestbookService(repo repository.MessageRepository) *GuestbookService {
	return &GuestbookService{repo: repo}
}

// CreateResult es lo único que devuelve el alta: el id y el token de
// borrado, que no vuelve a exponerse nunca.
type CreateResult struct {
	MessageID   string
	DeleteToken string
}

// Create valida los campos obligatorios, acuña el delete token y persiste
// el mensaje.
func (s *GuestbookService) Create(ctx context.Context, name, email, body string) (CreateResult, error) {
	if s == nil || s.repo == nil {
		return CreateResult{}, ErrGuestbookNotConfigured
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	body = strings.TrimSpace(body)

	if name == "" || email == "" || body == "" {
		return CreateResult{}, ErrMessageInvalidInput
	}
	if len(name) > maxNameLen || len(email) > maxEmailLen || len(body) > maxBodyLen {
		return CreateResult{}, ErrMessageInvalidInput
	}

	token, err := newDeleteToken()
	if err != nil {
		return CreateResult{}, err
	}

	msg := domain.GuestMessage{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Body:        body,
		DeleteToken: token,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return CreateResult{}, err
	}

	return CreateResult{MessageID: msg.ID, DeleteToken: token}, nil
}

// List devuelve los mensajes más recientes primero. El repositorio no
// selecciona el delete_token, pero se limpia igual por si la
// implementación lo trae.
func (s *GuestbookService) List(ctx context.Context) ([]domain.GuestMessage, error) {
	if s == nil || s.repo == nil {
		return nil, ErrGuestbookNotConfigured
	}
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range messages {
		messages[i].DeleteToken = ""
	}
	return messages, nil
}

// Delete es el gate de autorización: busca el mensaje, compara el token
// presentado contra el almacenado en tiempo constante y recién entonces
// borra. Un token que no coincide deja el mensaje intacto.
func (s *GuestbookService) Delete(ctx context.Context, id, token string) error {
	if s == nil || s.repo == nil {
		return ErrGuestbookNotConfigured
	}

	id = strings.TrimSpace(id)
	token = strings.TrimSpace(token)
	if id == "" {
		return ErrMessageNotFound
	}

	msg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrMessageNotFound
		}
		return err
	}

	if msg.DeleteToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(msg.DeleteToken)) != 1 {
		return ErrInvalidDeleteToken
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		// Otro borrado del mismo id ganó la carrera.
		return ErrMessageNotFound
	}
	return nil
}
