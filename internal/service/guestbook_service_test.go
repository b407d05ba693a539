package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"portfolio-api/internal/domain"
)

type mockMessageRepo struct {
	messages  map[string]domain.GuestMessage
	createErr error
	listErr   error
	getErr    error
	deleteErr error
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{messages: make(map[string]domain.GuestMessage)}
}

func (m *mockMessageRepo) Create(_ context.Context, msg domain.GuestMessage) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.messages[msg.ID] = msg
	return nil
}

func (m *mockMessageRepo) List(_ context.Context) ([]domain.GuestMessage, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]domain.GuestMessage, 0, len(m.messages))
	for _, msg := range m.messages {
		msg.DeleteToken = ""
		out = append(out, msg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *mockMessageRepo) GetByID(_ context.Context, id string) (domain.GuestMessage, error) {
	if m.getErr != nil {
		return domain.GuestMessage{}, m.getErr
	}
	msg, ok := m.messages[id]
	if !ok {
		return domain.GuestMessage{}, pgx.ErrNoRows
	}
	return msg, nil
}

func (m *mockMessageRepo) Delete(_ context.Context, id string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	if _, ok := m.messages[id]; !ok {
		return false, nil
	}
	delete(m.messages, id)
	return true, nil
}

func TestGuestbookCreate_MintsTokenAndPersists(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	result, err := svc.Create(context.Background(), " Alice ", " a@b.com ", " hi ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if result.MessageID == "" || result.DeleteToken == "" {
		t.Fatalf("expected id and token, got %+v", result)
	}

	stored, ok := repo.messages[result.MessageID]
	if !ok {
		t.Fatalf("message not persisted")
	}
	if stored.Name != "Alice" || stored.Email != "a@b.com" || stored.Body != "hi" {
		t.Fatalf("expected trimmed fields, got %+v", stored)
	}
	if stored.DeleteToken != result.DeleteToken {
		t.Fatalf("stored token differs from returned token")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatalf("expected created_at set")
	}
}

func TestGuestbookCreate_RequiredFields(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	cases := [][3]string{
		{"", "a@b.com", "hi"},
		{"Alice", "", "hi"},
		{"Alice", "a@b.com", ""},
		{"   ", "a@b.com", "hi"},
	}
	for i, c := range cases {
		if _, err := svc.Create(context.Background(), c[0], c[1], c[2]); !errors.Is(err, ErrMessageInvalidInput) {
			t.Fatalf("case %d expected ErrMessageInvalidInput, got %v", i, err)
		}
	}
	if len(repo.messages) != 0 {
		t.Fatalf("invalid input must not persist anything")
	}
}

func TestGuestbookCreate_RejectsOversizedBody(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	long := make([]byte, maxBodyLen+1)
	for i := range long {
		long[i] = 'x'
	}
	if _, err := svc.Create(context.Background(), "Alice", "a@b.com", string(long)); !errors.Is(err, ErrMessageInvalidInput) {
		t.Fatalf("expected ErrMessageInvalidInput, got %v", err)
	}
}

func TestGuestbookCreate_DistinctTokens(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		result, err := svc.Create(context.Background(), "Alice", "a@b.com", "hi")
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		if _, dup := seen[result.DeleteToken]; dup {
			t.Fatalf("token reissued at iteration %d", i)
		}
		seen[result.DeleteToken] = struct{}{}
	}
}

func TestGuestbookList_NewestFirstWithoutTokens(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	base := time.Now().UTC()
	for i, name := range []string{"M1", "M2", "M3"} {
		repo.messages[name] = domain.GuestMessage{
			ID:          name,
			Name:        name,
			Email:       "x@y.com",
			Body:        "hola",
			DeleteToken: "secret-" + name,
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
		}
	}

	messages, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, want := range []string{"M3", "M2", "M1"} {
		if messages[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, messages[i].ID)
		}
	}
	for _, msg := range messages {
		if msg.DeleteToken != "" {
			t.Fatalf("list leaked delete token for %s", msg.ID)
		}
	}
}

func TestGuestbookDelete_WrongTokenLeavesMessage(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	result, err := svc.Create(context.Background(), "Bob", "bob@x.com", "hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Delete(context.Background(), result.MessageID, "wrong-token")
	if !errors.Is(err, ErrInvalidDeleteToken) {
		t.Fatalf("expected ErrInvalidDeleteToken, got %v", err)
	}
	if _, ok := repo.messages[result.MessageID]; !ok {
		t.Fatalf("message must survive a rejected delete")
	}
}

func TestGuestbookDelete_SingleUse(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	result, err := svc.Create(context.Background(), "Bob", "bob@x.com", "hello")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(context.Background(), result.MessageID, result.DeleteToken); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if _, ok := repo.messages[result.MessageID]; ok {
		t.Fatalf("message still present after delete")
	}

	err = svc.Delete(context.Background(), result.MessageID, result.DeleteToken)
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("second delete expected ErrMessageNotFound, got %v", err)
	}
}

func TestGuestbookDelete_UnknownID(t *testing.T) {
	repo := newMockMessageRepo()
	svc := NewGuestbookService(repo)

	err := svc.Delete(context.Background(), "no-such-id", "whatever")
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound, got %v", err)
	}
}

func TestGuestbookDelete_LostRaceMapsToNotFound(t *testing.T) {
	repo := newMockMessageRepo()

	// GetByID ve el mensaje pero el delete llega después que otro request
	// ya lo borró.
	repo.messages["m1"] = domain.GuestMessage{ID: "m1", DeleteToken: "tok", CreatedAt: time.Now().UTC()}
	raced := &racingMessageRepo{mockMessageRepo: repo}

	err := NewGuestbookService(raced).Delete(context.Background(), "m1", "tok")
	if !errors.Is(err, ErrMessageNotFound) {
		t.Fatalf("expected ErrMessageNotFound on lost race, got %v", err)
	}
}

type racingMessageRepo struct {
	*mockMessageRepo
}

func (r *racingMessageRepo) Delete(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func TestGuestbookStorageErrorsPropagate(t *testing.T) {
	storeDown := errors.New("store unavailable")

	repo := newMockMessageRepo()
	repo.createErr = storeDown
	if _, err := NewGuestbookService(repo).Create(context.Background(), "A", "a@b.com", "hi"); !errors.Is(err, storeDown) {
		t.Fatalf("create: expected storage error, got %v", err)
	}

	repo = newMockMessageRepo()
	repo.listErr = storeDown
	if _, err := NewGuestbookService(repo).List(context.Background()); !errors.Is(err, storeDown) {
		t.Fatalf("list: expected storage error, got %v", err)
	}

	repo = newMockMessageRepo()
	repo.getErr = storeDown
	if err := NewGuestbookService(repo).Delete(context.Background(), "m1", "tok"); !errors.Is(err, storeDown) {
		t.Fatalf("delete: expected storage error, got %v", err)
	}
}
