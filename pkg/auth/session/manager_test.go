package session

import (
	"context"
	"errors"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/rutamovil/booking-gateway/pkg/auth"
)

type fakeStore struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	default:
		return errors.New("unexpected value type")
	}
	f.ttls[key] = ttl
	return nil
}

func (f *fakeStore) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeStore) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) AccessSessionKey(sessionID string) string {
	return "test:session:" + sessionID
}

func newTestManager(store *fakeStore) *Manager {
	return &Manager{store: store, keyer: fakeKeyer{}, ttl: time.Hour}
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	m := newTestManager(store)

	id := NewSessionID()
	rec := Record{
		UserID:        7,
		Email:         "cliente@example.com",
		Name:          "Ana",
		Role:          auth.RoleCliente,
		UpstreamToken: "core-bearer",
		CreatedAt:     time.Now().UTC(),
	}
	if err := m.Create(ctx, id, rec); err != nil {
		t.Fatalf("create: %v", err)
	}
	if store.ttls["test:session:"+id] != time.Hour {
		t.Fatalf("expected ttl applied, got %v", store.ttls["test:session:"+id])
	}

	got, err := m.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != 7 || got.UpstreamToken != "core-bearer" || got.Role != auth.RoleCliente {
		t.Fatalf("record not preserved: %+v", got)
	}

	ok, err := m.HasSession(ctx, id)
	if err != nil || !ok {
		t.Fatalf("expected active session, ok=%v err=%v", ok, err)
	}

	if err := m.Revoke(ctx, id); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if _, err := m.Get(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after revoke, got %v", err)
	}
	ok, err = m.HasSession(ctx, id)
	if err != nil || ok {
		t.Fatalf("expected revoked session to be gone, ok=%v err=%v", ok, err)
	}
}

func TestCreateRequiresUpstreamToken(t *testing.T) {
	m := newTestManager(newFakeStore())
	err := m.Create(context.Background(), "sess", Record{UserID: 1, Role: auth.RoleCliente})
	if err == nil {
		t.Fatal("expected error when upstream token missing")
	}
}

func TestGetUnknownSession(t *testing.T) {
	m := newTestManager(newFakeStore())
	if _, err := m.Get(context.Background(), "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
