package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"courseplatform/services/auth-service/internal/domain"
	"courseplatform/services/auth-service/internal/infrastructure/security"
)

type fakeUserStore struct {
	users map[string]*domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*domain.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.Email]; ok {
		return domain.ErrUserAlreadyExists
	}
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type fakeTokenCache struct {
	tokens map[string]string
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{tokens: make(map[string]string)}
}

func (f *fakeTokenCache) SaveRefresh(_ context.Context, userID, token string) error {
	f.tokens[token] = userID
	return nil
}

func (f *fakeTokenCache) CheckRefresh(_ context.Context, token string) (string, error) {
	if id, ok := f.tokens[token]; ok {
		return id, nil
	}
	return "", domain.ErrInvalidCredentials
}

func (f *fakeTokenCache) DeleteRefresh(_ context.Context, token string) error {
	delete(f.tokens, token)
	return nil
}

func newTestUseCase() (*AuthUseCase, *fakeUserStore, *fakeTokenCache) {
	store := newFakeUserStore()
	cache := newFakeTokenCache()
	uc := NewAuthUseCase(store, cache, security.NewPasswordHasher(), security.NewTokenManager("test-access", "test-refresh"))
	return uc, store, cache
}

func TestRegisterAndLogin(t *testing.T) {
	uc, store, _ := newTestUseCase()

	userID, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret", "")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if userID == "" {
		t.Fatal("Expected non-empty user id")
	}
	if store.users["alice@example.com"].Role != domain.RoleStudent {
		t.Errorf("Expected default role student, got %q", store.users["alice@example.com"].Role)
	}
	if store.users["alice@example.com"].Password == "secret" {
		t.Error("Expected password to be hashed, stored in plain text")
	}

	access, refresh, err := uc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("Expected both tokens, got empty")
	}

	gotID, role, err := uc.ValidateAccess(access)
	if err != nil {
		t.Fatalf("ValidateAccess returned error: %v", err)
	}
	if gotID != userID {
		t.Errorf("Expected subject %s, got %s", userID, gotID)
	}
	if role != domain.RoleStudent {
		t.Errorf("Expected role student in claims, got %q", role)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.Register(context.Background(), "bob", "bob@example.com", "secret", "admin")
	if err != domain.ErrUnknownRole {
		t.Errorf("Expected ErrUnknownRole, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newTestUseCase()
	if _, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret", ""); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	_, _, err := uc.Login(context.Background(), "alice@example.com", "wrong")
	if err != domain.ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshRotatesToken(t *testing.T) {
	uc, _, cache := newTestUseCase()
	if _, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret", domain.RoleOperator); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, refresh, err := uc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	access2, refresh2, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if access2 == "" || refresh2 == "" {
		t.Fatal("Expected rotated tokens, got empty")
	}
	if _, ok := cache.tokens[refresh]; ok {
		t.Error("Expected old refresh token to be revoked")
	}

	// Повторное использование старого токена должно отклоняться
	if _, _, err := uc.Refresh(context.Background(), refresh); err == nil {
		t.Error("Expected error on reused refresh token, got nil")
	}

	_, role, err := uc.ValidateAccess(access2)
	if err != nil {
		t.Fatalf("ValidateAccess returned error: %v", err)
	}
	if role != domain.RoleOperator {
		t.Errorf("Expected role operator to survive refresh, got %q", role)
	}
}

func TestLogoutRevokesRefresh(t *testing.T) {
	uc, _, cache := newTestUseCase()
	if _, err := uc.Register(context.Background(), "alice", "alice@example.com", "secret", ""); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	_, refresh, err := uc.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	if err := uc.Logout(context.Background(), refresh); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if len(cache.tokens) != 0 {
		t.Errorf("Expected empty token cache after logout, got %d entries", len(cache.tokens))
	}
}
