package service

import (
	"context"
	"testing"
	"time"

	"roadwise/core/config"
	coreerrors "roadwise/core/errors"
	"roadwise/core/utils"
	"roadwise/modules/auth/dto"
	"roadwise/modules/auth/entity"

	"github.com/google/uuid"
)

type fakeAuthRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeAuthRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.ID = uuid.New()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeAuthRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeAuthRepo) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	for _, u := range f.users {
		if u.GoogleID != nil && *u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) LinkGoogleID(ctx context.Context, id uuid.UUID, googleID string) error {
	f.users[id].GoogleID = &googleID
	return nil
}

type fakeCache struct {
	store       map[string]any
	blacklisted map[string]bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]any), blacklisted: make(map[string]bool)}
}

func (f *fakeCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	_, ok := f.store[key]
	return ok, nil
}

func (f *fakeCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.store[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.store, k)
	}
	return nil
}

func (f *fakeCache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	f.blacklisted[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return f.blacklisted[token], nil
}

func newAuthService(t *testing.T) (AuthServiceInterface, *fakeAuthRepo, *fakeCache) {
	t.Helper()
	if _, err := config.Load(); err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	repo := newFakeAuthRepo()
	c := newFakeCache()
	return NewAuthService(repo, c), repo, c
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a staff account", func(t *testing.T) {
		svc, repo, _ := newAuthService(t)

		resp, appErr := svc.Register(ctx, &dto.RegisterRequest{
			Email:    "Dispatch@Roadwise.Test",
			Password: "supersecret",
			FullName: "Dana Miles",
		})
		if appErr != nil {
			t.Fatalf("Register: %v", appErr)
		}
		if resp.Email != "dispatch@roadwise.test" {
			t.Errorf("email = %q, want lowercased", resp.Email)
		}
		if resp.Role != entity.RoleStaff {
			t.Errorf("role = %q, want staff default", resp.Role)
		}

		stored, _ := repo.GetByEmail(ctx, "dispatch@roadwise.test")
		if stored == nil || stored.PasswordHash == nil {
			t.Fatal("stored user must carry a password hash")
		}
		if *stored.PasswordHash == "supersecret" {
			t.Error("password must be hashed, not stored raw")
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		_, appErr := svc.Register(ctx, &dto.RegisterRequest{Email: "a@b.test", Password: "short"})
		if appErr == nil || appErr.Code != coreerrors.ErrInvalidInput {
			t.Errorf("expected INVALID_INPUT, got %v", appErr)
		}
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		req := &dto.RegisterRequest{Email: "a@b.test", Password: "supersecret"}
		if _, appErr := svc.Register(ctx, req); appErr != nil {
			t.Fatal(appErr)
		}
		_, appErr := svc.Register(ctx, &dto.RegisterRequest{Email: "A@B.TEST", Password: "supersecret"})
		if appErr == nil || appErr.Code != coreerrors.ErrAlreadyExists {
			t.Errorf("expected ALREADY_EXISTS, got %v", appErr)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, svc AuthServiceInterface) {
		t.Helper()
		if _, appErr := svc.Register(ctx, &dto.RegisterRequest{
			Email: "dispatch@roadwise.test", Password: "supersecret",
		}); appErr != nil {
			t.Fatal(appErr)
		}
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		svc, _, _ := newAuthService(t)
		register(t, svc)

		resp, appErr := svc.Login(ctx, &dto.LoginRequest{Email: "dispatch@roadwise.test", Password: "supersecret"})
		if appErr != nil {
			t.Fatalf("Login: %v", appErr)
		}
		if resp.AccessToken == "" {
			t.Fatal("expected an access token")
		}

		claims, err := utils.ValidateAndParseToken(resp.AccessToken)
		if err != nil {
			t.Fatalf("issued token does not validate: %v", err)
		}
		if claims.Email != "dispatch@roadwise.test" {
			t.Errorf("token email = %q", claims.Email)
		}
	})

	t.Run("unknown email and wrong password get the same answer", func(t *testing.T) {
		svc, _, _ := newAuthService(t)
		register(t, svc)

		_, unknownErr := svc.Login(ctx, &dto.LoginRequest{Email: "nobody@roadwise.test", Password: "supersecret"})
		_, wrongErr := svc.Login(ctx, &dto.LoginRequest{Email: "dispatch@roadwise.test", Password: "wrong"})

		for _, appErr := range []*coreerrors.AppError{unknownErr, wrongErr} {
			if appErr == nil || appErr.Code != coreerrors.ErrUnauthorized {
				t.Fatalf("expected UNAUTHORIZED, got %v", appErr)
			}
		}
		if unknownErr.Message != wrongErr.Message {
			t.Errorf("messages differ: %q vs %q", unknownErr.Message, wrongErr.Message)
		}
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, _, c := newAuthService(t)

	if _, appErr := svc.Register(ctx, &dto.RegisterRequest{
		Email: "dispatch@roadwise.test", Password: "supersecret",
	}); appErr != nil {
		t.Fatal(appErr)
	}
	login, appErr := svc.Login(ctx, &dto.LoginRequest{Email: "dispatch@roadwise.test", Password: "supersecret"})
	if appErr != nil {
		t.Fatal(appErr)
	}

	if appErr := svc.Logout(ctx, login.AccessToken); appErr != nil {
		t.Fatalf("Logout: %v", appErr)
	}
	blacklisted, _ := c.IsTokenBlacklisted(ctx, login.AccessToken)
	if !blacklisted {
		t.Error("logged-out token must be blacklisted")
	}

	if appErr := svc.Logout(ctx, "garbage-token"); appErr == nil || appErr.Code != coreerrors.ErrUnauthorized {
		t.Errorf("expected UNAUTHORIZED for a garbage token, got %v", appErr)
	}
}

func TestMe(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(t)

	created, appErr := svc.Register(ctx, &dto.RegisterRequest{
		Email: "dispatch@roadwise.test", Password: "supersecret", FullName: "Dana Miles",
	})
	if appErr != nil {
		t.Fatal(appErr)
	}

	me, appErr := svc.Me(ctx, uuid.MustParse(created.ID))
	if appErr != nil {
		t.Fatalf("Me: %v", appErr)
	}
	if me.FullName != "Dana Miles" {
		t.Errorf("full name = %q", me.FullName)
	}

	if _, appErr := svc.Me(ctx, uuid.New()); appErr == nil || appErr.Code != coreerrors.ErrNotFound {
		t.Errorf("expected NOT_FOUND, got %v", appErr)
	}
}
