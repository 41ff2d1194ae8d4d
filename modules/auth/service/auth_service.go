package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"roadwise/core/cache"
	"roadwise/core/config"
	"roadwise/core/errors"
	"roadwise/core/logger"
	"roadwise/core/utils"
	"roadwise/modules/auth/dto"
	"roadwise/modules/auth/entity"
	"roadwise/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthStateKeyPrefix = "auth:oauth_state:"
	oauthStateTTL       = 10 * time.Minute
	googleUserInfoURL   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// AuthService handles staff authentication: password login, token
// lifecycle and Google sign-in.
type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.ICache
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError)
	Logout(ctx context.Context, token string) *errors.AppError
	Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)

	GoogleLoginURL(ctx context.Context) (*dto.GoogleLoginURLResponse, *errors.AppError)
	GoogleCallback(ctx context.Context, state, code string) (*dto.LoginResponse, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, c cache.ICache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Email and a password of at least 8 characters are required", nil)
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "A user with this email already exists", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = entity.RoleStaff
	}

	created, err := s.repo.CreateUser(ctx, &entity.User{
		Email:        email,
		PasswordHash: &hashed,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
	}

	logger.Info("AuthService:Register:Success", "user_id", created.ID.String(), "email", created.Email)
	resp := dto.ToUserResponse(created)
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, *errors.AppError) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil || user.PasswordHash == nil || !utils.ComparePassword(*user.PasswordHash, req.Password) {
		// Same answer for unknown email and wrong password.
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	return s.issueToken(user)
}

// Logout blacklists the presented token for the remainder of its life.
func (s *AuthService) Logout(ctx context.Context, token string) *errors.AppError {
	claims, err := utils.ValidateAndParseToken(token)
	if err != nil {
		return errors.NewAppError(errors.ErrUnauthorized, "Invalid token", err)
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.BlacklistToken(ctx, token, ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to blacklist token", err)
	}
	return nil
}

func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// ===================== Google sign-in =====================

func (s *AuthService) GoogleLoginURL(ctx context.Context) (*dto.GoogleLoginURLResponse, *errors.AppError) {
	state, err := randomState()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate oauth state", err)
	}

	if err := s.cache.SetJSON(ctx, oauthStateKeyPrefix+state, true, oauthStateTTL); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to store oauth state", err)
	}

	url := s.oauthConfig().AuthCodeURL(state, oauth2.AccessTypeOnline)
	return &dto.GoogleLoginURLResponse{URL: url}, nil
}

func (s *AuthService) GoogleCallback(ctx context.Context, state, code string) (*dto.LoginResponse, *errors.AppError) {
	var seen bool
	hit, err := s.cache.GetJSON(ctx, oauthStateKeyPrefix+state, &seen)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify oauth state", err)
	}
	if !hit {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Unknown or expired oauth state", nil)
	}
	_ = s.cache.Delete(ctx, oauthStateKeyPrefix+state)

	conf := s.oauthConfig()
	token, err := conf.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange:Error:", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Failed to exchange authorization code", err)
	}

	info, err := fetchGoogleUserInfo(ctx, conf, token)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:UserInfo:Error:", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch Google profile", err)
	}

	user, appErr := s.findOrCreateGoogleUser(ctx, info)
	if appErr != nil {
		return nil, appErr
	}
	return s.issueToken(user)
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func fetchGoogleUserInfo(ctx context.Context, conf *oauth2.Config, token *oauth2.Token) (*googleUserInfo, error) {
	client := conf.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Google userinfo returned "+resp.Status, nil)
	}

	var info googleUserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *AuthService) findOrCreateGoogleUser(ctx context.Context, info *googleUserInfo) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up Google account", err)
	}
	if user != nil {
		return user, nil
	}

	// Link an existing password account with the same email.
	email := strings.ToLower(strings.TrimSpace(info.Email))
	user, err = s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user != nil {
		if err := s.repo.LinkGoogleID(ctx, user.ID, info.ID); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to link Google account", err)
		}
		return user, nil
	}

	googleID := info.ID
	created, err := s.repo.CreateUser(ctx, &entity.User{
		Email:    email,
		FullName: info.Name,
		Role:     entity.RoleStaff,
		GoogleID: &googleID,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user from Google profile", err)
	}

	logger.Info("AuthService:GoogleCallback:UserCreated", "user_id", created.ID.String(), "email", created.Email)
	return created, nil
}

func (s *AuthService) issueToken(user *entity.User) (*dto.LoginResponse, *errors.AppError) {
	accessToken, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate token", err)
	}
	return &dto.LoginResponse{
		AccessToken: accessToken,
		User:        dto.ToUserResponse(user),
	}, nil
}

func (s *AuthService) oauthConfig() *oauth2.Config {
	cfg := config.Get()
	return &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func randomState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
