package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/educahub/educahub-lambda/internal/auth"
	"github.com/educahub/educahub-lambda/internal/config"
)

const (
	AccessTokenDuration  = time.Hour
	RefreshTokenDuration = 30 * 24 * time.Hour
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUnauthorized = errors.New("unauthorized")
)

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type UserService interface {
	GoogleLogin(ctx context.Context, code string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo        UserRepository
	oauthConfig *oauth2.Config
}

func NewService(repo UserRepository) UserService {
	return &userService{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

func (s *userService) GoogleLogin(ctx context.Context, code string) (*User, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Falha ao trocar o código OAuth do Google")
		return nil, ErrUnauthorized
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Falha ao buscar os dados do usuário no Google")
		return nil, err
	}

	u, err := s.repo.FindByGoogleID(info.ID)
	if err != nil {
		return nil, err
	}

	if u == nil {
		u = &User{
			ID:        uuid.New(),
			GoogleID:  info.ID,
			Name:      info.Name,
			Email:     info.Email,
			AvatarURL: info.Picture,
			Role:      roleForEmail(info.Email),
		}
		if err := s.storeRefreshToken(u, token); err != nil {
			return nil, err
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Falha ao criar usuário")
			return nil, err
		}
		log.Info("Novo usuário criado via Google OAuth", "user_id", u.ID.String())
		return u, nil
	}

	u.Name = info.Name
	u.AvatarURL = info.Picture
	if err := s.storeRefreshToken(u, token); err != nil {
		return nil, err
	}
	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Falha ao atualizar usuário")
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	u, err := s.repo.FindByID(parsed)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *userService) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.ID == "" {
		return nil, errors.New("empty userinfo response")
	}
	return &info, nil
}

func (s *userService) storeRefreshToken(u *User, token *oauth2.Token) error {
	if token.RefreshToken == "" {
		return nil
	}
	encrypted, err := config.Encrypt(token.RefreshToken)
	if err != nil {
		return err
	}
	u.RefreshToken = encrypted
	return nil
}

// roleForEmail promotes the addresses listed in ADMIN_EMAILS; everyone else
// signs in as an educator.
func roleForEmail(email string) string {
	for _, admin := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if admin != "" && strings.EqualFold(strings.TrimSpace(admin), email) {
			return auth.RoleAdmin
		}
	}
	return auth.RoleEducator
}
