package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskhub/internal/core/apperr"
	"taskhub/internal/core/auth"
	"taskhub/internal/core/cache"
	"taskhub/internal/domain"
	"taskhub/pkg/utils"
)

const profileCacheTTL = 5 * time.Minute

type PublicUser struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type UserService struct {
	repo       domain.UserRepository
	jwter      *auth.JWTer
	cache      *cache.Cache // 可为 nil（未配置 redis 时直连库）
	bcryptCost int
}

func NewUserService(repo domain.UserRepository, jwter *auth.JWTer, c *cache.Cache, bcryptCost int) *UserService {
	return &UserService{repo: repo, jwter: jwter, cache: c, bcryptCost: bcryptCost}
}

func (s *UserService) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || in.Password == "" || name == "" {
		return nil, apperr.Validation("email, password and name are required")
	}

	u := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: utils.HashPassword(in.Password, s.bcryptCost),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, apperr.Internal("create user failed", err)
	}

	tok, err := s.jwter.Issue(u.ID, u.Email)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &AuthResult{Token: tok, User: publicView(u)}, nil
}

// Login 未注册邮箱与密码错误统一返回 invalid credentials，避免枚举
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	tok, err := s.jwter.Issue(u.ID, u.Email)
	if err != nil {
		return nil, apperr.Internal("issue token failed", err)
	}
	return &AuthResult{Token: tok, User: publicView(u)}, nil
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*PublicUser, error) {
	if s.cache != nil {
		pu, err := cache.GetOrLoadJSON[PublicUser](s.cache, ctx, profileKey(userID), profileCacheTTL,
			func(ctx context.Context) (*PublicUser, error) {
				return s.loadProfile(ctx, userID)
			})
		if err == nil && pu != nil {
			return pu, nil
		}
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		// redis 故障不挡读，回源直查
	}
	return s.loadProfile(ctx, userID)
}

func (s *UserService) loadProfile(ctx context.Context, userID uint) (*PublicUser, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	pu := publicView(u)
	return &pu, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*PublicUser, error) {
	fields := map[string]any{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperr.Validation("name must not be empty")
		}
		fields["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return nil, apperr.Validation("email must not be empty")
		}
		fields["email"] = strings.TrimSpace(*in.Email)
	}
	if len(fields) == 0 {
		return nil, apperr.Validation("at least one of name, email is required")
	}

	if err := s.repo.UpdateFields(ctx, userID, fields); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperr.Conflict("email already registered")
		}
		return nil, apperr.Internal("update user failed", err)
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, profileKey(userID))
	}
	return s.loadProfile(ctx, userID)
}

func publicView(u *domain.User) PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func profileKey(userID uint) string { return fmt.Sprintf("user:profile:%d", userID) }
