package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskhub/internal/core/apperr"
	"taskhub/internal/core/auth"
	"taskhub/internal/domain"
)

type fakeUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	for _, e := range f.users {
		if e.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	f.nextID++
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	u, ok := f.users[id]
	if !ok {
		return nil
	}
	if email, ok := fields["email"].(string); ok {
		for oid, o := range f.users {
			if oid != id && o.Email == email {
				return domain.ErrEmailTaken
			}
		}
		u.Email = email
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	u.UpdatedAt = time.Now()
	return nil
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected apperr, got %v", err)
	}
	return ae.Status
}

func newUserService(repo domain.UserRepository) (*UserService, *auth.JWTer) {
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "taskhub", TTL: time.Hour}
	return NewUserService(repo, jwter, nil, bcrypt.MinCost), jwter
}

func TestSignupIssuesVerifiableToken(t *testing.T) {
	svc, jwter := newUserService(newFakeUserRepo())

	out, err := svc.Signup(context.Background(), SignupInput{Email: "a@x.com", Password: "p1", Name: "A"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if out.User.ID == 0 {
		t.Fatal("expected generated user id")
	}
	if out.User.Email != "a@x.com" || out.User.Name != "A" {
		t.Fatalf("unexpected public view: %+v", out.User)
	}
	claims, err := jwter.Parse(out.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	uid, _ := claims.UserID()
	if uid != out.User.ID {
		t.Fatalf("token sub %d does not match user %d", uid, out.User.ID)
	}
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newUserService(newFakeUserRepo())
	for _, in := range []SignupInput{
		{Password: "p", Name: "A"},
		{Email: "a@x.com", Name: "A"},
		{Email: "a@x.com", Password: "p"},
	} {
		_, err := svc.Signup(context.Background(), in)
		if statusOf(t, err) != http.StatusBadRequest {
			t.Fatalf("expected 400 for %+v, got %v", in, err)
		}
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(newFakeUserRepo())
	if _, err := svc.Signup(context.Background(), SignupInput{Email: "a@x.com", Password: "p1", Name: "A"}); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(context.Background(), SignupInput{Email: "a@x.com", Password: "other", Name: "B"})
	if statusOf(t, err) != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}

func TestLoginAfterSignup(t *testing.T) {
	svc, jwter := newUserService(newFakeUserRepo())
	if _, err := svc.Signup(context.Background(), SignupInput{Email: "a@x.com", Password: "p1", Name: "A"}); err != nil {
		t.Fatalf("signup: %v", err)
	}
	out, err := svc.Login(context.Background(), "a@x.com", "p1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := jwter.Parse(out.Token); err != nil {
		t.Fatalf("parse login token: %v", err)
	}
}

func TestLoginRejectsUniformly(t *testing.T) {
	svc, _ := newUserService(newFakeUserRepo())
	if _, err := svc.Signup(context.Background(), SignupInput{Email: "a@x.com", Password: "p1", Name: "A"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, errUnknown := svc.Login(context.Background(), "nobody@x.com", "p1")
	_, errWrongPw := svc.Login(context.Background(), "a@x.com", "bad")

	if statusOf(t, errUnknown) != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %v", errUnknown)
	}
	if statusOf(t, errWrongPw) != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %v", errWrongPw)
	}
	// 两种失败不可区分，防邮箱枚举
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("expected identical messages, got %q vs %q", errUnknown, errWrongPw)
	}
}

func TestProfileNotFound(t *testing.T) {
	svc, _ := newUserService(newFakeUserRepo())
	_, err := svc.Profile(context.Background(), 999)
	if statusOf(t, err) != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	svc, _ := newUserService(repo)
	a, err := svc.Signup(context.Background(), SignupInput{Email: "a@x.com", Password: "p1", Name: "A"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), a.User.ID, UpdateProfileInput{})
	if statusOf(t, err) != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty update, got %v", err)
	}

	name := "Alice"
	u, err := svc.UpdateProfile(context.Background(), a.User.ID, UpdateProfileInput{Name: &name})
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if u.Name != "Alice" || u.Email != "a@x.com" {
		t.Fatalf("expected name-only update, got %+v", u)
	}
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(newFakeUserRepo())
	a, err := svc.Signup(context.Background(), SignupInput{Email: "a@x.com", Password: "p1", Name: "A"})
	if err != nil {
		t.Fatalf("signup a: %v", err)
	}
	if _, err := svc.Signup(context.Background(), SignupInput{Email: "b@x.com", Password: "p2", Name: "B"}); err != nil {
		t.Fatalf("signup b: %v", err)
	}

	email := "b@x.com"
	_, err = svc.UpdateProfile(context.Background(), a.User.ID, UpdateProfileInput{Email: &email})
	if statusOf(t, err) != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
}
