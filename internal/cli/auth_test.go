package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/researchhub/hubcli/internal/models"
)

func stubInputs(t *testing.T, lines []string, password string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) (string, error) { return password, nil }
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

type fakeAuth struct {
	regUsername, regEmail, regPass string
	regErr                         error

	loginEmail, loginPass string
	loginErr              error

	meUser *models.User
	meErr  error

	logoutCalled bool
	logoutErr    error
}

func (f *fakeAuth) Register(_ context.Context, username, email, password string) (*models.User, error) {
	f.regUsername, f.regEmail, f.regPass = username, email, password
	if f.regErr != nil {
		return nil, f.regErr
	}
	return &models.User{Username: username, Email: email}, nil
}

func (f *fakeAuth) Login(_ context.Context, email, password string) error {
	f.loginEmail, f.loginPass = email, password
	return f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeAuth) Me(context.Context) (*models.User, error) {
	return f.meUser, f.meErr
}

func TestRegister_Success(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice", "alice@example.org"}, "secret")

	f := &fakeAuth{}
	a := &App{auth: f}

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUsername != "alice" || f.regEmail != "alice@example.org" || f.regPass != "secret" {
		t.Fatalf("Register inputs mismatch: %+v", f)
	}
	if a.user == nil || a.user.Email != "alice@example.org" {
		t.Fatalf("session identity not set: %+v", a.user)
	}
}

func TestRegister_BackendError(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"bob", "bob@example.org"}, "pw")

	f := &fakeAuth{regErr: errors.New("email taken")}
	a := &App{auth: f}

	if err := a.Register(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if a.user != nil {
		t.Fatalf("user set despite failure: %+v", a.user)
	}
}

func TestLogin_SetsIdentityFromMe(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "secret")

	f := &fakeAuth{meUser: &models.User{Username: "alice", Email: "alice@example.org"}}
	a := &App{auth: f}

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginEmail != "alice@example.org" || f.loginPass != "secret" {
		t.Fatalf("credentials mismatch: %+v", f)
	}
	if a.user == nil || a.user.Username != "alice" {
		t.Fatalf("identity not captured: %+v", a.user)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	silencePrintln(t)
	stubInputs(t, []string{"alice@example.org"}, "wrong")

	f := &fakeAuth{loginErr: errors.New("invalid credentials")}
	a := &App{auth: f}

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if a.user != nil {
		t.Fatalf("user set despite failure: %+v", a.user)
	}
}

func TestLogout_ClearsSessionAndOpenRepo(t *testing.T) {
	silencePrintln(t)

	f := &fakeAuth{}
	a := &App{
		auth:     f,
		user:     &models.User{Email: "alice@example.org"},
		openRepo: &models.Repository{ID: "r1", Name: "Thesis"},
	}

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatal("gateway Logout not called")
	}
	if a.user != nil || a.openRepo != nil {
		t.Fatalf("session not fully cleared: user=%+v repo=%+v", a.user, a.openRepo)
	}
}
