package service

import (
	"errors"
	"testing"
	"time"

	"github.com/mikeconel/windrush-insights/config"
	"github.com/mikeconel/windrush-insights/internal/dto"
)

func newAuthForTest(password string) AuthService {
	cfg := &config.Config{}
	cfg.Auth.AdminPassword = password
	cfg.Auth.JWTSecret = "test-signing-secret"
	return NewAuthService(cfg)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthForTest("letmein")

	cases := []string{"", "wrong", "LETMEIN", "letmein "}
	for _, password := range cases {
		if _, err := svc.Login(dto.LoginDTO{Password: password}); !errors.Is(err, ErrBadCredentials) {
			t.Errorf("password %q: got %v, want ErrBadCredentials", password, err)
		}
	}
}

func TestLoginNoPasswordConfiguredLocksOut(t *testing.T) {
	svc := newAuthForTest("")

	if _, err := svc.Login(dto.LoginDTO{Password: ""}); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("empty configured password must reject every login, got %v", err)
	}
}

func TestLoginVerifyRoundtrip(t *testing.T) {
	svc := newAuthForTest("letmein")

	token, err := svc.Login(dto.LoginDTO{Password: "letmein"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token.Token == "" {
		t.Fatal("expected a signed token")
	}
	if !token.ExpiresAt.After(time.Now()) {
		t.Errorf("token already expired at %v", token.ExpiresAt)
	}

	sessionID, err := svc.Verify(token.Token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if sessionID == "" {
		t.Error("expected a session id")
	}
}

func TestLoginsGetDistinctSessions(t *testing.T) {
	svc := newAuthForTest("letmein")

	first, err := svc.Login(dto.LoginDTO{Password: "letmein"})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	second, err := svc.Login(dto.LoginDTO{Password: "letmein"})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}

	firstID, _ := svc.Verify(first.Token)
	secondID, _ := svc.Verify(second.Token)
	if firstID == secondID {
		t.Error("two logins must not share a session id")
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := newAuthForTest("letmein")
	token, err := svc.Login(dto.LoginDTO{Password: "letmein"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	tampered := token.Token[:len(token.Token)-2] + "xx"
	if _, err := svc.Verify(tampered); err == nil {
		t.Error("tampered token verified")
	}
	if _, err := svc.Verify("not-a-jwt"); err == nil {
		t.Error("garbage token verified")
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	issuer := newAuthForTest("letmein")
	token, err := issuer.Login(dto.LoginDTO{Password: "letmein"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	cfg := &config.Config{}
	cfg.Auth.AdminPassword = "letmein"
	cfg.Auth.JWTSecret = "a-different-secret"
	verifier := NewAuthService(cfg)

	if _, err := verifier.Verify(token.Token); err == nil {
		t.Error("token signed with another secret verified")
	}
}
