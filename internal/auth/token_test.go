package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSubject(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "empty",
			token: "",
			want:  "",
		},
		{
			name:  "opaque token",
			token: "not-a-jwt",
			want:  "",
		},
		{
			name:  "subject claim",
			token: signed(t, jwt.MapClaims{"sub": "user-42", "iat": time.Now().Unix()}),
			want:  "user-42",
		},
		{
			name:  "expired token still yields subject",
			token: signed(t, jwt.MapClaims{"sub": "user-7", "exp": time.Now().Add(-time.Hour).Unix()}),
			want:  "user-7",
		},
		{
			name:  "numeric subject ignored",
			token: signed(t, jwt.MapClaims{"sub": 42}),
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subject(tt.token); got != tt.want {
				t.Errorf("Subject() = %q, want %q", got, tt.want)
			}
		})
	}
}
