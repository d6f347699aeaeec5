package pagination

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCursorRoundTrip(t *testing.T) {
	cursor := Cursor{
		ID:        uuid.New(),
		CreatedAt: time.Date(2024, 3, 4, 10, 30, 15, 0, time.UTC),
	}

	decoded, err := DecodeCursor(cursor.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded == nil || decoded.ID != cursor.ID || !decoded.CreatedAt.Equal(cursor.CreatedAt) {
		t.Fatalf("decoded cursor mismatch: %+v", decoded)
	}
}

func TestDecodeCursorRejectsForeignValues(t *testing.T) {
	tests := map[string]string{
		"not base64":       "bad!=base64",
		"not json":         base64.RawURLEncoding.EncodeToString([]byte("not-json")),
		"missing position": base64.RawURLEncoding.EncodeToString([]byte(`{"id":"00000000-0000-0000-0000-000000000000"}`)),
		"plain word":       "abc",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeCursor(in); !errors.Is(err, ErrInvalidCursor) {
				t.Fatalf("DecodeCursor(%q) error = %v, want ErrInvalidCursor", in, err)
			}
		})
	}
}

func TestDecodeCursorEmpty(t *testing.T) {
	cursor, err := DecodeCursor("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cursor != nil {
		t.Fatalf("expected nil cursor, got %+v", cursor)
	}
}

func TestNormalizeLimit(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, DefaultLimit},
		{-10, DefaultLimit},
		{MaxLimit + 1, MaxLimit},
		{50, 50},
	}

	for _, tt := range tests {
		if got := NormalizeLimit(tt.in); got != tt.want {
			t.Fatalf("NormalizeLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
