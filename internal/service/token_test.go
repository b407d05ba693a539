package service

import (
	"strings"
	"testing"
)

func TestNewDeleteToken_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		tok, err := newDeleteToken()
		if err != nil {
			t.Fatalf("mint token: %v", err)
		}
		if _, dup := seen[tok]; dup {
			t.Fatalf("duplicate token after %d mints: %q", i, tok)
		}
		seen[tok] = struct{}{}
	}
}

func TestNewDeleteToken_Shape(t *testing.T) {
	tok, err := newDeleteToken()
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	// 16 bytes random en base32 son 26 caracteres; el prefijo temporal suma más.
	if len(tok) < 26 {
		t.Fatalf("token too short: %d chars", len(tok))
	}
	if tok != strings.ToLower(tok) {
		t.Fatalf("expected lowercase token, got %q", tok)
	}
	for _, r := range tok {
		if (r < '0' || r > '9') && (r < 'a' || r > 'z') {
			t.Fatalf("unexpected character %q in token %q", r, tok)
		}
	}
}
