package solana

import (
	"errors"
	"testing"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "jup mint", address: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCN"},
		{name: "wsol mint", address: "So11111111111111111111111111111111111111112"},
		{name: "system program", address: "11111111111111111111111111111111"},
		{name: "empty", address: "", wantErr: true},
		{name: "invalid base58 character", address: "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl", wantErr: true},
		{name: "too short", address: "abc", wantErr: true},
		{name: "too long", address: "JUPyiwrYJFskUPiHa7hkeR8VUtAeFoSYbKedZNsDvCNJUPyiwrYJFsk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.address)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.address)
				}
				if !errors.Is(err, ErrInvalidAddress) {
					t.Errorf("expected ErrInvalidAddress, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
