package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid", "52998224725", true},
		{"valid with zero check digit", "39053344705", true},
		{"valid with leading zeros", "00000000191", true},
		{"wrong second check digit", "52998224724", false},
		{"wrong first check digit", "52998224715", false},
		{"repeated digits", "11111111111", false},
		{"repeated zeros", "00000000000", false},
		{"ten digits", "5299822472", false},
		{"twelve digits", "529982247250", false},
		{"formatted", "529.982.247-25", false},
		{"letters", "5299822472a", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidCPF(tt.cpf))
		})
	}
}

func TestValidCPF_Is_Deterministic(t *testing.T) {
	req := require.New(t)
	for range 3 {
		req.True(ValidCPF("12345678909"))
		req.False(ValidCPF("12345678900"))
	}
}
