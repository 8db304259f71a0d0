package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Vishal-V-D/smart-hire-backend-sub000/internal/domain"
)

func TestLanguageID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		language string
		id       int
		ok       bool
	}{
		{language: "python", id: 71, ok: true},
		{language: "Python", id: 71, ok: true},
		{language: " JAVA ", id: 62, ok: true},
		{language: "javascript", id: 63, ok: true},
		{language: "cpp", id: 54, ok: true},
		{language: "C++", id: 54, ok: true},
		{language: "c", id: 50, ok: true},
		{language: "go", id: 60, ok: true},
		{language: "rust", ok: false},
		{language: "", ok: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.language, func(t *testing.T) {
			t.Parallel()
			id, ok := domain.LanguageID(tt.language)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.id, id)
			}
		})
	}
}
