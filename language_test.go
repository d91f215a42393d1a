package oxforddict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSupportedLanguage(t *testing.T) {
	tests := []struct {
		name     string
		language string
		want     bool
	}{
		{
			name:     "English",
			language: "en",
			want:     true,
		},
		{
			name:     "Latvian",
			language: "lv",
			want:     true,
		},
		{
			name:     "Uppercase code",
			language: "EN",
			want:     true,
		},
		{
			name:     "Mixed case code",
			language: "Es",
			want:     true,
		},
		{
			name:     "Unsupported language",
			language: "ru",
			want:     false,
		},
		{
			name:     "Unknown code",
			language: "asd",
			want:     false,
		},
		{
			name:     "Empty string",
			language: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupportedLanguage(tt.language))
		})
	}
}
