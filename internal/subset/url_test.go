package subset

import (
	"testing"

	"github.com/jonathan/md-icon-localize/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRequestURL(t *testing.T) {
	got := RequestURL("", types.VariantOutlined, []string{"e872", "e8b8"})
	assert.Equal(t,
		"https://fonts.googleapis.com/css2?family=Material+Symbols+Outlined:opsz,wght,FILL,GRAD@20..48,100..700,0..1,-50..200&text=%EE%A1%B2%EE%A2%B8",
		got)
}

func TestRequestURL_SupplementaryPlane(t *testing.T) {
	got := RequestURL("http://fonts.test/css2", types.VariantRounded, []string{"1f4a9"})
	assert.Equal(t,
		"http://fonts.test/css2?family=Material+Symbols+Rounded:opsz,wght,FILL,GRAD@20..48,100..700,0..1,-50..200&text=%F0%9F%92%A9",
		got)
}

func TestRequestURL_NoCodepoints(t *testing.T) {
	got := RequestURL("", types.VariantSharp, nil)
	assert.NotContains(t, got, "&text=")
	assert.Contains(t, got, "family=Material+Symbols+Sharp")
}

func TestRequestURL_SkipsDuplicatesAndInvalid(t *testing.T) {
	got := RequestURL("http://fonts.test/css2", types.VariantOutlined, []string{"e8b8", "nothex", "e8b8"})
	assert.Contains(t, got, "&text=%EE%A2%B8")
	assert.NotContains(t, got, "%EE%A2%B8%EE%A2%B8")
}

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"abc", "abc"},
		{"a b", "a%20b"},
		{"a+b", "a%2Bb"},
		{"!'()*", "!'()*"},
		{"-_.~", "-_.~"},
		{"&=?", "%26%3D%3F"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, encodeURIComponent(tt.input))
		})
	}
}
