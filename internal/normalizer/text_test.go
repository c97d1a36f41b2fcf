package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hamza forms", "أسيوط", "اسيوط"},
		{"alef with madda", "آل", "ال"},
		{"taa marbuta", "المنصورة", "المنصوره"},
		{"alef maqsura", "المنيا الكبرى", "المنيا الكبري"},
		{"tashkeel", "القَاهِرَة", "القاهره"},
		{"tatweel", "الجـيـزة", "الجيزه"},
		{"latin accents and case", "  Café   Central ", "cafe central"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Fold(tc.input))
		})
	}
}

func TestFold_VariantsCompareEqual(t *testing.T) {
	assert.Equal(t, Fold("الإسكندرية"), Fold("الاسكندريه"))
	assert.Equal(t, Fold("بنى سويف"), Fold("بني سويف"))
}

func TestASCII(t *testing.T) {
	got := ASCII("القاهرة")
	assert.NotEmpty(t, got)
	assert.True(t, IsASCII(got))
	assert.Equal(t, "nguyen trai", ASCII("Nguyễn Trãi"))
}

func TestIsASCII(t *testing.T) {
	assert.True(t, IsASCII("maadi 2"))
	assert.False(t, IsASCII("المعادي"))
}
