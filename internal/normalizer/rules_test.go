package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules_Variants(t *testing.T) {
	r, err := LoadRules()
	require.NoError(t, err)

	assert.Equal(t, []string{"cairo", "القاهره"}, r.Variants("Cairo"))
	assert.Equal(t, []string{"alex", "الاسكندريه"}, r.Variants("alex"))
	assert.Equal(t, []string{"qen", "قنا"}, r.Variants("qen"))
	assert.Equal(t, []string{"ca"}, r.Variants("ca"), "short queries are not expanded")
	assert.Equal(t, []string{"المعادي"}, r.Variants("المعادي"))
	assert.Empty(t, r.Variants("   "))
}

func TestRules_StripsNoisePrefix(t *testing.T) {
	r, err := LoadRules()
	require.NoError(t, err)

	assert.Equal(t, []string{"الجيزه"}, r.Variants("محافظة الجيزة"))
	assert.Equal(t, "giza", r.Variants("Governorate Giza")[0])
}

func TestRules_SpellingVariants(t *testing.T) {
	r, err := LoadRules()
	require.NoError(t, err)

	assert.Equal(t, []string{"fai", "الفيوم"}, r.Variants("fai"))
	assert.Equal(t, []string{"fayoum", "الفيوم"}, r.Variants("Fayoum"))
}
