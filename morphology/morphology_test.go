package morphology

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestDelenite(t *testing.T) {
	cases := map[string]string{
		"bhràthair": "bràthair",
		"fhaide":    "faide",
		"chaoidh":   "caoidh",
		"sheo":      "seo",
		"mhedia":    "media",
		"thì":       "tì",
		"balach":    "balach",
		"dha":       "da",
		"uh":        "uh",
		"a":         "a",
		"":          "",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, Delenite(in), in)
	}
}

func TestDeleniteExclusions(t *testing.T) {
	for form := range delenitionExclusions {
		assert.Equal(t, form, Delenite(form), form)
		assert.True(t, IsExcludedFromDelenition(form))
	}
	// the set is case sensitive
	assert.Equal(t, "Tanks", Delenite("Thanks"))
	assert.Equal(t, "saw", Delenite("shaw"))
}

func TestIsLenited(t *testing.T) {
	lenited := []string{"aon", "Eilean", "loch", "nighean", "rathad", "sgoil", "Sp", "stad", "bhàta", "thu"}
	for _, s := range lenited {
		assert.True(t, IsLenited(s), s)
	}
	unlenited := []string{"bàta", "cù", "so", "Seumas", "tigh", "m", ""}
	for _, s := range unlenited {
		assert.False(t, IsLenited(s), s)
	}
}

func TestLenite(t *testing.T) {
	cases := map[string]string{
		"bàta":      "bhàta",
		"so":        "sho",
		"tigh":      "thigh",
		"timchioll": "thimchioll",
		"aghart":    "aghart",
		"sgoil":     "sgoil",
		"thu":       "thu",
		"m":         "mh",
		"":          "",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, Lenite(in), in)
	}
}

func TestDeslenderize(t *testing.T) {
	cases := map[string]string{
		// ei before a final consonant
		"Sheileis": "Sheileas",
		// consonant + i + consonant (+e)
		"sine":      "sean",
		"taitniche": "taitneach",
		// broad vowel + i + consonant cluster
		"Seumais":   "Seumas",
		"Dòmhnaill": "Dòmhnall",
		"Caluim":    "Calum",
		"àirde":     "àrd",
		"dlùithe":   "dlùth",
		"fuaire":    "fuar",
		"Mac":       "Mac",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, Deslenderize(in), in)
	}
}

func TestRemoveFinalApostrophe(t *testing.T) {
	cases := map[string]string{
		"mis'":   "mise",
		"fhaid'": "fhaide",
		"dol'":   "dola",
		"a'":     "a'",
		"agus":   "agus",
		"le'":    "lee",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, RemoveFinalApostrophe(in), in)
	}
}
