package orthography

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRestoreAccents(t *testing.T) {
	cases := map[string]string{
		"ard":     "àrd",
		"duthcha": "dùthcha",
		"Eirinn":  "Èirinn",
		"fhearr":  "fheàrr",
		"paipear": "pàipear",
		"thainig": "thàinig",
		"Ard":     "Ard",
		"cat":     "cat",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, RestoreAccents(in), in)
	}
}

func TestNormalise(t *testing.T) {
	cases := map[string]string{
		"déidh":      "dèidh",
		"fhéin":      "fhèin",
		"mór":        "mòr",
		"aghart":     "adhart",
		"maith":      "math",
		"mhaith":     "mhath",
		"so":         "seo",
		"sho":        "sheo",
		"streap":     "sreap",
		"streapadh":  "sreapadh",
		"struthan":   "sruthan",
		"thimchioll": "thimcheall",
		"tigh":       "taigh",
		"thigh":      "thaigh",
		"agus":       "agus",
		"Agus":       "Agus",
		"chomhnuidh": "chomhnaidh",
		"fianuis":    "fianais",
		"maduinn":    "madainn",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, Normalise(in), in)
	}
}

func TestNormaliseSpacing(t *testing.T) {
	assert.Equal(t, "b' e", NormaliseSpacing("b'e"))
	assert.Equal(t, "b' i", NormaliseSpacing("b'i"))
	assert.Equal(t, "da", NormaliseSpacing("d'a"))
	assert.Equal(t, "a'", NormaliseSpacing("a'"))
}
