// Package orthography brings pre-reform spellings in line with the Gaelic
// Orthographic Conventions (GOC).
package orthography

import (
	"gdtools.org/lemmatizer/morphology"
	"regexp"
	"strings"
)

var (
	acuteAccents = strings.NewReplacer("é", "è", "ó", "ò")
	initialStr   = regexp.MustCompile(`^str`)
	apostropheEI = regexp.MustCompile(`'([ei])`)
)

var schwaEndings = morphology.NewRuleSet(
	"uidh", "aidh",
	"uinn", "ainn",
	"uis", "ais",
	"um", "am",
	"us", "as",
)

var respellings = map[string]string{
	"aghart":    "adhart",
	"maith":     "math",
	"so":        "seo",
	"tigh":      "taigh",
	"timchioll": "timcheall",
}

var lenitedRespellings = func() map[string]string {
	out := make(map[string]string, len(respellings))
	for old, reformed := range respellings {
		out[morphology.Lenite(old)] = morphology.Lenite(reformed)
	}
	return out
}()

var (
	graveOnFirstA = []string{"fhearr", "paipear", "paipeir", "ard", "thainig"}
	graveOnFirstU = []string{"duthcha", "duthaich"}
)

// Normalise rewrites a single word in GOC spelling.
func Normalise(surface string) string {
	result := standardiseSchwa(acuteAccents.Replace(surface))
	result = initialStr.ReplaceAllString(result, "sr")
	if reformed, ok := respellings[result]; ok {
		return reformed
	}
	if reformed, ok := lenitedRespellings[result]; ok {
		return reformed
	}
	return result
}

func standardiseSchwa(surface string) string {
	if surface == "agus" || surface == "Agus" {
		return surface
	}
	return schwaEndings.Apply(surface)
}

// RestoreAccents adds the grave accent to a handful of frequent words that
// are often typed without one.
func RestoreAccents(surface string) string {
	lower := strings.ToLower(surface)
	switch {
	case contains(graveOnFirstA, lower):
		return strings.Replace(surface, "a", "à", 1)
	case contains(graveOnFirstU, lower):
		return strings.Replace(surface, "u", "ù", 1)
	case surface == "Eireann" || surface == "Eirinn":
		return strings.Replace(surface, "E", "È", 1)
	}
	return surface
}

// NormaliseSpacing splits a copula or preposition fused to a following
// pronoun, as in b'e.
func NormaliseSpacing(surface string) string {
	if surface == "d'a" {
		return "da"
	}
	return apostropheEI.ReplaceAllString(surface, "' $1")
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
