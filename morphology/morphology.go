package morphology

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var delenitionExclusions = map[string]bool{
	"Charles":     true,
	"Chapman":     true,
	"Shaw":        true,
	"Christie":    true,
	"three":       true,
	"thirty":      true,
	"thruppence":  true,
	"sheet":       true,
	"sheets":      true,
	"the":         true,
	"The":         true,
	"thanks":      true,
	"Bhatarsaigh": true,
	"shoal":       true,
	"charge":      true,
	"Chinook":     true,
	"think":       true,
	"chance":      true,
	"thousand":    true,
	"phone":       true,
	"theatre":     true,
	"Choice":      true,
}

var (
	slenderDiphthong    = regexp.MustCompile(`.*ei.h?$`)
	slenderDiphthongSub = regexp.MustCompile(`(.*)ei(.h?)`)
	slenderVowel        = regexp.MustCompile(`.*[bcdfghmnprst]i.h?e?$`)
	slenderVowelSub     = regexp.MustCompile(`(.*)i(.h?)e?`)
	slenderGlide        = regexp.MustCompile(`(.*[aiouàòù])i([bcdfghmnpqrst]+)[e']?$`)

	unlenitedInitial = regexp.MustCompile(`^([AEIOUaeiouLlNnRr]|[Ss][gpt])`)

	elidedCluster = regexp.MustCompile(`[bcdfghlmnprst]+'$`)
	broadFinal    = regexp.MustCompile(`[aouàòù]$`)
)

// IsExcludedFromDelenition reports whether s is one of the closed set of
// forms whose second letter h is not a lenition marker.
func IsExcludedFromDelenition(s string) bool {
	return delenitionExclusions[s]
}

// Delenite removes an h in second position.
func Delenite(s string) string {
	if utf8.RuneCountInString(s) < 3 || delenitionExclusions[s] {
		return s
	}
	runes := []rune(s)
	if runes[1] != 'h' {
		return s
	}
	return string(runes[:1]) + string(runes[2:])
}

func IsLenited(s string) bool {
	if unlenitedInitial.MatchString(s) {
		return true
	}
	runes := []rune(s)
	return len(runes) > 1 && runes[1] == 'h'
}

func Lenite(s string) string {
	if s == "" || IsLenited(s) {
		return s
	}
	runes := []rune(s)
	return string(runes[:1]) + "h" + string(runes[1:])
}

// Deslenderize undoes the slender final consonant of genitive and
// comparative forms, e.g. Seumais -> Seumas, sine -> sean.
func Deslenderize(s string) string {
	switch {
	case slenderDiphthong.MatchString(s):
		return slenderDiphthongSub.ReplaceAllString(s, "${1}ea${2}")
	case slenderVowel.MatchString(s):
		return slenderVowelSub.ReplaceAllString(s, "${1}ea${2}")
	default:
		return slenderGlide.ReplaceAllString(s, "${1}${2}")
	}
}

// RemoveFinalApostrophe restores the vowel elided before a final
// apostrophe. The vowel quality is guessed from the last vowel of the
// stem, so the result is a heuristic.
func RemoveFinalApostrophe(s string) string {
	if !strings.HasSuffix(s, "'") || s == "a'" {
		return s
	}
	result := strings.TrimSuffix(s, "'")
	stem := elidedCluster.ReplaceAllString(s, "")
	if broadFinal.MatchString(stem) {
		return result + "a"
	}
	return result + "e"
}
