package lemmatizer

import (
	"gdtools.org/lemmatizer/morphology"
	"gdtools.org/lemmatizer/xpos"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Closed-class words: conjunctions, particles, numbers, determiners,
// pronouns and prepositions.

var (
	copulaConjunction   = regexp.MustCompile(`^'i?s`)
	euphonicNasal       = regexp.MustCompile(`[mn]$`)
	emphaticPrepSuffix  = regexp.MustCompile(`-?s[ae]n?$`)
	bareEmphaticSuffix  = regexp.MustCompile(`^'?s[ae]n?$`)
	beulaibhPreposition = regexp.MustCompile(`^bh?eulaibh`)
)

func lemmatizeConjunction(surface string) string {
	switch {
	case surface == "a's":
		return "agus"
	case copulaConjunction.MatchString(surface):
		return "is"
	case surface == "'n":
		return "an"
	}
	return surface
}

func lemmatizeParticle(surface string) string {
	if surface == "b'" || surface == "bu" {
		return "is"
	}
	return euphonicNasal.ReplaceAllString(surface, "")
}

func lemmatizeNumber(surface string) string {
	return morphology.Delenite(surface)
}

func lemmatizeForeign(surface string) string {
	return morphology.Delenite(surface)
}

func lemmatizeDeterminer(surface string) string {
	if surface == "'sa" {
		return "sa"
	}
	return surface
}

// Possessives are fused with other words in the corpus, so only the tag
// is informative. Unknown person/number codes keep the surface.
func (l *Lemmatizer) lemmatizePossessive(surface string, tag xpos.Tag) string {
	if lemma, ok := l.lex.Possessive(tag.String()); ok {
		return lemma
	}
	return surface
}

func (l *Lemmatizer) lemmatizePronoun(surface string) string {
	if surface == "sib'" {
		return "sibh"
	}
	surface = morphology.RemoveFinalApostrophe(surface)
	if base, ok := l.lex.Pronoun(surface); ok {
		return base
	}
	if strings.HasPrefix(surface, "fh") || strings.HasPrefix(surface, "ch") {
		return morphology.Delenite(surface)
	}
	return surface
}

func (l *Lemmatizer) lemmatizePreposition(surface string) string {
	if strings.HasPrefix(surface, "'") && utf8.RuneCountInString(surface) > 1 {
		surface = surface[1:]
	}
	surface = morphology.RemoveFinalApostrophe(strings.ReplaceAll(surface, " ", "_"))
	surface = strings.TrimPrefix(surface, "h-")
	if !bareEmphaticSuffix.MatchString(surface) {
		surface = emphaticPrepSuffix.ReplaceAllString(surface, "")
	}
	if lemma, ok := l.lex.Preposition(surface); ok {
		return lemma
	}
	if beulaibhPreposition.MatchString(surface) {
		return "beul"
	}
	if strings.HasPrefix(surface, "bh") {
		return "bho"
	}
	return morphology.Delenite(surface)
}
