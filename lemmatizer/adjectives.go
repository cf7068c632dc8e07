package lemmatizer

import (
	"gdtools.org/lemmatizer/morphology"
	"gdtools.org/lemmatizer/xpos"
	"regexp"
	"strings"
)

var (
	adverbialSuffix   = regexp.MustCompile(`(is)?[dt][ae]?$`)
	comparativeSuffix = regexp.MustCompile(`i[cgl]e$`)
)

// Broad stems that turn slender in the genitive and dative.
var obliqueAdjectiveEndings = morphology.NewRuleSet(
	"eirg", "earg",
	"òir", "òr",
	"óir", "ór",
)

func (l *Lemmatizer) lemmatizeAdjective(surface string, tag xpos.Tag) string {
	if tag.Is("Apc", "Aps") {
		return l.lemmatizeComparative(surface)
	}
	surface = morphology.Delenite(surface)
	surface = morphology.RemoveFinalApostrophe(surface)
	if lemma, ok := l.lex.Lemma(surface); ok {
		return lemma
	}
	if tag.Is("Av") {
		return adverbialSuffix.ReplaceAllString(surface, "")
	}
	switch tag.Last() {
	case 'g', 'd':
		return obliqueAdjectiveEndings.Apply(surface)
	}
	return surface
}

func (l *Lemmatizer) lemmatizeComparative(surface string) string {
	if lemma, ok := l.lex.Lemma(surface); ok {
		return lemma
	}
	surface = morphology.Delenite(surface)
	if comparativeSuffix.MatchString(surface) {
		return strings.TrimSuffix(surface, "e")
	}
	return strings.TrimSuffix(morphology.Deslenderize(surface), "e")
}
