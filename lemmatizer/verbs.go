package lemmatizer

import (
	"gdtools.org/lemmatizer/morphology"
	"gdtools.org/lemmatizer/xpos"
	"strings"
	"unicode/utf8"
)

func (l *Lemmatizer) lemmatizeVerb(surface string, tag xpos.Tag) string {
	if strings.HasSuffix(surface, "'") && utf8.RuneCountInString(surface) > 3 {
		surface = morphology.RemoveFinalApostrophe(surface)
	}
	// nì is the only future form of dèan that no suffix rule can reach
	if surface == "nì" {
		return "dèan"
	}
	if lemma, ok := l.lex.Lemma(surface); ok {
		return lemma
	}

	surface = morphology.Delenite(surface)
	if tag.Relative() {
		return relativeVerbEndings.Apply(surface)
	}
	stem, _ := verbEndings.Apply(tag.String(), surface)
	return stem
}
