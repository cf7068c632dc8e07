// Package lemmatizer maps Scottish Gaelic word forms to lemmas using the
// ARCOSG XPOS tag to pick a category handler.
package lemmatizer

import (
	"gdtools.org/lemmatizer/lexicon"
	"gdtools.org/lemmatizer/morphology"
	"gdtools.org/lemmatizer/xpos"
	"regexp"
	"strings"
)

var (
	apostrophes = strings.NewReplacer(
		"â\u0080\u0099", "'",
		"â\u0080\u0098", "'",
		"â€™", "'",
		"â€˜", "'",
		"’", "'",
		"‘", "'",
	)
	mutationPrefix = regexp.MustCompile(`^(?i:h-|t-|n-|dh')`)
)

// Tag prefixes whose surface case is kept.
var casePreserving = []string{"Nc", "Nn", "Nt", "Up", "Y"}

// Adverbs and interjections that look lenited but are not.
var unlenitedAdverbs = []string{"bhuel", "chaoidh", "cho", "fhathast", "mhmm", "thall", "thairis", "thì"}

type Lemmatizer struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Lemmatizer {
	return &Lemmatizer{lex: lex}
}

// Normalize folds typographic apostrophes to ' and removes the h-, t-, n-
// and dh' mutation prefixes.
func Normalize(surface string) string {
	surface = apostrophes.Replace(surface)
	return mutationPrefix.ReplaceAllString(surface, "")
}

// Lemmatize returns the lemma of surface. An empty tag means the tag is
// unknown; a malformed tag leaves the lower-cased surface unchanged.
func (l *Lemmatizer) Lemmatize(surface, tag string) string {
	if tag == "" {
		return l.LemmatizeUntagged(surface)
	}
	parsed, err := xpos.Parse(tag)
	if err != nil {
		return strings.ToLower(Normalize(surface))
	}
	return l.LemmatizeTag(surface, parsed)
}

func (l *Lemmatizer) LemmatizeUntagged(surface string) string {
	surface = strings.ToLower(Normalize(surface))
	if lemma, ok := l.lex.Lemma(surface); ok {
		return lemma
	}
	return surface
}

func (l *Lemmatizer) LemmatizeTag(surface string, tag xpos.Tag) string {
	surface = Normalize(surface)

	switch {
	case tag.HasPrefix("Q--s"):
		return "do"
	case tag.HasPrefix("W"), tag.HasPrefix("Csw"):
		return "is"
	case tag.HasPrefix("Td"):
		return "an"
	}

	if !tag.HasAnyPrefix(casePreserving...) {
		surface = strings.ToLower(surface)
	}

	if tag.Is("Cc", "Cs") {
		return lemmatizeConjunction(surface)
	}
	if tag.Category() == 'R' || tag.Is("I") {
		if lemma, ok := l.lex.Lemma(surface); ok {
			return lemma
		}
		if !anyOf(surface, unlenitedAdverbs...) {
			return morphology.Delenite(surface)
		}
	}

	switch {
	case tag.HasAnyPrefix("Ap", "Aq", "Ar", "Av"):
		return l.lemmatizeAdjective(surface, tag)
	case tag.HasAnyPrefix("Mc", "Mo"):
		return lemmatizeNumber(surface)
	case tag.HasAnyPrefix("Qa", "Qn"):
		return lemmatizeParticle(surface)
	case tag.HasAnyPrefix("Sa", "Sp", "Pr", "Nf"):
		return l.lemmatizePreposition(surface)
	case tag.HasPrefix("Pp"), tag.Is("Px"):
		return l.lemmatizePronoun(surface)
	case tag.Category() == 'V':
		return l.lemmatizeVerb(surface, tag)
	case tag.Category() == 'N':
		return l.lemmatizeNoun(surface, tag)
	case tag.HasPrefix("Dd"):
		return lemmatizeDeterminer(surface)
	case tag.HasPrefix("Dp"):
		return l.lemmatizePossessive(surface, tag)
	case tag.Is("Dq", "Up"):
		if lemma, ok := l.lex.Lemma(surface); ok {
			return lemma
		}
	case tag.Is("Xfe"):
		return lemmatizeForeign(surface)
	}
	return surface
}

func anyOf(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}
