package lemmatizer

import (
	"gdtools.org/lemmatizer/morphology"
	"gdtools.org/lemmatizer/xpos"
	"regexp"
	"strings"
)

var (
	emphaticSuffix  = regexp.MustCompile(`-?san?$`)
	slenderIchFinal = regexp.MustCompile(`[bcdfghlmnprst]ich$`)
)

var invariantProperNouns = []string{"Dougie", "Josie", "Morris"}

// Proper nouns whose oblique form is the same as the nominative.
var undeclinedProperNouns = []string{"Iain", "Keir", "Magaidh"}

var temporalNouns = map[string]string{
	"Albann":  "Alba",
	"Albainn": "Alba",
}

func (l *Lemmatizer) lemmatizeNoun(surface string, tag xpos.Tag) string {
	oblique := tag.Oblique()
	surface = strings.TrimPrefix(surface, "'")
	if surface == "O'" {
		return surface
	}
	surface = morphology.Delenite(surface)
	surface = morphology.RemoveFinalApostrophe(surface)

	if tag.HasPrefix("Nn") {
		return l.lemmatizeProperNoun(surface, oblique)
	}
	if tag.Is("Nt") {
		if lemma, ok := l.lex.Lemma(surface); ok {
			return lemma
		}
		if lemma, ok := temporalNouns[surface]; ok {
			return lemma
		}
		return surface
	}
	if lemma, ok := l.lex.Lemma(surface); ok {
		return lemma
	}

	surface = strings.ToLower(surface)
	if tag.Emphatic() {
		surface = emphaticSuffix.ReplaceAllString(surface, "")
	}
	if lemma, ok := l.lex.Lemma(surface); ok {
		return lemma
	}
	if tag.Is("Nv") {
		return l.lemmatizeVerbalNoun(surface)
	}
	return lemmatizeCommonNoun(surface, tag, oblique)
}

func (l *Lemmatizer) lemmatizeProperNoun(surface string, oblique bool) string {
	switch {
	case anyOf(surface, invariantProperNouns...):
		return surface
	case surface == "lain":
		// l for I is a common OCR error in the corpus
		return "Iain"
	case surface == "a'":
		return "an"
	}
	surface = strings.ReplaceAll(surface, "Mic", "Mac")
	if lemma, ok := l.lex.Lemma(surface); ok {
		return lemma
	}
	if oblique && !anyOf(surface, undeclinedProperNouns...) {
		return morphology.Deslenderize(surface)
	}
	return surface
}

func lemmatizeCommonNoun(surface string, tag xpos.Tag, oblique bool) string {
	if strings.HasPrefix(surface, "luchd") {
		return strings.ReplaceAll(surface, "luchd", "neach")
	}

	if tag.Plural() {
		surface = strings.TrimSuffix(surface, "aibh")
		switch surface {
		case "companaidhean":
			return "companaidh"
		case "eilean":
			return surface
		}
		surface = pluralEndings.Apply(surface)
	}
	if oblique && tag.Gender() == xpos.GenderFeminine {
		surface = feminineObliqueEndings.Apply(surface)
	}
	if oblique && tag.Gender() == xpos.GenderMasculine {
		surface = masculineObliqueEndings.Apply(surface)
	}
	if slenderIchFinal.MatchString(surface) {
		return strings.TrimSuffix(surface, "ich") + "each"
	}
	return surface
}

func (l *Lemmatizer) lemmatizeVerbalNoun(surface string) string {
	if root, ok := l.lex.VerbalNoun(surface); ok {
		return root
	}
	return verbalNounEndings.Apply(surface)
}
