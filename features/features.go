// Package features derives Universal Dependencies morphological features
// from ARCOSG XPOS tags.
package features

import (
	"sort"
	"strings"
)

// Set maps a UD feature name to its values.
type Set map[string][]string

var (
	cases    = map[byte]string{'n': "Nom", 'd': "Dat", 'g': "Gen", 'v': "Voc"}
	genders  = map[byte]string{'m': "Masc", 'f': "Fem"}
	numbers  = map[byte]string{'s': "Sing", 'p': "Plur", 'd': "Dual"}
	tenses   = map[byte]string{'p': "Pres", 's': "Past", 'f': "Fut"}
	numForms = map[string]string{"Mn": "Digit", "Mr": "Roman"}
	numTypes = map[string]string{"Mc": "Card", "Mo": "Ord"}

	partTypes = map[string]string{
		"Qa": "Cmpl", "Qn": "Cmpl", "Q-r": "Vb", "Qnr": "Vb", "Qq": "Vb",
		"Qnm": "Vb", "Ua": "Ad", "Uc": "Comp", "Ug": "Inf", "Uv": "Voc",
		"Up": "Pat", "Uo": "Num",
	}
	particlePolarity = map[string]string{"Qn": "Neg", "Qnr": "Neg", "Qnm": "Neg"}
	pronTypes        = map[string]string{"Q-r": "Rel", "Qnr": "Rel", "Qq": "Int", "Uq": "Int"}
)

// Parse reads a CoNLL-U FEATS column.
func Parse(field string) Set {
	set := Set{}
	if field == "" || field == "_" {
		return set
	}
	for _, pair := range strings.Split(field, "|") {
		name, values, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			continue
		}
		set[name] = strings.Split(values, ",")
	}
	return set
}

// String renders the set as a CoNLL-U FEATS column with sorted names.
func (s Set) String() string {
	if len(s) == 0 {
		return "_"
	}
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+strings.Join(s[name], ","))
	}
	return strings.Join(parts, "|")
}

func (s Set) set(name string, table map[byte]string, code byte) {
	if value, ok := table[code]; ok {
		s[name] = []string{value}
	}
}

// at returns the byte at i or 0 when the tag is too short.
func at(xpos string, i int) byte {
	if i < len(xpos) {
		return xpos[i]
	}
	return 0
}

// Derive returns the UD features of a token tagged xpos. existing carries
// features already on the token; only Typo on nouns and the whole set on
// numerals survive. prevXPOS is the tag of the preceding token.
func Derive(xpos string, existing Set, prevXPOS string) Set {
	switch {
	case strings.HasPrefix(xpos, "A"):
		return adjective(xpos)
	case xpos == "Nv":
		return verbalNoun(xpos, prevXPOS)
	case strings.HasPrefix(xpos, "N"):
		return noun(xpos, existing)
	case strings.HasPrefix(xpos, "M"):
		return numeral(xpos, existing)
	case strings.HasPrefix(xpos, "T"):
		return article(xpos)
	case strings.HasPrefix(xpos, "U"), strings.HasPrefix(xpos, "Q"):
		return particle(xpos)
	case strings.HasPrefix(xpos, "V"):
		return verb(xpos)
	case strings.HasPrefix(xpos, "W"):
		return copula(xpos)
	case xpos == "Xfe", xpos == "Xf":
		return Set{"Foreign": {"Yes"}}
	case strings.HasPrefix(xpos, "Pp"), strings.HasPrefix(xpos, "Px"), strings.HasPrefix(xpos, "Dp"):
		return pronoun(xpos)
	}
	return Set{}
}

func adjective(xpos string) Set {
	if xpos == "Apc" {
		return Set{"Degree": {"Cmp", "Sup"}}
	}
	result := Set{}
	if !strings.HasPrefix(xpos, "Aq-") {
		return result
	}
	result.set("Number", numbers, at(xpos, 3))
	result.set("Gender", genders, at(xpos, 4))
	result.set("Case", cases, at(xpos, 5))
	return result
}

func copula(xpos string) Set {
	result := Set{}
	result.set("Tense", tenses, at(xpos, 1))
	if at(xpos, 2) == 'r' {
		result["PronType"] = []string{"Rel"}
	}
	if at(xpos, 3) == 'q' {
		result["Mood"] = []string{"Int"}
	}
	if len(xpos) == 5 {
		switch xpos[4] {
		case 'n':
			result["Polarity"] = []string{"Neg"}
		case 'a':
			result["Polarity"] = []string{"Aff"}
		}
	}
	return result
}

func article(xpos string) Set {
	result := Set{"PronType": {"Art"}, "Definite": {"Def"}}
	result.set("Number", numbers, at(xpos, 2))
	if at(xpos, 3) != '-' {
		result.set("Gender", genders, at(xpos, 3))
	}
	if len(xpos) < 5 {
		return result
	}
	result.set("Case", cases, xpos[4])
	if xpos[3] == '-' {
		// unmarked gender: the tag only says number and case
		delete(result, "PronType")
		delete(result, "Definite")
	}
	return result
}

func noun(xpos string, existing Set) Set {
	result := Set{}
	if _, ok := existing["Typo"]; ok {
		result["Typo"] = []string{"Yes"}
	}
	if xpos == "Nf" || xpos == "Nn" || xpos == "Nt" {
		return Set{}
	}
	if strings.HasSuffix(xpos, "e") {
		result["Form"] = []string{"Emp"}
	}
	if sub := at(xpos, 1); sub == 'f' || sub == 'v' {
		return result
	}
	result.set("Case", cases, at(xpos, 4))
	if at(xpos, 3) == '-' {
		return result
	}
	result.set("Gender", genders, at(xpos, 3))
	if strings.HasPrefix(xpos, "Nn") {
		return result
	}
	result.set("Number", numbers, at(xpos, 2))
	return result
}

func numeral(xpos string, existing Set) Set {
	result := make(Set, len(existing)+2)
	for name, values := range existing {
		result[name] = values
	}
	if numType, ok := numTypes[xpos]; ok {
		result["NumType"] = []string{numType}
	}
	if numForm, ok := numForms[xpos]; ok {
		result["NumForm"] = []string{numForm}
	}
	return result
}

func verbalNoun(xpos, prevXPOS string) Set {
	result := Set{"VerbForm": {"Vnoun"}}
	if prevXPOS == "Ug" || strings.HasPrefix(prevXPOS, "Dp") {
		result["VerbForm"] = []string{"Inf"}
	}
	if strings.HasSuffix(xpos, "e") {
		result["Form"] = []string{"Emp"}
	}
	return result
}

func particle(xpos string) Set {
	result := Set{}
	if partType, ok := partTypes[xpos]; ok {
		result["PartType"] = []string{partType}
	}
	if polarity, ok := particlePolarity[xpos]; ok {
		result["Polarity"] = []string{polarity}
	}
	if pronType, ok := pronTypes[xpos]; ok {
		result["PronType"] = []string{pronType}
	}
	if xpos == "Q--s" {
		result["Tense"] = []string{"Past"}
	}
	return result
}

// DerivePrep returns the features of a prepositional pronoun such as Spp1s.
func DerivePrep(xpos string) Set {
	result := Set{"Poss": {"Yes"}}
	if person := at(xpos, 3); person != 0 {
		result["Person"] = []string{string(person)}
	}
	result.set("Number", numbers, at(xpos, 4))
	result.set("Gender", genders, at(xpos, 5))
	if strings.HasSuffix(xpos, "e") {
		result["Form"] = []string{"Emp"}
	}
	return result
}

func pronoun(xpos string) Set {
	result := Set{}
	if strings.HasPrefix(xpos, "Dp") {
		result["Poss"] = []string{"Yes"}
	}
	if len(xpos) > 2 {
		result["Person"] = []string{string(xpos[2])}
		result.set("Number", numbers, at(xpos, 3))
	}
	result.set("Gender", genders, at(xpos, 4))
	if strings.HasSuffix(xpos, "e") {
		result["Form"] = []string{"Emp"}
	}
	if pronType, ok := pronTypes[xpos]; ok {
		result["PronType"] = []string{pronType}
	}
	if xpos == "Px" {
		result["Reflex"] = []string{"Yes"}
	}
	return result
}

func verb(xpos string) Set {
	result := Set{}
	switch {
	case strings.Contains(xpos, "0"):
		result["Person"] = []string{"0"}
	case strings.Contains(xpos, "1"):
		result["Person"] = []string{"1"}
	case strings.Contains(xpos, "2"):
		result["Person"] = []string{"2"}
	}
	if len(xpos) == 2 {
		// bare Vm, usually a mistagging
		result["Mood"] = []string{"Imp"}
		return result
	}
	result.set("Tense", tenses, at(xpos, 2))
	if at(xpos, 2) == 'h' {
		result["Mood"] = []string{"Cnd"}
	}
	if at(xpos, 1) == 'm' {
		result["Mood"] = []string{"Imp"}
	}
	return result
}
