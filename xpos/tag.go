// Package xpos decodes ARCOSG part-of-speech codes. The first letter is
// the category, the second the subcategory, and the remaining positions
// carry category specific fields such as number, gender and case.
package xpos

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformed = errors.New("malformed xpos tag")

type Gender byte

const (
	GenderUnknown   Gender = 0
	GenderMasculine Gender = 'm'
	GenderFeminine  Gender = 'f'
)

type Case byte

const (
	CaseUnknown    Case = 0
	CaseNominative Case = 'n'
	CaseDative     Case = 'd'
	CaseGenitive   Case = 'g'
	CaseVocative   Case = 'v'
)

type Tense byte

const (
	TenseUnknown     Tense = 0
	TensePresent     Tense = 'p'
	TensePast        Tense = 's'
	TenseFuture      Tense = 'f'
	TenseConditional Tense = 'h'
)

type Tag struct {
	raw string
}

func Parse(raw string) (Tag, error) {
	if raw == "" {
		return Tag{}, fmt.Errorf("%w: empty", ErrMalformed)
	}
	if raw[0] < 'A' || raw[0] > 'Z' {
		return Tag{}, fmt.Errorf("%w: %q does not start with a category letter", ErrMalformed, raw)
	}
	return Tag{raw: raw}, nil
}

func MustParse(raw string) Tag {
	tag, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return tag
}

func (t Tag) String() string {
	return t.raw
}

func (t Tag) Category() byte {
	if t.raw == "" {
		return 0
	}
	return t.raw[0]
}

// Prefix returns the category and subcategory letters.
func (t Tag) Prefix() string {
	if len(t.raw) < 2 {
		return t.raw
	}
	return t.raw[:2]
}

func (t Tag) HasPrefix(prefix string) bool {
	return strings.HasPrefix(t.raw, prefix)
}

func (t Tag) HasAnyPrefix(prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(t.raw, p) {
			return true
		}
	}
	return false
}

// Is reports whether the whole tag equals one of values.
func (t Tag) Is(values ...string) bool {
	for _, v := range values {
		if t.raw == v {
			return true
		}
	}
	return false
}

func (t Tag) At(i int) (byte, bool) {
	if i < 0 || i >= len(t.raw) {
		return 0, false
	}
	return t.raw[i], true
}

func (t Tag) Len() int {
	return len(t.raw)
}

func (t Tag) Last() byte {
	if t.raw == "" {
		return 0
	}
	return t.raw[len(t.raw)-1]
}

// Oblique is true for genitive, dative and vocative tags, including the
// emphatic (e) and hyphenated (*) variants.
func (t Tag) Oblique() bool {
	s := strings.TrimSuffix(t.raw, "*")
	s = strings.TrimSuffix(s, "e")
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case 'd', 'g', 'v':
		return true
	}
	return false
}

func (t Tag) Emphatic() bool {
	return strings.HasSuffix(t.raw, "e") || strings.HasSuffix(t.raw, "e*")
}

// Plural is only meaningful for common nouns.
func (t Tag) Plural() bool {
	return strings.HasPrefix(t.raw, "Ncp")
}

func (t Tag) Gender() Gender {
	if t.Category() != 'N' {
		return GenderUnknown
	}
	g, ok := t.At(3)
	if !ok {
		return GenderUnknown
	}
	switch Gender(g) {
	case GenderMasculine, GenderFeminine:
		return Gender(g)
	}
	return GenderUnknown
}

// FinalCase reads the last letter of the tag as a case marker.
func (t Tag) FinalCase() Case {
	switch c := Case(t.Last()); c {
	case CaseNominative, CaseDative, CaseGenitive, CaseVocative:
		return c
	}
	return CaseUnknown
}

func (t Tag) Relative() bool {
	return t.Category() == 'V' && strings.HasSuffix(t.raw, "r")
}

func (t Tag) Imperative() bool {
	return strings.HasPrefix(t.raw, "Vm")
}

func (t Tag) Tense() Tense {
	if t.Category() != 'V' {
		return TenseUnknown
	}
	c, ok := t.At(2)
	if !ok {
		return TenseUnknown
	}
	switch tense := Tense(c); tense {
	case TensePresent, TensePast, TenseFuture, TenseConditional:
		return tense
	}
	return TenseUnknown
}

// Person returns the first person digit (0 for impersonal) in the tag.
func (t Tag) Person() (byte, bool) {
	for i := 1; i < len(t.raw); i++ {
		if t.raw[i] >= '0' && t.raw[i] <= '3' {
			return t.raw[i], true
		}
	}
	return 0, false
}
