// Package lexicon holds the curated tables the lemmatizer consults before
// any rule fires. A Lexicon is built once and never modified, so it can be
// shared between goroutines.
package lexicon

import (
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/logger"
	"gdtools.org/lemmatizer/utils"
	"path"
	"regexp"
	"strings"
)

const (
	LemmataFile      = "lemmata.csv"
	PrepositionsFile = "prepositions.csv"
	VerbalNounsFile  = "verbal_nouns.csv"
)

var ErrMalformedRow = errors.New("malformed row")

type PrepositionRule struct {
	Pattern *regexp.Regexp
	Lemma   string
}

type Lexicon struct {
	lemmata      map[string]string
	prepositions []PrepositionRule
	verbalNouns  map[string]string
	pronouns     map[string]string
}

// New builds a Lexicon from in-memory tables. verbalNouns maps a verb root
// to its verbal noun forms.
func New(lemmata map[string]string, prepositions []PrepositionRule, verbalNouns map[string][]string) *Lexicon {
	lex := &Lexicon{
		lemmata:      make(map[string]string, len(lemmata)),
		prepositions: append([]PrepositionRule(nil), prepositions...),
		verbalNouns:  make(map[string]string),
		pronouns:     invert(pronounVariants),
	}
	for form, lemma := range lemmata {
		lex.lemmata[form] = lemma
	}
	for root, forms := range verbalNouns {
		for _, form := range forms {
			lex.verbalNouns[form] = root
		}
	}
	lex.intern()
	return lex
}

// Load reads the lemmata, preposition and verbal noun tables from dir.
// Any missing file or malformed row fails the whole load.
func Load(dir string) (*Lexicon, error) {
	lexLogger := logger.NewLogger("Lexicon")

	lex := &Lexicon{
		lemmata:     make(map[string]string),
		verbalNouns: make(map[string]string),
		pronouns:    invert(pronounVariants),
	}

	lemmataPath := path.Join(dir, LemmataFile)
	rows, err := readRows(lemmataPath, 2)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		lex.lemmata[row.Columns[0]] = row.Columns[1]
	}

	prepositionsPath := path.Join(dir, PrepositionsFile)
	rows, err = readRows(prepositionsPath, 2)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		pattern, err := regexp.Compile("^(?:" + row.Columns[0] + ")$")
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w: %v", PrepositionsFile, row.Line, ErrMalformedRow, err)
		}
		lex.prepositions = append(lex.prepositions, PrepositionRule{Pattern: pattern, Lemma: row.Columns[1]})
	}

	verbalNounsPath := path.Join(dir, VerbalNounsFile)
	rows, err = readRows(verbalNounsPath, 2)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		root := row.Columns[0]
		for _, form := range strings.Split(row.Columns[1], ";") {
			if form = strings.TrimSpace(form); form != "" {
				lex.verbalNouns[form] = root
			}
		}
	}

	lex.intern()

	lexLogger.Info().
		Int("lemmata", len(lex.lemmata)).
		Int("prepositions", len(lex.prepositions)).
		Int("verbal_nouns", len(lex.verbalNouns)).
		Str("resources_folder", dir).
		Msg("Loaded lexicon")
	return lex, nil
}

func readRows(tablePath string, minColumns int) ([]utils.Row, error) {
	rows, err := utils.ReadTable(tablePath, utils.HashKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", tablePath, err)
	}
	_, fileName := path.Split(tablePath)
	for _, row := range rows {
		if len(row.Columns) < minColumns {
			return nil, fmt.Errorf("%s:%d: %w: expected at least %d columns, got %d",
				fileName, row.Line, ErrMalformedRow, minColumns, len(row.Columns))
		}
		if row.Columns[0] == "" {
			return nil, fmt.Errorf("%s:%d: %w: empty key", fileName, row.Line, ErrMalformedRow)
		}
	}
	return rows, nil
}

func (lex *Lexicon) Lemma(form string) (string, bool) {
	lemma, ok := lex.lemmata[form]
	return lemma, ok
}

// Preposition returns the lemma of the first pattern matching the whole form.
func (lex *Lexicon) Preposition(form string) (string, bool) {
	for _, rule := range lex.prepositions {
		if rule.Pattern.MatchString(form) {
			return rule.Lemma, true
		}
	}
	return "", false
}

func (lex *Lexicon) VerbalNoun(form string) (string, bool) {
	root, ok := lex.verbalNouns[form]
	return root, ok
}

func (lex *Lexicon) Pronoun(form string) (string, bool) {
	base, ok := lex.pronouns[form]
	return base, ok
}

// Possessive looks the determiner up by the first four letters of its tag.
func (lex *Lexicon) Possessive(tag string) (string, bool) {
	if len(tag) < 4 {
		return "", false
	}
	lemma, ok := possessives[tag[:4]]
	return lemma, ok
}

// Lemmata returns a copy of the exception table.
func (lex *Lexicon) Lemmata() map[string]string {
	out := make(map[string]string, len(lex.lemmata))
	for k, v := range lex.lemmata {
		out[k] = v
	}
	return out
}

// intern adds every lemma the tables can return to the global string store,
// which is locked once the service has loaded its resources.
func (lex *Lexicon) intern() {
	stringStore := utils.GlobalStringStore()
	for _, table := range []map[string]string{lex.lemmata, lex.verbalNouns, lex.pronouns, possessives} {
		for _, lemma := range table {
			stringStore.GetPointer(lemma)
		}
	}
	for _, rule := range lex.prepositions {
		stringStore.GetPointer(rule.Lemma)
	}
}

func invert(variants map[string][]string) map[string]string {
	out := make(map[string]string)
	for base, forms := range variants {
		for _, form := range forms {
			out[form] = base
		}
	}
	return out
}
