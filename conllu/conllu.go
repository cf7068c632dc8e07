// Package conllu reads and writes the CoNLL-U treebank format.
package conllu

import (
	"bufio"
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/types"
	"io"
	"strings"
)

const (
	Columns = 10
	Empty   = "_"

	maxLineSize = 1024 * 1024
)

var ErrColumns = errors.New("token line must have 10 tab-separated columns")

// Parse reads sentences separated by blank lines. Comment lines (#) stay
// attached to the sentence that follows them.
func Parse(r io.Reader) ([]types.Sentence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var sentences []types.Sentence
	current := types.Sentence{}
	flush := func() {
		if len(current.Tokens) == 0 && len(current.Comments) == 0 {
			return
		}
		current.Index = len(sentences)
		sentences = append(sentences, current)
		current = types.Sentence{}
	}

	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case strings.HasPrefix(line, "#"):
			current.Comments = append(current.Comments, line)
		default:
			token, err := parseToken(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			current.Tokens = append(current.Tokens, token)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return sentences, nil
}

func ParseString(s string) ([]types.Sentence, error) {
	return Parse(strings.NewReader(s))
}

func parseToken(line string) (*types.Token, error) {
	columns := strings.Split(line, "\t")
	if len(columns) != Columns {
		return nil, fmt.Errorf("%w, got %d", ErrColumns, len(columns))
	}
	return &types.Token{
		ID:     columns[0],
		Form:   columns[1],
		Lemma:  optional(columns[2]),
		UPOS:   columns[3],
		XPOS:   optional(columns[4]),
		Feats:  columns[5],
		Head:   columns[6],
		Deprel: columns[7],
		Deps:   columns[8],
		Misc:   columns[9],
	}, nil
}

func optional(column string) *string {
	if column == Empty {
		return nil
	}
	return &column
}

func orEmpty(column string) string {
	if column == "" {
		return Empty
	}
	return column
}

// Write emits sentences in CoNLL-U, each followed by a blank line.
func Write(w io.Writer, sentences []types.Sentence) error {
	bw := bufio.NewWriter(w)
	for _, sent := range sentences {
		for _, comment := range sent.Comments {
			if _, err := fmt.Fprintln(bw, comment); err != nil {
				return err
			}
		}
		for _, token := range sent.Tokens {
			columns := []string{
				token.ID,
				token.Form,
				orEmpty(token.GetLemma()),
				orEmpty(token.UPOS),
				orEmpty(token.GetXPOS()),
				orEmpty(token.Feats),
				orEmpty(token.Head),
				orEmpty(token.Deprel),
				orEmpty(token.Deps),
				orEmpty(token.Misc),
			}
			if _, err := fmt.Fprintln(bw, strings.Join(columns, "\t")); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func Format(sentences []types.Sentence) string {
	var sb strings.Builder
	// strings.Builder never fails
	_ = Write(&sb, sentences)
	return sb.String()
}
