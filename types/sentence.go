package types

type Sentence struct {
	Index    int
	Comments []string
	Tokens   []*Token
}

// Clone copies the tokens so that stages working on different copies of
// the same sentence never share a token.
func (sent Sentence) Clone() Sentence {
	tokens := make([]*Token, len(sent.Tokens))
	for i, token := range sent.Tokens {
		clone := token.Clone()
		tokens[i] = &clone
	}
	return Sentence{
		Index:    sent.Index,
		Comments: append([]string(nil), sent.Comments...),
		Tokens:   tokens,
	}
}

// Words returns the tokens that carry their own tag.
func (sent *Sentence) Words() []*Token {
	words := make([]*Token, 0, len(sent.Tokens))
	for _, token := range sent.Tokens {
		if token.IsWord() {
			words = append(words, token)
		}
	}
	return words
}
