package types

// Token is one line of a CoNLL-U sentence. Lemma and XPOS are nil when the
// column holds the _ placeholder; the other columns keep it verbatim.
type Token struct {
	ID     string
	Form   string
	Lemma  *string
	UPOS   string
	XPOS   *string
	Feats  string
	Head   string
	Deprel string
	Deps   string
	Misc   string
}

// IsWord is false for multiword ranges (1-2) and empty nodes (1.1), which
// carry no tag of their own.
func (token *Token) IsWord() bool {
	if token.ID == "" {
		return false
	}
	for _, r := range token.ID {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (token *Token) GetXPOS() string {
	if token.XPOS == nil {
		return ""
	}
	return *token.XPOS
}

func (token *Token) GetLemma() string {
	if token.Lemma == nil {
		return ""
	}
	return *token.Lemma
}

func (token Token) Clone() Token {
	return Token{
		ID:     token.ID,
		Form:   token.Form,
		Lemma:  token.Lemma,
		UPOS:   token.UPOS,
		XPOS:   token.XPOS,
		Feats:  token.Feats,
		Head:   token.Head,
		Deprel: token.Deprel,
		Deps:   token.Deps,
		Misc:   token.Misc,
	}
}

// AddMisc appends a Name=Value pair to the MISC column.
func (token *Token) AddMisc(name, value string) {
	pair := name + "=" + value
	if token.Misc == "" || token.Misc == "_" {
		token.Misc = pair
		return
	}
	token.Misc += "|" + pair
}
