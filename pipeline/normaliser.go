package pipeline

import (
	"gdtools.org/lemmatizer/orthography"
	"gdtools.org/lemmatizer/types"
	"strings"
	"sync"
)

const (
	OrigFormMiscField = "OrigForm"
	textCommentPrefix = "# text = "
)

// NewNormaliser rewrites pre-GOC spellings. A changed FORM keeps its
// original in MISC; the text comment gets fused apostrophes split.
func NewNormaliser() Stage {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					for i, comment := range sent.Comments {
						if text, ok := strings.CutPrefix(comment, textCommentPrefix); ok {
							sent.Comments[i] = textCommentPrefix + normaliseText(text)
						}
					}
					for _, token := range sent.Words() {
						normalised := orthography.Normalise(orthography.RestoreAccents(token.Form))
						if normalised == token.Form {
							continue
						}
						token.AddMisc(OrigFormMiscField, token.Form)
						token.Form = normalised
					}
					out <- sent
				}(sent)
			}
			wg.Wait()
		}()
		return out
	}
}

func normaliseText(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		words[i] = orthography.NormaliseSpacing(word)
	}
	return strings.Join(words, " ")
}
