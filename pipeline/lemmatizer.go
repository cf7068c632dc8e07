package pipeline

import (
	"gdtools.org/lemmatizer/lemmatizer"
	"gdtools.org/lemmatizer/metrics"
	"gdtools.org/lemmatizer/types"
	"gdtools.org/lemmatizer/utils"
	"sync"
)

// NewLemmatizer fills the LEMMA column of every word. Existing lemmas are
// kept unless overwrite is set. Words without XPOS are lemmatized untagged.
func NewLemmatizer(lem *lemmatizer.Lemmatizer, overwrite bool) Stage {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)

		go func() {
			stringStore := utils.GlobalStringStore()
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)

				go func(sent types.Sentence) {
					defer wg.Done()
					for _, token := range sent.Words() {
						if token.Lemma != nil && !overwrite {
							continue
						}
						xpos := token.GetXPOS()
						token.Lemma = stringStore.GetPointer(lem.Lemmatize(token.Form, xpos))
						metrics.TokensLemmatized.WithLabelValues(metrics.Category(xpos)).Inc()
					}

					out <- sent
				}(sent)

			}
			wg.Wait()
		}()
		return out
	}
}
