package pipeline

import (
	"gdtools.org/lemmatizer/features"
	"gdtools.org/lemmatizer/types"
	"strings"
	"sync"
)

// NewFeaturizer rewrites the FEATS column from the XPOS tag. The tag of the
// preceding word decides between verbal noun and infinitive.
func NewFeaturizer() Stage {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {

				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					prevXPOS := ""
					for _, token := range sent.Words() {
						xpos := token.GetXPOS()
						if xpos == "" {
							prevXPOS = ""
							continue
						}

						var feats features.Set
						if strings.HasPrefix(xpos, "Spp") {
							feats = features.DerivePrep(xpos)
						} else {
							feats = features.Derive(xpos, features.Parse(token.Feats), prevXPOS)
						}
						token.Feats = feats.String()
						prevXPOS = xpos
					}
					out <- sent
				}(sent)

			}

			wg.Wait()

		}()
		return out
	}
}
