package pipeline

import (
	"gdtools.org/lemmatizer/subcat"
	"gdtools.org/lemmatizer/types"
	"strings"
	"sync"
)

const SubcatMiscField = "Subcat"

func takesFrames(xpos string) bool {
	return xpos == "Nv" || strings.HasPrefix(xpos, "V") || strings.HasPrefix(xpos, "W")
}

// NewSubcategoriser records the frames of verbs, copulas and verbal nouns
// in the MISC column.
func NewSubcategoriser(sub *subcat.Subcat) Stage {
	return func(in <-chan types.Sentence) <-chan types.Sentence {
		out := make(chan types.Sentence)
		go func() {
			defer close(out)
			var wg sync.WaitGroup
			for sent := range in {
				wg.Add(1)
				go func(sent types.Sentence) {
					defer wg.Done()
					for _, token := range sent.Words() {
						xpos := token.GetXPOS()
						if !takesFrames(xpos) {
							continue
						}
						frames := sub.FramesFor(token.Form, xpos)
						token.AddMisc(SubcatMiscField, strings.Join(frames, ","))
					}
					out <- sent
				}(sent)
			}
			wg.Wait()
		}()
		return out
	}
}
