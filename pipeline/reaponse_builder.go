package pipeline

import (
	"gdtools.org/lemmatizer/conllu"
	"gdtools.org/lemmatizer/types"
	"sort"
)

type Result struct {
	ConfigName string
	Data       interface{}
}

// NewTreebankResult collects the sentences of one configuration, restores
// document order and renders them back to CoNLL-U.
func NewTreebankResult() func(in <-chan types.Sentence, key string, request Request) <-chan Result {
	return func(in <-chan types.Sentence, key string, request Request) <-chan Result {
		out := make(chan Result)

		go func() {
			defer close(out)

			var allSentences []types.Sentence
			for sent := range in {
				allSentences = append(allSentences, sent)
			}
			sort.SliceStable(allSentences, func(i, j int) bool {
				return allSentences[i].Index < allSentences[j].Index
			})

			response := types.TreebankResponse{
				BaseResponse: types.BaseResponse{DocId: request.Tid},
				Sentences:    len(allSentences),
				Conllu:       conllu.Format(allSentences),
			}
			for _, sent := range allSentences {
				response.Tokens += len(sent.Words())
			}

			out <- Result{
				ConfigName: key,
				Data:       response,
			}
		}()

		return out
	}
}

func NewErrorResult(request Request, key string, err error) Result {
	return Result{
		ConfigName: key,
		Data: types.ErrorResponse{
			BaseResponse: types.BaseResponse{DocId: request.Tid},
			Error:        err.Error(),
		},
	}
}
