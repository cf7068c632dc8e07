package pipeline

import "gdtools.org/lemmatizer/types"

type Request struct {
	Text string `json:"text"`
	Tid  string `json:"tid"`
}

// Pipeline processes a CoNLL-U document and returns a JSON object keyed by
// configuration name.
type Pipeline func(request Request) <-chan string

type Stage func(in <-chan types.Sentence) <-chan types.Sentence
