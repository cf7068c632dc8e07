package types

type BaseResponse struct {
	DocId string `json:"docId"`
}

type TreebankResponse struct {
	BaseResponse
	Sentences int    `json:"sentences"`
	Tokens    int    `json:"tokens"`
	Conllu    string `json:"conllu"`
}

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type TaggedToken struct {
	Form string `json:"form"`
	XPOS string `json:"xpos"`
}

type LemmatizeRequest struct {
	Tokens []TaggedToken `json:"tokens"`
}

type LemmatizeResponse struct {
	Lemmas []string `json:"lemmas"`
}
