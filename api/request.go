package api

import (
	"encoding/json"
	"gdtools.org/lemmatizer/conllu"
	"gdtools.org/lemmatizer/lemmatizer"
	"gdtools.org/lemmatizer/metrics"
	"gdtools.org/lemmatizer/pipeline"
	"gdtools.org/lemmatizer/types"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"io"
	"net/http"
)

const (
	ConlluEndpoint    = "/conllu"
	LemmatizeEndpoint = "/lemmatize"
	MetricsEndpoint   = "/metrics"
)

type Request struct {
	Pipeline   pipeline.Pipeline
	Lemmatizer *lemmatizer.Lemmatizer
}

func (req *Request) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(ConlluEndpoint, req.ProcessData)
	mux.HandleFunc(LemmatizeEndpoint, req.LemmatizeTokens)
	mux.Handle(MetricsEndpoint, promhttp.Handler())
	return mux
}

// ProcessData runs every configured pipeline over a CoNLL-U body.
func (req *Request) ProcessData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != http.MethodPost {
		reject(w, logger, ConlluEndpoint, http.StatusMethodNotAllowed, nil, "Only 'POST' method is allowed here", "")
		return
	}

	msg, err := io.ReadAll(r.Body)
	if err != nil {
		reject(w, logger, ConlluEndpoint, http.StatusBadRequest, err, "Could not read request body", "")
		return
	}
	if _, err := conllu.ParseString(string(msg)); err != nil {
		reject(w, logger, ConlluEndpoint, http.StatusBadRequest, err, "Request body is not valid CoNLL-U", err.Error())
		return
	}

	request := pipeline.Request{
		Tid:  uuid.NewString(),
		Text: string(msg),
	}
	logger.Info().Str("tid", request.Tid).Msg("Starting pipeline for request from API")
	resp := <-req.Pipeline(request)
	_, _ = w.Write([]byte(resp))
	countRequest(ConlluEndpoint, http.StatusOK)
	logger.Info().Int("status", http.StatusOK).Msg("Finished processing request")
}

// LemmatizeTokens lemmatizes a list of (form, xpos) pairs. An empty xpos
// means the tag is unknown.
func (req *Request) LemmatizeTokens(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	logger := makeRequestLogger(r)

	if r.Method != http.MethodPost {
		reject(w, logger, LemmatizeEndpoint, http.StatusMethodNotAllowed, nil, "Only 'POST' method is allowed here", "")
		return
	}

	var body types.LemmatizeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		reject(w, logger, LemmatizeEndpoint, http.StatusBadRequest, err, "Could not decode request body", "")
		return
	}

	response := types.LemmatizeResponse{Lemmas: make([]string, len(body.Tokens))}
	for i, token := range body.Tokens {
		response.Lemmas[i] = req.Lemmatizer.Lemmatize(token.Form, token.XPOS)
		metrics.TokensLemmatized.WithLabelValues(metrics.Category(token.XPOS)).Inc()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Err(err).Msg("Failed to write response")
		return
	}
	countRequest(LemmatizeEndpoint, http.StatusOK)
	logger.Info().Int("status", http.StatusOK).Int("tokens", len(body.Tokens)).Msg("Finished processing request")
}
