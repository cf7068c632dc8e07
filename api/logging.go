package api

import (
	"gdtools.org/lemmatizer/logger"
	"gdtools.org/lemmatizer/metrics"
	"github.com/rs/zerolog"
	"net/http"
	"strconv"
)

var defaultLogger = logger.NewLogger("API")

type endpointLoggerFields struct {
	Method     string `json:"method"`
	Url        string `json:"url"`
	RemoteAddr string `json:"remote_addr"`
}

const RequestInfoFieldsKey = "request_info"

func makeRequestLogger(request *http.Request) zerolog.Logger {
	fields := endpointLoggerFields{
		Method:     request.Method,
		Url:        request.URL.String(),
		RemoteAddr: request.RemoteAddr,
	}
	return defaultLogger.
		With().Interface(RequestInfoFieldsKey, fields).Logger()
}

func countRequest(endpoint string, status int) {
	metrics.ApiRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// reject logs and counts a failed request and writes the status with body
// as the message.
func reject(w http.ResponseWriter, logger zerolog.Logger, endpoint string, status int, err error, msg, body string) {
	logger.Err(err).Int("status", status).Msg(msg)
	countRequest(endpoint, status)
	http.Error(w, body, status)
}
