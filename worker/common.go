package worker

import (
	"fmt"
	"path"
	"time"
)

const (
	senderName         = "lemmatizer"
	resultsContentType = "application/json"
)

// getResultsFileKey places results next to the chunk they were computed for.
func getResultsFileKey(task *Task) string {
	return path.Join(
		"processed",
		"documents",
		task.chunkTask.DocID,
		"chunks",
		task.redisKey,
		fmt.Sprintf("%s.lemmatizer_results.json", task.redisKey),
	)
}

const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"

func getFormattedNow() *string {
	now := time.Now().UTC().Format(RFC3339Micro)
	return &now
}
