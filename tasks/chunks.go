package tasks

import (
	"gdtools.org/lemmatizer/redis"
)

const ChunksDB redis.DB = 2

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// ChunkTask is the part of a chunk record this service reads and writes.
// Statuses of other services stay untouched in the stored document.
type ChunkTask struct {
	DocID         string            `json:"document_id"`
	JobID         string            `json:"job_id"`
	ConlluFileKey string            `json:"conllu_file_key"`
	TaskStatuses  ChunkTaskStatuses `json:"task_statuses"`
}

type ChunkTaskStatuses struct {
	Lemmatizer ChunkTaskInfo `json:"lemmatizer"`
}

type ChunkTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	Dependencies   []string   `json:"dependencies"`
	ErrorMessages  []string   `json:"error_messages"`
}

type ChunkTasks struct {
	client redis.Client
}

func (tasks ChunkTasks) Get(redisKey string) (*ChunkTask, error) {
	doc, err := redis.GetDocument[ChunkTask](&tasks.client, redisKey)
	if err != nil {
		return nil, err
	}
	return &doc.Value, nil
}

func (tasks ChunkTasks) Update(redisKey string, updateFunc func(task *ChunkTask)) error {
	return redis.UpdateDocument(&tasks.client, redisKey, updateFunc)
}
