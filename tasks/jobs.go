package tasks

import (
	"gdtools.org/lemmatizer/redis"
)

const JobsDB redis.DB = 1

type JobTask struct {
	UserCanceled           bool `json:"user_canceled"`
	StopDocumentsOnFailure bool `json:"stop_documents_on_failure"`
}

type JobTasks struct {
	client redis.Client
}

func (tasks JobTasks) GetCached(redisKey string) (*JobTask, error) {
	doc, err := redis.GetDocument[JobTask](&tasks.client, cachedPropertiesKey(redisKey))
	if err != nil {
		return nil, err
	}
	return &doc.Value, nil
}
