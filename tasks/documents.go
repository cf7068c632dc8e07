package tasks

import (
	"gdtools.org/lemmatizer/redis"
	"gdtools.org/lemmatizer/utils/maps"
	"sync"
)

const DocumentsDB redis.DB = 0

type DocumentTask struct {
	FailedTasks  []string            `json:"failed_tasks"`
	FailedChunks map[string][]string `json:"failed_chunks"`
}

// DocumentTaskCached mirrors the small subset of a document record that is
// kept under a separate key for fast reads.
type DocumentTaskCached struct {
	DocInfo     map[string]interface{} `json:"document_info"`
	FailedTasks []string               `json:"failed_tasks"`
	JobID       string                 `json:"job_id"`
	WorkType    string                 `json:"work_type"`
}

type DocumentTasks struct {
	client redis.Client
}

func (tasks DocumentTasks) Get(redisKey string) (*DocumentTask, error) {
	doc, err := redis.GetDocument[DocumentTask](&tasks.client, redisKey)
	if err != nil {
		return nil, err
	}
	return &doc.Value, nil
}

func (tasks DocumentTasks) GetCached(redisKey string) (*DocumentTaskCached, error) {
	doc, err := redis.GetDocument[DocumentTaskCached](&tasks.client, cachedPropertiesKey(redisKey))
	if err != nil {
		return nil, err
	}
	return &doc.Value, nil
}

// Update changes the document record and rewrites its cached properties.
func (tasks DocumentTasks) Update(redisKey string, updateFunc func(task *DocumentTask)) (err error) {
	releaseLock, err := tasks.client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = releaseLock()
			return
		}
		err = releaseLock()
	}()

	task, err := redis.GetDocument[DocumentTask](&tasks.client, redisKey)
	if err != nil {
		return err
	}
	if err = task.Update(updateFunc); err != nil {
		return err
	}
	cached, err := maps.Project[DocumentTask, DocumentTaskCached](task)
	if err != nil {
		return err
	}

	errChan := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		errChan <- redis.SaveDocument(&tasks.client, redisKey, task)
	}()
	go func() {
		defer wg.Done()
		errChan <- redis.SaveDocument(&tasks.client, cachedPropertiesKey(redisKey), cached)
	}()
	wg.Wait()
	close(errChan)
	for err = range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}
