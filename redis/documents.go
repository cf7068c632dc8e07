package redis

import (
	"encoding/json"
	"gdtools.org/lemmatizer/utils/maps"
)

// GetDocument decodes the JSON object stored under redisKey.
func GetDocument[T any](client *Client, redisKey string) (*maps.Document[T], error) {
	b, err := client.Get(redisKey)
	if err != nil {
		return nil, err
	}
	return maps.Decode[T](b)
}

func SaveDocument[T any](client *Client, redisKey string, doc *maps.Document[T]) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return client.Set(redisKey, b)
}

// UpdateDocument reads, updates and writes back the document while holding
// its lock.
func UpdateDocument[T any](client *Client, redisKey string, updateFunc func(*T)) (err error) {
	releaseLock, err := client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := releaseLock(); err == nil {
			err = releaseErr
		}
	}()
	doc, err := GetDocument[T](client, redisKey)
	if err != nil {
		return err
	}
	if err = doc.Update(updateFunc); err != nil {
		return err
	}
	return SaveDocument(client, redisKey, doc)
}
