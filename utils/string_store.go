package utils

import (
	"sync"
	"sync/atomic"
)

var storeStoreInstance *stringStoreImpl
var stringStoreInitializer sync.Once

// StringStore interns lemmas so that tokens sharing a lemma share one string.
// Lemmas are case sensitive ("Alba" and "alba" are different entries).
type StringStore interface {
	GetPointer(s string) *string
	GetPointers(ss []string) []*string

	// Once resources are loaded the service locks the store; a locked store
	// still answers lookups but no longer grows.
	Lock()
	IsLocked() bool
}

type stringStoreImpl struct {
	store    sync.Map // map[string]*string
	isLocked atomic.Bool
}

func (stringStore *stringStoreImpl) GetPointer(s string) *string {
	if !stringStore.isLocked.Load() {
		ptr, _ := stringStore.store.LoadOrStore(s, &s)
		return ptr.(*string)
	}

	ptr, ok := stringStore.store.Load(s)
	if !ok {
		return &s
	}

	return ptr.(*string)
}

func (stringStore *stringStoreImpl) GetPointers(ss []string) []*string {
	ptrs := make([]*string, len(ss))
	for i, s := range ss {
		ptrs[i] = stringStore.GetPointer(s)
	}
	return ptrs
}

func (stringStore *stringStoreImpl) Lock() {
	stringStore.isLocked.Store(true)
}

func (stringStore *stringStoreImpl) IsLocked() bool {
	return stringStore.isLocked.Load()
}

func GlobalStringStore() StringStore {
	stringStoreInitializer.Do(func() {
		storeStoreInstance = new(stringStoreImpl)
	})

	return storeStoreInstance
}
