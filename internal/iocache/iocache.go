// Package iocache is for keeping day entries in a durable store.
package iocache

import (
	"sync"

	"github.com/huangsam/tracktides/internal/contract"
)

// EntryStoreManager manages the EntryStore instance.
type EntryStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	entries      contract.EntryStore
}

var _ contract.StoreManager = &EntryStoreManager{} // Compile-time check

// GetEntryStore returns the entry store.
func (mgr *EntryStoreManager) GetEntryStore() contract.EntryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.entries
}
