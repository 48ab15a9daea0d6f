// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package encode

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// URLPrefix starts every object URL.
const URLPrefix = "blob:photomode/"

// URLRegistry maps object URLs to blobs until they are revoked.
// It is safe for concurrent use.
type URLRegistry struct {
	mu    sync.RWMutex
	blobs map[string]Blob
}

// DefaultRegistry is used when Options.Registry is nil.
var DefaultRegistry = NewURLRegistry()

// NewURLRegistry creates an empty registry.
func NewURLRegistry() *URLRegistry {
	return &URLRegistry{blobs: make(map[string]Blob)}
}

// Create registers b under a fresh URL.
func (r *URLRegistry) Create(b Blob) ObjectURL {
	url := URLPrefix + uuid.NewString()

	r.mu.Lock()
	r.blobs[url] = b
	r.mu.Unlock()

	return ObjectURL{URL: url, registry: r}
}

// Resolve returns the blob registered under url.
func (r *URLRegistry) Resolve(url string) (Blob, bool) {
	if !strings.HasPrefix(url, URLPrefix) {
		return Blob{}, false
	}
	r.mu.RLock()
	b, ok := r.blobs[url]
	r.mu.RUnlock()
	return b, ok
}

// Revoke forgets url. Revoking an unknown URL is a no-op.
func (r *URLRegistry) Revoke(url string) {
	r.mu.Lock()
	delete(r.blobs, url)
	r.mu.Unlock()
}

// Len returns the number of live URLs.
func (r *URLRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.blobs)
}
