// Package memory implements an archive Store held in process memory.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"zoocore/internal/archive/core"
)

type entry struct {
	obj  core.Object
	data []byte
}

// Store implements core.Store in memory. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	now     func() time.Time
	objects map[string]entry
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		now:     func() time.Time { return time.Now().UTC() },
		objects: make(map[string]entry),
	}
}

// Driver returns core.DriverMemory.
func (s *Store) Driver() core.Driver { return core.DriverMemory }

// Put stores a copy of r under key.
func (s *Store) Put(_ context.Context, key string, r io.Reader, opts core.PutOptions) (core.Object, error) {
	key, err := core.CleanKey(key)
	if err != nil {
		return core.Object{}, err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Object{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; ok {
		return core.Object{}, fmt.Errorf("%w: %s", core.ErrExists, key)
	}
	obj := core.Object{
		Key:         key,
		Size:        int64(len(data)),
		ContentType: opts.ContentType,
		Metadata:    core.CloneMetadata(opts.Metadata),
		StoredAt:    s.now(),
	}
	s.objects[key] = entry{obj: obj, data: data}
	return snapshot(obj), nil
}

// Get returns the object and a reader over a private copy of its bytes.
func (s *Store) Get(_ context.Context, key string) (core.Object, io.ReadCloser, error) {
	key, err := core.CleanKey(key)
	if err != nil {
		return core.Object{}, nil, err
	}
	s.mu.RLock()
	e, ok := s.objects[key]
	s.mu.RUnlock()
	if !ok {
		return core.Object{}, nil, fmt.Errorf("%w: %s", core.ErrNotFound, key)
	}
	return snapshot(e.obj), io.NopCloser(bytes.NewReader(bytes.Clone(e.data))), nil
}

// List returns the objects under prefix ordered by key.
func (s *Store) List(_ context.Context, prefix string) ([]core.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Object, 0, len(s.objects))
	for k, e := range s.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, snapshot(e.obj))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Delete removes key and reports whether it existed.
func (s *Store) Delete(_ context.Context, key string) (bool, error) {
	key, err := core.CleanKey(key)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	delete(s.objects, key)
	return ok, nil
}

func snapshot(obj core.Object) core.Object {
	obj.Metadata = core.CloneMetadata(obj.Metadata)
	return obj
}
