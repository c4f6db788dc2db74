// Package storagetest provides an in-memory storage.Storage for tests.
package storagetest

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/weddingspa/service/internal/storage"
)

// Memory is a map-backed storage.Storage that records the calls made to it.
type Memory struct {
	mu      sync.Mutex
	objects map[string]memObject
	now     func() time.Time

	Puts    []string
	Deletes []string
	// Err, when set, is returned by every operation.
	Err error
}

type memObject struct {
	info storage.Object
	data []byte
}

// NewMemory returns an empty store whose LastModified timestamps come from now.
func NewMemory(now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{objects: make(map[string]memObject), now: now}
}

// Seed stores an object directly, bypassing call recording.
func (m *Memory) Seed(obj storage.Object, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	obj.Size = int64(len(data))
	m.objects[obj.Key] = memObject{info: obj, data: data}
}

func (m *Memory) Put(_ context.Context, key string, reader io.Reader, _ int64, contentType string, meta map[string]string) error {
	if m.Err != nil {
		return m.Err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	sum := md5.Sum(data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Puts = append(m.Puts, key)
	m.objects[key] = memObject{
		info: storage.Object{
			Key:          key,
			Size:         int64(len(data)),
			ContentType:  contentType,
			ETag:         hex.EncodeToString(sum[:]),
			LastModified: m.now(),
			Metadata:     meta,
		},
		data: data,
	}
	return nil
}

func (m *Memory) List(_ context.Context, prefix string) ([]storage.Object, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []storage.Object
	for k, o := range m.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, o.info)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *Memory) Get(_ context.Context, key string) (io.ReadCloser, *storage.Object, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.objects[key]
	if !ok {
		return nil, nil, storage.ErrNotFound
	}
	info := o.info
	return io.NopCloser(bytes.NewReader(o.data)), &info, nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deletes = append(m.Deletes, key)
	delete(m.objects, key)
	return nil
}

// Has reports whether key is currently stored.
func (m *Memory) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok
}
