package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned by KV.Read for a key that was never written.
var ErrNotFound = errors.New("store: key not found")

// KV is the durable key-value store the planner is mirrored into. Values are
// JSON documents.
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, val []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
}

// DiskKV is a KV backed by diskv. A key "weekend-saved-plans" lives at
// <base>/weekend/saved/plans.
type DiskKV struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskKV opens (lazily creating) a store rooted at basePath.
func NewDiskKV(basePath string) *DiskKV {
	return &DiskKV{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}
}

// BasePath is the directory the store writes under.
func (k *DiskKV) BasePath() string {
	return k.basePath
}

func (k *DiskKV) Read(key string) ([]byte, error) {
	val, err := k.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (k *DiskKV) Write(key string, val []byte) error {
	if err := k.d.Write(key, val); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (k *DiskKV) Erase(key string) error {
	if err := k.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key in sorted order.
func (k *DiskKV) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range k.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
