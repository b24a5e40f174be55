package services

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"studyhub/models"
	"studyhub/storage"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeStore is an in-memory document store. Documents are held as marshaled
// bson so reads and writes go through the same codec as the real store.
// Listing returns documents in insertion order; tests do not depend on sort.
type fakeStore struct {
	data  map[string]map[string][]byte
	order map[string][]string
	down  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data:  make(map[string]map[string][]byte),
		order: make(map[string][]string),
	}
}

func (f *fakeStore) unavailable() error {
	return fmt.Errorf("%w: store down", models.ErrBackendUnavailable)
}

func (f *fakeStore) GetDocument(ctx context.Context, collection, id string, out interface{}) error {
	if f.down {
		return f.unavailable()
	}
	doc, ok := f.data[collection][id]
	if !ok {
		return models.ErrNotFound
	}
	return bson.Unmarshal(doc, out)
}

func (f *fakeStore) FindDocument(ctx context.Context, collection string, filter bson.M, out interface{}) error {
	if f.down {
		return f.unavailable()
	}
	for _, id := range f.order[collection] {
		doc := f.data[collection][id]
		var m bson.M
		if err := bson.Unmarshal(doc, &m); err != nil {
			return err
		}
		matched := true
		for k, v := range filter {
			if fmt.Sprint(m[k]) != fmt.Sprint(v) {
				matched = false
				break
			}
		}
		if matched {
			return bson.Unmarshal(doc, out)
		}
	}
	return models.ErrNotFound
}

func (f *fakeStore) SetDocument(ctx context.Context, collection, id string, doc interface{}, merge bool) error {
	if f.down {
		return f.unavailable()
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}

	if f.data[collection] == nil {
		f.data[collection] = make(map[string][]byte)
	}

	existing, exists := f.data[collection][id]
	if merge && exists {
		var base, overlay bson.M
		if err := bson.Unmarshal(existing, &base); err != nil {
			return err
		}
		if err := bson.Unmarshal(raw, &overlay); err != nil {
			return err
		}
		for k, v := range overlay {
			base[k] = v
		}
		raw, err = bson.Marshal(base)
		if err != nil {
			return err
		}
	}

	f.data[collection][id] = raw
	if !exists {
		f.order[collection] = append(f.order[collection], id)
	}
	return nil
}

func (f *fakeStore) UpdateDocument(ctx context.Context, collection, id string, fields bson.M) error {
	if f.down {
		return f.unavailable()
	}
	existing, ok := f.data[collection][id]
	if !ok {
		return nil
	}
	var base bson.M
	if err := bson.Unmarshal(existing, &base); err != nil {
		return err
	}
	for k, v := range fields {
		raw, err := bson.Marshal(bson.M{"v": v})
		if err != nil {
			return err
		}
		var decoded bson.M
		if err := bson.Unmarshal(raw, &decoded); err != nil {
			return err
		}
		base[k] = decoded["v"]
	}
	raw, err := bson.Marshal(base)
	if err != nil {
		return err
	}
	f.data[collection][id] = raw
	return nil
}

func (f *fakeStore) DeleteDocument(ctx context.Context, collection, id string) error {
	if f.down {
		return f.unavailable()
	}
	if _, ok := f.data[collection][id]; !ok {
		return models.ErrNotFound
	}
	delete(f.data[collection], id)
	for i, existing := range f.order[collection] {
		if existing == id {
			f.order[collection] = append(f.order[collection][:i], f.order[collection][i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStore) ListDocuments(ctx context.Context, collection string, sort bson.D, out interface{}) error {
	if f.down {
		return f.unavailable()
	}
	slice := reflect.ValueOf(out).Elem()
	elemType := slice.Type().Elem()
	for _, id := range f.order[collection] {
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(f.data[collection][id], elem.Interface()); err != nil {
			return err
		}
		slice.Set(reflect.Append(slice, elem.Elem()))
	}
	return nil
}

func (f *fakeStore) CountDocuments(ctx context.Context, collection string) (int64, error) {
	if f.down {
		return 0, f.unavailable()
	}
	return int64(len(f.data[collection])), nil
}

// fakeBlobs is an in-memory object store that records every delete so tests
// can assert on cascade behavior. Deletes fail when failDeletes is set.
type fakeBlobs struct {
	objects     map[string][]byte
	deleted     []string
	failDeletes bool
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{objects: make(map[string][]byte)}
}

func (f *fakeBlobs) Upload(key string, data []byte) error {
	f.objects[key] = data
	return nil
}

func (f *fakeBlobs) UploadStream(key string, reader io.Reader, size int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeBlobs) Download(key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", key)
	}
	return data, nil
}

func (f *fakeBlobs) Delete(key string) error {
	if f.failDeletes {
		return fmt.Errorf("simulated delete failure for %s", key)
	}
	delete(f.objects, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeBlobs) DeleteMultiple(keys []string) error {
	if f.failDeletes {
		return fmt.Errorf("simulated bulk delete failure")
	}
	for _, key := range keys {
		delete(f.objects, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

func (f *fakeBlobs) Exists(key string) (bool, error) {
	_, ok := f.objects[key]
	return ok, nil
}

func (f *fakeBlobs) List(prefix string) ([]string, error) {
	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *fakeBlobs) GetURL(key string) (string, error) {
	return "https://blobs.test/" + key, nil
}

func (f *fakeBlobs) GetPresignedURL(key string, expiry time.Duration) (string, error) {
	return f.GetURL(key)
}

func (f *fakeBlobs) GetProviderInfo() *storage.ProviderInfo {
	return &storage.ProviderInfo{Name: "fake", Type: "fake"}
}

func (f *fakeBlobs) HealthCheck() error {
	return nil
}
