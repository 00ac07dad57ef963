package services

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"
	"testing"

	"github.com/CPU-commits/RedInclusion/models"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// In-memory models.Collection, records every write
type fakeCollection struct {
	mu sync.Mutex

	byID  map[primitive.ObjectID]interface{}
	one   interface{}
	all   []interface{}
	count int64

	insertErr    error
	updateResult *mongo.UpdateResult
	deleteResult *mongo.DeleteResult

	counts   []bson.D
	inserted []interface{}
	updates  []bson.D
}

func newFakeCollection() *fakeCollection {
	return &fakeCollection{
		byID: make(map[primitive.ObjectID]interface{}),
	}
}

func singleResult(document interface{}) *mongo.SingleResult {
	if document == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(document, nil, nil)
}

func (f *fakeCollection) Use() *mongo.Collection {
	return nil
}

func (f *fakeCollection) GetByID(id primitive.ObjectID) *mongo.SingleResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return singleResult(f.byID[id])
}

func (f *fakeCollection) GetOne(filter bson.D) *mongo.SingleResult {
	return singleResult(f.one)
}

func (f *fakeCollection) GetAll(filter bson.D, opts *options.FindOptions) (*mongo.Cursor, error) {
	return mongo.NewCursorFromDocuments(f.all, nil, nil)
}

func (f *fakeCollection) Aggregate(pipeline mongo.Pipeline) (*mongo.Cursor, error) {
	return mongo.NewCursorFromDocuments(f.all, nil, nil)
}

func (f *fakeCollection) Count(filter bson.D) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts = append(f.counts, filter)
	return f.count, nil
}

func (f *fakeCollection) NewDocument(data interface{}) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, data)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeCollection) UpdateByID(id primitive.ObjectID, update bson.D) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, update)
	if f.updateResult == nil {
		return &mongo.UpdateResult{}, nil
	}
	return f.updateResult, nil
}

func (f *fakeCollection) DeleteByID(id primitive.ObjectID) (*mongo.DeleteResult, error) {
	if f.deleteResult == nil {
		return &mongo.DeleteResult{}, nil
	}
	return f.deleteResult, nil
}

func useCollection(t *testing.T, target *models.Collection, fake *fakeCollection) {
	t.Helper()

	previous := *target
	*target = fake
	t.Cleanup(func() { *target = previous })
}

type publishedEvent struct {
	subject string
	data    interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *fakePublisher) PublishEncode(subject string, data interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{subject: subject, data: data})
	return nil
}

func usePublisher(t *testing.T) *fakePublisher {
	t.Helper()

	publisher := &fakePublisher{}
	previous := nats
	nats = publisher
	t.Cleanup(func() { nats = previous })
	return publisher
}

type fakeSearchIndex struct {
	indexed []string
}

func (s *fakeSearchIndex) Index(id string, document interface{}) error {
	s.indexed = append(s.indexed, id)
	return nil
}

func (s *fakeSearchIndex) Delete(id string) error {
	return nil
}

func (s *fakeSearchIndex) Search(query string, size int) ([]SearchHit, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *fakeSearchIndex) Bulk(documents []BulkDocument) (*BulkStats, error) {
	return &BulkStats{Indexados: uint64(len(documents))}, nil
}

func useSearchIndex(t *testing.T) *fakeSearchIndex {
	t.Helper()

	index := &fakeSearchIndex{}
	previous := searchIndex
	searchIndex = index
	t.Cleanup(func() { searchIndex = previous })
	return index
}

type fakeStorage struct {
	files map[string][]byte
}

func (s *fakeStorage) UploadFile(key, contentType string, body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.files[key] = data
	return "https://bucket.s3.amazonaws.com/" + key, nil
}

func (s *fakeStorage) GetFile(key string) ([]byte, error) {
	data, ok := s.files[key]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return data, nil
}

func (s *fakeStorage) GetSignedURL(key string) (string, error) {
	return "https://bucket.s3.amazonaws.com/" + key + "?X-Amz-Signature=test", nil
}

func useStorage(t *testing.T) *fakeStorage {
	t.Helper()

	storage := &fakeStorage{files: make(map[string][]byte)}
	previous := aws
	aws = storage
	t.Cleanup(func() { aws = previous })
	return storage
}

func useSecret(t *testing.T) {
	t.Helper()

	previous := settingsData.JWT_SECRET_KEY
	settingsData.JWT_SECRET_KEY = "test-secret"
	t.Cleanup(func() { settingsData.JWT_SECRET_KEY = previous })
}

func pngBytes(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func pngDataURL(t *testing.T) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t))
}
