package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBulkIndexer struct {
	addErr error
	added  []string
	closes int
}

func (f *fakeBulkIndexer) Add(ctx context.Context, item esutil.BulkIndexerItem) error {
	if f.addErr != nil {
		return f.addErr
	}
	body, _ := io.ReadAll(item.Body)
	f.added = append(f.added, item.DocumentID+":"+string(body))
	return nil
}

func (f *fakeBulkIndexer) Close(ctx context.Context) error {
	f.closes++
	return nil
}

func (f *fakeBulkIndexer) Stats() esutil.BulkIndexerStats {
	return esutil.BulkIndexerStats{
		NumIndexed: uint64(len(f.added)),
	}
}

func TestBulkIndex(t *testing.T) {
	bi := &fakeBulkIndexer{}
	stats, err := bulkIndex(context.Background(), bi, []BulkDocument{
		{ID: "a", Document: map[string]string{"nombre": "Ana"}},
		{ID: "b", Document: map[string]string{"nombre": "Luis"}},
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.Indexados)
	assert.Equal(t, `a:{"nombre":"Ana"}`, bi.added[0])
	assert.Equal(t, 1, bi.closes)
}

func TestBulkIndexClosesOnError(t *testing.T) {
	bi := &fakeBulkIndexer{addErr: errors.New("queue closed")}
	_, err := bulkIndex(context.Background(), bi, []BulkDocument{
		{ID: "a", Document: map[string]string{"nombre": "Ana"}},
	})
	require.Error(t, err)
	assert.Equal(t, 1, bi.closes)

	bi = &fakeBulkIndexer{}
	_, err = bulkIndex(context.Background(), bi, []BulkDocument{
		{ID: "a", Document: make(chan int)},
	})
	require.Error(t, err)
	assert.Empty(t, bi.added)
	assert.Equal(t, 1, bi.closes)
}
