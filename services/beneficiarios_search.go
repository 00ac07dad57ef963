package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CPU-commits/RedInclusion/db"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

const SEARCH_TIMEOUT = 5 * time.Second

type SearchHit struct {
	ID           string                   `json:"_id"`
	Score        float64                  `json:"score"`
	Beneficiario models.BeneficiarioIndex `json:"beneficiario"`
}

type BulkDocument struct {
	ID       string
	Document interface{}
}

type BulkStats struct {
	Indexados uint64 `json:"indexados"`
	Fallidos  uint64 `json:"fallidos"`
}

type SearchIndex interface {
	Index(id string, document interface{}) error
	Delete(id string) error
	Search(query string, size int) ([]SearchHit, int, error)
	Bulk(documents []BulkDocument) (*BulkStats, error)
}

var searchIndex SearchIndex = &esSearchIndex{index: models.BENEFICIARIOS_INDEX}

type esSearchIndex struct {
	index string
}

func (e *esSearchIndex) Index(id string, document interface{}) error {
	es, err := db.NewConnectionEs()
	if err != nil {
		return err
	}
	data, err := json.Marshal(document)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), SEARCH_TIMEOUT)
	defer cancel()

	response, err := es.Index(
		e.index,
		bytes.NewReader(data),
		es.Index.WithDocumentID(id),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.IsError() {
		return fmt.Errorf("elasticsearch index: %s", response.String())
	}
	return nil
}

func (e *esSearchIndex) Delete(id string) error {
	es, err := db.NewConnectionEs()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), SEARCH_TIMEOUT)
	defer cancel()

	response, err := es.Delete(e.index, id, es.Delete.WithContext(ctx))
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.IsError() && response.StatusCode != 404 {
		return fmt.Errorf("elasticsearch delete: %s", response.String())
	}
	return nil
}

func (e *esSearchIndex) Search(query string, size int) ([]SearchHit, int, error) {
	es, err := db.NewConnectionEs()
	if err != nil {
		return nil, 0, err
	}
	q, err := json.Marshal(query + "*")
	if err != nil {
		return nil, 0, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), SEARCH_TIMEOUT)
	defer cancel()

	response, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(e.index),
		es.Search.WithBody(db.ConstructQuery(fmt.Sprintf(`
			"simple_query_string": {
				"query": %s,
				"fields": [
					"nombre_completo^3",
					"numero_documento^2",
					"correo_electronico",
					"comuna",
					"barrio",
					"funcionario_nombre"
				],
				"analyze_wildcard": true
			}
		`, q))),
		es.Search.WithSize(size),
		es.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, 0, err
	}
	defer response.Body.Close()
	if response.IsError() {
		return nil, 0, fmt.Errorf("elasticsearch search: %s", response.String())
	}

	var result struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID     string                   `json:"_id"`
				Score  float64                  `json:"_score"`
				Source models.BeneficiarioIndex `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return nil, 0, err
	}
	hits := make([]SearchHit, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		hits = append(hits, SearchHit{
			ID:           hit.ID,
			Score:        hit.Score,
			Beneficiario: hit.Source,
		})
	}
	return hits, result.Hits.Total.Value, nil
}

func (e *esSearchIndex) Bulk(documents []BulkDocument) (*BulkStats, error) {
	bi, err := models.NewBulkBeneficiario()
	if err != nil {
		return nil, err
	}
	return bulkIndex(context.Background(), bi, documents)
}

// Closes bi exactly once, also when a document cannot be queued
func bulkIndex(ctx context.Context, bi esutil.BulkIndexer, documents []BulkDocument) (*BulkStats, error) {
	closed := false
	defer func() {
		if !closed {
			bi.Close(ctx)
		}
	}()

	for _, document := range documents {
		data, err := json.Marshal(document.Document)
		if err != nil {
			return nil, err
		}
		err = bi.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: document.ID,
				Body:       bytes.NewReader(data),
			},
		)
		if err != nil {
			return nil, err
		}
	}
	closed = true
	if err := bi.Close(ctx); err != nil {
		return nil, err
	}
	stats := bi.Stats()
	return &BulkStats{
		Indexados: stats.NumIndexed,
		Fallidos:  stats.NumFailed,
	}, nil
}
