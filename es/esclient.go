package es

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/fundwit/go-commons/types"
)

// ELASTICSEARCH_URL
var ActiveESClient *elasticsearch.Client

var (
	IndexFunc  = Index
	SearchFunc = Search
)

func Bootstrap() error {
	client, err := elasticsearch.NewDefaultClient()
	if err != nil {
		return err
	}
	ActiveESClient = client
	return nil
}

func Index(index string, id types.ID, doc interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(doc); err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      index,
		DocumentID: id.String(),
		Body:       bytes.NewReader(buf.Bytes()),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), ActiveESClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := ioutil.ReadAll(res.Body)
		return fmt.Errorf("index document %s into %s: %s %s", id, index, res.Status(), string(body))
	}
	return nil
}

type searchHits struct {
	Hits struct {
		Hits []struct {
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search runs the query body against the index and returns the raw hit
// sources for the caller to decode.
func Search(index string, query interface{}) ([]json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := ActiveESClient.Search(
		ActiveESClient.Search.WithContext(context.Background()),
		ActiveESClient.Search.WithIndex(index),
		ActiveESClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := ioutil.ReadAll(res.Body)
		return nil, fmt.Errorf("search %s: %s %s", index, res.Status(), string(body))
	}

	hits := searchHits{}
	if err := json.NewDecoder(res.Body).Decode(&hits); err != nil {
		return nil, err
	}

	sources := make([]json.RawMessage, 0, len(hits.Hits.Hits))
	for _, hit := range hits.Hits.Hits {
		sources = append(sources, hit.Source)
	}
	return sources, nil
}
