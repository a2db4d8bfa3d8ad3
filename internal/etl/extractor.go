package etl

import (
	"context"

	"github.com/BartekS5/HDE/internal/api"
	"github.com/BartekS5/HDE/pkg/logger"
)

// DatasetExtractor pulls pages for one dataset from the datastore API.
type DatasetExtractor struct {
	Client  *api.Client
	APIPath string

	totalCount int
}

func NewDatasetExtractor(client *api.Client, apiPath string) *DatasetExtractor {
	return &DatasetExtractor{Client: client, APIPath: apiPath}
}

func (d *DatasetExtractor) Extract(ctx context.Context, batchSize, offset int) ([]map[string]interface{}, int, error) {
	page, err := d.Client.FetchPage(ctx, d.APIPath, offset, batchSize)
	if err != nil {
		return nil, 0, err
	}

	if d.totalCount == 0 && page.Count > 0 {
		d.totalCount = page.Count
		logger.Infof("Dataset reports %d total records", d.totalCount)
	}

	return page.Results, offset + len(page.Results), nil
}
