// pkg/feed/feed.go

// Package feed fetches the catalog spreadsheet export over HTTP and parses
// it into raw rows for the ingestion pipeline.
package feed

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/liza-toph/catalog-ingress/pkg/model"
)

// ErrUnavailable indicates the feed could not be fetched or parsed at all,
// as opposed to per-row problems which never fail a fetch.
var ErrUnavailable = errors.New("feed unavailable")

// Source provides a consistent snapshot of the raw catalog feed.
type Source interface {
	FetchRawRows(ctx context.Context) (*model.Feed, error)
}

// CSVClient fetches a CSV document from a fixed URL.
type CSVClient struct {
	url    string
	client *http.Client
	logger *zap.Logger
}

// NewCSVClient creates a feed client with a bounded request timeout.
func NewCSVClient(url string, timeout time.Duration, logger *zap.Logger) (*CSVClient, error) {
	if url == "" {
		return nil, errors.New("feed URL cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &CSVClient{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.Named("feed"),
	}, nil
}

// FetchRawRows downloads and parses the feed. Rows shorter than the header
// are padded with blanks; there is no retry, a failed fetch aborts the run.
func (c *CSVClient) FetchRawRows(ctx context.Context) (*model.Feed, error) {
	c.logger.Info("Fetching catalog feed", zap.String("url", c.url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	feedData, err := parseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.logger.Info("Fetched catalog feed",
		zap.Int("columns", len(feedData.Columns)),
		zap.Int("rows", len(feedData.Rows)))

	return feedData, nil
}

// parseCSV reads the header and body of a CSV document into a feed snapshot.
func parseCSV(r io.Reader) (*model.Feed, error) {
	br := stripUTF8BOM(bufio.NewReader(r))

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("missing header row")
		}
		return nil, fmt.Errorf("reading header: %v", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]model.RawRow, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %v", len(rows)+1, err)
		}

		row := make(model.RawRow, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}

	return &model.Feed{Columns: header, Rows: rows}, nil
}

// stripUTF8BOM discards a leading byte order mark if present.
func stripUTF8BOM(r *bufio.Reader) *bufio.Reader {
	b, err := r.Peek(3)
	if err == nil && len(b) == 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = r.Discard(3)
	}
	return r
}
