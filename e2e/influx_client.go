package e2e

import (
	"context"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
)

// influxClient wraps the official InfluxDB v2 client for test assertions.
// Writes go through the sink under test; this client only queries back.
type influxClient struct {
	client influxdb2.Client
	query  api.QueryAPI
}

func newInfluxClient(url, org, token string) *influxClient {
	c := influxdb2.NewClient(url, token)
	return &influxClient{client: c, query: c.QueryAPI(org)}
}

// Query runs a Flux query and returns the result iterator. The caller
// iterates and closes it.
func (c *influxClient) Query(ctx context.Context, flux string) (*api.QueryTableResult, error) {
	return c.query.Query(ctx, flux)
}

func (c *influxClient) Close() { c.client.Close() }
