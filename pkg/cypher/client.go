// Package cypher provides read-only access to an EpiGraphDB Neo4j instance
// over the Bolt protocol, mirroring the REST API's /cypher endpoint without
// the HTTP hop.
package cypher

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	apperrors "github.com/mrcieu/epigraphdb-go/pkg/errors"
	"github.com/mrcieu/epigraphdb-go/pkg/logger"
)

// Client handles direct Neo4j queries
type Client struct {
	driver neo4j.DriverWithContext
	uri    string
	logger *zap.Logger
}

// NewClient creates a Bolt client for the given URI. Credentials may be empty
// for instances with authentication disabled.
func NewClient(uri, user, password string) (*Client, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, apperrors.NewCypherConnectionFailed(uri, err)
	}
	return &Client{
		driver: driver,
		uri:    uri,
		logger: logger.Named("cypher"),
	}, nil
}

// VerifyConnectivity checks that the Bolt endpoint is reachable
func (c *Client) VerifyConnectivity(ctx context.Context) error {
	if err := c.driver.VerifyConnectivity(ctx); err != nil {
		return apperrors.NewCypherConnectionFailed(c.uri, err)
	}
	return nil
}

// ReadQuery runs a read-only Cypher query and returns one map per record
func (c *Client) ReadQuery(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	session := c.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, apperrors.NewCypherQueryFailed(query, err)
	}

	var rows []map[string]interface{}
	for result.Next(ctx) {
		rows = append(rows, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, apperrors.NewCypherQueryFailed(query, err)
	}

	c.logger.Debug("Cypher query completed",
		zap.String("query", query),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

// Close closes the underlying driver
func (c *Client) Close(ctx context.Context) error {
	return c.driver.Close(ctx)
}
