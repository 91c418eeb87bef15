package epigraphdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Metadata and raw query endpoints.

// MetaNodesList returns the node labels available in the graph
func (c *Client) MetaNodesList(ctx context.Context) ([]string, error) {
	var labels []string
	if err := c.getResults(ctx, "/meta/nodes/list", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// MetaRelsList returns the relationship labels available in the graph
func (c *Client) MetaRelsList(ctx context.Context) ([]string, error) {
	var labels []string
	if err := c.getResults(ctx, "/meta/rels/list", nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// MetaNodeList pages through the nodes of one label as raw rows
func (c *Client) MetaNodeList(ctx context.Context, metaNode string, limit, offset int) ([]map[string]interface{}, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var rows []map[string]interface{}
	endpoint := fmt.Sprintf("/meta/nodes/%s/list", url.PathEscape(metaNode))
	if err := c.getResults(ctx, endpoint, params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MetaNodeSearch searches the nodes of one label by id or name
func (c *Client) MetaNodeSearch(ctx context.Context, metaNode, id, name string) ([]map[string]interface{}, error) {
	params := url.Values{}
	if id != "" {
		params.Set("id", id)
	}
	if name != "" {
		params.Set("name", name)
	}

	var rows []map[string]interface{}
	endpoint := fmt.Sprintf("/meta/nodes/%s/search", url.PathEscape(metaNode))
	if err := c.getResults(ctx, endpoint, params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Cypher runs an arbitrary read-only Cypher query against the API's /cypher
// endpoint and returns the raw rows. For direct Bolt access use pkg/cypher.
func (c *Client) Cypher(ctx context.Context, query string) ([]map[string]interface{}, error) {
	payload := map[string]interface{}{
		"query": query,
	}

	var rows []map[string]interface{}
	if err := c.postResults(ctx, "/cypher", payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Ping reports whether the API is reachable
func (c *Client) Ping(ctx context.Context) (bool, error) {
	var ok bool
	if err := c.getResults(ctx, "/ping", nil, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
