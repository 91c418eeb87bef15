package epigraphdb

import (
	"context"
	"net/url"
)

// pQTL endpoints: MR evidence with plasma protein levels as exposures.

// PQTLSearchFlag selects whether a /pqtl/ query term names a trait or a protein
type PQTLSearchFlag string

const (
	// SearchTraits treats the query as an outcome trait name
	SearchTraits PQTLSearchFlag = "traits"
	// SearchProteins treats the query as an exposure protein gene name
	SearchProteins PQTLSearchFlag = "proteins"
)

// PQTL queries pQTL MR evidence. rtype selects the result table: "simple" for
// the headline estimates, "mrres" for full MR results, "sglmr" for
// single-SNP MR, "inst" for instruments and "sense" for sensitivity analyses.
func (c *Client) PQTL(ctx context.Context, query string, flag PQTLSearchFlag, rtype string, pvalThreshold float64) ([]PQTLRow, error) {
	if rtype == "" {
		rtype = "simple"
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("searchflag", string(flag))
	params.Set("rtype", rtype)
	params.Set("pvalue", formatFloat(pvalThreshold))

	var rows []PQTLRow
	if err := c.getResults(ctx, "/pqtl/", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PQTLPleio queries pleiotropy flags for an instrument SNP. prflag "proteins"
// returns the associated proteins, "count" only their number.
func (c *Client) PQTLPleio(ctx context.Context, rsid, prflag string) ([]PQTLPleioRow, error) {
	if prflag == "" {
		prflag = "proteins"
	}
	params := url.Values{}
	params.Set("rsid", rsid)
	params.Set("prflag", prflag)

	var rows []PQTLPleioRow
	if err := c.getResults(ctx, "/pqtl/pleio/", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PQTLList returns the names of available exposures ("exposures") or
// outcomes ("outcomes") in the pQTL evidence
func (c *Client) PQTLList(ctx context.Context, flag string) ([]string, error) {
	if flag == "" {
		flag = "exposures"
	}
	params := url.Values{}
	params.Set("flag", flag)

	var names []string
	if err := c.getResults(ctx, "/pqtl/list/", params, &names); err != nil {
		return nil, err
	}
	return names, nil
}
