package epigraphdb

import (
	"context"
)

// Protein and mapping endpoints (POST with identifier lists).

// GeneToProtein maps gene names (or Ensembl gene ids when byGeneID is true)
// to UniProt protein ids
func (c *Client) GeneToProtein(ctx context.Context, geneNames []string, byGeneID bool) ([]GeneProteinRow, error) {
	payload := map[string]interface{}{
		"gene_name_list": geneNames,
		"by_gene_id":     byGeneID,
	}

	var rows []GeneProteinRow
	if err := c.postResults(ctx, "/mappings/gene-to-protein", payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProteinInPathway returns the Reactome pathway memberships for each protein.
// Proteins with no pathway data are absent from the results.
func (c *Client) ProteinInPathway(ctx context.Context, uniprotIDs []string) ([]ProteinPathwayRow, error) {
	payload := map[string]interface{}{
		"uniprot_id_list": uniprotIDs,
	}

	var rows []ProteinPathwayRow
	if err := c.postResults(ctx, "/protein/in-pathway", payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProteinPPI returns direct protein-protein interactions involving the given
// proteins
func (c *Client) ProteinPPI(ctx context.Context, uniprotIDs []string) ([]PPIRow, error) {
	payload := map[string]interface{}{
		"uniprot_id_list": uniprotIDs,
	}

	var rows []PPIRow
	if err := c.postResults(ctx, "/protein/ppi", payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ProteinPPIPairwise returns interaction paths between pairs of the given
// proteins with at most nIntermediateProteins proteins in between (0 for
// direct interactions only)
func (c *Client) ProteinPPIPairwise(ctx context.Context, uniprotIDs []string, nIntermediateProteins int) ([]PPIPairwiseRow, error) {
	payload := map[string]interface{}{
		"uniprot_id_list":         uniprotIDs,
		"n_intermediate_proteins": nIntermediateProteins,
	}

	var rows []PPIPairwiseRow
	if err := c.postResults(ctx, "/protein/ppi/pairwise", payload, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
