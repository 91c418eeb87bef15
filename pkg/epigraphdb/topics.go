package epigraphdb

import (
	"context"
	"net/url"
	"strconv"
)

// Topic query endpoints: MR evidence, correlations, confounders, drugs,
// pathways, literature, ontology mappings.

// MR queries Mendelian randomization evidence between traits. Either of
// exposureTrait and outcomeTrait may be empty to leave that side open.
func (c *Client) MR(ctx context.Context, exposureTrait, outcomeTrait string, pvalThreshold float64) ([]MRRow, error) {
	params := url.Values{}
	if exposureTrait != "" {
		params.Set("exposure_trait", exposureTrait)
	}
	if outcomeTrait != "" {
		params.Set("outcome_trait", outcomeTrait)
	}
	params.Set("pval_threshold", formatFloat(pvalThreshold))

	var rows []MRRow
	if err := c.getResults(ctx, "/mr", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ObsCor queries observational correlations for a trait
func (c *Client) ObsCor(ctx context.Context, traitName string, corCoefThreshold float64) ([]ObsCorRow, error) {
	params := url.Values{}
	params.Set("trait_name", traitName)
	params.Set("cor_coef_threshold", formatFloat(corCoefThreshold))

	var rows []ObsCorRow
	if err := c.getResults(ctx, "/obs-cor", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// GeneticCor queries genetic correlations for a trait
func (c *Client) GeneticCor(ctx context.Context, traitName string, corCoefThreshold float64) ([]GeneticCorRow, error) {
	params := url.Values{}
	params.Set("trait_name", traitName)
	params.Set("cor_coef_threshold", formatFloat(corCoefThreshold))

	var rows []GeneticCorRow
	if err := c.getResults(ctx, "/genetic-cor", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Confounder queries candidate confounders between an exposure and an outcome.
// confounderType is one of "confounder", "intermediate", "reverse_intermediate"
// or "collider".
func (c *Client) Confounder(ctx context.Context, exposureTrait, outcomeTrait, confounderType string, pvalThreshold float64) ([]ConfounderRow, error) {
	params := url.Values{}
	params.Set("exposure_trait", exposureTrait)
	params.Set("outcome_trait", outcomeTrait)
	if confounderType != "" {
		params.Set("type", confounderType)
	}
	params.Set("pval_threshold", formatFloat(pvalThreshold))

	var rows []ConfounderRow
	if err := c.getResults(ctx, "/confounder", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// DrugsRiskFactors queries drugs targeting genes associated with a trait
func (c *Client) DrugsRiskFactors(ctx context.Context, trait string, pvalThreshold float64) ([]DrugRiskFactorRow, error) {
	params := url.Values{}
	params.Set("trait", trait)
	params.Set("pval_threshold", formatFloat(pvalThreshold))

	var rows []DrugRiskFactorRow
	if err := c.getResults(ctx, "/drugs/risk-factors", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PathwayTraits queries pathway-stratified variant/gene associations for a trait
func (c *Client) PathwayTraits(ctx context.Context, trait string, pvalThreshold float64) ([]PathwayTraitRow, error) {
	params := url.Values{}
	params.Set("trait", trait)
	params.Set("pval_threshold", formatFloat(pvalThreshold))

	var rows []PathwayTraitRow
	if err := c.getResults(ctx, "/pathway", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// LiteratureGWAS queries literature-derived triples for a trait, optionally
// filtered by SemMedDB predicate
func (c *Client) LiteratureGWAS(ctx context.Context, trait, semmedPredicate string) ([]LiteratureGWASRow, error) {
	params := url.Values{}
	params.Set("trait", trait)
	if semmedPredicate != "" {
		params.Set("semmed_predicate", semmedPredicate)
	}

	var rows []LiteratureGWASRow
	if err := c.getResults(ctx, "/literature/gwas", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// OntologyGwasEfo queries GWAS-to-EFO ontology mappings. fuzzy enables
// similarity-scored matching on the trait name.
func (c *Client) OntologyGwasEfo(ctx context.Context, trait, efoTerm string, fuzzy bool) ([]OntologyMappingRow, error) {
	params := url.Values{}
	if trait != "" {
		params.Set("trait", trait)
	}
	if efoTerm != "" {
		params.Set("efo_term", efoTerm)
	}
	params.Set("fuzzy", strconv.FormatBool(fuzzy))

	var rows []OntologyMappingRow
	if err := c.getResults(ctx, "/ontology/gwas-efo", params, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
