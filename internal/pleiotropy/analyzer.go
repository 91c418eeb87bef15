// Package pleiotropy distinguishes vertical from horizontal pleiotropy among
// the proteins associated with an outcome trait. pQTL MR evidence supplies
// the candidate proteins; shared Reactome pathway membership and
// protein-protein interactions each define a relation graph whose connected
// groups are ranked by size. Proteins in a larger group share a plausible
// causal pathway (vertical pleiotropy); singletons suggest independent
// mechanisms (horizontal pleiotropy).
package pleiotropy

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mrcieu/epigraphdb-go/pkg/epigraphdb"
	apperrors "github.com/mrcieu/epigraphdb-go/pkg/errors"
	"github.com/mrcieu/epigraphdb-go/pkg/logger"
	"github.com/mrcieu/epigraphdb-go/pkg/relgraph"
)

// Options controls one analysis run
type Options struct {
	// Trait is the outcome trait name, e.g. "Coronary heart disease"
	Trait string
	// PvalThreshold filters the pQTL MR results
	PvalThreshold float64
	// RType selects the pQTL result table (default "simple")
	RType string
	// NIntermediateProteins bounds PPI path length (0 for direct only)
	NIntermediateProteins int
}

// ProteinInfo is one candidate protein with its MR evidence
type ProteinInfo struct {
	GeneName  string  `json:"gene_name"`
	UniprotID string  `json:"uniprot_id"`
	Beta      float64 `json:"beta"`
	SE        float64 `json:"se"`
	Pval      float64 `json:"pval"`
}

// Report is the outcome of one analysis run
type Report struct {
	Trait         string           `json:"trait"`
	Proteins      []ProteinInfo    `json:"proteins"`
	PathwayGroups []relgraph.Group `json:"pathway_groups"`
	PPIGroups     []relgraph.Group `json:"ppi_groups"`
	// NoPathwayData lists proteins without pathway annotations; for these,
	// "not grouped" means missing data rather than a confirmed absence of
	// shared pathways
	NoPathwayData []string `json:"no_pathway_data"`
}

// Analyzer runs the pleiotropy case study against the EpiGraphDB API
type Analyzer struct {
	client *epigraphdb.Client
	logger *zap.Logger
}

// NewAnalyzer creates an analyzer backed by the given API client
func NewAnalyzer(client *epigraphdb.Client) *Analyzer {
	return &Analyzer{
		client: client,
		logger: logger.Named("pleiotropy"),
	}
}

// Run executes the full pipeline for an outcome trait
func (a *Analyzer) Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.Trait == "" {
		return nil, apperrors.NewInvalidInput("trait", "outcome trait is required")
	}
	if opts.PvalThreshold <= 0 {
		opts.PvalThreshold = 1e-5
	}

	proteins, err := a.candidateProteins(ctx, opts)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Trait:         opts.Trait,
		Proteins:      proteins,
		PathwayGroups: []relgraph.Group{},
		PPIGroups:     []relgraph.Group{},
		NoPathwayData: []string{},
	}
	if len(proteins) == 0 {
		a.logger.Info("No candidate proteins for trait", zap.String("trait", opts.Trait))
		return report, nil
	}

	entities := make([]string, 0, len(proteins))
	for _, p := range proteins {
		entities = append(entities, p.UniprotID)
	}

	// Pathway memberships and PPI paths are independent fetches
	var pathwayRows []epigraphdb.ProteinPathwayRow
	var ppiRows []epigraphdb.PPIPairwiseRow
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pathwayRows, err = a.client.ProteinInPathway(gctx, entities)
		return err
	})
	g.Go(func() error {
		var err error
		ppiRows, err = a.client.ProteinPPIPairwise(gctx, entities, opts.NIntermediateProteins)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pathwayGroups, noData, err := a.pathwayGroups(entities, pathwayRows)
	if err != nil {
		return nil, err
	}
	report.PathwayGroups = pathwayGroups
	report.NoPathwayData = noData

	ppiGroups, err := a.ppiGroups(entities, ppiRows)
	if err != nil {
		return nil, err
	}
	report.PPIGroups = ppiGroups

	a.logger.Info("Pleiotropy analysis complete",
		zap.String("trait", opts.Trait),
		zap.Int("proteins", len(proteins)),
		zap.Int("pathway_groups", len(report.PathwayGroups)),
		zap.Int("ppi_groups", len(report.PPIGroups)),
		zap.Int("no_pathway_data", len(report.NoPathwayData)),
	)
	return report, nil
}

// candidateProteins fetches pQTL MR evidence for the trait and maps the
// exposure gene names to UniProt ids
func (a *Analyzer) candidateProteins(ctx context.Context, opts Options) ([]ProteinInfo, error) {
	rows, err := a.client.PQTL(ctx, opts.Trait, epigraphdb.SearchTraits, opts.RType, opts.PvalThreshold)
	if err != nil {
		return nil, err
	}

	// One entry per gene, keeping the strongest association
	byGene := make(map[string]epigraphdb.PQTLRow)
	genes := []string{}
	for _, row := range rows {
		if row.Pval > opts.PvalThreshold {
			continue
		}
		existing, ok := byGene[row.GeneName]
		if !ok {
			genes = append(genes, row.GeneName)
			byGene[row.GeneName] = row
		} else if row.Pval < existing.Pval {
			byGene[row.GeneName] = row
		}
	}
	if len(genes) == 0 {
		return nil, nil
	}

	mappings, err := a.client.GeneToProtein(ctx, genes, false)
	if err != nil {
		return nil, err
	}
	uniprotByGene := make(map[string]string, len(mappings))
	for _, m := range mappings {
		if m.UniprotID != "" {
			uniprotByGene[m.GeneName] = m.UniprotID
		}
	}

	proteins := make([]ProteinInfo, 0, len(genes))
	seen := make(map[string]struct{}, len(genes))
	for _, gene := range genes {
		uniprot, ok := uniprotByGene[gene]
		if !ok {
			a.logger.Warn("No UniProt mapping for gene", zap.String("gene", gene))
			continue
		}
		if _, dup := seen[uniprot]; dup {
			continue
		}
		seen[uniprot] = struct{}{}
		row := byGene[gene]
		proteins = append(proteins, ProteinInfo{
			GeneName:  gene,
			UniprotID: uniprot,
			Beta:      row.Beta,
			SE:        row.SE,
			Pval:      row.Pval,
		})
	}
	return proteins, nil
}

func (a *Analyzer) pathwayGroups(entities []string, rows []epigraphdb.ProteinPathwayRow) ([]relgraph.Group, []string, error) {
	// A protein absent from the results has no pathway annotation data; a
	// protein present with zero pathways is a confirmed negative
	attrs := make(map[string][]string, len(rows))
	annotated := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		annotated[row.UniprotID] = struct{}{}
		if row.PathwayCount > 0 {
			attrs[row.UniprotID] = row.PathwayReactomeIDs
		}
	}

	noData := []string{}
	for _, e := range entities {
		if _, ok := annotated[e]; !ok {
			noData = append(noData, e)
		}
	}
	sort.Strings(noData)

	relations, err := relgraph.ComputePairwiseRelations(entities, relgraph.SharedAttributes(attrs))
	if err != nil {
		return nil, nil, err
	}
	graph, err := relgraph.BuildGraph(entities, relations)
	if err != nil {
		return nil, nil, err
	}
	return relgraph.ConnectedGroups(graph), noData, nil
}

func (a *Analyzer) ppiGroups(entities []string, rows []epigraphdb.PPIPairwiseRow) ([]relgraph.Group, error) {
	pairs := make([][2]string, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, [2]string{row.Protein, row.AssocProtein})
	}

	relations, err := relgraph.ComputePairwiseRelations(entities, relgraph.DirectInteractions(pairs))
	if err != nil {
		return nil, err
	}
	graph, err := relgraph.BuildGraph(entities, relations)
	if err != nil {
		return nil, err
	}
	return relgraph.ConnectedGroups(graph), nil
}
