package epigraphdb

// Row types for the tabular results of each endpoint. JSON keys follow the
// API's flattened "node.property" naming.

// MRRow is one Mendelian randomization result from /mr
type MRRow struct {
	ExposureID   string  `json:"exposure.id"`
	ExposureName string  `json:"exposure.trait"`
	OutcomeID    string  `json:"outcome.id"`
	OutcomeName  string  `json:"outcome.trait"`
	Estimate     float64 `json:"mr.b"`
	SE           float64 `json:"mr.se"`
	Pval         float64 `json:"mr.pval"`
	Method       string  `json:"mr.method"`
	Selection    string  `json:"mr.selection"`
	Moescore     float64 `json:"mr.moescore"`
}

// ObsCorRow is one observational correlation from /obs-cor
type ObsCorRow struct {
	TraitID      string  `json:"gwas.id"`
	TraitName    string  `json:"gwas.trait"`
	AssocTraitID string  `json:"assoc_gwas.id"`
	AssocTrait   string  `json:"assoc_gwas.trait"`
	Cor          float64 `json:"obs_cor.cor"`
}

// GeneticCorRow is one genetic correlation from /genetic-cor
type GeneticCorRow struct {
	TraitID      string  `json:"gwas.id"`
	TraitName    string  `json:"gwas.trait"`
	AssocTraitID string  `json:"assoc_gwas.id"`
	AssocTrait   string  `json:"assoc_gwas.trait"`
	RG           float64 `json:"gc.rg"`
	RGSE         float64 `json:"gc.se"`
	RGPval       float64 `json:"gc.p"`
}

// ConfounderRow is one confounder candidate from /confounder
type ConfounderRow struct {
	ExposureID   string  `json:"exposure.id"`
	ExposureName string  `json:"exposure.trait"`
	OutcomeID    string  `json:"outcome.id"`
	OutcomeName  string  `json:"outcome.trait"`
	TraitID      string  `json:"cf.id"`
	TraitName    string  `json:"cf.trait"`
	EstimateCfX  float64 `json:"r1.b"`
	EstimateCfY  float64 `json:"r2.b"`
	PvalCfX      float64 `json:"r1.pval"`
	PvalCfY      float64 `json:"r2.pval"`
}

// DrugRiskFactorRow is one drug/risk-factor link from /drugs/risk-factors
type DrugRiskFactorRow struct {
	DrugLabel    string  `json:"dgi.drug"`
	GeneName     string  `json:"g.name"`
	TraitID      string  `json:"gwas.id"`
	TraitName    string  `json:"gwas.trait"`
	Pval         float64 `json:"vg.pval"`
}

// PathwayTraitRow is one pathway-stratified association from /pathway
type PathwayTraitRow struct {
	TraitID           string  `json:"gwas.id"`
	TraitName         string  `json:"gwas.trait"`
	VariantID         string  `json:"variant.name"`
	GeneName          string  `json:"gene.name"`
	PathwayReactomeID string  `json:"pathway.id"`
	PathwayName       string  `json:"pathway.name"`
	Pval              float64 `json:"vg.pval"`
}

// LiteratureGWASRow is one literature-derived triple from /literature/gwas
type LiteratureGWASRow struct {
	TraitID     string `json:"gwas.id"`
	TraitName   string `json:"gwas.trait"`
	SubjectTerm string `json:"lt.subject_name"`
	Predicate   string `json:"lt.predicate"`
	ObjectTerm  string `json:"lt.object_name"`
	PubmedID    string `json:"lit.pubmed_id"`
}

// OntologyMappingRow is one GWAS-to-EFO mapping from /ontology/gwas-efo
type OntologyMappingRow struct {
	TraitID   string  `json:"gwas.id"`
	TraitName string  `json:"gwas.trait"`
	EfoTerm   string  `json:"efo.value"`
	EfoID     string  `json:"efo.id"`
	Score     float64 `json:"r.score"`
}

// PQTLRow is one pQTL MR result from /pqtl/ (rtype "simple" or "mrres")
type PQTLRow struct {
	ExposureID  string  `json:"expo_id"`
	GeneName    string  `json:"expo_name"`
	OutcomeID   string  `json:"outco_id"`
	OutcomeName string  `json:"outco_name"`
	Beta        float64 `json:"beta"`
	SE          float64 `json:"se"`
	Pval        float64 `json:"pvalue"`
	Method      string  `json:"method"`
	NSnps       int     `json:"nsnp"`
	RSID        string  `json:"rsid"`
	LDCheck     string  `json:"ld_check"`
	TransCis    string  `json:"trans_cis"`
}

// PQTLPleioRow is one pleiotropy flag from /pqtl/pleio/
type PQTLPleioRow struct {
	RSID       string `json:"rsid"`
	ExposureID string `json:"expo_id"`
	GeneName   string `json:"expo_name"`
}

// GeneProteinRow is one gene-to-UniProt mapping from /mappings/gene-to-protein
type GeneProteinRow struct {
	GeneName  string `json:"gene.name"`
	UniprotID string `json:"protein.uniprot_id"`
}

// ProteinPathwayRow is one protein's pathway memberships from
// /protein/in-pathway
type ProteinPathwayRow struct {
	UniprotID          string   `json:"uniprot_id"`
	PathwayCount       int      `json:"pathway_count"`
	PathwayReactomeIDs []string `json:"pathway_reactome_id"`
}

// PPIRow is one direct protein-protein interaction from /protein/ppi
type PPIRow struct {
	Protein      string `json:"protein"`
	AssocProtein string `json:"assoc_protein"`
}

// PPIPairwiseRow is one bounded-length interaction path from
// /protein/ppi/pairwise
type PPIPairwiseRow struct {
	Protein      string `json:"protein"`
	AssocProtein string `json:"assoc_protein"`
	PathSize     int    `json:"path_size"`
}
