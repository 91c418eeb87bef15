package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/mrcieu/epigraphdb-go/internal/pleiotropy"
	"github.com/mrcieu/epigraphdb-go/pkg/config"
	"github.com/mrcieu/epigraphdb-go/pkg/epigraphdb"
	"github.com/mrcieu/epigraphdb-go/pkg/logger"
	"github.com/mrcieu/epigraphdb-go/pkg/relgraph"
)

func main() {
	trait := flag.String("trait", "", "outcome trait name (required), e.g. \"Coronary heart disease\"")
	pval := flag.Float64("pval", 0, "p-value threshold for pQTL MR results (default from config)")
	rtype := flag.String("rtype", "simple", "pQTL result table: simple, mrres, sglmr, inst, sense")
	nIntermediate := flag.Int("n-intermediate", 0, "max intermediate proteins in PPI paths (0 for direct only)")
	flag.Parse()

	if *trait == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Initialize logger
	if err := logger.Init(os.Getenv("ENV")); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	threshold := cfg.PvalThreshold
	if *pval > 0 {
		threshold = *pval
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := epigraphdb.NewClientWithOptions(cfg.APIURL, cfg.HTTPTimeout, cfg.MaxRetries)
	analyzer := pleiotropy.NewAnalyzer(client)

	report, err := analyzer.Run(ctx, pleiotropy.Options{
		Trait:                 *trait,
		PvalThreshold:         threshold,
		RType:                 *rtype,
		NIntermediateProteins: *nIntermediate,
	})
	if err != nil {
		log.Fatal("Analysis failed", zap.Error(err))
	}

	printReport(report)
}

func printReport(report *pleiotropy.Report) {
	fmt.Printf("Trait: %s\n\n", report.Trait)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GENE\tUNIPROT\tBETA\tSE\tPVAL")
	for _, p := range report.Proteins {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\t%.3g\n", p.GeneName, p.UniprotID, p.Beta, p.SE, p.Pval)
	}
	w.Flush()

	fmt.Println("\nShared-pathway groups (size 1 suggests horizontal pleiotropy):")
	printGroups(report.PathwayGroups)
	if len(report.NoPathwayData) > 0 {
		fmt.Printf("No pathway data: %s\n", strings.Join(report.NoPathwayData, ", "))
	}

	fmt.Println("\nPPI groups:")
	printGroups(report.PPIGroups)
}

func printGroups(groups []relgraph.Group) {
	if len(groups) == 0 {
		fmt.Println("  (none)")
		return
	}
	for i, g := range groups {
		fmt.Printf("  %d. [%d] %s\n", i+1, g.Size, strings.Join(g.Members, ", "))
	}
}
