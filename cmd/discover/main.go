// Command discover runs one discovery pass from the command line and
// writes the ranked results as CSV, XLSX, and JSON files alongside a
// printed summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shortscout/shorts-discovery-go/internal/cache"
	"github.com/shortscout/shorts-discovery-go/internal/config"
	"github.com/shortscout/shorts-discovery-go/internal/export"
	"github.com/shortscout/shorts-discovery-go/internal/models"
	"github.com/shortscout/shorts-discovery-go/internal/niche"
	"github.com/shortscout/shorts-discovery-go/internal/scoring"
	"github.com/shortscout/shorts-discovery-go/internal/service"
	"github.com/shortscout/shorts-discovery-go/internal/service/youtube"
	"github.com/shortscout/shorts-discovery-go/internal/validation"
	"github.com/shortscout/shorts-discovery-go/pkg/logger"
)

func main() {
	var (
		nicheName      string
		customKeywords string
		daysBack       int
		region         string
		resultsPerKW   int64
		minViews       int64
		maxSubscribers int64
		minEngagement  float64
		minVirality    float64
		outDir         string
		listNiches     bool
	)

	flag.StringVar(&nicheName, "niche", "Facts & Mind-Blowing Info", "Built-in niche name (see -list-niches)")
	flag.StringVar(&customKeywords, "keywords", "", "Additional keywords, comma-separated")
	flag.IntVar(&daysBack, "days", 7, "How many days back to search (1-30)")
	flag.StringVar(&region, "region", "US", "Region code")
	flag.Int64Var(&resultsPerKW, "results", 10, "Results per keyword (5-25)")
	flag.Int64Var(&minViews, "min-views", 10000, "Minimum view count")
	flag.Int64Var(&maxSubscribers, "max-subs", 0, "Maximum channel subscribers (0 = unlimited)")
	flag.Float64Var(&minEngagement, "min-engagement", 0, "Minimum engagement rate percentage")
	flag.Float64Var(&minVirality, "min-virality", 0, "Minimum virality score")
	flag.StringVar(&outDir, "out", ".", "Output directory for export files")
	flag.BoolVar(&listNiches, "list-niches", false, "Print the built-in niches and exit")
	flag.Parse()

	if listNiches {
		for _, name := range niche.Names() {
			fmt.Println(name)
		}
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.YouTube.APIKey == "" {
		logger.Log.Fatal("YouTube API key not configured (APP_YOUTUBE_APIKEY)")
	}

	req := models.DiscoveryRequest{
		Niche:             nicheName,
		CustomKeywords:    splitKeywords(customKeywords),
		DaysBack:          daysBack,
		Region:            region,
		ResultsPerKeyword: resultsPerKW,
		MinViews:          minViews,
		MaxSubscribers:    maxSubscribers,
		MinEngagement:     minEngagement,
		MinVirality:       minVirality,
		MinDurationSec:    0,
		MaxDurationSec:    60,
	}
	if err := validation.ValidateRequest(&req); err != nil {
		logger.Log.Fatal("invalid request", zap.Error(err))
	}

	ctx := context.Background()

	gateway, err := youtube.NewClient(ctx, cfg.YouTube.APIKey, cache.NewMemoryCache(),
		cfg.YouTube.CacheTTL, cfg.YouTube.RequestTimeout)
	if err != nil {
		logger.Log.Fatal("failed to initialize YouTube client", zap.Error(err))
	}

	discoveryService := service.NewDiscoveryService(gateway, cfg.YouTube.KeywordDelay)

	result, err := discoveryService.Discover(ctx, req)
	if err != nil {
		logger.Log.Fatal("discovery run failed", zap.Error(err))
	}

	printSummary(result)

	if len(result.Rows) == 0 {
		fmt.Println("No videos matched your filters. Try widening the date window or relaxing the floors.")
		return
	}

	now := time.Now()
	for _, format := range []export.Format{export.FormatCSV, export.FormatXLSX, export.FormatJSON} {
		path := outDir + string(os.PathSeparator) + export.Filename(result.Niche, format, now)
		if err := writeFile(path, format, result.Rows); err != nil {
			logger.Log.Fatal("export failed", zap.String("path", path), zap.Error(err))
		}
		fmt.Printf("wrote %s\n", path)
	}
}

func writeFile(path string, format export.Format, rows []models.ResultRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := export.Write(f, format, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	var keywords []string
	for _, kw := range strings.Split(s, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

func printSummary(result *models.DiscoveryResult) {
	s := result.Summary
	fmt.Printf("run %s: %d videos found, %d warnings\n",
		result.RunID, s.VideosFound, len(result.Warnings))
	for _, warning := range result.Warnings {
		fmt.Printf("  warning: %s\n", warning)
	}
	if s.VideosFound == 0 {
		return
	}

	fmt.Printf("avg views %s, avg engagement %.2f%%, viral count %d, avg virality %.1f\n",
		scoring.FormatCount(s.AvgViews), s.AvgEngagement, s.ViralCount, s.AvgVirality)

	fmt.Println("top by virality:")
	for _, row := range result.TopByVirality {
		fmt.Printf("  %5.1f  %s  %s (%s views, %s subs)\n",
			row.ViralityScore, row.ViralityTier, row.Title,
			scoring.FormatCount(row.Views), scoring.FormatCount(row.ChannelSubs))
	}
}
