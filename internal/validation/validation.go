// Package validation checks discovery requests before they reach the
// pipeline.
package validation

import (
	"fmt"
	"strings"

	"github.com/shortscout/shorts-discovery-go/internal/models"
	"github.com/shortscout/shorts-discovery-go/internal/niche"
)

const (
	minDaysBack = 1
	maxDaysBack = 30

	minResultsPerKeyword = 5
	maxResultsPerKeyword = 25

	shortsDurationCeiling = 60
)

// ValidateRequest validates the inbound configuration ranges. It does
// not resolve keywords; an unknown niche is acceptable as long as
// custom keywords are present.
func ValidateRequest(req *models.DiscoveryRequest) error {
	if req.DaysBack < minDaysBack || req.DaysBack > maxDaysBack {
		return fmt.Errorf("days_back must be between %d and %d, got %d", minDaysBack, maxDaysBack, req.DaysBack)
	}

	if !niche.IsSupportedRegion(req.Region) {
		return fmt.Errorf("unsupported region code: %s", req.Region)
	}

	if req.ResultsPerKeyword < minResultsPerKeyword || req.ResultsPerKeyword > maxResultsPerKeyword {
		return fmt.Errorf("results_per_keyword must be between %d and %d, got %d", minResultsPerKeyword, maxResultsPerKeyword, req.ResultsPerKeyword)
	}

	if req.MinDurationSec < 0 || req.MaxDurationSec > shortsDurationCeiling {
		return fmt.Errorf("duration range must lie within [0, %d] seconds", shortsDurationCeiling)
	}
	if req.MinDurationSec > req.MaxDurationSec {
		return fmt.Errorf("min_duration_sec %d exceeds max_duration_sec %d", req.MinDurationSec, req.MaxDurationSec)
	}

	if req.MinViews < 0 {
		return fmt.Errorf("min_views must not be negative")
	}
	if req.MaxSubscribers < 0 {
		return fmt.Errorf("max_subscribers must not be negative")
	}
	if req.MinEngagement < 0 {
		return fmt.Errorf("min_engagement must not be negative")
	}
	if req.MinVirality < 0 {
		return fmt.Errorf("min_virality must not be negative")
	}

	if !hasKeywordSource(req) {
		return fmt.Errorf("unknown niche %q and no custom keywords", req.Niche)
	}

	return nil
}

func hasKeywordSource(req *models.DiscoveryRequest) bool {
	if len(niche.KeywordsFor(req.Niche)) > 0 {
		return true
	}
	for _, kw := range req.CustomKeywords {
		if strings.TrimSpace(kw) != "" {
			return true
		}
	}
	return false
}
