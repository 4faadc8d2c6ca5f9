package validation

import (
	"testing"

	"github.com/shortscout/shorts-discovery-go/internal/models"
)

func validRequest() models.DiscoveryRequest {
	return models.DiscoveryRequest{
		Niche:             "Gaming & Tech",
		DaysBack:          7,
		Region:            "US",
		ResultsPerKeyword: 10,
		MinDurationSec:    0,
		MaxDurationSec:    60,
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.DiscoveryRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *models.DiscoveryRequest) {},
		},
		{
			name:   "days back lower bound",
			mutate: func(r *models.DiscoveryRequest) { r.DaysBack = 1 },
		},
		{
			name:   "days back upper bound",
			mutate: func(r *models.DiscoveryRequest) { r.DaysBack = 30 },
		},
		{
			name:    "days back zero",
			mutate:  func(r *models.DiscoveryRequest) { r.DaysBack = 0 },
			wantErr: true,
		},
		{
			name:    "days back too large",
			mutate:  func(r *models.DiscoveryRequest) { r.DaysBack = 31 },
			wantErr: true,
		},
		{
			name:    "unsupported region",
			mutate:  func(r *models.DiscoveryRequest) { r.Region = "ZZ" },
			wantErr: true,
		},
		{
			name:    "empty region",
			mutate:  func(r *models.DiscoveryRequest) { r.Region = "" },
			wantErr: true,
		},
		{
			name:   "results per keyword bounds",
			mutate: func(r *models.DiscoveryRequest) { r.ResultsPerKeyword = 25 },
		},
		{
			name:    "results per keyword too small",
			mutate:  func(r *models.DiscoveryRequest) { r.ResultsPerKeyword = 4 },
			wantErr: true,
		},
		{
			name:    "results per keyword too large",
			mutate:  func(r *models.DiscoveryRequest) { r.ResultsPerKeyword = 26 },
			wantErr: true,
		},
		{
			name:    "negative min duration",
			mutate:  func(r *models.DiscoveryRequest) { r.MinDurationSec = -1 },
			wantErr: true,
		},
		{
			name:    "max duration above ceiling",
			mutate:  func(r *models.DiscoveryRequest) { r.MaxDurationSec = 61 },
			wantErr: true,
		},
		{
			name: "inverted duration range",
			mutate: func(r *models.DiscoveryRequest) {
				r.MinDurationSec = 30
				r.MaxDurationSec = 15
			},
			wantErr: true,
		},
		{
			name:    "negative min views",
			mutate:  func(r *models.DiscoveryRequest) { r.MinViews = -1 },
			wantErr: true,
		},
		{
			name:    "negative min engagement",
			mutate:  func(r *models.DiscoveryRequest) { r.MinEngagement = -0.5 },
			wantErr: true,
		},
		{
			name: "unknown niche with custom keywords",
			mutate: func(r *models.DiscoveryRequest) {
				r.Niche = "Underwater Basket Weaving"
				r.CustomKeywords = []string{"basket weaving shorts"}
			},
		},
		{
			name: "unknown niche without custom keywords",
			mutate: func(r *models.DiscoveryRequest) {
				r.Niche = "Underwater Basket Weaving"
			},
			wantErr: true,
		},
		{
			name: "unknown niche with blank custom keywords",
			mutate: func(r *models.DiscoveryRequest) {
				r.Niche = ""
				r.CustomKeywords = []string{"   ", ""}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := ValidateRequest(&req)
			if tt.wantErr && err == nil {
				t.Fatal("ValidateRequest() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ValidateRequest() = %v, want nil", err)
			}
		})
	}
}
