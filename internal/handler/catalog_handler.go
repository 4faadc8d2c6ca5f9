package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shortscout/shorts-discovery-go/internal/niche"
)

// NicheDTO describes one built-in niche and its curated keywords.
type NicheDTO struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// CatalogHandler serves the built-in niche and region catalogs.
type CatalogHandler struct{}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// HandleNiches returns the built-in niches with their keyword lists.
func (h *CatalogHandler) HandleNiches(c *gin.Context) {
	names := niche.Names()
	niches := make([]NicheDTO, 0, len(names))
	for _, name := range names {
		niches = append(niches, NicheDTO{
			Name:     name,
			Keywords: niche.KeywordsFor(name),
		})
	}

	c.JSON(http.StatusOK, gin.H{"niches": niches})
}

// HandleRegions returns the supported search region codes.
func (h *CatalogHandler) HandleRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": niche.Regions})
}

// HealthCheck provides a simple health check endpoint.
func (h *CatalogHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now(),
	})
}
