package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/krsgraph/krsgraph/internal/config"
	"github.com/krsgraph/krsgraph/internal/core/ingest"
	"github.com/krsgraph/krsgraph/internal/core/ownership"
	"github.com/krsgraph/krsgraph/internal/driver"
	"github.com/krsgraph/krsgraph/internal/registry"
)

type Server struct {
	Store     driver.GraphStore
	Discovery *ownership.Discovery
	Importer  *ingest.Importer

	maxDepth int
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(cfg.Neo4j.URI, cfg.Neo4j.User, cfg.Neo4j.Password, cfg.Neo4j.Database)
	if err != nil {
		log.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	if err := d.BuildSchema(context.Background()); err != nil {
		log.Printf("Warning: schema setup incomplete: %v", err)
	}

	var reg registry.API
	if cfg.Registry.UseMock {
		log.Println("Registry mock mode enabled")
		reg = registry.NewMockClient()
	} else {
		reg = registry.NewClient(cfg.Registry.BaseURL, cfg.Registry.RequestsPerSecond)
	}

	return &Server{
		Store:     d,
		Discovery: ownership.NewDiscovery(d),
		Importer:  ingest.NewImporter(d, reg),
		maxDepth:  cfg.Discovery.MaxDepth,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/ingest", s.Ingest)
	r.POST("/discover", s.Discover)
	r.POST("/synthetic", s.Synthetic)
	r.GET("/companies/:krs/ownership", s.Ownership)

	return r
}

type IngestRequest struct {
	KRS string `json:"krs"`
}

func (s *Server) Ingest(c *gin.Context) {
	var req IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.KRS == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	stats, err := s.Importer.ImportEntity(c.Request.Context(), req.KRS)
	if err != nil {
		log.Printf("Failed to import entity %s: %v", req.KRS, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import entity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "stats": stats})
}

type DiscoverRequest struct {
	KRS      string `json:"krs"`
	MaxDepth int    `json:"max_depth"`
}

func (s *Server) Discover(c *gin.Context) {
	var req DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.KRS == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	depth := req.MaxDepth
	if depth <= 0 {
		depth = s.maxDepth
	}

	stats, err := s.Discovery.DiscoverIndirectRelationships(c.Request.Context(), req.KRS, depth)
	if err != nil {
		log.Printf("Failed to discover relationships for %s: %v", req.KRS, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to discover relationships"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "stats": stats})
}

func (s *Server) Synthetic(c *gin.Context) {
	stats, err := s.Discovery.CreateSyntheticTestData(c.Request.Context())
	if err != nil {
		log.Printf("Failed to create synthetic data: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create synthetic data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "stats": stats})
}

func (s *Server) Ownership(c *gin.Context) {
	krs := c.Param("krs")

	edges, err := s.Store.OwnershipEdges(c.Request.Context(), krs)
	if err != nil {
		log.Printf("Failed to fetch ownership for %s: %v", krs, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ownership"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"krs": krs, "edges": edges})
}
