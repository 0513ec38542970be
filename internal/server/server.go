package server

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/redline/internal/config"
	"github.com/agenthands/redline/internal/core"
	"github.com/agenthands/redline/internal/core/model"
	"github.com/agenthands/redline/internal/llm"
)

type Server struct {
	Comparer  *core.Comparer
	Extractor TextExtractor
	MaxUpload int64
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s, using built-in defaults: %v", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnvOverrides()

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	if llmClient == nil {
		log.Println("No LLM provider configured, explanations will use the rule-based engine")
	}

	return &Server{
		Comparer:  core.NewComparer(llmClient, cfg),
		Extractor: PlainTextExtractor{},
		MaxUpload: cfg.Server.MaxUploadBytes,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/api/health", s.Health)
	r.POST("/api/compare", s.Compare)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Loan Amendment Diff Engine API"})
}

// Compare accepts a multipart form with one file in each of the "original" and
// "amended" fields and responds with the full comparison result.
func (s *Server) Compare(c *gin.Context) {
	originalFile, err1 := c.FormFile("original")
	amendedFile, err2 := c.FormFile("amended")
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Both original and amended documents are required"})
		return
	}

	originalDoc, err := s.readDocument(originalFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("original document: %v", err)})
		return
	}
	amendedDoc, err := s.readDocument(amendedFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("amended document: %v", err)})
		return
	}

	results := s.Comparer.Compare(c.Request.Context(), originalDoc, amendedDoc)

	c.JSON(http.StatusOK, results)
}

func (s *Server) readDocument(fh *multipart.FileHeader) (model.ParsedDocument, error) {
	if s.MaxUpload > 0 && fh.Size > s.MaxUpload {
		return model.ParsedDocument{}, fmt.Errorf("file exceeds the %d byte limit", s.MaxUpload)
	}

	f, err := fh.Open()
	if err != nil {
		return model.ParsedDocument{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return model.ParsedDocument{}, fmt.Errorf("failed to read upload: %w", err)
	}

	text, meta, err := s.Extractor.Extract(data, fh.Header.Get("Content-Type"), fh.Filename)
	if err != nil {
		return model.ParsedDocument{}, err
	}

	return core.ParseDocument(text, meta), nil
}
