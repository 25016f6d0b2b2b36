// Package gin provides the HTTP surface: the form page and the generation
// API.
package gin

import (
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

//go:embed index.tmpl
var templateFS embed.FS

// DefaultAddr is the default listen address.
const DefaultAddr = ":8080"

// Server serves the generation form and API.
type Server struct {
	listener net.Listener
	server   *http.Server
	router   *gin.Engine
	logger   *slog.Logger

	Addr      string
	Service   schemagen.MarkupService
	Templates *schemagen.TemplateRegistry
}

// NewServer creates a new Server. Service and Templates must be set by the
// caller before Open.
func NewServer(logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router: gin.New(),
		logger: logger,
		Addr:   DefaultAddr,
	}

	s.router.Use(requestID(), requestLogger(logger), gin.Recovery())
	s.router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "index.tmpl")))

	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/api/generate", s.handleGenerate)
	s.router.GET("/api/templates", s.handleTemplates)

	return s
}

// Handler returns the server's HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Open starts listening on Addr and serves requests until Close.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return schemagen.Errorf(schemagen.EUNAVAILABLE, "failed to listen on %s: %v", s.Addr, err)
	}
	s.listener = ln
	s.server = &http.Server{Handler: s.router}

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server error", "err", err)
		}
	}()

	s.logger.Info("server listening", "addr", ln.Addr().String())
	return nil
}

// Close shuts the server down gracefully.
func (s *Server) Close(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// requestID tags every request with a unique ID, echoed in the response
// header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"requestID", c.GetString("requestID"),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleIndex renders the form page.
func (s *Server) handleIndex(c *gin.Context) {
	type categoryOption struct {
		Value       schemagen.Category
		Description string
	}
	var categories []categoryOption
	for _, cat := range s.Templates.List() {
		categories = append(categories, categoryOption{
			Value:       cat,
			Description: s.Templates.Describe(cat),
		})
	}

	type pageTypeOption struct {
		Value       schemagen.PageType
		Description string
	}
	var pageTypes []pageTypeOption
	for _, pt := range schemagen.PageTypes {
		pageTypes = append(pageTypes, pageTypeOption{
			Value:       pt,
			Description: schemagen.PageTypeDescriptions[pt],
		})
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Auto":       schemagen.CategoryAuto,
		"Categories": categories,
		"PageTypes":  pageTypes,
	})
}

// generateResponse is the JSON body returned by the generate endpoint.
type generateResponse struct {
	ID               string                      `json:"id"`
	URL              string                      `json:"url"`
	DetectedPageType schemagen.PageType          `json:"detectedPageType"`
	PageType         schemagen.PageType          `json:"pageType"`
	Category         schemagen.Category          `json:"category"`
	Markup           schemagen.Markup            `json:"markup"`
	Pretty           string                      `json:"pretty"`
	Analysis         schemagen.MarkupAnalysis    `json:"analysis"`
	Source           string                      `json:"source"`
	Filename         string                      `json:"filename"`
	RawModelText     string                      `json:"rawModelText,omitempty"`
	ModelError       string                      `json:"modelError,omitempty"`
	Record           *schemagen.ExtractionRecord `json:"record,omitempty"`
}

// handleGenerate runs the pipeline. With ?format=jsonld the response body
// is the bare markup served as a linked-data download.
func (s *Server) handleGenerate(c *gin.Context) {
	var req schemagen.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	result, err := s.Service.Generate(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": schemagen.ErrorMessage(err)})
		return
	}

	pretty, err := result.Markup.MarshalIndent()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": schemagen.ErrorMessage(err)})
		return
	}

	if c.Query("format") == "jsonld" {
		c.Header("Content-Disposition", `attachment; filename="`+result.Filename()+`"`)
		c.Data(http.StatusOK, "application/ld+json", []byte(pretty))
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		ID:               result.ID,
		URL:              result.URL,
		DetectedPageType: result.DetectedPageType,
		PageType:         result.PageType,
		Category:         result.Category,
		Markup:           result.Markup,
		Pretty:           pretty,
		Analysis:         schemagen.AnalyzeMarkup(result.Markup),
		Source:           result.Source,
		Filename:         result.Filename(),
		RawModelText:     result.RawModelText,
		ModelError:       result.ModelError,
		Record:           result.Record,
	})
}

// handleTemplates lists the available categories and their descriptions.
func (s *Server) handleTemplates(c *gin.Context) {
	type entry struct {
		Category    schemagen.Category `json:"category"`
		Description string             `json:"description"`
	}
	var entries []entry
	for _, cat := range s.Templates.List() {
		entries = append(entries, entry{Category: cat, Description: s.Templates.Describe(cat)})
	}
	c.JSON(http.StatusOK, gin.H{"templates": entries, "count": len(entries)})
}

func statusFromError(err error) int {
	switch schemagen.ErrorCode(err) {
	case schemagen.EINVALID:
		return http.StatusBadRequest
	case schemagen.ENOTFOUND:
		return http.StatusNotFound
	case schemagen.ETIMEOUT:
		return http.StatusGatewayTimeout
	case schemagen.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
