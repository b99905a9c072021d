package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"gameuigo/internal/models"
)

const prototypePage = "prototype-3col.html"

// Generator produces UI-facing text from chat and world context. It never
// fails: unavailable or misbehaving providers resolve to fallback values
// inside the implementation.
type Generator interface {
	Suggestions(ctx context.Context, req *models.SuggestionRequest) []string
	Reply(ctx context.Context, req *models.ChatRequest) string
	VoiceEvent(ctx context.Context, req *models.VoiceRequest) models.GeneratedEvent
}

// Handler wires HTTP routes to the narrator service.
type Handler struct {
	narrator  Generator
	staticDir string
}

// NewHandler constructs a Handler instance.
func NewHandler(narrator Generator, staticDir string) *Handler {
	return &Handler{narrator: narrator, staticDir: staticDir}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.rootRedirect)
	router.GET("/"+prototypePage, h.servePrototype)
	router.GET("/health", h.health)
	// Static assets live under /static so they cannot shadow /api.
	if info, err := os.Stat(h.staticDir); err == nil && info.IsDir() {
		router.Static("/static", h.staticDir)
	}

	api := router.Group("/api")
	api.POST("/suggestions", h.suggestions)
	api.POST("/chat", h.chat)
	api.POST("/voice", h.voice)
}

func (h *Handler) rootRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, "/"+prototypePage)
}

func (h *Handler) servePrototype(c *gin.Context) {
	path := filepath.Join(h.staticDir, prototypePage)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"detail": "prototype not found"})
		return
	}
	c.File(path)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) suggestions(c *gin.Context) {
	var req models.SuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, models.SuggestionResponse{
		Suggestions: h.narrator.Suggestions(c.Request.Context(), &req),
	})
}

func (h *Handler) chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, models.ChatResponse{
		Reply: h.narrator.Reply(c.Request.Context(), &req),
	})
}

func (h *Handler) voice(c *gin.Context) {
	var req models.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, models.VoiceResponse{
		WorldEvent: h.narrator.VoiceEvent(c.Request.Context(), &req),
	})
}
