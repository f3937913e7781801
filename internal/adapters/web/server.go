// Package web serves the shops directory over HTTP. It is a thin
// presentation adapter: raw query strings go straight into the app layer,
// which parses them leniently, and engine output is mapped to JSON DTOs.
package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/civmc-shops/shopdex/internal/app"
	"github.com/civmc-shops/shopdex/internal/domain/market"
	"github.com/civmc-shops/shopdex/internal/obs"
	"github.com/gin-gonic/gin"
)

// Server exposes the JSON API over HTTP.
type Server struct {
	app     *app.App
	httpSrv *http.Server
	started time.Time
}

// NewServer creates an HTTP server over the given app.
func NewServer(a *app.App) *Server {
	return &Server{app: a}
}

// Router builds the gin engine with all API routes. Exposed separately so
// tests can drive it through httptest without binding a port.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/search", s.handleSearch)
		api.GET("/shops", s.handleShops)
		api.GET("/items", s.handleItems)
		api.POST("/login", s.handleLogin)
		api.POST("/logout", s.handleLogout)
		api.PUT("/shops/:name", s.handleSaveOverride)
	}
	return router
}

// Start begins listening on addr. Blocks until the listener fails or the
// server is stopped.
func (s *Server) Start(addr string) error {
	s.started = time.Now()
	s.httpSrv = &http.Server{Addr: addr, Handler: s.Router()}
	obs.Logger.Info("http server listening", "addr", addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	catalogue := s.app.Catalogue()
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"shops":  len(catalogue),
		"items":  len(market.ItemNames(catalogue)),
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) handleSearch(c *gin.Context) {
	result := s.app.Query(queryParams(c, c.Query("sort")))

	c.JSON(http.StatusOK, gin.H{
		"state":     result.Resolution.State,
		"item":      result.Resolution.ActiveItem,
		"matches":   result.Resolution.Matches,
		"offers":    offerDTOs(result.Offers),
		"shops":     shopDTOs(result.Shops),
		"not_found": result.NotFound,
	})
}

func (s *Server) handleShops(c *gin.Context) {
	result := s.app.Query(queryParams(c, ""))
	c.JSON(http.StatusOK, gin.H{
		"state": result.Resolution.State,
		"shops": shopDTOs(result.Shops),
	})
}

func (s *Server) handleItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.app.Items()})
}

func (s *Server) handleLogin(c *gin.Context) {
	var body struct {
		Passkey string `json:"passkey"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	shop, token, ok, err := s.app.Login(body.Passkey)
	if err != nil {
		obs.Logger.Error("login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login unavailable"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid passkey"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shop": shop, "token": token})
}

func (s *Server) handleLogout(c *gin.Context) {
	s.app.Logout(bearerToken(c))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSaveOverride(c *gin.Context) {
	shop, ok := s.app.SessionShop(bearerToken(c))
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "login required"})
		return
	}
	name := c.Param("name")
	if shop != name {
		c.JSON(http.StatusForbidden, gin.H{"error": "session does not authorize this shop"})
		return
	}

	var ov market.Override
	if err := c.ShouldBindJSON(&ov); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid override body"})
		return
	}

	if err := s.app.SaveOverride(name, ov); err != nil {
		obs.Logger.Error("override save failed", "shop", name, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved", "shop": name})
}

// queryParams maps the request's raw query strings into app.QueryParams.
func queryParams(c *gin.Context, sort string) app.QueryParams {
	return app.QueryParams{
		Search:      c.Query("q"),
		Selected:    c.Query("select"),
		UserX:       c.Query("x"),
		UserZ:       c.Query("z"),
		MaxDistance: c.Query("max_distance"),
		MinRating:   c.Query("min_rating"),
		Sort:        sort,
	}
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	return strings.TrimPrefix(auth, "Bearer ")
}
