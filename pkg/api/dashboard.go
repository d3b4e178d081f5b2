package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	echo "github.com/labstack/echo/v5"
)

// setupDashboardRoutes registers SPA serving for the dashboard build.
// No-op when no dashboard directory is configured or index.html is missing.
//
// Caching strategy: hashed Vite bundles under /assets/ are immutable; all
// unhashed files (index.html, favicon, robots.txt) use no-cache so browsers
// pick up new asset hashes right after a deployment.
func (s *Server) setupDashboardRoutes() {
	if s.dashboardDir == "" {
		return
	}

	indexPath := filepath.Join(s.dashboardDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		slog.Warn("Dashboard directory has no index.html, skipping SPA routes",
			"dir", s.dashboardDir)
		return
	}

	s.echo.GET("/*", s.spaHandler)
	slog.Info("Dashboard SPA serving enabled", "dir", s.dashboardDir)
}

// spaHandler serves dashboard files with an index.html fallback for client
// routed paths. API and health paths are never intercepted.
func (s *Server) spaHandler(c *echo.Context) error {
	reqPath := c.Request().URL.Path

	if strings.HasPrefix(reqPath, "/api/") || reqPath == "/health" || reqPath == "/ws" {
		return echo.ErrNotFound
	}

	// Resolve inside the dashboard dir only.
	rel := strings.TrimPrefix(filepath.Clean("/"+reqPath), "/")
	filePath := filepath.Join(s.dashboardDir, rel)
	if !strings.HasPrefix(filePath, filepath.Clean(s.dashboardDir)) {
		return echo.ErrNotFound
	}

	if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
		if strings.HasPrefix(reqPath, "/assets/") {
			c.Response().Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		} else {
			c.Response().Header().Set("Cache-Control", "no-cache")
		}
		http.ServeFile(c.Response(), c.Request(), filePath)
		return nil
	}

	// Unknown path: SPA fallback to index.html for client-side routing.
	c.Response().Header().Set("Cache-Control", "no-cache")
	http.ServeFile(c.Response(), c.Request(), filepath.Join(s.dashboardDir, "index.html"))
	return nil
}
