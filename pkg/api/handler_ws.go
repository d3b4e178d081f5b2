package api

import (
	"net/http"
	"net/url"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler upgrades HTTP connections to WebSocket and delegates to ConnectionManager.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "WebSocket not available")
	}

	// Same-origin requests always pass; cross-origin requests must match the
	// dashboard URL or a configured origin pattern.
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		OriginPatterns: s.allowedOriginPatterns(),
	})
	if err != nil {
		return err
	}

	// Register connection with the ConnectionManager.
	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn)
	return nil
}

func (s *Server) allowedOriginPatterns() []string {
	var patterns []string
	if s.cfg != nil {
		if s.cfg.DashboardURL != "" {
			if u, err := url.Parse(s.cfg.DashboardURL); err == nil && u.Host != "" {
				patterns = append(patterns, u.Host)
			}
		}
		patterns = append(patterns, s.cfg.AllowedWSOrigins...)
	}
	return patterns
}
