// API routes definition
//
// Gateway HTTP routing:
// - Route definitions for the playlist endpoints
// - Handler mapping
// - Debug/stats endpoint registration

package api

import (
	"net/http"
)

// Router manages API routes
type Router struct {
	mux *http.ServeMux
}

// NewRouter creates a new API router
func NewRouter() *Router {
	return &Router{
		mux: http.NewServeMux(),
	}
}

// Handler returns the HTTP handler for the router
func (r *Router) Handler() http.Handler {
	return r.mux
}

// RegisterGateway wires the playlist-reshaping endpoints and the debug
// endpoints onto the router.
func (r *Router) RegisterGateway(g *Gateway) {
	r.mux.HandleFunc("/vod.m3u8", g.VODHandler())
	r.mux.HandleFunc("/live.m3u8", g.LiveHandler())
	r.mux.HandleFunc("/health", g.HealthHandler())
	r.mux.HandleFunc("/stats", g.StatsHandler())
}

// RegisterVersionEndpoint registers a version endpoint
func (r *Router) RegisterVersionEndpoint(version, buildTime, gitCommit string) {
	r.mux.HandleFunc("/version", func(w http.ResponseWriter, req *http.Request) {
		info := map[string]string{
			"version":   version,
			"buildTime": buildTime,
			"gitCommit": gitCommit,
		}
		WriteJSON(w, http.StatusOK, info)
	})
}
