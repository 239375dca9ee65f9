package server

import "net/http"

// registerRoutes sets up all API endpoints
func (s *Server) registerRoutes(defaults serverDefaults) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/ideas/generate", s.handleGenerate(defaults))
	mux.HandleFunc("GET /api/ideas", s.handleListIdeas)
	mux.HandleFunc("GET /api/ideas/{id}", s.handleGetIdea)
	mux.HandleFunc("DELETE /api/ideas/{id}", s.handleDeleteIdea)
	mux.HandleFunc("POST /api/ideas/{id}/save", s.handleSaveIdea)
	mux.HandleFunc("POST /api/ideas/{id}/explore", s.handleExplore(defaults))
	mux.HandleFunc("GET /api/ideas/{id}/illustration", s.handleIllustration)
	mux.HandleFunc("GET /api/canvas", s.handleGetCanvas)
	mux.HandleFunc("PUT /api/canvas", s.handlePutCanvas)
	mux.HandleFunc("GET /api/info", s.handleInfo)

	return s.corsMiddleware(mux)
}
