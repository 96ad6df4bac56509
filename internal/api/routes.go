package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Topics
	mux.HandleFunc("GET /topics", h.listTopics)
	mux.HandleFunc("GET /topics/{topicID}", h.getTopic)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.deleteSession)
	mux.HandleFunc("POST /sessions/{sessionID}/actions", h.dispatchAction)

	// Generation journal
	mux.HandleFunc("GET /generations", h.listGenerations)
	mux.HandleFunc("GET /generations/stats", h.generationStats)
	mux.HandleFunc("GET /generations/{generationID}", h.getGeneration)
}
