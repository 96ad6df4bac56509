package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/origenlab/backend/internal/store"
)

type GenerationResponse struct {
	ID        int64  `json:"id" example:"12"`
	Kind      string `json:"kind" example:"quiz"`
	Topic     string `json:"topic" example:"pasteur"`
	Status    string `json:"status" example:"ok"`
	Items     int    `json:"items" example:"20"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latency_ms" example:"5300"`
	CreatedAt string `json:"created_at" example:"2024-05-01T10:00:00Z"`
}

type KindStatsResponse struct {
	Kind         string `json:"kind" example:"definitions"`
	Total        int    `json:"total"`
	OK           int    `json:"ok"`
	Empty        int    `json:"empty"`
	Failed       int    `json:"failed"`
	Invalid      int    `json:"invalid"`
	Cancelled    int    `json:"cancelled"`
	AvgLatencyMS int64  `json:"avg_latency_ms"`
}

func toGenerationResponse(g store.Generation) GenerationResponse {
	return GenerationResponse{
		ID:        g.ID,
		Kind:      g.Kind,
		Topic:     g.Topic,
		Status:    string(g.Status),
		Items:     g.Items,
		Error:     g.Error,
		LatencyMS: g.Latency.Milliseconds(),
		CreatedAt: g.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// listGenerations returns the most recent Content Provider calls.
// @Summary      List generations
// @Description  Newest first. Each entry is one provider call and its outcome.
// @Tags         Generations
// @Produce      json
// @Param        limit  query     int  false  "Maximum entries (default 50)"
// @Success      200    {array}   GenerationResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /generations [get]
func (h *Handler) listGenerations(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	gens, err := h.journal.ListGenerations(r.Context(), limit)
	if h.handleError(w, err, "generations") {
		return
	}

	response := make([]GenerationResponse, len(gens))
	for i, g := range gens {
		response[i] = toGenerationResponse(g)
	}
	respondJSON(w, http.StatusOK, response)
}

// getGeneration returns one journal entry.
// @Summary      Get a generation
// @Tags         Generations
// @Produce      json
// @Param        generationID  path      int  true  "Generation ID"
// @Success      200           {object}  GenerationResponse
// @Failure      400           {object}  map[string]string
// @Failure      404           {object}  map[string]string
// @Router       /generations/{generationID} [get]
func (h *Handler) getGeneration(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("generationID"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid generation id")
		return
	}

	g, err := h.journal.GetGeneration(r.Context(), id)
	if h.handleError(w, err, "generation") {
		return
	}
	respondJSON(w, http.StatusOK, toGenerationResponse(*g))
}

// generationStats aggregates the journal per material kind.
// @Summary      Generation statistics
// @Tags         Generations
// @Produce      json
// @Success      200  {array}   KindStatsResponse
// @Failure      500  {object}  map[string]string
// @Router       /generations/stats [get]
func (h *Handler) generationStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.journal.GenerationStats(r.Context())
	if h.handleError(w, err, "generation stats") {
		return
	}

	response := make([]KindStatsResponse, len(stats))
	for i, s := range stats {
		response[i] = KindStatsResponse(s)
	}
	respondJSON(w, http.StatusOK, response)
}
