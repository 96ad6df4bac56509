package api

import (
	"net/http"

	"github.com/origenlab/backend/internal/domain/topic"
)

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Sessions int    `json:"sessions" example:"3"`
}

type TopicResponse struct {
	ID          string `json:"id" example:"pasteur"`
	Title       string `json:"title" example:"Louis Pasteur"`
	Description string `json:"description"`
}

func toTopicResponse(t topic.Topic) TopicResponse {
	return TopicResponse{ID: string(t.ID), Title: t.Title, Description: t.Description}
}

// health reports liveness and the number of live sessions.
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Sessions: h.engine.Count()})
}

// listTopics returns the topic catalog.
// @Summary      List topics
// @Description  Returns the seven study topics in display order.
// @Tags         Topics
// @Produce      json
// @Success      200  {array}  TopicResponse
// @Router       /topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	catalog := topic.Catalog()
	response := make([]TopicResponse, len(catalog))
	for i, t := range catalog {
		response[i] = toTopicResponse(t)
	}
	respondJSON(w, http.StatusOK, response)
}

// getTopic returns one topic.
// @Summary      Get a topic
// @Tags         Topics
// @Produce      json
// @Param        topicID  path      string  true  "Topic ID"
// @Success      200      {object}  TopicResponse
// @Failure      404      {object}  map[string]string
// @Router       /topics/{topicID} [get]
func (h *Handler) getTopic(w http.ResponseWriter, r *http.Request) {
	t, ok := topic.Lookup(topic.ID(r.PathValue("topicID")))
	if !ok {
		respondError(w, http.StatusNotFound, "topic not found")
		return
	}
	respondJSON(w, http.StatusOK, toTopicResponse(t))
}
