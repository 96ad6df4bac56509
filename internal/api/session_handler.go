package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/origenlab/backend/internal/domain/topic"
	"github.com/origenlab/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Topic string `json:"topic,omitempty" example:"pasteur"`
}

func (r *CreateSessionRequest) Validate() error {
	if r.Topic == "" {
		return nil
	}
	_, err := topic.Parse(r.Topic)
	return err
}

type ActionResponse struct {
	Applied bool             `json:"applied"`
	Session service.Snapshot `json:"session"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a session, optionally already inside a topic.
// @Summary      Create a session
// @Description  Starts a study session at Home. With a topic the session enters Learn for it right away.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  false  "Optional starting topic"
// @Success      201   {object}  service.Snapshot
// @Failure      400   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	snap := h.engine.Create()
	if req.Topic != "" {
		var err error
		snap, _, err = h.engine.Dispatch(snap.ID, service.SelectTopic{Topic: topic.ID(req.Topic)})
		if h.handleError(w, err, "session") {
			return
		}
	}

	respondJSON(w, http.StatusCreated, snap)
}

// getSession returns the current snapshot of a session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  service.Snapshot
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.engine.Get(r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

// deleteSession discards a session, cancelling its fetches and timers.
// @Summary      Delete a session
// @Tags         Sessions
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /sessions/{sessionID} [delete]
func (h *Handler) deleteSession(w http.ResponseWriter, r *http.Request) {
	err := h.engine.Delete(r.PathValue("sessionID"))
	if h.handleError(w, err, "session") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// dispatchAction applies one user action to a session.
// @Summary      Dispatch an action
// @Description  Body is a tagged action, e.g. {"type":"select_topic","topic":"pasteur"} or {"type":"submit_answer","option":2}.
// @Description  Actions that do not fit the current state are ignored and reported with applied=false.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Param        body       body      object  true  "Tagged action"
// @Success      200        {object}  ActionResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/actions [post]
func (h *Handler) dispatchAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read body")
		return
	}

	action, err := service.DecodeAction(json.RawMessage(body))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, applied, err := h.engine.Dispatch(r.PathValue("sessionID"), action)
	if h.handleError(w, err, "session") {
		return
	}

	respondJSON(w, http.StatusOK, ActionResponse{Applied: applied, Session: snap})
}
