package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/zacharylandes/fizzbit-sub000/internal/blend"
	"github.com/zacharylandes/fizzbit-sub000/internal/sketch"
	"github.com/zacharylandes/fizzbit-sub000/internal/telemetry"
	"github.com/zacharylandes/fizzbit-sub000/models"
	"github.com/zacharylandes/fizzbit-sub000/store"
	"github.com/zacharylandes/fizzbit-sub000/types"
)

func writeAPIJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// storeError maps store sentinels onto HTTP status codes.
func storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, types.ErrIdeaNotFound) {
		http.Error(w, "idea not found", http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// handleGenerate produces a batch of cards for a subject under the blend at
// (x, y) and persists each one so follow-up calls can reference them by ID.
func (s *Server) handleGenerate(defaults serverDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.generator == nil {
			http.Error(w, "no LLM provider configured", http.StatusServiceUnavailable)
			return
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.Subject == "" {
			http.Error(w, "subject is required", http.StatusBadRequest)
			return
		}
		count := req.Count
		if count <= 0 {
			count = defaults.batchCount
		}

		pos := blend.ClampToTriangle(blend.Point{X: req.X, Y: req.Y}, blend.DefaultVertices)
		weights := blend.Compute(pos, blend.DefaultVertices)

		cards, err := s.generator.NextBatch(r.Context(), req.Subject, weights, count)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		source := models.IdeaSource(req.Source)
		switch source {
		case models.SourceText, models.SourceImage, models.SourceAudio, models.SourceDrawing:
		default:
			source = models.SourceText
		}

		persisted := make([]models.Idea, 0, len(cards))
		for _, card := range cards {
			card.Source = source
			if req.SourceContent != "" {
				content := req.SourceContent
				card.SourceContent = &content
			}
			saved, err := s.store.CreateIdea(card)
			if err != nil {
				// Don't leave a half-written batch behind.
				for _, p := range persisted {
					_ = s.store.DeleteIdea(p.ID)
				}
				storeError(w, err)
				return
			}
			persisted = append(persisted, saved)
		}

		s.telemetry.Capture(telemetry.EventIdeaGenerated, map[string]interface{}{
			"count":  len(persisted),
			"source": string(source),
		})

		writeAPIJSON(w, GenerateResponse{
			Ideas: persisted,
			Weights: WeightsPayload{
				Wild:       weights.Wild,
				Actionable: weights.Actionable,
				Deep:       weights.Deep,
			},
		})
	}
}

func (s *Server) handleListIdeas(w http.ResponseWriter, r *http.Request) {
	var filter func(models.Idea) bool
	if r.URL.Query().Get("saved") == "true" {
		filter = store.FilterSaved
	}
	ideas, err := s.store.ListIdeas(filter, nil)
	if err != nil {
		storeError(w, err)
		return
	}
	writeAPIJSON(w, models.IdeaList{Ideas: ideas, TotalCount: len(ideas)})
}

func (s *Server) handleGetIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := s.store.GetIdea(r.PathValue("id"))
	if err != nil {
		storeError(w, err)
		return
	}
	writeAPIJSON(w, idea)
}

func (s *Server) handleDeleteIdea(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteIdea(r.PathValue("id")); err != nil {
		storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveIdea(w http.ResponseWriter, r *http.Request) {
	idea, err := s.store.MarkSaved(r.PathValue("id"))
	if err != nil {
		storeError(w, err)
		return
	}
	s.telemetry.Capture(telemetry.EventIdeaSaved, map[string]interface{}{
		"source": string(idea.Source),
	})
	writeAPIJSON(w, idea)
}

// handleExplore branches follow-on ideas off a persisted card and stores them
// with the parent link set.
func (s *Server) handleExplore(defaults serverDefaults) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.generator == nil {
			http.Error(w, "no LLM provider configured", http.StatusServiceUnavailable)
			return
		}

		parent, err := s.store.GetIdea(r.PathValue("id"))
		if err != nil {
			storeError(w, err)
			return
		}

		var req ExploreRequest
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		count := req.Count
		if count <= 0 {
			count = defaults.batchCount
		}

		cards, err := s.generator.Explore(r.Context(), parent, count)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}

		persisted := make([]models.Idea, 0, len(cards))
		for i := range cards {
			cards[i].WithParent(parent.ID)
			saved, err := s.store.CreateIdea(cards[i])
			if err != nil {
				storeError(w, err)
				return
			}
			persisted = append(persisted, saved)
		}

		s.telemetry.Capture(telemetry.EventIdeaExplored, map[string]interface{}{
			"count": len(persisted),
		})

		writeAPIJSON(w, ExploreResponse{Parent: parent, Ideas: persisted})
	}
}

// handleIllustration renders the deterministic SVG sketch for an idea. The
// same title always produces the same image, so the response is cacheable.
func (s *Server) handleIllustration(w http.ResponseWriter, r *http.Request) {
	idea, err := s.store.GetIdea(r.PathValue("id"))
	if err != nil {
		storeError(w, err)
		return
	}
	svg := sketch.Generate(idea.Title)
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(svg))
}

func (s *Server) handleGetCanvas(w http.ResponseWriter, r *http.Request) {
	canvas, err := s.store.GetCanvas()
	if err != nil {
		storeError(w, err)
		return
	}
	writeAPIJSON(w, canvas)
}

func (s *Server) handlePutCanvas(w http.ResponseWriter, r *http.Request) {
	var canvas models.Canvas
	if err := json.NewDecoder(r.Body).Decode(&canvas); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if err := s.store.SaveCanvas(canvas); err != nil {
		if errors.Is(err, types.ErrIdeaNotFound) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		storeError(w, err)
		return
	}
	writeAPIJSON(w, canvas)
}

func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeAPIJSON(w, map[string]string{
		"name":    "fizzbit",
		"status":  "ok",
		"version": "1",
	})
}
