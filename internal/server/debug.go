package server

import (
	"encoding/json"
	"net/http"

	"fluffy-fiesta/internal/engine"
	"fluffy-fiesta/internal/network"
)

// DebugHandler отдаёт последний опубликованный снимок по частям.
// Читает только Runner.Latest, цикл симуляции не трогает.
type DebugHandler struct {
	Runner *engine.Runner
	Hub    *network.Broadcaster
}

func NewDebugHandler(r *engine.Runner, hub *network.Broadcaster) *DebugHandler {
	return &DebugHandler{Runner: r, Hub: hub}
}

func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/world", h.handleWorld)
	mux.HandleFunc("/debug/entities", h.handleEntities)
	mux.HandleFunc("/debug/camera", h.handleCamera)
}

// WorldSummary - сводка для /debug/world
type WorldSummary struct {
	Tick        uint64  `json:"tick"`
	Time        float64 `json:"time"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	EntityCount int     `json:"entity_count"`
	Spawnables  int     `json:"spawnables"`
	Subscribers int     `json:"subscribers"`
}

func (h *DebugHandler) handleWorld(w http.ResponseWriter, r *http.Request) {
	snap := h.Runner.Latest()
	summary := WorldSummary{
		Tick:        snap.Tick,
		Time:        snap.Time,
		Width:       snap.Grid.Width,
		Height:      snap.Grid.Height,
		EntityCount: len(snap.Entities),
		Spawnables:  snap.Spawnables,
	}
	if h.Hub != nil {
		summary.Subscribers = h.Hub.SubscriberCount()
	}
	writeJSON(w, summary)
}

// /debug/entities?kind=character - фильтр по виду необязателен
func (h *DebugHandler) handleEntities(w http.ResponseWriter, r *http.Request) {
	entities := h.Runner.Latest().Entities
	if kind := r.URL.Query().Get("kind"); kind != "" {
		filtered := entities[:0:0]
		for _, e := range entities {
			if e.Kind == kind {
				filtered = append(filtered, e)
			}
		}
		entities = filtered
	}
	writeJSON(w, entities)
}

func (h *DebugHandler) handleCamera(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Runner.Latest().Camera)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
