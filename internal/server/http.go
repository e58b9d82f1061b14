package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"fluffy-fiesta/internal/engine"
	"fluffy-fiesta/internal/network"
	"fluffy-fiesta/internal/version"
	"fluffy-fiesta/pkg/logger"

	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Runner     *engine.Runner
	Dispatcher *engine.Dispatcher
	Hub        *network.Broadcaster
	Port       string
}

func New(runner *engine.Runner, dispatcher *engine.Dispatcher, hub *network.Broadcaster, port string) *Server {
	return &Server{
		Runner:     runner,
		Dispatcher: dispatcher,
		Hub:        hub,
		Port:       port,
	}
}

// Handler собирает все маршруты сервера.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	NewDebugHandler(s.Runner, s.Hub).RegisterRoutes(mux)
	return mux
}

// Run слушает порт до отмены ctx.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.WithError(err).Warn("HTTP shutdown failed")
		}
	}()

	logger.Log.WithFields(logrus.Fields{
		"component": "http",
		"port":      s.Port,
	}).Info("Fluffy Fiesta server running")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS поднимает websocket и запускает пампы клиента
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("Upgrade error")
		return
	}

	client := NewClient(s, conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(version.Info())
}
