package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sbm-group/scorecard-cli/internal/loader"
	"github.com/sbm-group/scorecard-cli/internal/model"
	"github.com/sbm-group/scorecard-cli/internal/pipeline"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		p, err := newPipeline()
		if err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(p),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

// newRouter builds the dashboard API routes.
func newRouter(p *pipeline.Pipeline) http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/status", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"cache": p.CacheStats()})
	})

	r.Get("/api/months", func(w http.ResponseWriter, _ *http.Request) {
		months := p.Months()
		out := make([]map[string]string, 0, len(months))
		for _, m := range months {
			out = append(out, map[string]string{
				"key":     m.Key(),
				"display": m.Display(),
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"months": out})
	})

	r.Get("/api/scorecards/{month}", func(w http.ResponseWriter, req *http.Request) {
		cat, ok := loadCatalog(w, req, p)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, cat)
	})

	r.Get("/api/scorecards/{month}/accounts/{key}", func(w http.ResponseWriter, req *http.Request) {
		cat, ok := loadCatalog(w, req, p)
		if !ok {
			return
		}
		rec, ok := cat.Records[chi.URLParam(req, "key")]
		if !ok {
			writeError(w, http.StatusNotFound, "unknown account")
			return
		}
		writeJSON(w, http.StatusOK, rec)
	})

	return r
}

// loadCatalog resolves the {month} URL parameter and runs the pipeline,
// translating failures to HTTP responses. Returns false when a response has
// already been written.
func loadCatalog(w http.ResponseWriter, req *http.Request, p *pipeline.Pipeline) (*model.Catalog, bool) {
	month, err := model.ParseMonthKey(chi.URLParam(req, "month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month key")
		return nil, false
	}

	cat, err := p.Load(month)
	if err != nil {
		if eris.Is(err, loader.ErrUndecodable) {
			writeError(w, http.StatusUnprocessableEntity, "input file not decodable")
			return nil, false
		}
		zap.L().Error("load failed",
			zap.String("month", month.Key()),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "load failed")
		return nil, false
	}
	return cat, true
}

// requestLogger logs one line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zap.L().Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
