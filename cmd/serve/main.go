package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/bkk-rail-3d/analyzer/internal/config"
	"github.com/bkk-rail-3d/analyzer/internal/db"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	var database *db.DB
	if cfg.DatabasePath != "" {
		var err error
		database, err = db.Connect(cfg.DatabasePath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer database.Close()
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
		})
	})

	r.Get("/coverage.geojson", func(w http.ResponseWriter, req *http.Request) {
		data, err := os.ReadFile(cfg.OutputPath)
		if err != nil {
			http.Error(w, "coverage document not generated yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/geo+json")
		w.Write(data)
	})

	r.Get("/api/runs", func(w http.ResponseWriter, req *http.Request) {
		if database == nil {
			http.Error(w, "no database configured", http.StatusServiceUnavailable)
			return
		}
		runs, err := database.ListRuns(req.Context(), 50)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, runs)
	})

	r.Get("/api/runs/{runID}", func(w http.ResponseWriter, req *http.Request) {
		if database == nil {
			http.Error(w, "no database configured", http.StatusServiceUnavailable)
			return
		}
		run, err := database.GetRun(req.Context(), chi.URLParam(req, "runID"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if run == nil {
			http.Error(w, "run not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, run)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	log.Printf("Coverage server starting on :%s", port)
	log.Println("  GET /health")
	log.Println("  GET /coverage.geojson")
	log.Println("  GET /api/runs")
	log.Println("  GET /api/runs/{runID}")

	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
