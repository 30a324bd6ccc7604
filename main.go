package main

import (
	auth "Plenum/internal/auth"
	fittings "Plenum/internal/calc/fittings"
	batch "Plenum/internal/calc/premium/batch"
	importer "Plenum/internal/calc/premium/importer"
	recommend "Plenum/internal/calc/premium/recommend"
	schedule "Plenum/internal/calc/premium/schedule"
	report "Plenum/internal/calc/report"
	sizing "Plenum/internal/calc/sizing"
	diagram "Plenum/internal/diagram"
	profile "Plenum/internal/profile"
	project "Plenum/internal/project"
	repo "Plenum/internal/repo"
	"context"
	"database/sql"

	"encoding/json"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// loadCoeffTable picks the loss coefficient table for the server. With no
// COEFF_TABLE set the built-in catalog is used; a configured path that
// fails to load is a startup error, not a silent fallback.
func loadCoeffTable() *fittings.Table {
	path := os.Getenv("COEFF_TABLE")
	if path == "" {
		return fittings.DefaultTable()
	}
	table, err := fittings.LoadTable(path)
	if err != nil {
		log.Fatal("Coefficient table error: ", err)
	}
	log.Printf("Loaded coefficient table from %s (%d fitting types)", path, table.Len())
	return table
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresDB(db)
	if err := repo.CreateSchema(db); err != nil {
		log.Fatal("Schema setup error: ", err)
	}
	// Load TOKEN_KEY from environment
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}
	projectH := &project.Handler{Repo: userRepo}

	calc := fittings.NewCalculator(loadCoeffTable())

	limiter := auth.NewIPRateLimiter(1, 3)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")

	sizingH := &sizing.Handler{}
	secureApi.HandleFunc("/tools/ducts/size", sizingH.Size).Methods("POST")
	secureApi.HandleFunc("/tools/sizes", sizingH.Sizes).Methods("GET")
	secureApi.HandleFunc("/tools/materials", sizingH.Materials).Methods("GET")

	fittingsH := &fittings.Handler{Calc: calc}
	secureApi.HandleFunc("/tools/fittings/loss", fittingsH.Loss).Methods("POST")
	secureApi.HandleFunc("/tools/fittings/system", fittingsH.System).Methods("POST")
	secureApi.HandleFunc("/tools/fittings", fittingsH.List).Methods("GET")

	batchH := &batch.Handler{}
	recommendH := &recommend.Handler{}
	importerH := &importer.Handler{}
	scheduleH := &schedule.Handler{}
	reportH := &report.Handler{Calc: calc}
	diagramH := &diagram.Handler{}

	premium := func(h http.HandlerFunc) http.Handler {
		return profileH.RequirePremium(h)
	}

	secureApi.Handle("/tools/batch/size", premium(batchH.Size)).Methods("POST")
	secureApi.Handle("/tools/recommend/rect", premium(recommendH.Rect)).Methods("POST")
	secureApi.Handle("/tools/import/schedule", premium(importerH.Schedule)).Methods("POST")
	secureApi.Handle("/tools/export/schedule", premium(scheduleH.Export)).Methods("POST")
	secureApi.Handle("/tools/report/pdf", premium(reportH.Generate)).Methods("POST")
	secureApi.Handle("/tools/chart/png", premium(diagramH.Friction)).Methods("POST")

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Delete).Methods("DELETE")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	HandleList(mux, db)
	handler := CORS(mux)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Starting server on :" + port)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		cert, key := os.Getenv("TLS_CERT"), os.Getenv("TLS_KEY")
		var err error
		if cert != "" && key != "" {
			err = server.ListenAndServeTLS(cert, key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
