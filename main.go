package main

import (
	auth "Kelvin/internal/auth"
	autodesign "Kelvin/internal/calc/autodesign"
	batch "Kelvin/internal/calc/batch"
	building "Kelvin/internal/calc/building"
	flooru "Kelvin/internal/calc/flooru"
	heatpump "Kelvin/internal/calc/heatpump"
	hotwater "Kelvin/internal/calc/hotwater"
	importer "Kelvin/internal/calc/importer"
	radiator "Kelvin/internal/calc/radiator"
	recommend "Kelvin/internal/calc/recommend"
	report "Kelvin/internal/calc/report"
	project "Kelvin/internal/project"
	refdata "Kelvin/internal/refdata"
	repo "Kelvin/internal/repo"
	"context"
	"database/sql"
	"sync"
	"syscall"
	"time"

	"fmt"
	"os/signal"

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
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	// Load TOKEN_KEY from environment
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	projectH := &project.ProjectHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Delete).Methods("DELETE")

	ref := refdata.New()

	buildingH := &building.Handler{Ref: ref}
	hotwaterH := &hotwater.Handler{}
	heatpumpH := &heatpump.Handler{}
	radiatorH := &radiator.Handler{}
	flooruH := &flooru.Handler{}
	reportH := &report.Handler{Ref: ref}
	batchH := &batch.Handler{}
	recommendH := &recommend.Handler{}
	autodesignH := &autodesign.Handler{Ref: ref}
	importerH := &importer.Handler{Ref: ref}

	secureApi.HandleFunc("/tools/building/heatloss", buildingH.HeatLoss).Methods("POST")
	secureApi.HandleFunc("/tools/hotwater/calc", hotwaterH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/heatpump/calc", heatpumpH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/heatpump/consumption", heatpumpH.Consumption).Methods("POST")
	secureApi.HandleFunc("/tools/heatpump/recommend", recommendH.HeatPump).Methods("POST")
	secureApi.HandleFunc("/tools/radiator/calc", radiatorH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/radiator/batch", batchH.Radiator).Methods("POST")
	secureApi.HandleFunc("/tools/floor-u/calc", flooruH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/design/auto", autodesignH.Design).Methods("POST")
	secureApi.HandleFunc("/tools/survey/import", importerH.Survey).Methods("POST")
	secureApi.HandleFunc("/tools/survey/export", importerH.Export).Methods("POST")
}
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
