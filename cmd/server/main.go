package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/lexecon/lost-earnings-calculator/internal/api"
)

var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := api.RouterConfig{}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	h := api.NewHandler(version)
	if token := os.Getenv("API_TOKEN"); token != "" {
		auth := api.BearerToken{Token: token}
		cfg.Authorizer = auth
		h.AuthName = auth.Name()
	} else {
		h.AuthName = api.AllowAll{}.Name()
		log.Printf("API_TOKEN not set, API is open")
	}

	log.Printf("lost-earnings API %s listening on :%s", version, port)
	if err := http.ListenAndServe(":"+port, api.NewRouter(h, cfg)); err != nil {
		log.Fatal(err)
	}
}
