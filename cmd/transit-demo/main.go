package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	lib "github.com/theoremus-urban-solutions/transit-demo"
	"github.com/theoremus-urban-solutions/transit-demo/auth"
	"github.com/theoremus-urban-solutions/transit-demo/config"
	"github.com/theoremus-urban-solutions/transit-demo/store"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (defaults to ./config.yml)")
	flag.Parse()

	// .env for local development; .env.local overrides
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	lib.InitLogging()

	var cfg *config.AppConfig
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := store.NewClient(time.Duration(cfg.Sources.TimeoutMS) * time.Millisecond)
	st, err := store.LoadAll(context.Background(), client, store.Sources{
		Routes:    cfg.Sources.Routes,
		Vehicles:  cfg.Sources.Vehicles,
		Schedules: cfg.Sources.Schedules,
		Logs:      cfg.Sources.Logs,
		Analytics: cfg.Sources.Analytics,
	})
	if err != nil {
		// A failed load leaves nothing to serve; the only recovery is a
		// restart with reachable sources.
		log.Fatalf("data load failed: %v", err)
	}
	log.Printf("loaded %d routes, %d vehicles, %d schedules, %d log entries",
		len(st.Routes()), len(st.Vehicles()), len(st.Schedules()), len(st.Logs()))

	credentials := make([]auth.Credential, 0, len(cfg.Credentials))
	for _, c := range cfg.Credentials {
		credentials = append(credentials, auth.Credential{Email: c.Email, Password: c.Password, Role: c.Role})
	}

	api := lib.NewAPI(st, auth.New(credentials))
	lib.StartServer(cfg.Server.Port, lib.NewRouter(api, cfg.Server.AllowedOrigins))
	lib.HandleGracefulShutdown()
}
