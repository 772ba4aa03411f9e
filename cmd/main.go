package main

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	"breachdetector/internal/handler"
	"breachdetector/internal/models"
	svr "breachdetector/internal/server"
	"breachdetector/internal/service"
	"breachdetector/internal/storage"
)

func main() {
	// .env files are optional and only matter for local development.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	printBanner()

	config, err := svr.NewConfig()
	if err != nil {
		models.ErrLog.Fatal(err)
	}

	rdb := storage.InitRedis(config)
	if rdb != nil {
		defer rdb.Close()
	}

	db := storage.InitDB(config)
	defer db.Close()

	store := storage.NewStorage(db)
	cache := storage.NewRiskCache(rdb)
	services := service.NewService(store, cache, config)
	handlers := handler.NewHandler(services, config, rdb)

	server := new(svr.Server)
	if err := server.Run(config.Port, handlers.InitRoutes()); err != nil {
		models.ErrLog.Printf("Error running server: %s\n", err)
	}
}

func printBanner() {
	figure.NewColorFigure("BREACHWATCH", "doom", "red", true).Print()

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	_, _ = cyan.Println("════════════════════════════════════════════════")
	_, _ = green.Println("    Breach Risk Detector | demo pipeline, simulated inputs")
	_, _ = cyan.Println("════════════════════════════════════════════════")
}
