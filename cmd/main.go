package main

import (
	"backend/config"
	"backend/controllers"
	"backend/routes"
	"backend/services"

	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load(log)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	ledger := services.NewLedgerService(db)
	vision := services.NewVisionService(cfg.OpenAIAPIKey)

	r := routes.SetupRouter(
		controllers.NewEntryController(ledger, log),
		controllers.NewAnalyzeController(vision, log),
	)

	log.Info("Starting server", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server exited", zap.Error(err))
	}
}
