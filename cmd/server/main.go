// cmd/server/main.go
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/Joasro/Industrias/internal/config"
	"github.com/Joasro/Industrias/internal/logger"
	"github.com/Joasro/Industrias/internal/routes"
	"github.com/Joasro/Industrias/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logger.Log.WithError(err).Fatal("configuración inválida")
	}

	logger.Init(cfg.Log.Level, cfg.Log.File)

	db, err := storage.OpenDB(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("no se pudo conectar a la base de datos")
	}

	r := routes.NewRouter(db, cfg)

	addr := ":" + cfg.Server.Port
	logger.Log.Infof("servidor escuchando en %s", addr)

	if err := r.Run(addr); err != nil {
		logger.Log.WithError(err).Fatal("el servidor se detuvo")
	}
}
