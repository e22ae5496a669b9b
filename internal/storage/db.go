package storage

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/config"
	"github.com/Joasro/Industrias/internal/logger"
	"github.com/Joasro/Industrias/internal/models"
)

func OpenDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.Port,
		cfg.Database.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	SyncModels(db)
	SeedCountries(db)

	return db, nil
}

// SyncModels migrates each table in dependency order. A failing table is
// logged and skipped so the rest of the schema still comes up, matching
// the per-table sync the service has always done at boot.
func SyncModels(db *gorm.DB) {
	tables := []struct {
		name  string
		model any
	}{
		{"Pais", &models.Country{}},
		{"TendenciaTecnologica", &models.Trend{}},
		{"Usuario", &models.User{}},
		{"Empresa", &models.Company{}},
		{"ProductoServicio", &models.Product{}},
		{"EventoSector", &models.Event{}},
		{"IndicadorEconomico", &models.Indicator{}},
		{"RegistroAcceso", &models.AccessLog{}},
		{"EncuestaDemanda", &models.DemandSurvey{}},
	}

	for _, t := range tables {
		if err := db.AutoMigrate(t.model); err != nil {
			logger.Log.WithError(err).Errorf("sync %s failed", t.name)
			continue
		}
		logger.Log.Debugf("modelo %s sincronizado", t.name)
	}
}

// SeedCountries inserts the initial country rows once, on an empty table.
func SeedCountries(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		logger.Log.WithError(err).Error("seed: count paises failed")
		return
	}
	if count > 0 {
		return
	}

	zeroF := 0.0
	zeroI := 0
	seed := []models.Country{
		{Code: "HND", Name: "Honduras", TechGDP: &zeroF, SoftwareCompanies: &zeroI, ITExports: &zeroF},
		{Code: "GTM", Name: "Guatemala", TechGDP: &zeroF, SoftwareCompanies: &zeroI, ITExports: &zeroF},
		{Code: "CRI", Name: "Costa Rica", TechGDP: &zeroF, SoftwareCompanies: &zeroI, ITExports: &zeroF},
	}
	if err := db.Create(&seed).Error; err != nil {
		logger.Log.WithError(err).Error("seed: insert paises failed")
		return
	}
	logger.Log.Info("seed: países iniciales insertados")
}
