package storage

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Joasro/Industrias/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestSyncModelsCreatesAllTables(t *testing.T) {
	db := openTestDB(t)
	SyncModels(db)

	for _, table := range []string{
		"paises", "tendencias_tecnologicas", "usuarios", "empresas",
		"productos_servicios", "eventos_sectores", "indicadores_economicos",
		"registros_accesos", "encuestas_demanda",
	} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("tabla %s no creada", table)
		}
	}
}

func TestSeedCountriesIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	SyncModels(db)

	SeedCountries(db)
	SeedCountries(db)

	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Fatalf("países sembrados = %d, quería 3", count)
	}

	var hnd models.Country
	if err := db.First(&hnd, "codigo_pais = ?", "HND").Error; err != nil {
		t.Fatalf("HND ausente: %v", err)
	}
	if hnd.Name != "Honduras" {
		t.Fatalf("nombre de HND = %q", hnd.Name)
	}
}

func TestSeedCountriesSkipsNonEmptyTable(t *testing.T) {
	db := openTestDB(t)
	SyncModels(db)

	if err := db.Create(&models.Country{Code: "ARG", Name: "Argentina"}).Error; err != nil {
		t.Fatal(err)
	}
	SeedCountries(db)

	var count int64
	if err := db.Model(&models.Country{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Fatalf("la siembra tocó una tabla no vacía: %d filas", count)
	}
}
