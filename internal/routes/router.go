// internal/routes/router.go
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/config"
	"github.com/Joasro/Industrias/internal/handlers"
	"github.com/Joasro/Industrias/internal/middleware"
)

// NewRouter wires every resource group. Reads are public; writes require
// a session, and user management additionally requires the admin role.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	secret := cfg.Auth.JWTSecret
	auth := middleware.AuthRequired(db, secret)

	countryH := handlers.NewCountryHandler(db)
	companyH := handlers.NewCompanyHandler(db)
	productH := handlers.NewProductHandler(db)
	trendH := handlers.NewTrendHandler(db)
	eventH := handlers.NewEventHandler(db)
	indicatorH := handlers.NewIndicatorHandler(db)
	userH := handlers.NewUserHandler(db)
	accessH := handlers.NewAccessLogHandler(db)
	surveyH := handlers.NewSurveyHandler(db)
	authH := handlers.NewAuthHandler(db, secret)
	frontH := handlers.NewFrontendHandler(db)

	r.GET("/", handlers.Health)

	api := r.Group("/api")

	pais := api.Group("/pais")
	{
		pais.GET("", countryH.List)
		pais.GET("/buscar", countryH.Search)
		pais.POST("", auth, countryH.Create)
		pais.PUT("", auth, countryH.Update)
		pais.DELETE("", auth, countryH.Delete)
	}

	empresa := api.Group("/empresa")
	{
		empresa.GET("", companyH.List)
		empresa.GET("/buscar", companyH.Search)
		empresa.POST("", auth, companyH.Create)
		empresa.PUT("", auth, companyH.Update)
		empresa.DELETE("", auth, companyH.Delete)
	}

	producto := api.Group("/producto-servicio")
	{
		producto.GET("", productH.List)
		producto.GET("/buscar", productH.Search)
		producto.POST("", auth, productH.Create)
		producto.PUT("", auth, productH.Update)
		producto.DELETE("", auth, productH.Delete)
	}

	tendencia := api.Group("/tendencia-tecnologica")
	{
		tendencia.GET("", trendH.List)
		tendencia.GET("/buscar", trendH.Search)
		tendencia.POST("", auth, trendH.Create)
		tendencia.PUT("", auth, trendH.Update)
		tendencia.DELETE("", auth, trendH.Delete)
	}

	evento := api.Group("/evento-sector")
	{
		evento.GET("", eventH.List)
		evento.GET("/buscar", eventH.Search)
		evento.POST("", auth, eventH.Create)
		evento.PUT("", auth, eventH.Update)
		evento.DELETE("", auth, eventH.Delete)
	}

	indicador := api.Group("/indicador-economico")
	{
		indicador.GET("", indicatorH.List)
		indicador.GET("/buscar", indicatorH.Search)
		indicador.POST("", auth, indicatorH.Create)
		indicador.PUT("", auth, indicatorH.Update)
		indicador.DELETE("", auth, indicatorH.Delete)
	}

	usuario := api.Group("/usuario")
	{
		usuario.GET("", userH.List)
		usuario.GET("/buscar", userH.Search)
		usuario.POST("", auth, middleware.RequireAdmin(), userH.Create)
		usuario.PUT("", auth, middleware.RequireAdmin(), userH.Update)
		usuario.DELETE("", auth, middleware.RequireAdmin(), userH.Delete)
	}

	registro := api.Group("/registro-acceso")
	{
		registro.GET("", accessH.List)
		registro.GET("/buscar", accessH.Search)
		registro.POST("", auth, accessH.Create)
		registro.DELETE("", auth, accessH.Delete)
	}

	encuesta := api.Group("/encuesta-demanda")
	{
		encuesta.GET("", surveyH.List)
		encuesta.GET("/buscar", surveyH.Search)
		encuesta.POST("", auth, surveyH.Create)
		encuesta.PUT("", auth, surveyH.Update)
		encuesta.DELETE("", auth, surveyH.Delete)
	}

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", authH.Login)
		authGroup.POST("/logout", middleware.AuthOptional(db, secret), authH.Logout)
	}

	frontend := api.Group("/frontend")
	{
		frontend.GET("/comparativa-paises", frontH.CountryComparison)
		frontend.GET("/eventos-por-fecha", frontH.EventsByDateRange)
		frontend.GET("/empresas-internacionales", frontH.InternationalCompanies)
		frontend.GET("/top-paises-demanda-tecnologica", frontH.TopCountriesTechDemand)
		frontend.GET("/productos-por-sector", frontH.ProductsBySector)
		frontend.GET("/ranking-paises-empresas", frontH.CountryRankingByCompanies)
		frontend.GET("/empresas-mayor-crecimiento", frontH.TopGrowthCompanies)
		frontend.GET("/distribucion-empresas", frontH.CompanyDistribution)
		frontend.GET("/comparar-indicadores", frontH.CompareIndicators)
		frontend.GET("/indicadores-por-pais", frontH.IndicatorsByCountry)
		frontend.GET("/eventos-por-tipo", frontH.EventsByType)
		frontend.GET("/empresas-por-tendencia", frontH.CompaniesByTrend)
		frontend.GET("/tendencias-emergentes", frontH.EmergingTrends)
		frontend.GET("/productos-mas-demandados", frontH.TopDemandedProducts)
		frontend.GET("/detalle-empresa", frontH.CompanyDetail)
		frontend.GET("/empresas-por-pais-sector", frontH.CompaniesByCountrySector)
		frontend.GET("/buscar-empresa", frontH.SearchCompanies)
		frontend.GET("/empresas-influyentes", frontH.InfluentialCompanies)
	}

	return r
}
