package handlers

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Joasro/Industrias/internal/models"
)

// FrontendHandler serves the read-only aggregated views the dashboard
// consumes. Every operation is a pure read; result order on ties is
// whatever the engine returns unless a sort is stated.
type FrontendHandler struct {
	DB *gorm.DB
}

func NewFrontendHandler(db *gorm.DB) *FrontendHandler { return &FrontendHandler{DB: db} }

// splitCodes parses a comma-separated country list from the query string.
func splitCodes(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func monthsAgo(n int) time.Time {
	return time.Now().AddDate(0, -n, 0)
}

// ---- comparativa-paises ----

type countryComparison struct {
	Country        string             `json:"pais"`
	TotalCompanies int                `json:"total_empresas"`
	TotalProducts  int                `json:"total_productos"`
	Companies      []models.Company   `json:"empresas"`
	Products       []models.Product   `json:"productos"`
	Indicators     []models.Indicator `json:"indicadores"`
}

func (h *FrontendHandler) CountryComparison(c *gin.Context) {
	codes := splitCodes(c.Query("paises"))

	companyQuery := h.DB.Model(&models.Company{})
	indicatorQuery := h.DB.Model(&models.Indicator{})
	if len(codes) > 0 {
		companyQuery = companyQuery.Where("pais IN ?", codes)
		indicatorQuery = indicatorQuery.Where("codigo_pais IN ?", codes)
	}

	var companies []models.Company
	if err := companyQuery.Find(&companies).Error; err != nil {
		serverError(c, "error al obtener comparativa de países", err)
		return
	}
	var products []models.Product
	if err := h.DB.Preload("Company").Find(&products).Error; err != nil {
		serverError(c, "error al obtener comparativa de países", err)
		return
	}
	var indicators []models.Indicator
	if err := indicatorQuery.Find(&indicators).Error; err != nil {
		serverError(c, "error al obtener comparativa de países", err)
		return
	}

	countries := codes
	if len(countries) == 0 {
		seen := map[string]bool{}
		for _, e := range companies {
			seen[e.CountryCode] = true
		}
		for _, p := range products {
			if p.Company != nil {
				seen[p.Company.CountryCode] = true
			}
		}
		for _, i := range indicators {
			seen[i.CountryCode] = true
		}
		for code := range seen {
			countries = append(countries, code)
		}
		sort.Strings(countries)
	}

	result := make([]countryComparison, 0, len(countries))
	for _, code := range countries {
		row := countryComparison{
			Country:    code,
			Companies:  []models.Company{},
			Products:   []models.Product{},
			Indicators: []models.Indicator{},
		}
		for _, e := range companies {
			if e.CountryCode == code {
				row.Companies = append(row.Companies, e)
			}
		}
		for _, p := range products {
			if p.Company != nil && p.Company.CountryCode == code {
				row.Products = append(row.Products, p)
			}
		}
		for _, i := range indicators {
			if i.CountryCode == code {
				row.Indicators = append(row.Indicators, i)
			}
		}
		row.TotalCompanies = len(row.Companies)
		row.TotalProducts = len(row.Products)
		result = append(result, row)
	}
	c.JSON(http.StatusOK, result)
}

// ---- eventos-por-fecha ----

func (h *FrontendHandler) EventsByDateRange(c *gin.Context) {
	startStr := c.Query("fecha_inicio")
	endStr := c.Query("fecha_fin")
	if startStr == "" || endStr == "" {
		badRequest(c, "debe enviar fecha_inicio y fecha_fin en formato YYYY-MM-DD")
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		badRequest(c, "fecha_inicio inválida, se espera YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		badRequest(c, "fecha_fin inválida, se espera YYYY-MM-DD")
		return
	}

	// Inclusive range: the whole end day counts.
	var events []models.Event
	if err := h.DB.Where("fecha >= ? AND fecha < ?", start, end.AddDate(0, 0, 1)).Find(&events).Error; err != nil {
		serverError(c, "error al filtrar eventos por fecha", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ---- empresas-internacionales ----

type internationalCompany struct {
	models.Company
	Countries      []string `json:"paises"`
	TotalCountries int      `json:"total_paises"`
}

// InternationalCompanies reports company names present in more than one
// country, merged with the record holding the lowest id in the group.
func (h *FrontendHandler) InternationalCompanies(c *gin.Context) {
	var companies []models.Company
	if err := h.DB.Find(&companies).Error; err != nil {
		serverError(c, "error al obtener empresas internacionales", err)
		return
	}

	type group struct {
		countries map[string]bool
		rep       models.Company
	}
	groups := map[string]*group{}
	for _, e := range companies {
		g, ok := groups[e.Name]
		if !ok {
			g = &group{countries: map[string]bool{}, rep: e}
			groups[e.Name] = g
		}
		g.countries[e.CountryCode] = true
		if e.ID < g.rep.ID {
			g.rep = e
		}
	}

	result := []internationalCompany{}
	for _, g := range groups {
		if len(g.countries) < 2 {
			continue
		}
		countries := make([]string, 0, len(g.countries))
		for code := range g.countries {
			countries = append(countries, code)
		}
		sort.Strings(countries)
		result = append(result, internationalCompany{
			Company:        g.rep,
			Countries:      countries,
			TotalCountries: len(countries),
		})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	c.JSON(http.StatusOK, result)
}

// ---- top-paises-demanda-tecnologica ----

type countryDemand struct {
	Country     string `json:"pais"`
	NewProducts int    `json:"total_nuevos_productos"`
}

// TopCountriesTechDemand counts products registered in the trailing 12
// months, grouped by the owning company's country. Top 10.
func (h *FrontendHandler) TopCountriesTechDemand(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Preload("Company").Where("created_at >= ?", monthsAgo(12)).Find(&products).Error; err != nil {
		serverError(c, "error al obtener top países con mayor demanda tecnológica", err)
		return
	}

	counts := map[string]int{}
	for _, p := range products {
		country := "Sin país"
		if p.Company != nil {
			country = p.Company.CountryCode
		}
		counts[country]++
	}

	result := make([]countryDemand, 0, len(counts))
	for country, n := range counts {
		result = append(result, countryDemand{Country: country, NewProducts: n})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].NewProducts > result[j].NewProducts })
	if len(result) > 10 {
		result = result[:10]
	}
	c.JSON(http.StatusOK, result)
}

// ---- productos-por-sector ----

type sectorProducts struct {
	Sector   string           `json:"sector"`
	Products []models.Product `json:"productos"`
}

func (h *FrontendHandler) ProductsBySector(c *gin.Context) {
	sectorFilter := c.Query("sector")

	var products []models.Product
	if err := h.DB.Preload("Company").Find(&products).Error; err != nil {
		serverError(c, "error al obtener productos por sector", err)
		return
	}

	grouped := map[string][]models.Product{}
	for _, p := range products {
		sector := "Sin sector"
		if p.Company != nil {
			sector = p.Company.Sector
		}
		if sectorFilter != "" && sector != sectorFilter {
			continue
		}
		grouped[sector] = append(grouped[sector], p)
	}

	sectors := make([]string, 0, len(grouped))
	for s := range grouped {
		sectors = append(sectors, s)
	}
	sort.Strings(sectors)

	result := make([]sectorProducts, 0, len(sectors))
	for _, s := range sectors {
		result = append(result, sectorProducts{Sector: s, Products: grouped[s]})
	}
	c.JSON(http.StatusOK, result)
}

// ---- ranking-paises-empresas / distribucion-empresas ----

type countryCompanyCount struct {
	Country        string `gorm:"column:pais" json:"pais"`
	TotalCompanies int    `gorm:"column:total_empresas" json:"total_empresas"`
}

func (h *FrontendHandler) CountryRankingByCompanies(c *gin.Context) {
	var rows []countryCompanyCount
	err := h.DB.Model(&models.Company{}).
		Select("pais, COUNT(id_empresa) AS total_empresas").
		Group("pais").
		Order("total_empresas DESC").
		Scan(&rows).Error
	if err != nil {
		serverError(c, "error al obtener ranking de países", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *FrontendHandler) CompanyDistribution(c *gin.Context) {
	var rows []countryCompanyCount
	err := h.DB.Model(&models.Company{}).
		Select("pais, COUNT(id_empresa) AS total_empresas").
		Group("pais").
		Scan(&rows).Error
	if err != nil {
		serverError(c, "error al obtener distribución de empresas", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ---- empresas-mayor-crecimiento ----

type companyGrowth struct {
	models.Company
	NewEmployees int `json:"nuevos_empleados"`
	NewProducts  int `json:"nuevos_productos"`
	GrowthScore  int `json:"score_crecimiento"`
}

// TopGrowthCompanies scores each company as employee delta against the
// prior year plus products launched in the trailing 12 months. Missing
// employee figures count as zero. Top 10.
func (h *FrontendHandler) TopGrowthCompanies(c *gin.Context) {
	type productCount struct {
		CompanyID   uint `gorm:"column:id_empresa"`
		NewProducts int  `gorm:"column:nuevos_productos"`
	}
	var counts []productCount
	err := h.DB.Model(&models.Product{}).
		Select("id_empresa, COUNT(id_producto) AS nuevos_productos").
		Where("created_at >= ?", monthsAgo(12)).
		Group("id_empresa").
		Scan(&counts).Error
	if err != nil {
		serverError(c, "error al obtener empresas con mayor crecimiento", err)
		return
	}
	newProducts := map[uint]int{}
	for _, pc := range counts {
		newProducts[pc.CompanyID] = pc.NewProducts
	}

	var companies []models.Company
	if err := h.DB.Find(&companies).Error; err != nil {
		serverError(c, "error al obtener empresas con mayor crecimiento", err)
		return
	}

	result := make([]companyGrowth, 0, len(companies))
	for _, e := range companies {
		employees, prev := 0, 0
		if e.Employees != nil {
			employees = *e.Employees
		}
		if e.PrevYearEmployees != nil {
			prev = *e.PrevYearEmployees
		}
		row := companyGrowth{
			Company:      e,
			NewEmployees: employees - prev,
			NewProducts:  newProducts[e.ID],
		}
		row.GrowthScore = row.NewEmployees + row.NewProducts
		result = append(result, row)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].GrowthScore > result[j].GrowthScore })
	if len(result) > 10 {
		result = result[:10]
	}
	c.JSON(http.StatusOK, result)
}

// ---- indicadores ----

func (h *FrontendHandler) CompareIndicators(c *gin.Context) {
	codes := splitCodes(c.Query("paises"))
	if len(codes) == 0 {
		badRequest(c, "debe enviar el parámetro paises (ej: HND,ARG,CHL)")
		return
	}
	if len(codes) < 2 {
		badRequest(c, "debe enviar al menos dos países para comparar")
		return
	}

	var indicators []models.Indicator
	if err := h.DB.Where("codigo_pais IN ?", codes).Find(&indicators).Error; err != nil {
		serverError(c, "error al comparar indicadores", err)
		return
	}
	c.JSON(http.StatusOK, indicators)
}

func (h *FrontendHandler) IndicatorsByCountry(c *gin.Context) {
	code := strings.TrimSpace(c.Query("pais"))
	if code == "" {
		badRequest(c, "debe enviar pais")
		return
	}

	var indicators []models.Indicator
	if err := h.DB.Where("codigo_pais = ?", code).Find(&indicators).Error; err != nil {
		serverError(c, "error al obtener indicadores", err)
		return
	}
	c.JSON(http.StatusOK, indicators)
}

// ---- eventos / tendencias ----

func (h *FrontendHandler) EventsByType(c *gin.Context) {
	eventType := strings.TrimSpace(c.Query("tipo_evento"))
	if eventType == "" {
		badRequest(c, "debe enviar tipo_evento")
		return
	}

	var events []models.Event
	if err := h.DB.Where("tipo_evento = ?", eventType).Find(&events).Error; err != nil {
		serverError(c, "error al filtrar eventos", err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *FrontendHandler) CompaniesByTrend(c *gin.Context) {
	query := h.DB.Model(&models.Company{})
	if trendID := strings.TrimSpace(c.Query("id_tendencia")); trendID != "" {
		query = query.Where("id_tendencia = ?", trendID)
	}

	var companies []models.Company
	if err := query.Find(&companies).Error; err != nil {
		serverError(c, "error al obtener empresas por tendencia", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (h *FrontendHandler) EmergingTrends(c *gin.Context) {
	var trends []models.Trend
	if err := h.DB.Find(&trends).Error; err != nil {
		serverError(c, "error al obtener tendencias", err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// ---- productos-mas-demandados ----

type productDemand struct {
	models.Product `gorm:"embedded"`
	TotalEvents    int `gorm:"column:total_eventos" json:"total_eventos"`
}

// TopDemandedProducts ranks products by the number of sector events
// touching the owning company. Top 10.
func (h *FrontendHandler) TopDemandedProducts(c *gin.Context) {
	var rows []productDemand
	err := h.DB.Model(&models.Product{}).
		Select("productos_servicios.*, (SELECT COUNT(*) FROM eventos_sectores WHERE eventos_sectores.empresa_relacionada = productos_servicios.id_empresa) AS total_eventos").
		Order("total_eventos DESC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		serverError(c, "error al obtener productos más demandados", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// ---- detalle-empresa ----

func (h *FrontendHandler) CompanyDetail(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id_empresa"))
	if id == "" {
		badRequest(c, "debe enviar id_empresa")
		return
	}

	var company models.Company
	err := h.DB.Where("id_empresa = ?", id).First(&company).Error
	if err == gorm.ErrRecordNotFound {
		notFound(c, "empresa no encontrada")
		return
	}
	if err != nil {
		serverError(c, "error al obtener detalle de empresa", err)
		return
	}

	var products []models.Product
	if err := h.DB.Where("id_empresa = ?", company.ID).Find(&products).Error; err != nil {
		serverError(c, "error al obtener detalle de empresa", err)
		return
	}
	var events []models.Event
	if err := h.DB.Where("empresa_relacionada = ?", company.ID).Find(&events).Error; err != nil {
		serverError(c, "error al obtener detalle de empresa", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"empresa":   company,
		"productos": products,
		"eventos":   events,
	})
}

// ---- empresas-por-pais-sector ----

func (h *FrontendHandler) CompaniesByCountrySector(c *gin.Context) {
	query := h.DB.Model(&models.Company{})
	if country := strings.TrimSpace(c.Query("pais")); country != "" {
		query = query.Where("pais = ?", country)
	}
	if sector := strings.TrimSpace(c.Query("sector")); sector != "" {
		query = query.Where("sector = ?", sector)
	}

	var companies []models.Company
	if err := query.Find(&companies).Error; err != nil {
		serverError(c, "error al filtrar empresas", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// ---- buscar-empresa ----

// SearchCompanies matches a case-insensitive substring against name,
// description and sector.
func (h *FrontendHandler) SearchCompanies(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		badRequest(c, "debe enviar un parámetro de búsqueda")
		return
	}

	pattern := "%" + strings.ToLower(q) + "%"
	var companies []models.Company
	err := h.DB.
		Where("LOWER(nombre) LIKE ? OR LOWER(descripcion) LIKE ? OR LOWER(sector) LIKE ?", pattern, pattern, pattern).
		Find(&companies).Error
	if err != nil {
		serverError(c, "error al buscar empresas", err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

// ---- empresas-influyentes ----

type influentialCompany struct {
	models.Company `gorm:"embedded"`
	TotalProducts  int `gorm:"column:total_productos" json:"total_productos"`
	TotalEvents    int `gorm:"column:total_eventos" json:"total_eventos"`
}

// InfluentialCompanies ranks companies by product count plus event count
// plus headcount, nulls as zero. Top 10.
func (h *FrontendHandler) InfluentialCompanies(c *gin.Context) {
	const productCount = "(SELECT COUNT(*) FROM productos_servicios WHERE productos_servicios.id_empresa = empresas.id_empresa)"
	const eventCount = "(SELECT COUNT(*) FROM eventos_sectores WHERE eventos_sectores.empresa_relacionada = empresas.id_empresa)"

	var rows []influentialCompany
	err := h.DB.Model(&models.Company{}).
		Select("empresas.*, " + productCount + " AS total_productos, " + eventCount + " AS total_eventos").
		Order(productCount + " + " + eventCount + " + COALESCE(empleados,0) DESC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		serverError(c, "error al obtener empresas influyentes", err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
