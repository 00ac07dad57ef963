package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/CPU-commits/RedInclusion/api/controllers"
	"github.com/CPU-commits/RedInclusion/api/docs"
	"github.com/CPU-commits/RedInclusion/middlewares"
	"github.com/CPU-commits/RedInclusion/models"
	"github.com/CPU-commits/RedInclusion/res"
	"github.com/CPU-commits/RedInclusion/services"
	"github.com/CPU-commits/RedInclusion/settings"
	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const BASE_PATH = "/api"

func keyFunc(c *gin.Context) string {
	return c.ClientIP()
}

func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, &res.Response{
		Success: false,
		Message: "Too many requests. Try again in " + time.Until(info.ResetTime).String(),
	})
}

var settingsData = settings.GetSettings()

func NewRouter(logger *zap.Logger) *gin.Engine {
	router := gin.New()
	// Proxies
	router.SetTrustedProxies([]string{"localhost"})
	// Zap logger
	router.Use(ginzap.GinzapWithConfig(logger, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{BASE_PATH + "/swagger", BASE_PATH + "/healthz"},
	}))
	router.Use(ginzap.RecoveryWithZap(logger, true))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		if err, ok := recovered.(string); ok {
			c.String(http.StatusInternalServerError, fmt.Sprintf("Server Internal Error: %s", err))
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, res.Response{
			Success: false,
			Message: "Server Internal Error",
		})
	}))
	// Validators
	InitValidators()
	// Docs
	docs.SwaggerInfo.BasePath = BASE_PATH
	docs.SwaggerInfo.Version = "v1"
	docs.SwaggerInfo.Host = "localhost:8080"
	// CORS
	httpOrigin := "http://" + settingsData.CLIENT_URL
	httpsOrigin := "https://" + settingsData.CLIENT_URL
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{httpOrigin, httpsOrigin},
		AllowMethods:     []string{"GET", "OPTIONS", "PUT", "DELETE", "POST"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		AllowWebSockets:  false,
		MaxAge:           12 * time.Hour,
	}))
	// Secure
	sslUrl := "ssl." + settingsData.CLIENT_URL
	secureConfig := secure.Config{
		SSLHost:              sslUrl,
		STSSeconds:           315360000,
		STSIncludeSubdomains: true,
		FrameDeny:            true,
		ContentTypeNosniff:   true,
		BrowserXssFilter:     true,
		IENoOpen:             true,
		ReferrerPolicy:       "strict-origin-when-cross-origin",
		SSLProxyHeaders: map[string]string{
			"X-Fowarded-Proto": "https",
		},
	}
	if settingsData.NODE_ENV == "prod" {
		secureConfig.AllowedHosts = []string{
			settingsData.CLIENT_URL,
			sslUrl,
		}
	}
	router.Use(secure.New(secureConfig))
	// Rate limit
	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: 7,
	})
	mw := ratelimit.RateLimiter(store, &ratelimit.Options{
		ErrorHandler: ErrorHandler,
		KeyFunc:      keyFunc,
	})
	router.Use(mw)
	// Routes
	defaultRoles := []string{
		models.FUNCIONARIO,
		models.ADMIN,
	}
	adminRoles := []string{models.ADMIN}

	auth := router.Group(BASE_PATH + "/auth")
	lineasTrabajo := router.Group(
		BASE_PATH+"/lineas-trabajo",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	funcionarios := router.Group(
		BASE_PATH+"/funcionarios",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	comunas := router.Group(
		BASE_PATH+"/comunas",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	beneficiarios := router.Group(
		BASE_PATH+"/beneficiarios",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	actividades := router.Group(
		BASE_PATH+"/actividades",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	poblacionMigrante := router.Group(
		BASE_PATH+"/poblacion-migrante",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	asignaciones := router.Group(
		BASE_PATH+"/asignaciones",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	reportes := router.Group(
		BASE_PATH+"/reportes",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	dashboard := router.Group(
		BASE_PATH+"/dashboard",
		middlewares.JWTMiddleware(),
		middlewares.RolesMiddleware(defaultRoles),
	)
	{
		// Init controllers
		authController := new(controllers.AuthController)
		lineasTrabajoController := new(controllers.LineasTrabajoController)
		funcionariosController := new(controllers.FuncionariosController)
		comunasController := new(controllers.ComunasController)
		beneficiariosController := new(controllers.BeneficiariosController)
		actividadesController := new(controllers.ActividadesController)
		poblacionMigranteController := new(controllers.PoblacionMigranteController)
		asignacionesController := new(controllers.AsignacionesController)
		reportesController := new(controllers.ReportesController)
		// Define routes
		// Auth
		auth.POST("/login", authController.Login)
		auth.GET("/perfil", middlewares.JWTMiddleware(), authController.Perfil)
		auth.POST("/refresh", middlewares.JWTRefreshMiddleware(), authController.Refresh)
		auth.POST("/logout", middlewares.JWTRefreshMiddleware(), authController.Logout)
		auth.POST(
			"/registro",
			middlewares.JWTMiddleware(),
			middlewares.RolesMiddleware(adminRoles),
			funcionariosController.NewFuncionario,
		)
		// Lineas de trabajo
		lineasTrabajo.GET("", lineasTrabajoController.GetLineas)
		lineasTrabajo.GET("/:id", lineasTrabajoController.GetLinea)
		lineasTrabajo.POST(
			"",
			middlewares.RolesMiddleware(adminRoles),
			lineasTrabajoController.NewLinea,
		)
		lineasTrabajo.PUT(
			"/:id",
			middlewares.RolesMiddleware(adminRoles),
			lineasTrabajoController.UpdateLinea,
		)
		lineasTrabajo.DELETE(
			"/:id",
			middlewares.RolesMiddleware(adminRoles),
			lineasTrabajoController.DeleteLinea,
		)
		// Funcionarios
		funcionarios.GET(
			"",
			middlewares.RolesMiddleware(adminRoles),
			funcionariosController.GetFuncionarios,
		)
		funcionarios.GET("/:id", funcionariosController.GetFuncionario)
		funcionarios.POST(
			"",
			middlewares.RolesMiddleware(adminRoles),
			funcionariosController.NewFuncionario,
		)
		funcionarios.PUT("/:id", funcionariosController.UpdateFuncionario)
		funcionarios.DELETE(
			"/:id",
			middlewares.RolesMiddleware(adminRoles),
			funcionariosController.DeleteFuncionario,
		)
		// Comunas
		comunas.GET("", comunasController.GetComunas)
		comunas.GET("/:id", comunasController.GetComuna)
		comunas.POST("", comunasController.NewComuna)
		comunas.PUT("/:id", comunasController.UpdateComuna)
		comunas.DELETE("/:id", comunasController.DeleteComuna)
		// Beneficiarios
		beneficiarios.POST("/registrar", beneficiariosController.Registrar)
		beneficiarios.GET("/listar", beneficiariosController.Listar)
		beneficiarios.GET("/buscar", beneficiariosController.Buscar)
		beneficiarios.GET("/verificar", beneficiariosController.Verificar)
		beneficiarios.GET("/detalle/:id", beneficiariosController.GetBeneficiario)
		beneficiarios.PUT("/actualizar/:id", beneficiariosController.Actualizar)
		beneficiarios.GET("/verificar-documento/:numero", beneficiariosController.ExisteDocumento)
		beneficiarios.GET("/verificar-correo/:correo", beneficiariosController.ExisteCorreo)
		beneficiarios.DELETE("/:id", beneficiariosController.Eliminar)
		beneficiarios.GET("/estadisticas", beneficiariosController.Estadisticas)
		beneficiarios.GET("/estadisticas/linea/:idLinea", beneficiariosController.EstadisticasLinea)
		beneficiarios.GET(
			"/estadisticas/por-mes",
			middlewares.RolesMiddleware(adminRoles),
			beneficiariosController.EstadisticasPorMes,
		)
		beneficiarios.GET(
			"/estadisticas/poblaciones-vulnerables",
			middlewares.RolesMiddleware(adminRoles),
			beneficiariosController.PoblacionesVulnerables,
		)
		beneficiarios.GET("/exportar-excel", beneficiariosController.ExportarExcel)
		beneficiarios.POST(
			"/reindexar",
			middlewares.RolesMiddleware(adminRoles),
			beneficiariosController.Reindexar,
		)
		beneficiarios.POST("/verificacion/:id", beneficiariosController.RegistrarVerificacion)
		beneficiarios.GET("/verificacion/codigo/:codigo", beneficiariosController.VerificacionPorCodigo)
		// Actividades
		actividades.GET("", actividadesController.GetActividades)
		actividades.POST("", actividadesController.NewActividad)
		actividades.GET("/asistentes/buscar", actividadesController.BuscarAsistentes)
		actividades.POST("/upload-logo", actividadesController.UploadLogo)
		actividades.GET("/reuniones/:id/exportar-excel", actividadesController.ExportReunionExcel)
		actividades.GET("/:id", actividadesController.GetActividad)
		actividades.PUT("/:id", actividadesController.UpdateActividad)
		actividades.DELETE("/:id", actividadesController.DeleteActividad)
		actividades.GET("/:id/asistentes", actividadesController.GetAsistentes)
		actividades.POST("/:id/asistentes", actividadesController.RegistrarAsistentes)
		actividades.PUT("/:id/asistentes/:idAsistente", actividadesController.UpdateAsistente)
		actividades.DELETE("/:id/asistentes/:idAsistente", actividadesController.DeleteAsistente)
		actividades.GET("/:id/exportar-excel", actividadesController.ExportExcel)
		actividades.GET("/:id/exportar-pdf", actividadesController.ExportPDF)
		actividades.GET("/:id/exportar-zip", actividadesController.ExportZip)
		// Poblacion migrante
		poblacionMigrante.POST("/registrar", poblacionMigranteController.Registrar)
		poblacionMigrante.GET("/listar", poblacionMigranteController.Listar)
		poblacionMigrante.GET("/verificar-documento", poblacionMigranteController.ExisteDocumento)
		poblacionMigrante.GET("/exportar", poblacionMigranteController.Exportar)
		poblacionMigrante.GET("/:id", poblacionMigranteController.GetRegistro)
		poblacionMigrante.PUT("/:id", poblacionMigranteController.Actualizar)
		poblacionMigrante.DELETE("/:id", poblacionMigranteController.Eliminar)
		// Asignaciones
		asignaciones.POST("/crear", asignacionesController.NewAsignacion)
		asignaciones.GET("/listar", asignacionesController.GetAsignaciones)
		asignaciones.PUT("/editar/:id", asignacionesController.UpdateAsignacion)
		asignaciones.DELETE("/eliminar/:id", asignacionesController.DeleteAsignacion)
		// Reportes
		reportes.GET("/beneficiarios", reportesController.ReporteBeneficiarios)
		reportes.GET("/estadisticas", reportesController.EstadisticasMensuales)
		// Dashboard
		dashboard.GET("/estadisticas", reportesController.Dashboard)
		dashboard.GET("/estadisticas-graficas", reportesController.Graficas)
		dashboard.GET("/exportar-grafico/:tipo", reportesController.ExportGrafica)
	}
	// Route docs
	router.GET(BASE_PATH+"/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Route healthz
	router.GET(BASE_PATH+"/healthz", func(ctx *gin.Context) {
		ctx.JSON(200, &res.Response{
			Success: true,
		})
	})
	// No route
	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(404, res.Response{
			Success: false,
			Message: "Not found",
		})
	})
	return router
}

// HS256 tokens need a non-empty key
func checkSettings() error {
	if strings.TrimSpace(settingsData.JWT_SECRET_KEY) == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	return nil
}

func Init() {
	// Zap logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	if err := checkSettings(); err != nil {
		logger.Fatal("Invalid settings", zap.Error(err))
	}
	// Collections and first admin
	if err := models.EnsureCollections(); err != nil {
		logger.Fatal("Error ensuring collections", zap.Error(err))
	}
	if err := services.SeedAdmin(); err != nil {
		logger.Fatal("Error seeding admin", zap.Error(err))
	}
	// Init server
	if err := NewRouter(logger).Run(); err != nil {
		logger.Fatal("Error init server", zap.Error(err))
	}
}
