package api

import (
	"crypto/subtle"
	"strings"
	"time"

	"catalogo-bot/internal/logger"
	"catalogo-bot/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	PathEmpresas   = "/empresas"
	PathIngestions = "/ingestions"
)

// NewRouter monta as rotas. Sem adminToken a rota de recarga não é registrada.
func NewRouter(h *Handler, adminToken string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, h.log)

	router.GET("/metrics", gin.WrapH(observability.Handler()))

	v1 := router.Group("/v1")
	v1.GET("/ping", h.Ping)
	v1.GET("/options", h.Options)
	v1.GET(PathIngestions, h.ListIngestions)

	empresas := v1.Group(PathEmpresas)
	{
		empresas.GET("", h.ListEmpresas)
		empresas.GET("/:empresa/catalog", h.Catalog)
		empresas.GET("/:empresa/categories", h.Categories)
		empresas.GET("/:empresa/models/:model/submodels", h.Submodels)
		if adminToken != "" {
			empresas.POST("/:empresa"+PathIngestions, requireToken(adminToken), h.Refresh)
		}
	}

	return router
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("Pânico ao atender requisição", "path", c.Request.URL.Path, "erro", recovered)
		c.AbortWithStatus(500)
	}))
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("Requisição atendida",
			"metodo", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duracao", time.Since(start))
	}
}

// requireToken exige "Authorization: Bearer <token>"
func requireToken(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			abort(c, errUnauthorized)
			return
		}
		c.Next()
	}
}
