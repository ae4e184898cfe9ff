package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/marcosmapl/studium-backend-sub002/api/v1"
	"github.com/marcosmapl/studium-backend-sub002/config"
	"github.com/marcosmapl/studium-backend-sub002/database"
	"github.com/marcosmapl/studium-backend-sub002/logger"
	"go.uber.org/zap"
)

const versao = "1.0.0"

func main() {
	config.LoadEnv()
	cfg := config.Load()

	log, err := logger.New(cfg.Ambiente)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("falha ao conectar ao banco de dados", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("falha ao migrar o esquema", zap.Error(err))
	}
	log.Info("banco de dados conectado e migrado")

	if cfg.Ambiente == "producao" || cfg.Ambiente == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Service metadata endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"nome":         "studium-backend",
			"versao":       versao,
			"ambiente":     cfg.Ambiente,
			"documentacao": "/api-docs",
		})
	})

	// Unmatched paths answer JSON before any business logic
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rota não encontrada"})
	})

	v1.RegistrarRotas(router.Group("/api"), v1.Dependencias{
		DB:     db,
		Config: cfg,
		Logger: log,
	})

	log.Info("servidor iniciado", zap.String("porta", cfg.Port), zap.String("ambiente", cfg.Ambiente))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("falha ao iniciar o servidor", zap.Error(err))
	}
}
