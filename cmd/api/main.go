package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tripchat/internal/config"
	"tripchat/internal/database"
	"tripchat/internal/domain/file"
	"tripchat/internal/domain/message"
	"tripchat/internal/domain/trip"
	"tripchat/internal/domain/user"
	"tripchat/internal/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&trip.Trip{}, &user.User{}, &message.Message{}); err != nil {
		log.Fatal(err)
	}

	tripRepo := trip.NewRepository(db)
	userRepo := user.NewRepository(db)
	msgRepo := message.NewRepository(db)

	msgService := message.NewService(msgRepo, tripRepo, userRepo)
	msgHandler := message.NewHandler(msgService)

	fileService := file.NewService(cfg.UploadDir, msgRepo, tripRepo)
	fileHandler := file.NewHandler(fileService)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	root := r.Group("/")
	{
		file.RegisterRoutes(root, fileHandler)
		message.RegisterRoutes(root, msgHandler)
	}

	addr := ":" + cfg.Port
	log.Println("server listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
