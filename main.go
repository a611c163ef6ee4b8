package main

import (
	"flag"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"product-api/app/categories"
	"product-api/app/products"
	"product-api/app/system"
	"product-api/config"
	"product-api/database"
	"product-api/middleware"
	"product-api/models"
	"product-api/routes"
)

const apiVersion = "1.0.0"

func main() {
	seed := flag.Bool("seed", false, "truncate and seed the database before serving")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := config.LoadConfig()

	if err := database.Migrate(cfg); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if *seed || cfg.SeedDB {
		if err := database.Seed(db); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(middleware.Auth())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	categoriesRepo := models.NewCategoriesRepository(db)
	productsRepo := models.NewProductsRepository(db)

	routes.Register(router,
		products.NewHandler(productsRepo, products.NewValidator(categoriesRepo)),
		categories.NewHandler(categoriesRepo),
		system.NewHandler(apiVersion, cfg.Environment),
	)

	log.Printf("product api listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
