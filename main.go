package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"gastro-pos/controllers"
	"gastro-pos/middleware"
	"gastro-pos/routes"
	"gastro-pos/services"
	"gastro-pos/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println(".env file not found, using environment variables")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	tableCount := 9
	if raw := os.Getenv("TABLE_COUNT"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Fatalf("invalid TABLE_COUNT: %q", raw)
		}
		tableCount = parsed
	}

	menu := store.NewMenuStore()
	store.SeedMenu(menu)
	tables := store.NewTableStore(tableCount)
	orders := store.NewOrderStore()

	session := services.NewSessionService(orders, menu, tables, controllers.OrderNotifier{})
	reports := services.NewReportService(orders)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Enable CORS for the terminal frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:9000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.TableRoutes(router, tables, orders)
	routes.MenuRoutes(router, menu)
	routes.OrderRoutes(router, orders)
	routes.SessionRoutes(router, session)
	routes.ReportRoutes(router, reports)

	slog.Info("starting server", "port", port, "tables", tableCount)
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
