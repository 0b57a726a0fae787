package main

import (
	"log"
	"os"
	"time"

	"smartbiz-confirm/internal/controllers/http"
	"smartbiz-confirm/internal/infra"
	"smartbiz-confirm/internal/infra/cloudinary"
	"smartbiz-confirm/internal/infra/mailer"
	mmysql "smartbiz-confirm/internal/infra/mysql"
	"smartbiz-confirm/internal/infra/payments"
	"smartbiz-confirm/internal/infra/rabbitmq"
	"smartbiz-confirm/internal/infra/twilio"
	mysqlrepo "smartbiz-confirm/internal/repository/mysql"
	"smartbiz-confirm/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	db, err := mmysql.NewMySQLFromEnv()
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	repo := mysqlrepo.NewOrderRepository(db)

	confirmClient := infra.NewConfirmClient(os.Getenv("CONFIRMATION_SERVICE_URL"), 10*time.Second)

	publisher, err := rabbitmq.NewPublisher(os.Getenv("RABBITMQ_URL"), "order.exchange")
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	defaultCountry := os.Getenv("DEFAULT_COUNTRY_CODE")
	notifier := services.NewNotifier(
		mailer.NewClientFromEnv(),
		twilio.NewClientFromEnv(),
		cloudinary.NewUploaderFromEnv(),
		publisher,
		defaultCountry,
	)

	s := services.NewOrderService(repo, confirmClient, notifier, payments.NewClientFromEnv())

	redisClient := redis.NewClient(&redis.Options{
		Addr:         os.Getenv("REDIS_HOST") + ":6379",
		DB:           0,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	s.SetRedisClient(redisClient)

	handler := http.NewHandler(s, redisClient)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	handler.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting order intake service on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
