package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/infinitystack/job-application-tracker/internal/auth"
	"github.com/infinitystack/job-application-tracker/internal/config"
	"github.com/infinitystack/job-application-tracker/internal/database"
	"github.com/infinitystack/job-application-tracker/internal/handlers"
	"github.com/infinitystack/job-application-tracker/internal/middleware"
	"github.com/infinitystack/job-application-tracker/internal/services"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()

	// 2. Database Connection
	db := database.Connect(cfg.DatabaseDSN)

	// 3. Initialize Core Services (Dependencies)
	llmService := services.NewLLMService(cfg.GeminiAPIKey)
	userService := services.NewUserService(db, cfg.JWTSecret)
	profileService := services.NewProfileService(db)
	jobService := services.NewJobService(db)
	analyticsService := services.NewAnalyticsService(db)
	searchService := services.NewSearchService(cfg.AdzunaAppID, cfg.AdzunaAppKey, cfg.JoobleHost, cfg.JoobleAPIKey)

	// OTP codes live in Redis when configured, in memory otherwise
	var otpStore services.OTPStore
	if cfg.RedisAddr != "" {
		otpStore = services.NewRedisOTPStore(cfg.RedisAddr, cfg.RedisPassword)
		log.Println("✅ OTP store backed by Redis at", cfg.RedisAddr)
	} else {
		otpStore = services.NewMemoryOTPStore()
		log.Println("⚠️ REDIS_ADDR not set, OTP store is in-memory")
	}
	otpService := services.NewOTPService(otpStore)

	// 4. Initialize Gmail Integration
	log.Println("Initializing Gmail Client...")

	var gmailService *gmail.Service
	httpClient, err := auth.GetGmailClient(cfg.GmailCredentialFile, cfg.GmailTokenFile)
	if err != nil {
		log.Printf("⚠️  Gmail auth unavailable: %v", err)
	} else {
		ctx := context.Background()
		// Upgrade the HTTP client to a full Gmail Service
		gmailService, err = gmail.NewService(ctx, option.WithHTTPClient(httpClient))
		if err != nil {
			log.Printf("⚠️  Failed to create Gmail Service: %v", err)
		} else {
			log.Println("✅ Gmail Service connected successfully.")
		}
	}

	// MailService handles a nil client gracefully (disabled mode)
	mailService := services.NewMailService(gmailService, cfg.MailSender)

	// 5. Initialize Handlers
	authHandler := handlers.NewAuthHandler(userService, otpService, mailService)
	profileHandler := handlers.NewProfileHandler(profileService)
	jobHandler := handlers.NewJobHandler(jobService)
	searchHandler := handlers.NewSearchHandler(searchService)
	generateHandler := handlers.NewGenerateHandler(llmService, profileService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	exportHandler := handlers.NewExportHandler()

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestID())

	// 7. Define Routes (paths kept exactly as the frontend calls them)
	r.GET("/health", handlers.HealthCheck)

	r.POST("/signup", authHandler.Signup)
	r.POST("/signin", authHandler.Signin)
	r.POST("/generateOTP", authHandler.GenerateOTP)
	r.POST("/verifyOTP", authHandler.VerifyOTP)
	r.POST("/resetPassword", authHandler.ResetPassword)

	r.GET("/getProfile", profileHandler.GetProfile)
	r.POST("/createProfile", profileHandler.UpsertProfile)
	r.POST("/editProfile", profileHandler.UpsertProfile)

	r.GET("/getuserJobs", jobHandler.GetUserJobs)
	r.GET("/getAllJobs", jobHandler.GetAllJobs)
	r.POST("/createJob", jobHandler.CreateJob)
	r.POST("/editJob", jobHandler.EditJob)
	r.POST("/deleteJob", jobHandler.DeleteJob)

	r.GET("/jobsearchapi", searchHandler.Adzuna)
	r.GET("/jooblejobsearchapi", searchHandler.Jooble)

	r.POST("/generateResume", generateHandler.Resume)
	r.POST("/generateCoverLetter", generateHandler.CoverLetter)

	r.GET("/analytics", analyticsHandler.ForUser)
	r.GET("/generalanalytics", analyticsHandler.General)

	r.POST("/exportDocument", exportHandler.Export)

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
