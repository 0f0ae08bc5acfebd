package main

import (
	"fmt"
	"net/http"
	"time"

	"pagegen/controller"
	"pagegen/model"
	"pagegen/platform"
	"pagegen/service"

	_uuid "github.com/google/uuid"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CORSMiddleware ...
// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding, x-access-token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

// RequestIDMiddleware ...
// Generate a unique ID and attach it to each request for future reference or use
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := _uuid.New()
		c.Writer.Header().Set("X-Request-Id", uuid.String())
		c.Set("requestId", uuid.String())
		c.Next()
	}
}

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		if raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)

		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method
		userAgent := c.Request.UserAgent()
		requestId := c.GetString("requestId")

		logrus.Infof(
			" [%s] %d | %v | %s | %s | %s | %s ",
			requestId,
			status,
			latency,
			clientIP,
			method,
			path,
			userAgent,
		)
	}
}

func main() {
	fmt.Println("Server started...")

	// fails fast when LLM_API_KEY or ACCESS_SECRET is missing
	cfg := platform.LoadConfig()

	platform.InitFile("./log", "gin")
	logger := platform.Logger

	r := gin.Default()
	r.Use(CORSMiddleware(cfg.CORSOrigin))
	r.Use(RequestIDMiddleware())
	r.Use(LogMiddleware())

	// wrong-method requests must answer 405, not 404
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed"})
	})

	//init database
	db, err := platform.InitDB(cfg)
	if err != nil {
		logger.Fatalf("init database error: %s", err)
	}
	model.InstallDB(db)

	userStore := model.NewUserStore(db)
	chatStore := model.NewChatStore(db)

	llmClient := platform.NewLLMClient(cfg)
	provider := service.NewOpenAIProvider(llmClient, cfg.LLMModel, 0.7)

	tokenService := service.NewTokenService(cfg.AccessSecret)
	userService := service.NewUserService(userStore, tokenService)
	generateService := service.NewGenerateService(provider, chatStore)
	mailer := service.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)

	user := controller.NewUserController(userService, mailer)
	auth := controller.NewAuthController(tokenService)
	chat := controller.NewChatController(generateService)

	api := r.Group("/api")
	{
		api.POST("/chat", chat.Generate)
		api.GET("/history", chat.History)

		api.POST("/auth/signup", user.Signup)
		api.POST("/auth/login", user.Login)
		api.POST("/auth/logout", user.Logout)
		api.GET("/auth/session", auth.Session)
	}

	// chat client
	r.StaticFile("/", "./web/index.html")
	r.StaticFile("/login", "./web/index.html")
	r.StaticFile("/signup", "./web/signup.html")
	r.StaticFile("/chat", "./web/chat.html")

	report := service.NewReportService(chatStore)
	c := cron.New()
	c.AddFunc("0 0 * * *", report.DailyUsage)
	c.Start()

	r.Run(":" + cfg.Port)
}
