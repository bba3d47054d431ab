package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/portfolio-qa-api/internal/application/verification"
	"github.com/portfolio-qa-api/internal/config"
	"github.com/portfolio-qa-api/internal/infrastructure/groq"
	sesinfra "github.com/portfolio-qa-api/internal/infrastructure/ses"
	smtpinfra "github.com/portfolio-qa-api/internal/infrastructure/smtp"
	"github.com/portfolio-qa-api/internal/otp"
	transporthttp "github.com/portfolio-qa-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// OTP store: all verification state lives here, in memory, and is reset
	// on restart.
	store := otp.NewStore(cfg.OTPTTL, cfg.OTPSweepInterval)

	// Delivery gateway. SES is optional — graceful fallback to SMTP if the
	// AWS config cannot be loaded.
	var sender verification.Sender = smtpinfra.NewMailer(cfg)
	if cfg.MailProvider == "ses" {
		if s, err := sesinfra.NewSender(cfg); err == nil {
			sender = s
		} else {
			log.Printf("WARN: SES sender not available, falling back to SMTP: %v", err)
		}
	}

	deps := &transporthttp.Deps{
		Store:    store,
		Sender:   sender,
		Answerer: groq.NewClient(cfg),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout: 15 * time.Second,
		// Longer than the Groq client timeout so upstream slowness surfaces
		// as a 502, not a dropped connection.
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
