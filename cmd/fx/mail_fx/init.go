package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"yournews/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port, // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "YourNews",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName: "YourNews",
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}
