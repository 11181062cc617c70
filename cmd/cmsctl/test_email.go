package main

import (
	"fmt"

	"sitebuilder-be/internal/dto"
	"sitebuilder-be/internal/pkg/logger"
	"sitebuilder-be/internal/pkg/mailer"
	"sitebuilder-be/internal/repository/unitofwork"
	"sitebuilder-be/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var testEmailCmd = &cobra.Command{
	Use:   "send-test-email <recipient>",
	Short: "Send a test message with the stored SMTP settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}

		log := logger.NewFileLogger(cfg.App.LogFilePath)
		uowFactory := unitofwork.NewRepositoryFactory(db)
		emailService := mailer.NewEmailService(service.SMTPSettingsLoader(uowFactory), mailer.SMTPSettings{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Email,
			Password:  cfg.SMTP.Password,
			Secure:    cfg.SMTP.Secure,
			FromEmail: cfg.SMTP.Email,
			FromName:  cfg.SMTP.SenderName,
		}, log)
		settings := service.NewSiteSettingsService(uowFactory, emailService, nil, log)

		res, err := settings.SendTestEmail(cmd.Context(), &dto.TestEmailRequest{To: args[0]})
		if err != nil {
			return err
		}
		if !res.Sent {
			color.Red("Not sent: %s", res.Message)
			if res.Hint != "" {
				color.Yellow("Hint: %s", res.Hint)
			}
			return fmt.Errorf("test email to %s failed", args[0])
		}
		color.Green("Sent: %s", res.Message)
		return nil
	},
}
