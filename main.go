package main

import (
	"camp_registration/bulk"
	"camp_registration/client"
	"camp_registration/config"
	"camp_registration/database"
	"camp_registration/handler"
	"camp_registration/helper"
	"camp_registration/router"
	"camp_registration/session"
	"camp_registration/utils"
	"camp_registration/wizard"
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type notifier interface {
	bulk.Notifier
	helper.Mailer
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Load settings: %v", err)
	}
	event := settings.Event()

	rdb, err := database.NewRedisClient(context.Background(), settings.RedisURL)
	if err != nil {
		log.Fatalf("Redis: %v", err)
	}
	defer rdb.Close()

	var operations handler.OperationStore
	if db, err := database.ConnectDB(); err != nil {
		log.Printf("Operation log disabled: %v", err)
	} else {
		operations = database.NewOperationRepository(db)
	}

	smtpCfg := utils.SMTPConfig{
		Host:     settings.SMTPHost,
		Port:     settings.SMTPPort,
		Username: settings.SMTPUsername,
		Password: settings.SMTPPassword,
		From:     settings.SMTPFrom,
	}
	var mail notifier = utils.LogNotifier{}
	if settings.MailMode == "smtp" {
		mail = utils.NewSMTPNotifier(smtpCfg)
	}
	log.Printf("Mail mode: %s", settings.MailMode)

	api := client.New(settings.APIURL, settings.APITimeout)
	sessions := session.NewManager(database.NewSessionStore(rdb, settings.SessionTTL), api)
	boards := bulk.NewRegistry(mail, event)

	h := &handler.Handler{
		API:        api,
		Wizard:     wizard.New(database.NewDraftStore(rdb, settings.DraftTTL), api, api),
		Sessions:   sessions,
		Boards:     boards,
		Operations: operations,
		Feed:       database.NewOperationFeed(rdb),
		Mailer:     utils.NewConfirmationMailer(smtpCfg, event, settings.MailMode == "smtp"),
		Secret:     []byte(settings.JWTSecret),
		AccessTTL:  settings.AccessTTL,
		DraftTTL:   settings.DraftTTL,
		Fee:        settings.Fee(),
		Location:   settings.Location(),
		Agent: handler.Agent{
			Username: settings.PublicAgentUsername,
			Password: settings.PublicAgentPassword,
		},
	}
	if archive := helper.NewProofArchive(settings.CloudinaryCloudName, settings.CloudinaryAPIKey,
		settings.CloudinaryAPISecret, settings.CloudinaryFolder); archive != nil {
		h.Archive = archive
	}

	sweeper, err := helper.StartBoardSweeper(boards, settings.BoardSweep, settings.BoardIdleTTL)
	if err != nil {
		log.Fatalf("Board sweeper: %v", err)
	}
	defer sweeper.Stop()

	if settings.AdminEmail != "" && settings.PublicAgentUsername != "" {
		digest, err := helper.StartDigestScheduler(settings.Location(), settings.DigestHour, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			agent, err := api.Login(ctx, settings.PublicAgentUsername, settings.PublicAgentPassword)
			if err != nil {
				log.Printf("[CRON] Digest login failed: %v", err)
				return
			}
			ctx = client.WithToken(ctx, agent.Token)
			if err := helper.SendPendingDigest(ctx, api, mail, settings.AdminEmail, time.Now().In(settings.Location())); err != nil {
				log.Printf("[CRON] %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Digest scheduler: %v", err)
		}
		defer func() { _ = digest.Shutdown() }()
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 12 * 1024 * 1024,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     settings.CorsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	router.SetupRoutes(app, h)
	log.Fatal(app.Listen(":" + settings.Port))
}
