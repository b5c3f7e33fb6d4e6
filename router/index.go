package router

import (
	"camp_registration/constants"
	"camp_registration/handler"
	"camp_registration/middleware"
	"camp_registration/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, h *handler.Handler) {
	app.Get("/healthz", h.Healthz)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1")

	protected := middleware.Protected(h.Secret, h.Sessions)
	optional := middleware.OptionalAuth(h.Secret, h.Sessions)
	admin := middleware.RequireRole(constants.ROLE_ADMIN)
	coordinator := middleware.RequireRole(constants.ROLE_COORDINATOR)

	register := v1.Group("/register")
	register.Get("/form", h.FormSchema)
	register.Get("/draft", h.GetDraft)
	register.Patch("/draft", validate.UpdateDraft(), h.UpdateDraft)
	register.Delete("/draft", h.ResetDraft)
	register.Post("/draft/next", h.NextStep)
	register.Post("/draft/back", h.PreviousStep)
	register.Post("/draft/submit", optional, validate.SubmitDraft(), h.SubmitDraft)

	tickets := v1.Group("/tickets")
	tickets.Get("/:ticketId", optional, h.PreviewTicket)
	tickets.Post("/:id/proof", optional, h.UploadProof)

	payments := v1.Group("/payments")
	payments.Post("/initialize", optional, validate.InitializePayment(), h.InitializePayment)
	payments.Get("/callback", optional, validate.PaymentReference(), h.PaymentCallback)

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Login)
	auth.Post("/logout", protected, h.Logout)
	auth.Get("/me", optional, h.Me)

	adm := v1.Group("/admin", protected, admin)
	adm.Get("/tickets", validate.FilterTickets(), h.AdminTickets)
	adm.Post("/tickets/verify", validate.VerifyTicket(), h.VerifyTicket)
	adm.Post("/tickets/:id/status", validate.UpdateStatus(), h.UpdateTicketStatus)
	adm.Post("/selection", validate.Selection(), h.SelectTicket)
	adm.Post("/selection/all", validate.SelectAll(), h.SelectAllTickets)
	adm.Post("/bulk", validate.BulkAction(), h.RunBulkAction)
	adm.Post("/email", validate.CustomEmail(), h.SendCustomEmail)
	adm.Get("/operations", validate.Pagination(), h.ListOperations)
	adm.Get("/users", h.ListUsers)
	adm.Post("/users", validate.CreateUser(), h.CreateUser)
	adm.Get("/ws", handler.RequireUpgrade, websocket.New(h.OperationFeed))

	coord := v1.Group("/coordinator", protected, coordinator)
	coord.Get("/tickets", validate.FilterTickets(), h.CoordinatorTickets)
	coord.Get("/tickets/export", h.ExportTickets)
	coord.Post("/register-group", validate.GroupRegistration(), h.RegisterGroup)
}
