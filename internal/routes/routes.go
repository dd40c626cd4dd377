package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/domvailm/barber-ledger/internal/audit"
	"github.com/domvailm/barber-ledger/internal/catalog"
	"github.com/domvailm/barber-ledger/internal/config"
	"github.com/domvailm/barber-ledger/internal/domain/schedule"
	"github.com/domvailm/barber-ledger/internal/handlers"
	infraRepo "github.com/domvailm/barber-ledger/internal/infra/repository"
	"github.com/domvailm/barber-ledger/internal/kv"
	"github.com/domvailm/barber-ledger/internal/middleware"
	"github.com/domvailm/barber-ledger/internal/models"
	"github.com/domvailm/barber-ledger/internal/notify"
	ucAppointment "github.com/domvailm/barber-ledger/internal/usecase/appointment"
	ucExpense "github.com/domvailm/barber-ledger/internal/usecase/expense"
	ucFinance "github.com/domvailm/barber-ledger/internal/usecase/finance"
)

func RegisterRoutes(
	r *gin.Engine,
	store kv.Store,
	services *catalog.Catalog,
	promotions []models.Promotion,
	cfg *config.Config,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentKVStore(store)
	expenseRepo := infraRepo.NewExpenseKVStore(store)

	auditLogger := audit.New(store)
	auditDispatcher := audit.NewDispatcher(auditLogger)
	notifyDispatcher := notify.NewDispatcher(notify.LogNotifier{})

	hours := schedule.BusinessHours{
		OpenHour:        cfg.OpenHour,
		CloseHour:       cfg.CloseHour,
		IntervalMinutes: cfg.IntervalMinutes,
	}
	closedDay := time.Weekday(cfg.ClosedWeekday)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		services,
		hours,
		closedDay,
		cfg.Timezone,
		auditDispatcher,
		notifyDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		cfg.Timezone,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		cfg.Timezone,
		auditDispatcher,
	)

	setNotesUC := ucAppointment.NewSetBarberNotes(appointmentRepo, auditDispatcher)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, services)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, hours)
	bookableDaysUC := ucAppointment.NewListBookableDays(cfg.BookingWindow, closedDay, cfg.Timezone)

	createExpenseUC := ucExpense.NewCreateExpense(expenseRepo, cfg.Timezone, auditDispatcher)
	deleteExpenseUC := ucExpense.NewDeleteExpense(expenseRepo, auditDispatcher)
	listExpensesUC := ucExpense.NewListExpenses(expenseRepo)

	summaryUC := ucFinance.NewMonthlySummary(appointmentRepo, expenseRepo, services)
	remindersUC := ucFinance.NewDueReminders(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	publicHandler := handlers.NewPublicHandler(
		services,
		promotions,
		bookableDaysUC,
		availabilityUC,
		createAppointmentUC,
		listAppointmentsUC,
		cancelAppointmentUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		completeAppointmentUC,
		cancelAppointmentUC,
		setNotesUC,
	)

	expenseHandler := handlers.NewExpenseHandler(
		createExpenseUC,
		deleteExpenseUC,
		listExpensesUC,
	)

	financeHandler := handlers.NewFinanceHandler(summaryUC, remindersUC, cfg.Timezone)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (fluxo de reserva)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/promotions", publicHandler.ListPromotions)
			publicAPI.GET("/days", publicHandler.ListDays)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/appointments", publicHandler.ListByPhone)
			publicAPI.PATCH("/appointments/:id/cancel", publicHandler.Cancel)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA (operador)
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/all", appointmentHandler.ListAll)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/notes", appointmentHandler.UpdateNotes)

			secured.GET("/expenses", expenseHandler.List)
			secured.POST("/expenses", expenseHandler.Create)
			secured.DELETE("/expenses/:id", expenseHandler.Delete)

			secured.GET("/finance/summary", financeHandler.Summary)
			secured.GET("/finance/reminders", financeHandler.Reminders)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
