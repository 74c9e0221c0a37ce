package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	generate_report "checkmaster/http-server/generate-report/generate-excel"
	finishinspection "checkmaster/http-server/inspection/finish"
	getorder "checkmaster/http-server/order/get"
	"checkmaster/http-server/recognize/scan"
	getreport "checkmaster/http-server/report/get"
	gettemplate "checkmaster/http-server/template/get"
	savetemplate "checkmaster/http-server/template/save"
	uptemplate "checkmaster/http-server/template/update"
	"checkmaster/internal/config"
	"checkmaster/internal/middleware/auth"
	generate_excel "checkmaster/internal/service/generate-excel"
	"checkmaster/internal/service/recognize"
	"checkmaster/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, genService *generate_excel.GenerateExcelService, recognizer *recognize.Client) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/api/templates", gettemplate.GetAllTemplates(log, storage))
	router.Get("/api/templates/{id}", gettemplate.GetTemplateByID(log, storage))
	router.Post("/api/templates/{id}/duplicate", savetemplate.DuplicateTemplate(log, storage))

	router.Post("/api/inspections/finish", finishinspection.FinishInspection(log, storage))

	router.Get("/api/orders", getorder.GetOrders(log, storage))

	router.Get("/api/report", getreport.GetFinanceReport(log, storage))
	router.Get("/api/report/excel", generate_report.GenerateReportExcel(log, genService))
	router.Get("/api/dashboard", getreport.GetDashboard(log, storage))

	router.Post("/api/recognize", scan.ScanImage(log, recognizer))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/templates", savetemplate.SaveTemplate(log, storage))
	adminRouter.Put("/templates/{id}", uptemplate.UpdateTemplate(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
