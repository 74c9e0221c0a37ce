package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type GenerateExcelHandler interface {
	GenerateCompanyReport(ctx context.Context, clientName string) ([]byte, error)
}

// GenerateReportExcel streams one company's billing workbook.
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.report.GenerateReportExcel"

		clientName := r.URL.Query().Get("client")
		if clientName == "" {
			http.Error(w, "Missing required query parameter 'client'", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.GenerateCompanyReport(ctx, clientName)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Faturamento_%s_%s.xlsx", clientName, time.Now().Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
