package generate_excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"checkmaster/internal/service/report"
	"checkmaster/internal/storage"
)

type GenerateExcelStorage interface {
	ListOrders(ctx context.Context) ([]*storage.Order, error)
}

type GenerateExcelService struct {
	storage GenerateExcelStorage
}

func NewGenerateService(storage GenerateExcelStorage) *GenerateExcelService {
	return &GenerateExcelService{storage: storage}
}

// GenerateCompanyReport renders one company's consolidated billing
// workbook: a block per service group listing each order's plate, date and
// value, a subtotal per service and a grand total for the client.
func (g *GenerateExcelService) GenerateCompanyReport(ctx context.Context, clientName string) ([]byte, error) {
	const op = "service.generate_excel.GenerateCompanyReport"

	orders, err := g.storage.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch orders: %w", op, err)
	}

	_, companies := report.Aggregate(orders)

	var company *report.CompanyGroup
	for _, c := range companies {
		if c.ClientName == clientName {
			company = c
			break
		}
	}
	if company == nil {
		return nil, fmt.Errorf("%s: no completed orders for client %q", op, clientName)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Faturamento"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	headers := []string{"Data", "Placa", "Serviço", "Valor Unitário (R$)"}
	for i, name := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	row := 2
	for _, name := range company.ServiceNames() {
		service := company.Services[name]

		for _, order := range service.Orders {
			plate := order.Vehicle.Plate
			if plate == "" {
				plate = "SEM PLACA"
			}

			f.SetCellValue(sheet, cellName(1, row), order.Date.Format("02/01/2006"))
			f.SetCellValue(sheet, cellName(2, row), plate)
			f.SetCellValue(sheet, cellName(3, row), order.TemplateName)
			f.SetCellValue(sheet, cellName(4, row), order.TotalValue)
			row++
		}

		f.SetCellValue(sheet, cellName(3, row), fmt.Sprintf("Subtotal %s (%d)", service.TemplateName, service.Count))
		f.SetCellValue(sheet, cellName(4, row), service.Total)
		f.SetCellStyle(sheet, cellName(3, row), cellName(4, row), sectionStyle)
		row++
	}

	f.SetCellValue(sheet, cellName(3, row), "TOTAL GERAL DO CLIENTE")
	f.SetCellValue(sheet, cellName(4, row), company.TotalValue)
	f.SetCellStyle(sheet, cellName(3, row), cellName(4, row), headerStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})
	f.SetColWidth(sheet, "A", "D", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: write workbook: %w", op, err)
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
