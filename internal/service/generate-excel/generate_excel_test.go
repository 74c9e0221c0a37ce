package generate_excel

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"checkmaster/internal/storage"
)

type MockOrderLister struct {
	mock.Mock
}

func (m *MockOrderLister) ListOrders(ctx context.Context) ([]*storage.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Order), args.Error(1)
}

func reportOrders() []*storage.Order {
	date := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.UTC)

	return []*storage.Order{
		{
			ID: "ord-1", TemplateName: "Vistoria Básica", ClientName: "Acme",
			Vehicle: storage.Vehicle{Plate: "ABC1D23"}, TotalValue: 100,
			Status: storage.StatusCompleted, Date: date,
		},
		{
			ID: "ord-2", TemplateName: "Vistoria Básica", ClientName: "Acme",
			TotalValue: 50, Status: storage.StatusCompleted, Date: date.AddDate(0, 0, 1),
		},
		{
			ID: "ord-3", TemplateName: "Vistoria Completa", ClientName: "Acme",
			Vehicle: storage.Vehicle{Plate: "XYZ9A87"}, TotalValue: 200,
			Status: storage.StatusCompleted, Date: date,
		},
		{
			ID: "ord-4", TemplateName: "Vistoria Básica", ClientName: "Beta",
			TotalValue: 500, Status: storage.StatusCompleted, Date: date,
		},
	}
}

func TestGenerateCompanyReport(t *testing.T) {
	mockStorage := new(MockOrderLister)
	mockStorage.On("ListOrders", mock.Anything).Return(reportOrders(), nil)

	service := NewGenerateService(mockStorage)

	raw, err := service.GenerateCompanyReport(context.Background(), "Acme")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Faturamento"

	get := func(cell string) string {
		v, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, "Data", get("A1"))
	assert.Equal(t, "Placa", get("B1"))
	assert.Equal(t, "Serviço", get("C1"))
	assert.Equal(t, "Valor Unitário (R$)", get("D1"))

	// Service blocks come in name order, Básica before Completa.
	assert.Equal(t, "05/03/2026", get("A2"))
	assert.Equal(t, "ABC1D23", get("B2"))
	assert.Equal(t, "Vistoria Básica", get("C2"))
	assert.Equal(t, "100", get("D2"))

	assert.Equal(t, "SEM PLACA", get("B3"))

	assert.Equal(t, "Subtotal Vistoria Básica (2)", get("C4"))
	assert.Equal(t, "150", get("D4"))

	assert.Equal(t, "XYZ9A87", get("B5"))
	assert.Equal(t, "Subtotal Vistoria Completa (1)", get("C6"))

	assert.Equal(t, "TOTAL GERAL DO CLIENTE", get("C7"))
	assert.Equal(t, "350", get("D7"))

	// Only the requested client's orders appear.
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	for _, row := range rows {
		for _, cell := range row {
			assert.NotEqual(t, "500", cell)
		}
	}
}

func TestGenerateCompanyReport_UnknownClient(t *testing.T) {
	mockStorage := new(MockOrderLister)
	mockStorage.On("ListOrders", mock.Anything).Return(reportOrders(), nil)

	service := NewGenerateService(mockStorage)

	raw, err := service.GenerateCompanyReport(context.Background(), "Ghost Ltda")
	assert.Nil(t, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ghost Ltda")
}

func TestGenerateCompanyReport_StorageError(t *testing.T) {
	mockStorage := new(MockOrderLister)
	mockStorage.On("ListOrders", mock.Anything).Return(nil, errors.New("connection timeout"))

	service := NewGenerateService(mockStorage)

	raw, err := service.GenerateCompanyReport(context.Background(), "Acme")
	assert.Nil(t, raw)
	assert.Error(t, err)
}
