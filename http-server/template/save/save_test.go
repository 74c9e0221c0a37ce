package save

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"checkmaster/internal/storage"
)

type MockTemplateStore struct {
	mock.Mock
}

func (m *MockTemplateStore) GetTemplateByID(ctx context.Context, id string) (*storage.Template, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.Template), args.Error(1)
}

func (m *MockTemplateStore) SaveTemplate(ctx context.Context, template *storage.Template) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func TestSaveTemplate_Success(t *testing.T) {
	mockStorage := new(MockTemplateStore)

	var saved *storage.Template
	mockStorage.On("SaveTemplate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*storage.Template)
		}).
		Return(nil)

	handler := SaveTemplate(slog.Default(), mockStorage)

	body, err := json.Marshal(storage.Template{
		Name: "Vistoria Cautelar",
		Fields: []storage.Field{
			{ID: "f-1", Label: "Placa", Type: storage.FieldRecognizedPlate},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/templates", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err = render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)

	// Templates arriving without an identifier get one assigned.
	assert.NotEmpty(t, resp.TemplateID)
	assert.Equal(t, "saved", resp.Status)

	require.NotNil(t, saved)
	assert.Equal(t, resp.TemplateID, saved.ID)

	mockStorage.AssertExpectations(t)
}

func TestSaveTemplate_DuplicateFieldIDsRejected(t *testing.T) {
	mockStorage := new(MockTemplateStore)

	handler := SaveTemplate(slog.Default(), mockStorage)

	body, err := json.Marshal(storage.Template{
		Name: "Quebrado",
		Fields: []storage.Field{
			{ID: "f-1", Label: "A", Type: storage.FieldText},
			{ID: "f-1", Label: "B", Type: storage.FieldText},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/templates", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveTemplate", mock.Anything, mock.Anything)
}

func TestSaveTemplate_InvalidJSON(t *testing.T) {
	mockStorage := new(MockTemplateStore)

	handler := SaveTemplate(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/templates", strings.NewReader("{broken"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveTemplate", mock.Anything, mock.Anything)
}

func duplicateRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/templates/"+id+"/duplicate", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDuplicateTemplate_Success(t *testing.T) {
	mockStorage := new(MockTemplateStore)

	original := &storage.Template{
		ID:         "tpl-1",
		Name:       "Vistoria Cautelar",
		IsFavorite: true,
		Fields: []storage.Field{
			{ID: "f-1", Label: "Placa", Type: storage.FieldRecognizedPlate},
		},
	}

	mockStorage.On("GetTemplateByID", mock.Anything, "tpl-1").Return(original, nil)

	var saved *storage.Template
	mockStorage.On("SaveTemplate", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*storage.Template)
		}).
		Return(nil)

	handler := DuplicateTemplate(slog.Default(), mockStorage)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, duplicateRequest("tpl-1"))

	assert.Equal(t, http.StatusOK, rr.Code)

	require.NotNil(t, saved)
	assert.NotEqual(t, "tpl-1", saved.ID)
	assert.Equal(t, "Vistoria Cautelar (Cópia)", saved.Name)
	assert.False(t, saved.IsFavorite)
	assert.Equal(t, original.Fields, saved.Fields)

	mockStorage.AssertExpectations(t)
}

func TestDuplicateTemplate_NotFound(t *testing.T) {
	mockStorage := new(MockTemplateStore)
	mockStorage.On("GetTemplateByID", mock.Anything, "ghost").Return(nil, sql.ErrNoRows)

	handler := DuplicateTemplate(slog.Default(), mockStorage)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, duplicateRequest("ghost"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	mockStorage.AssertNotCalled(t, "SaveTemplate", mock.Anything, mock.Anything)
}
