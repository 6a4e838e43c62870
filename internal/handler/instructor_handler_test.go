package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/contract-capacity-api/internal/dto"
	internalmiddleware "github.com/noah-isme/contract-capacity-api/internal/middleware"
	"github.com/noah-isme/contract-capacity-api/internal/models"
	appErrors "github.com/noah-isme/contract-capacity-api/pkg/errors"
)

type instructorServiceMock struct {
	filter   models.InstructorFilter
	created  dto.CreateInstructorRequest
	capacity dto.UpdateCapacityRequest
	items    map[string]models.Instructor
}

func newInstructorServiceMock() *instructorServiceMock {
	return &instructorServiceMock{items: map[string]models.Instructor{
		"i1": {ID: "i1", Name: "JOÃO SILVA", ContractType: models.ContractSalaried, WeeklyHours: 40, Status: models.InstructorActive},
	}}
}

func (m *instructorServiceMock) lookup(id string) (*models.Instructor, error) {
	inst, ok := m.items[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}
	return &inst, nil
}

func (m *instructorServiceMock) List(ctx context.Context, filter models.InstructorFilter) ([]models.Instructor, *models.Pagination, error) {
	m.filter = filter
	return []models.Instructor{m.items["i1"]}, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: 1}, nil
}

func (m *instructorServiceMock) Get(ctx context.Context, id string) (*models.Instructor, error) {
	return m.lookup(id)
}

func (m *instructorServiceMock) Create(ctx context.Context, req dto.CreateInstructorRequest) (*models.Instructor, error) {
	m.created = req
	return &models.Instructor{ID: "new", Name: req.Name, WeeklyHours: models.DefaultWeeklyHours}, nil
}

func (m *instructorServiceMock) Update(ctx context.Context, id string, req dto.UpdateInstructorRequest) (*models.Instructor, error) {
	return m.lookup(id)
}

func (m *instructorServiceMock) Delete(ctx context.Context, id string) error {
	_, err := m.lookup(id)
	return err
}

func (m *instructorServiceMock) ToggleContract(ctx context.Context, id string) (*models.Instructor, error) {
	inst, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	inst.ContractType = models.ContractHourly
	return inst, nil
}

func (m *instructorServiceMock) ToggleStatus(ctx context.Context, id string) (*models.Instructor, error) {
	return m.lookup(id)
}

func (m *instructorServiceMock) SetMonthlyCapacity(ctx context.Context, id string, req dto.UpdateCapacityRequest) (*models.Instructor, error) {
	m.capacity = req
	inst, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	inst.WeeklyHours = *req.MonthlyHours / 4
	return inst, nil
}

func (m *instructorServiceMock) SetWorkShift(ctx context.Context, id string, req dto.UpdateWorkShiftRequest) (*models.Instructor, error) {
	return m.lookup(id)
}

func (m *instructorServiceMock) SetArea(ctx context.Context, id string, req dto.UpdateAreaRequest) (*models.Instructor, error) {
	return m.lookup(id)
}

func newTestContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	req, _ := http.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dest))
}

func TestInstructorListParsesQuery(t *testing.T) {
	mockSvc := newInstructorServiceMock()
	handler := &InstructorHandler{service: mockSvc}
	c, w := newTestContext(http.MethodGet, "/instructors?search=%20silva%20&status=ativo&contract_type=horista&page=2&limit=5&sort=area&order=desc", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "silva", mockSvc.filter.Search)
	require.Equal(t, models.InstructorActive, mockSvc.filter.Status)
	require.Equal(t, models.ContractHourly, mockSvc.filter.ContractType)
	require.Equal(t, 2, mockSvc.filter.Page)
	require.Equal(t, 5, mockSvc.filter.PageSize)
	require.Equal(t, "area", mockSvc.filter.SortBy)

	var items []dto.InstructorResponse
	decodeData(t, w, &items)
	require.Len(t, items, 1)
	require.Equal(t, 160.0, items[0].MonthlyHours)
}

func TestInstructorGetNotFound(t *testing.T) {
	handler := &InstructorHandler{service: newInstructorServiceMock()}
	c, w := newTestContext(http.MethodGet, "/instructors/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestInstructorCreate(t *testing.T) {
	mockSvc := newInstructorServiceMock()
	handler := &InstructorHandler{service: mockSvc}
	c, w := newTestContext(http.MethodPost, "/instructors", []byte(`{"name":"Ana Lima","area":"TI"}`))

	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Ana Lima", mockSvc.created.Name)
	require.Equal(t, "TI", mockSvc.created.Area)
}

func TestInstructorCreateMalformedPayload(t *testing.T) {
	handler := &InstructorHandler{service: newInstructorServiceMock()}
	c, w := newTestContext(http.MethodPost, "/instructors", []byte(`{"name":`))

	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInstructorSetCapacity(t *testing.T) {
	mockSvc := newInstructorServiceMock()
	handler := &InstructorHandler{service: mockSvc}
	c, w := newTestContext(http.MethodPut, "/instructors/i1/capacity", []byte(`{"monthly_hours":100}`))
	c.Params = gin.Params{{Key: "id", Value: "i1"}}

	handler.SetCapacity(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, mockSvc.capacity.MonthlyHours)
	require.Equal(t, 100.0, *mockSvc.capacity.MonthlyHours)

	var inst dto.InstructorResponse
	decodeData(t, w, &inst)
	require.Equal(t, 25.0, inst.WeeklyHours)
	require.Equal(t, 100.0, inst.MonthlyHours)
}

func TestInstructorToggleContract(t *testing.T) {
	handler := &InstructorHandler{service: newInstructorServiceMock()}
	c, w := newTestContext(http.MethodPost, "/instructors/i1/contract/toggle", nil)
	c.Params = gin.Params{{Key: "id", Value: "i1"}}

	handler.ToggleContract(c)

	require.Equal(t, http.StatusOK, w.Code)
	var inst dto.InstructorResponse
	decodeData(t, w, &inst)
	require.Equal(t, models.ContractHourly, inst.ContractType)
}

func TestInstructorDelete(t *testing.T) {
	handler := &InstructorHandler{service: newInstructorServiceMock()}
	c, w := newTestContext(http.MethodDelete, "/instructors/i1", nil)
	c.Params = gin.Params{{Key: "id", Value: "i1"}}

	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
}

func TestInstructorRoutesRequireWriteRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &InstructorHandler{service: newInstructorServiceMock()}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(internalmiddleware.ContextUserKey, &models.JWTClaims{UserID: "viewer-1", Role: models.RoleViewer})
		c.Next()
	})
	router.POST("/instructors", internalmiddleware.RequireRoles(models.RoleAdmin, models.RoleCoordinator), handler.Create)
	router.GET("/instructors", internalmiddleware.RequireRoles(models.RoleAdmin, models.RoleCoordinator, models.RoleViewer), handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/instructors", bytes.NewReader([]byte(`{"name":"Ana"}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/instructors", nil)
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestInstructorRoutesUnauthorized(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := &InstructorHandler{service: newInstructorServiceMock()}
	router := gin.New()
	router.GET("/instructors", internalmiddleware.RBAC(string(models.RoleAdmin)), handler.List)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/instructors", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
