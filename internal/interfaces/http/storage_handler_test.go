package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Estanteria-api/internal/application/analytics"
	"github.com/jhoicas/Estanteria-api/internal/application/auth"
	"github.com/jhoicas/Estanteria-api/internal/application/dto"
	"github.com/jhoicas/Estanteria-api/internal/application/storage"
	"github.com/jhoicas/Estanteria-api/internal/domain/entity"
	"github.com/jhoicas/Estanteria-api/internal/domain/slot"
	"github.com/jhoicas/Estanteria-api/internal/infrastructure/memory"
	"github.com/jhoicas/Estanteria-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/Estanteria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const apiProductID = "prod-api"

// buildAPI arma el router completo sobre el store en memoria con un producto en el piso 1.
func buildAPI(t *testing.T, locations map[string]slot.Status) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	repos := store.Repos()
	require.NoError(t, repos.Products.Create(context.Background(), &entity.Product{
		ID: apiProductID, Code: "2020 BZ", Name: "Manija 2020", ColorSuffix: "BZ", Floor: 1, Locations: locations,
	}))

	layout := slot.MustLayout(slot.DefaultColumns)
	storageUC := storage.NewStorageUseCase(
		memory.NewTxRunner(store),
		repos.Products, repos.Overflow, repos.Production, repos.Movements,
		layout, zerolog.Nop(),
	)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(store.Users(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		StorageUC:   storageUC,
		ReportUC:    storage.NewReportUseCase(storageUC, pdf.NewMarotoPDFGenerator()),
		DashboardUC: analytics.NewDashboardUseCase(repos.Products, repos.Overflow, repos.Movements, store.Occupancy(), layout, 2, zerolog.Nop()),
		JWTSecret:   testJWTSecret,
	})
	return app
}

// call lanza una petición autenticada con el rol indicado.
func call(t *testing.T, app *fiber.App, method, path, role string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests endpoints de almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestStoreEndpoint_Created(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodPost, "/api/storage/store", entity.RoleOperador,
		dto.StoreRequest{ProductID: apiProductID, Column: "L2", Quantity: 1})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, dto.PlacementColumn, out["placement"])
	col := out["column"].(map[string]any)
	assert.Equal(t, float64(1), col["status"])
	assert.Equal(t, "1 caja", col["label"])
}

func TestStoreEndpoint_SinEspacio409(t *testing.T) {
	app := buildAPI(t, map[string]slot.Status{"L1": slot.Full})
	resp := call(t, app, http.MethodPost, "/api/storage/store", entity.RoleOperador,
		dto.StoreRequest{ProductID: apiProductID, Column: "L1", Quantity: 1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_SPACE", decodeError(t, resp).Code)
}

func TestStoreEndpoint_CantidadInvalida400(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodPost, "/api/storage/store", entity.RoleOperador,
		dto.StoreRequest{ProductID: apiProductID, Column: "L1", Quantity: -1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", decodeError(t, resp).Code)
}

func TestWithdrawEndpoint_ReservadoEsConflicto(t *testing.T) {
	app := buildAPI(t, map[string]slot.Status{"L4": slot.ReservedForProduction})
	resp := call(t, app, http.MethodPost, "/api/storage/withdraw", entity.RoleOperador,
		dto.WithdrawRequest{ProductID: apiProductID, Column: "L4", Quantity: 1})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decodeError(t, resp).Code)
}

func TestProductEndpoint_NoEncontrado404(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodGet, "/api/products/no-existe", entity.RoleOperador, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSuggestionEndpoint(t *testing.T) {
	app := buildAPI(t, map[string]slot.Status{"L1": slot.Partial})
	resp := call(t, app, http.MethodGet, "/api/products/"+apiProductID+"/suggestion", entity.RoleOperador, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, false, out["use_overflow"])
	s := out["suggestion"].(map[string]any)
	assert.Equal(t, "L2", s["column"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests producción (RBAC)
// ──────────────────────────────────────────────────────────────────────────────

func TestProductionMark_OperadorProhibido(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodPost, "/api/production/mark", entity.RoleOperador,
		dto.MarkProductionRequest{ProductID: apiProductID, Column: "L1"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestProductionMark_GerenteReservaColumna(t *testing.T) {
	app := buildAPI(t, nil)
	resp := call(t, app, http.MethodPost, "/api/production/mark", entity.RoleGerente,
		dto.MarkProductionRequest{ProductID: apiProductID, Column: "L1"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	detail := call(t, app, http.MethodGet, "/api/products/"+apiProductID, entity.RoleOperador, nil)
	defer detail.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(detail.Body).Decode(&out))
	assert.Equal(t, string(slot.CategoryInProduction), out["category"])
	first := out["columns"].([]any)[0].(map[string]any)
	assert.Equal(t, "OK", first["status"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests otros endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestOverflowReport_DevuelvePDF(t *testing.T) {
	app := buildAPI(t, nil)
	park := call(t, app, http.MethodPost, "/api/storage/overflow", entity.RoleOperador,
		dto.OverflowRequest{ProductID: apiProductID, Quantity: 2})
	park.Body.Close()
	require.Equal(t, http.StatusCreated, park.StatusCode)

	resp := call(t, app, http.MethodGet, "/api/overflow/report", entity.RoleOperador, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "el cuerpo debe ser un PDF")
}

func TestHealthYLegend(t *testing.T) {
	app := buildAPI(t, nil)

	health, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)

	resp := call(t, app, http.MethodGet, "/api/slots/legend", entity.RoleOperador, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out["states"], 4)
	assert.Equal(t, float64(slot.MaxBoxes), out["max_boxes"])
}

func TestDashboardEndpoint(t *testing.T) {
	app := buildAPI(t, map[string]slot.Status{"L1": slot.Full})
	resp := call(t, app, http.MethodGet, "/api/dashboard/stats", entity.RoleOperador, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.DashboardStatsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.Full)
	assert.Equal(t, 2, out.TotalBoxes)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests alta de usuarios y login
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_SoloAdmin(t *testing.T) {
	app := buildAPI(t, nil)
	body := dto.RegisterRequest{Email: "nuevo@estanteria.local", Password: "clave-larga", Name: "Nuevo", Role: entity.RoleGerente}

	denied := call(t, app, http.MethodPost, "/api/auth/register", entity.RoleGerente, body)
	denied.Body.Close()
	assert.Equal(t, http.StatusForbidden, denied.StatusCode)

	created := call(t, app, http.MethodPost, "/api/auth/register", entity.RoleAdmin, body)
	defer created.Body.Close()
	require.Equal(t, http.StatusCreated, created.StatusCode)
	var user dto.UserResponse
	require.NoError(t, json.NewDecoder(created.Body).Decode(&user))
	assert.Equal(t, entity.RoleGerente, user.Role)

	dup := call(t, app, http.MethodPost, "/api/auth/register", entity.RoleAdmin, body)
	defer dup.Body.Close()
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
	assert.Equal(t, "EMAIL_EXISTS", decodeError(t, dup).Code)
}

func TestLogin_TrasRegistro(t *testing.T) {
	app := buildAPI(t, nil)
	reg := call(t, app, http.MethodPost, "/api/auth/register", entity.RoleAdmin,
		dto.RegisterRequest{Email: "op@estanteria.local", Password: "clave-larga", Name: "Operador"})
	reg.Body.Close()
	require.Equal(t, http.StatusCreated, reg.StatusCode)

	login := func(password string) *http.Response {
		raw, _ := json.Marshal(dto.LoginRequest{Email: "op@estanteria.local", Password: password})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp
	}

	ok := login("clave-larga")
	defer ok.Body.Close()
	require.Equal(t, http.StatusOK, ok.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(ok.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleOperador, out.User.Role)

	bad := login("otra-clave")
	bad.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, bad.StatusCode)
}
