package echoapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/cardlect/cardlect/apps/api/echo/handlers"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
	emailsvc "github.com/cardlect/cardlect/services/email"
	logsvc "github.com/cardlect/cardlect/services/logger"
	inmemdb "github.com/cardlect/cardlect/storage/database/inmem"
	sessionstore "github.com/cardlect/cardlect/storage/session"
)

func setupServer(t *testing.T) Server {
	t.Helper()

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setupServer() failed: %v", err)
	}
	svc := school.NewService(inmemdb.NewRepositories(db), emailsvc.NewConsoleServiceMock())

	ids, err := identity.Seed()
	if err != nil {
		t.Fatalf("setupServer() failed: %v", err)
	}
	logger := logsvc.NewStdLogger(log.New(os.Stdout, "", log.LstdFlags))
	sessions := identity.NewManager(identity.NewSeedProvider(ids...), sessionstore.NewMemoryStore(), logger)

	return NewServer(&Options{
		DisableReqLogs: true,
		Sessions:       sessions,
		SchoolSvc:      svc,
		Logger:         logger,
	})
}

func doRequest(srv Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, srv Server, email string) string {
	t.Helper()

	rec := doRequest(srv, http.MethodPost, "/v1/auth/login", "",
		handlers.LoginRequest{Email: email, Password: identity.DemoPassword})
	if rec.Code != http.StatusOK {
		t.Fatalf("login(%s) failed: %d %s", email, rec.Code, rec.Body.String())
	}
	var resp handlers.LoginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("login(%s) failed: %v", email, err)
	}
	return resp.Token
}

func createTenant(t *testing.T, srv Server, superToken string) school.School {
	t.Helper()

	rec := doRequest(srv, http.MethodPost, "/v1/schools", superToken,
		school.NewSchool{Name: "Kivu Heights", Region: "East"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("createTenant() failed: %d %s", rec.Code, rec.Body.String())
	}
	var sch school.School
	if err := json.Unmarshal(rec.Body.Bytes(), &sch); err != nil {
		t.Fatalf("createTenant() failed: %v", err)
	}
	return sch
}

func Test_server_home(t *testing.T) {
	srv := setupServer(t)

	rec := doRequest(srv, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Cardlect API!", rec.Body.String())
}

func Test_server_login(t *testing.T) {
	srv := setupServer(t)

	rec := doRequest(srv, http.MethodPost, "/v1/auth/login", "",
		handlers.LoginRequest{Email: "admin@cardlect.io", Password: identity.DemoPassword})
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.LoginResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, identity.RoleSuperUser, resp.Identity.Role)
	assert.Empty(t, resp.Identity.TenantID)
}

func Test_server_login_badCredentials(t *testing.T) {
	srv := setupServer(t)

	tests := []struct {
		name string
		body handlers.LoginRequest
	}{
		{"wrong password", handlers.LoginRequest{Email: "admin@cardlect.io", Password: "nope"}},
		{"unknown email", handlers.LoginRequest{Email: "nobody@cardlect.io", Password: identity.DemoPassword}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, http.MethodPost, "/v1/auth/login", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func Test_server_me(t *testing.T) {
	srv := setupServer(t)
	token := login(t, srv, "finance@cardlect.io")

	rec := doRequest(srv, http.MethodGet, "/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var ident identity.Identity
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ident))
	assert.Equal(t, identity.RoleFinance, ident.Role)
	assert.Equal(t, identity.DemoTenantID, ident.TenantID)

	// no token at all
	rec = doRequest(srv, http.MethodGet, "/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_server_roleGuardRedirects(t *testing.T) {
	srv := setupServer(t)
	teacherToken := login(t, srv, "teacher@cardlect.io")
	financeToken := login(t, srv, "finance@cardlect.io")

	tests := []struct {
		name         string
		method, path string
		token        string
		wantLocation string
	}{
		{"teacher on schools", http.MethodGet, "/v1/schools", teacherToken, "/teacher"},
		{"finance on schools", http.MethodGet, "/v1/schools", financeToken, "/finance"},
		{"finance on assignments", http.MethodPost, "/v1/assignments", financeToken, "/finance"},
		{"teacher on cards", http.MethodPost, "/v1/cards", teacherToken, "/teacher"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(srv, tt.method, tt.path, tt.token, nil)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
		})
	}
}

func Test_server_schoolCRUD(t *testing.T) {
	srv := setupServer(t)
	token := login(t, srv, "admin@cardlect.io")

	sch := createTenant(t, srv, token)
	assert.Equal(t, school.SchoolActive, sch.Status)

	// retrieve
	rec := doRequest(srv, http.MethodGet, "/v1/schools/"+sch.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// update keeps unset fields
	rec = doRequest(srv, http.MethodPut, "/v1/schools/"+sch.ID, token, school.UpdateSchool{Region: "West"})
	assert.Equal(t, http.StatusOK, rec.Code)
	var updated school.School
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Kivu Heights", updated.Name)
	assert.Equal(t, "West", updated.Region)

	// toggle
	rec = doRequest(srv, http.MethodPost, fmt.Sprintf("/v1/schools/%s/toggle", sch.ID), token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var toggled school.School
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.Equal(t, school.SchoolInactive, toggled.Status)

	// delete, then gone
	rec = doRequest(srv, http.MethodDelete, "/v1/schools/"+sch.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doRequest(srv, http.MethodGet, "/v1/schools/"+sch.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_server_schoolCreate_invalid(t *testing.T) {
	srv := setupServer(t)
	token := login(t, srv, "admin@cardlect.io")

	rec := doRequest(srv, http.MethodPost, "/v1/schools", token, school.NewSchool{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_server_staffFlow(t *testing.T) {
	srv := setupServer(t)
	superToken := login(t, srv, "admin@cardlect.io")
	adminToken := login(t, srv, "school-admin@cardlect.io")
	sch := createTenant(t, srv, superToken)

	// school admins manage staff
	rec := doRequest(srv, http.MethodPost, "/v1/staff", adminToken,
		school.NewStaff{TenantID: sch.ID, Name: "Abdoul", JobTitle: "Registrar"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	var st school.Staff
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))

	rec = doRequest(srv, http.MethodGet, "/v1/staff/tenant/"+sch.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var staff []school.Staff
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &staff))
	assert.Equal(t, []school.Staff{st}, staff)

	// unknown tenant rejected at the store boundary
	rec = doRequest(srv, http.MethodPost, "/v1/staff", adminToken,
		school.NewStaff{TenantID: "nope", Name: "Abdoul", JobTitle: "Registrar"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_server_transactionFlow(t *testing.T) {
	srv := setupServer(t)
	superToken := login(t, srv, "admin@cardlect.io")
	financeToken := login(t, srv, "finance@cardlect.io")
	storeToken := login(t, srv, "store@cardlect.io")
	sch := createTenant(t, srv, superToken)

	// finance issues a card
	rec := doRequest(srv, http.MethodPost, "/v1/cards", financeToken,
		school.NewCard{TenantID: sch.ID, HolderID: "stu-1"})
	assert.Equal(t, http.StatusCreated, rec.Code)
	var c school.Card
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, int64(0), c.Balance)

	// overdraft rejected before any topup
	rec = doRequest(srv, http.MethodPost, "/v1/transactions", storeToken,
		school.NewCardTransaction{CardID: c.ID, Kind: school.TransactionPurchase, Amount: 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// finance tops up, the till spends
	rec = doRequest(srv, http.MethodPost, "/v1/transactions", financeToken,
		school.NewCardTransaction{CardID: c.ID, Kind: school.TransactionTopup, Amount: 500})
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(srv, http.MethodPost, "/v1/transactions", storeToken,
		school.NewCardTransaction{CardID: c.ID, Kind: school.TransactionPurchase, Amount: 200})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/v1/cards/"+c.ID, financeToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, int64(300), c.Balance)

	// the security desk blocks the card; the till is refused
	securityToken := login(t, srv, "security@cardlect.io")
	rec = doRequest(srv, http.MethodPost, fmt.Sprintf("/v1/cards/%s/toggle", c.ID), securityToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(srv, http.MethodPost, "/v1/transactions", storeToken,
		school.NewCardTransaction{CardID: c.ID, Kind: school.TransactionPurchase, Amount: 50})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// ledger shows the two committed entries
	rec = doRequest(srv, http.MethodGet, "/v1/cards/"+c.ID+"/transactions", financeToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var txs []school.CardTransaction
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txs))
	assert.Len(t, txs, 2)
}

func Test_server_examAndAssignmentGuards(t *testing.T) {
	srv := setupServer(t)
	superToken := login(t, srv, "admin@cardlect.io")
	teacherToken := login(t, srv, "teacher@cardlect.io")
	examsToken := login(t, srv, "exams@cardlect.io")
	studentToken := login(t, srv, "student@cardlect.io")
	sch := createTenant(t, srv, superToken)

	// exam officers write exam records; teachers only read them
	rec := doRequest(srv, http.MethodPost, "/v1/exams", examsToken,
		school.NewExamRecord{TenantID: sch.ID, StudentID: "stu-1", Subject: "Math", Score: 82})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(srv, http.MethodPost, "/v1/exams", teacherToken,
		school.NewExamRecord{TenantID: sch.ID, StudentID: "stu-1", Subject: "Math", Score: 82})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	rec = doRequest(srv, http.MethodGet, "/v1/exams/tenant/"+sch.ID, teacherToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// teachers write assignments; students only read them
	rec = doRequest(srv, http.MethodPost, "/v1/assignments", teacherToken,
		school.NewAssignment{TenantID: sch.ID, Title: "Essay"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(srv, http.MethodGet, "/v1/assignments/tenant/"+sch.ID, studentToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(srv, http.MethodPost, "/v1/assignments", studentToken,
		school.NewAssignment{TenantID: sch.ID, Title: "Essay"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/student", rec.Header().Get(echo.HeaderLocation))
}
