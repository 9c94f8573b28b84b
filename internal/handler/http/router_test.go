package http_test

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dayflow-hris/hrms-backend-go/internal/app"
	"github.com/dayflow-hris/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow-hris/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/sse"
	"github.com/dayflow-hris/hrms-backend-go/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const handlerTestSecret = "test-secret-key-for-jwt"

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

type testServer struct {
	t       *testing.T
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	stores := app.MemoryStores()
	seed := config.SeedConfig{AttendanceDays: 40, RandomSeed: 42}
	require.NoError(t, app.SeedDemo(context.Background(), stores, seed, time.Now().UTC(), bcrypt.MinCost))

	jwtService, err := jwt.NewJWTService(handlerTestSecret, "1h")
	require.NoError(t, err)

	dir := t.TempDir()
	fileStorage, err := storage.NewLocalStorage(dir, "http://localhost/uploads")
	require.NoError(t, err)

	a := app.New(stores, jwtService, fileStorage, sse.NewHub(8))
	router := appHTTP.NewRouter(jwtService, appHTTP.RouterOptions{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		AllowedOrigins: []string{"http://localhost:5173"},
		UploadsDir:     dir,
	}, a.Handlers)

	return &testServer{t: t, handler: router}
}

func (s *testServer) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		if raw, ok := body.(string); ok {
			reader = strings.NewReader(raw)
		} else {
			b, err := json.Marshal(body)
			require.NoError(s.t, err)
			reader = bytes.NewReader(b)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (s *testServer) login(email, role string) string {
	s.t.Helper()
	rec, env := s.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": email, "password": "password123", "role": role,
	})
	require.Equal(s.t, http.StatusCreated, rec.Code, rec.Body.String())

	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &tok))
	require.NotEmpty(s.t, tok.AccessToken)
	return tok.AccessToken
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestHeartbeat(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body interface{}
		code int
		err  string
	}{
		{"wrong password", map[string]string{"email": "dhruv@gmail.com", "password": "nope", "role": "employee"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"unknown email", map[string]string{"email": "ghost@gmail.com", "password": "password123", "role": "employee"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"wrong role", map[string]string{"email": "dhruv@gmail.com", "password": "password123", "role": "admin"}, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"missing fields", map[string]string{"email": "dhruv@gmail.com"}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"malformed body", "{", http.StatusBadRequest, "BAD_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := s.do(http.MethodPost, "/api/v1/auth/login", "", tt.body)
			assert.Equal(t, tt.code, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.err, env.Error.Code)
		})
	}

	token := s.login("HR@gmail.com", "admin")
	rec, env := s.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "3", me["id"])
	assert.Equal(t, "admin", me["role"])
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	other, err := jwt.NewJWTService("another-secret", "1h")
	require.NoError(t, err)
	_, forged, err := other.JWTAuth().Encode(map[string]interface{}{"user_id": "3", "role": "admin", "type": "access"})
	require.NoError(t, err)
	rec, _ = s.do(http.MethodGet, "/api/v1/profile", forged, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login("dhruv@gmail.com", "employee")

	rec, _ := s.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLeaveLifecycle(t *testing.T) {
	s := newTestServer(t)
	employee := s.login("dhruv@gmail.com", "employee")
	admin := s.login("hr@gmail.com", "admin")

	rec, env := s.do(http.MethodPost, "/api/v1/leave/requests", employee, map[string]string{
		"leave_type": "sick", "start_date": "2026-02-10", "end_date": "2026-02-11", "remarks": "Flu",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]interface{}](t, env.Data)
	id := created["id"].(string)
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "DHRUV", created["employee_name"])

	rec, env = s.do(http.MethodPost, "/api/v1/leave/requests", employee, map[string]string{
		"employee_id": "2", "leave_type": "sick", "start_date": "2026-02-10", "end_date": "2026-02-11", "remarks": "x",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/leave/requests/pending", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = s.do(http.MethodGet, "/api/v1/leave/requests/pending", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	pending := decode[map[string]interface{}](t, env.Data)
	assert.EqualValues(t, 3, pending["total_count"])

	rec, _ = s.do(http.MethodPost, "/api/v1/leave/requests/"+id+"/decision", employee, map[string]string{"outcome": "approved"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodPost, "/api/v1/leave/requests/"+id+"/decision", admin, map[string]string{"outcome": "maybe"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, env = s.do(http.MethodPost, "/api/v1/leave/requests/"+id+"/decision", admin, map[string]string{
		"outcome": "approved", "comment": "Get well soon",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decided := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "approved", decided["status"])

	rec, _ = s.do(http.MethodPost, "/api/v1/leave/requests/"+id+"/decision", admin, map[string]string{"outcome": "rejected"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = s.do(http.MethodPost, "/api/v1/leave/requests/leave-missing/decision", admin, map[string]string{"outcome": "rejected"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = s.do(http.MethodGet, "/api/v1/notifications", employee, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	notices := decode[struct {
		Notices []struct {
			LeaveID string `json:"leave_id"`
			Message string `json:"message"`
		} `json:"notices"`
		Total int `json:"total"`
	}](t, env.Data)
	require.Equal(t, 2, notices.Total)
	assert.Equal(t, id, notices.Notices[0].LeaveID)
	assert.Equal(t, "Your sick leave request for 2026-02-10 - 2026-02-11 has been approved.", notices.Notices[0].Message)

	rec, env = s.do(http.MethodGet, "/api/v1/leave/requests", employee, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	own := decode[map[string]interface{}](t, env.Data)
	assert.EqualValues(t, 2, own["total_count"])

	rec, env = s.do(http.MethodGet, "/api/v1/leave/requests", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[map[string]interface{}](t, env.Data)
	assert.EqualValues(t, 5, all["total_count"])

	rec, _ = s.do(http.MethodGet, "/api/v1/leave/requests/leave-2", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAttendanceCalendar(t *testing.T) {
	s := newTestServer(t)
	employee := s.login("dhruv@gmail.com", "employee")

	rec, env := s.do(http.MethodGet, "/api/v1/attendance/calendar?year=2026&month=1", employee, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[struct {
		DaysInMonth   int `json:"days_in_month"`
		LeadingBlanks int `json:"leading_blanks"`
		Days          []struct {
			Date  string                 `json:"date"`
			Leave map[string]interface{} `json:"leave"`
		} `json:"days"`
	}](t, env.Data)
	assert.Equal(t, 31, view.DaysInMonth)
	assert.Equal(t, 4, view.LeadingBlanks)
	require.Len(t, view.Days, 31)
	for i, d := range view.Days {
		inLeave := i+1 >= 10 && i+1 <= 12
		assert.Equal(t, inLeave, d.Leave != nil, d.Date)
	}

	rec, _ = s.do(http.MethodGet, "/api/v1/attendance/calendar?year=2026&month=13", employee, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/attendance/calendar?year=abc", employee, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/attendance/calendar?employee_id=2&year=2026&month=1", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = s.do(http.MethodGet, "/api/v1/attendance/summary", employee, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decode[map[string]interface{}](t, env.Data)
	assert.NotZero(t, summary["total_days"])
}

func TestPayroll(t *testing.T) {
	s := newTestServer(t)
	employee := s.login("dhruv@gmail.com", "employee")
	admin := s.login("hr@gmail.com", "admin")

	rec, env := s.do(http.MethodGet, "/api/v1/payroll", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Records         []map[string]interface{} `json:"records"`
		TotalNetPayroll string                   `json:"total_net_payroll"`
	}](t, env.Data)
	assert.Len(t, list.Records, 5)
	assert.Equal(t, "429000", list.TotalNetPayroll)

	rec, _ = s.do(http.MethodPut, "/api/v1/payroll/records/payroll-1", employee, map[string]string{"basic_salary": "1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodPut, "/api/v1/payroll/records/payroll-1", admin, map[string]string{"deductions": "-5"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec, env = s.do(http.MethodPut, "/api/v1/payroll/records/payroll-1", admin, map[string]string{"basic_salary": "90000"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "98500", updated["net_salary"])

	rec, _ = s.do(http.MethodGet, "/api/v1/payroll/2", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(http.MethodGet, "/api/v1/payroll/1/payslip", employee, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="Payslip_DHRUV_January_2026.html"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "$98500.00")
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(http.MethodGet, "/api/v1/dashboard", s.login("hr@gmail.com", "admin"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view := decode[map[string]interface{}](t, env.Data)
	assert.Equal(t, "admin", view["role"])
	require.Contains(t, view, "admin")
	assert.NotContains(t, view, "employee")

	rec, env = s.do(http.MethodGet, "/api/v1/dashboard", s.login("dhruv@gmail.com", "employee"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[map[string]interface{}](t, env.Data)
	require.Contains(t, view, "employee")
}

func TestProfile(t *testing.T) {
	s := newTestServer(t)
	employee := s.login("dhruv@gmail.com", "employee")

	rec, env := s.do(http.MethodPut, "/api/v1/profile", employee, map[string]string{"phone": "+1 555-000-1111"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "+1 555-000-1111", decode[map[string]interface{}](t, env.Data)["phone"])

	rec, _ = s.do(http.MethodGet, "/api/v1/employees", employee, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, env = s.do(http.MethodGet, "/api/v1/employees", s.login("hr@gmail.com", "admin"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, env.Data), 5)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("photo", "me.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, image.NewRGBA(image.Rect(0, 0, 20, 10))))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/photo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+employee)
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var env2 envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env2))
	photoURL, _ := decode[map[string]interface{}](t, env2.Data)["photo_url"].(string)
	require.True(t, strings.HasPrefix(photoURL, "http://localhost/uploads/photos/1/"), photoURL)

	get := httptest.NewRequest(http.MethodGet, strings.TrimPrefix(photoURL, "http://localhost"), nil)
	rr = httptest.NewRecorder()
	s.handler.ServeHTTP(rr, get)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestNotificationStream(t *testing.T) {
	s := newTestServer(t)
	employee := s.login("dhruv@gmail.com", "employee")
	admin := s.login("hr@gmail.com", "admin")

	srv := httptest.NewServer(s.handler)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/notifications/stream?jwt="+employee, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	lines := bufio.NewScanner(resp.Body)
	next := func() string {
		require.True(t, lines.Scan(), "stream ended early")
		return lines.Text()
	}
	require.Equal(t, "event: connected", next())
	next() // data
	next() // blank

	rec, env := s.do(http.MethodPost, "/api/v1/leave/requests", employee, map[string]string{
		"leave_type": "paid", "start_date": "2026-03-02", "end_date": "2026-03-03", "remarks": "Trip",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	id := decode[map[string]interface{}](t, env.Data)["id"].(string)

	rec, _ = s.do(http.MethodPost, "/api/v1/leave/requests/"+id+"/decision", admin, map[string]string{
		"outcome": "rejected", "comment": "Busy week",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "event: leave_decided", next())
	data := strings.TrimPrefix(next(), "data: ")
	var notice map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(data), &notice))
	assert.Equal(t, id, notice["leave_id"])
	assert.Equal(t, "leave_rejected", notice["type"])
	assert.Equal(t, "Busy week", notice["admin_comment"])
}
