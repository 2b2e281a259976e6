package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/healthcompanion/api/internal/ai"
	"github.com/healthcompanion/api/internal/handler"
	aihandler "github.com/healthcompanion/api/internal/handler/ai"
	authhandler "github.com/healthcompanion/api/internal/handler/auth"
	doctorhandler "github.com/healthcompanion/api/internal/handler/doctor"
	patienthandler "github.com/healthcompanion/api/internal/handler/patient"
	pharmacyhandler "github.com/healthcompanion/api/internal/handler/pharmacy"
	socialhandler "github.com/healthcompanion/api/internal/handler/social"
	"github.com/healthcompanion/api/internal/middleware"
	"github.com/healthcompanion/api/internal/repository/postgres"
	"github.com/healthcompanion/api/internal/router"
	advisorysvc "github.com/healthcompanion/api/internal/service/advisory"
	authsvc "github.com/healthcompanion/api/internal/service/auth"
	doctorsvc "github.com/healthcompanion/api/internal/service/doctor"
	patientsvc "github.com/healthcompanion/api/internal/service/patient"
	pharmacysvc "github.com/healthcompanion/api/internal/service/pharmacy"
	prescriptionsvc "github.com/healthcompanion/api/internal/service/prescription"
	socialsvc "github.com/healthcompanion/api/internal/service/social"
	pkgauth "github.com/healthcompanion/api/pkg/auth"
	"github.com/healthcompanion/api/pkg/security"
)

// The suite drives the fully assembled router over in-memory repositories.
// Assembly happens once: the router registers prometheus collectors globally.
var testEngine *gin.Engine

// offlineGenerator stands in for the AI collaborator being unreachable, so
// every AI-backed response takes its degraded path.
type offlineGenerator struct{}

func (offlineGenerator) GenerateText(context.Context, string) (string, error) {
	return "", errors.New("generator offline")
}

func TestMain(m *testing.M) {
	uploadDir, err := os.MkdirTemp("", "prescriptions")
	if err != nil {
		fmt.Println("failed to create upload dir:", err)
		os.Exit(1)
	}

	store := newMemStore()
	store.plans = postgres.InsurancePlanSeed()

	logger := zerolog.Nop()
	jwtSvc := pkgauth.NewJWTService("api-test-secret", time.Hour)
	hasher := security.NewBcryptHasher(4)

	assistant := ai.NewAssistant(offlineGenerator{}, logger)

	authSvc := authsvc.NewService(memUserRepo{store}, jwtSvc, hasher)
	patientSvc := patientsvc.NewService(memPatientRepo{store}, memDoctorRepo{store})
	doctorSvc := doctorsvc.NewService(memDoctorRepo{store})
	advisorySvc := advisorysvc.NewService(memPatientRepo{store}, memInsuranceRepo{store}, assistant)
	pharmacySvc := pharmacysvc.NewService(memMedicineRepo{store}, memPharmacyRepo{store}, assistant, nil, logger)
	prescriptionSvc := prescriptionsvc.NewService(memPrescriptionRepo{store}, memPatientRepo{store},
		ai.NewStubExtractor(), assistant, uploadDir, 10<<20, logger)
	socialSvc := socialsvc.NewService(memPostRepo{store})

	authMW := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMW,
		authhandler.NewHandler(authSvc),
		patienthandler.NewHandler(patientSvc, advisorySvc),
		doctorhandler.NewHandler(doctorSvc),
		pharmacyhandler.NewHandler(pharmacySvc),
		socialhandler.NewHandler(socialSvc),
		aihandler.NewHandler(prescriptionSvc, assistant),
		handler.NewHandler(nil),
		logger,
		router.Config{
			RateLimit:     rate.Limit(1000),
			RateBurst:     1000,
			CORSConfig:    middleware.DefaultCORSConfig(),
			MetricsPrefix: "healthapi_apitest",
			MaxUploadSize: 10 << 20,
		},
	)
	r.Setup()
	testEngine = r.Engine()

	code := m.Run()

	os.RemoveAll(uploadDir)
	os.Exit(code)
}

// TestResponse wraps the API envelope for assertions.
type TestResponse struct {
	Code    int
	Success bool
	Message string
	Data    map[string]interface{}
	RawData string
}

func (r TestResponse) IsSuccess() bool {
	return r.Success
}

func (r TestResponse) GetString(key string) string {
	if v, ok := r.Data[key].(string); ok {
		return v
	}
	return ""
}

func (r TestResponse) GetNumber(key string) float64 {
	if v, ok := r.Data[key].(float64); ok {
		return v
	}
	return 0
}

func makeRequest(method, path string, body interface{}, token string) TestResponse {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	testEngine.ServeHTTP(w, req)

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	resp := TestResponse{Code: w.Code}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		return resp
	}

	resp.Success = envelope.Success
	resp.RawData = string(envelope.Data)
	if envelope.Error != nil {
		resp.Message = envelope.Error.Message
	}
	json.Unmarshal(envelope.Data, &resp.Data)
	return resp
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@example.com", prefix, time.Now().UnixNano())
}

func uniquePhone() string {
	return fmt.Sprintf("+91%d", time.Now().UnixNano()%10000000000)
}

// registerAndLogin creates an account with its role profile and returns the
// access token plus the role-profile id.
func registerAndLogin(t *testing.T, userType, name, email, location string) (string, int64) {
	t.Helper()

	payload := map[string]interface{}{
		"email":     email,
		"phone":     uniquePhone(),
		"password":  "secret123",
		"user_type": userType,
		"name":      name,
		"location":  location,
	}
	if userType == "doctor" {
		payload["specialization"] = "General Medicine"
	}

	regResp := makeRequest("POST", "/api/auth/register", payload, "")
	if regResp.Code != http.StatusCreated {
		t.Fatalf("registration failed with %d: %s", regResp.Code, regResp.Message)
	}

	loginResp := makeRequest("POST", "/api/auth/login", map[string]string{
		"email":    email,
		"password": "secret123",
	}, "")
	if loginResp.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", loginResp.Code, loginResp.Message)
	}

	token := loginResp.GetString("access_token")
	if token == "" {
		t.Fatal("login returned no access token")
	}
	return token, int64(loginResp.GetNumber("profile_id"))
}
