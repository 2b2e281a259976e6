package api_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsuranceRecommendationsCarryPlanCatalog(t *testing.T) {
	email := uniqueEmail("ravi")
	token, _ := registerAndLogin(t, "patient", "Ravi Shankar", email, "Nagpur")

	resp := makeRequest("GET", "/api/patients/insurance-recommendations/me", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, resp.IsSuccess())

	var data struct {
		AIRecommendations struct {
			Recommendations string `json:"recommendations"`
			Status          string `json:"status"`
		} `json:"ai_recommendations"`
		AvailablePlans []struct {
			Name     string `json:"name"`
			Provider string `json:"provider"`
			PlanType string `json:"plan_type"`
		} `json:"available_plans"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.RawData), &data))

	// The generator is offline, so the AI half degrades while the stored
	// catalog still flows through.
	assert.Equal(t, "error", data.AIRecommendations.Status)
	assert.NotEmpty(t, data.AIRecommendations.Recommendations)

	require.Len(t, data.AvailablePlans, 3)
	names := map[string]string{}
	for _, plan := range data.AvailablePlans {
		assert.NotEmpty(t, plan.Provider)
		names[plan.Name] = plan.PlanType
	}
	assert.Equal(t, "government", names["Ayushman Bharat"])
	assert.Equal(t, "private", names["Star Health Family Plan"])
	assert.Equal(t, "private", names["ICICI Lombard Health Care"])
}

func TestGovernmentSchemesDegradeWithoutGenerator(t *testing.T) {
	email := uniqueEmail("sunita")
	token, _ := registerAndLogin(t, "patient", "Sunita Devi", email, "Patna")

	resp := makeRequest("GET", "/api/patients/government-schemes/me", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	require.True(t, resp.IsSuccess())
	assert.Equal(t, "error", resp.GetString("status"))
	assert.NotEmpty(t, resp.GetString("schemes"))
}

func TestInsuranceRecommendationsRejectNonPatients(t *testing.T) {
	email := uniqueEmail("drgupta")
	token, _ := registerAndLogin(t, "doctor", "Dr. Gupta", email, "Bhopal")

	resp := makeRequest("GET", "/api/patients/insurance-recommendations/me", nil, token)
	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.False(t, resp.IsSuccess())
}
