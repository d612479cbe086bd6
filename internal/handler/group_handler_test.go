package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/diconnect/diconnect/internal/domain"
	"github.com/diconnect/diconnect/internal/service"
)

func approvedGroup() *domain.ResourceGroup {
	return &domain.ResourceGroup{
		GroupID:                "g1",
		Name:                   "Women in Tech",
		Description:            "ERG for women in technology roles",
		GroupType:              domain.GroupTypeTeams,
		TeamID:                 "team-1",
		MatchingFrequency:      domain.FrequencyWeekly,
		ProfileMatchingEnabled: true,
		ApprovalStatus:         domain.ApprovalApproved,
	}
}

func TestGroupHandler_CreateGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		body             any
		mockSetup        func(*MockGroupService)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "success - group created pending approval",
			body: CreateGroupRequest{
				Name:                   "Women in Tech",
				GroupType:              "Teams",
				TeamID:                 "team-1",
				MatchingFrequency:      "Weekly",
				ProfileMatchingEnabled: true,
			},
			mockSetup: func(m *MockGroupService) {
				created := approvedGroup()
				created.ApprovalStatus = domain.ApprovalPending
				m.On("CreateGroup", mock.AnythingOfType("*domain.ResourceGroup")).Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response GroupResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "g1", response.GroupID)
				assert.Equal(t, "Pending", response.ApprovalStatus)
			},
		},
		{
			name: "error - invalid group type",
			body: CreateGroupRequest{
				Name:      "Women in Tech",
				GroupType: "Slack",
			},
			mockSetup:      func(m *MockGroupService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error - missing name",
			body: map[string]string{
				"group_type": "Teams",
			},
			mockSetup:      func(m *MockGroupService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "error - duplicate group",
			body: CreateGroupRequest{
				Name:      "Women in Tech",
				GroupType: "Teams",
				TeamID:    "team-1",
			},
			mockSetup: func(m *MockGroupService) {
				m.On("CreateGroup", mock.AnythingOfType("*domain.ResourceGroup")).Return(nil, service.ErrGroupExists)
			},
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, ErrorGroupExists, response.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockGroupService)
			tt.mockSetup(mockService)
			h := NewGroupHandler(mockService)

			r := gin.New()
			r.POST("/groups/create", h.CreateGroup)

			body, err := json.Marshal(tt.body)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/groups/create", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestGroupHandler_GetGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		query          string
		mockSetup      func(*MockGroupService)
		expectedStatus int
	}{
		{
			name:  "success",
			query: "?group_id=g1",
			mockSetup: func(m *MockGroupService) {
				m.On("GetGroup", "g1").Return(approvedGroup(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "error - missing group_id",
			query:          "",
			mockSetup:      func(m *MockGroupService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "error - not found",
			query: "?group_id=missing",
			mockSetup: func(m *MockGroupService) {
				m.On("GetGroup", "missing").Return(nil, service.ErrGroupNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockGroupService)
			tt.mockSetup(mockService)
			h := NewGroupHandler(mockService)

			r := gin.New()
			r.GET("/groups/get", h.GetGroup)

			req := httptest.NewRequest(http.MethodGet, "/groups/get"+tt.query, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestGroupHandler_ListGroups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockGroupService)
	mockService.On("ListGroups").Return([]domain.ResourceGroup{*approvedGroup()}, nil)
	h := NewGroupHandler(mockService)

	r := gin.New()
	r.GET("/groups/list", h.ListGroups)

	req := httptest.NewRequest(http.MethodGet, "/groups/list", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []GroupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "Women in Tech", response[0].Name)
}
