package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ascend-app/ascend/internal/game"
)

func TestHandleGetProfile(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockGameService)
		mockSvc.On("GetProfile", mock.Anything, "user-1").
			Return(&game.Profile{UserID: "user-1", TotalLevel: 7, Title: "Novice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		HandleGetProfile(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var profile game.Profile
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, "user-1", profile.UserID)
		assert.Equal(t, 7, profile.TotalLevel)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing user_id", func(t *testing.T) {
		mockSvc := new(MockGameService)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
		rec := httptest.NewRecorder()

		HandleGetProfile(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "GetProfile")
	})

	t.Run("Service error", func(t *testing.T) {
		mockSvc := new(MockGameService)
		mockSvc.On("GetProfile", mock.Anything, "user-1").
			Return(nil, errors.New("database down"))

		req := httptest.NewRequest(http.MethodGet, "/api/v1/profile?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		HandleGetProfile(mockSvc)(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandleResetProfile(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockGameService)
		mockSvc.On("ResetState", mock.Anything, "user-1").Return(nil)

		body, _ := json.Marshal(ResetProfileRequest{UserID: "user-1"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/reset", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		HandleResetProfile(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), MsgProfileResetSuccess)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Missing user_id", func(t *testing.T) {
		mockSvc := new(MockGameService)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/reset", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()

		HandleResetProfile(mockSvc)(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "ResetState")
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	InitValidator()

	t.Run("Success with limit", func(t *testing.T) {
		mockSvc := new(MockGameService)
		mockSvc.On("GetLeaderboard", mock.Anything, 5).
			Return([]game.LeaderboardEntry{{UserID: "top", TotalLevel: 42}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=5", nil)
		rec := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "top")
		mockSvc.AssertExpectations(t)
	})

	t.Run("Default limit", func(t *testing.T) {
		mockSvc := new(MockGameService)
		mockSvc.On("GetLeaderboard", mock.Anything, DefaultLeaderboardLimit).
			Return([]game.LeaderboardEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard", nil)
		rec := httptest.NewRecorder()

		HandleGetLeaderboard(mockSvc)(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})
}
