package handler

import (
	"net/http"

	"github.com/ascend-app/ascend/internal/domain"
	"github.com/ascend-app/ascend/internal/game"
	"github.com/ascend-app/ascend/internal/logger"
)

// HandleGetAchievements lists all achievements with the user's unlock state
// @Summary Get achievements
// @Tags achievements
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {array} game.AchievementView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/achievements [get]
func HandleGetAchievements(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		views, err := svc.GetAchievements(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAchievementsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, views)
	}
}

// ClaimRewardRequest represents the request to claim an achievement reward
type ClaimRewardRequest struct {
	UserID        string `json:"user_id" validate:"required,max=100"`
	AchievementID string `json:"achievement_id" validate:"required,max=100"`
	SkillID       string `json:"skill_id" validate:"required,skillid"`
}

// ClaimRewardResponse reports the XP credited to the chosen skill
type ClaimRewardResponse struct {
	Message  string `json:"message"`
	RewardXP int    `json:"reward_xp"`
	SkillID  string `json:"skill_id"`
}

// HandleClaimAchievementReward credits an unlocked achievement's XP reward
// to a skill of the user's choice
// @Summary Claim achievement reward
// @Description One-time claim; the reward XP is added to the chosen skill
// @Tags achievements
// @Accept json
// @Produce json
// @Param request body ClaimRewardRequest true "Claim request"
// @Success 200 {object} ClaimRewardResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/achievements/claim [post]
func HandleClaimAchievementReward(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim achievement reward"); err != nil {
			return
		}

		reward, err := svc.ClaimAchievementReward(r.Context(), req.UserID, req.AchievementID, domain.SkillID(req.SkillID))
		if err != nil {
			respondServiceError(w, r, ErrMsgClaimRewardFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info("Achievement reward claimed",
			"user_id", req.UserID,
			"achievement", req.AchievementID,
			"skill", req.SkillID,
			"xp", reward)
		respondJSON(w, http.StatusOK, ClaimRewardResponse{
			Message:  "Reward claimed",
			RewardXP: reward,
			SkillID:  req.SkillID,
		})
	}
}

// HandleGetBadges lists all badges with the user's unlock state
// @Summary Get badges
// @Tags badges
// @Produce json
// @Param user_id query string true "User identifier"
// @Success 200 {array} game.BadgeView
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/badges [get]
func HandleGetBadges(svc game.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		views, err := svc.GetBadges(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetBadgesFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, views)
	}
}
