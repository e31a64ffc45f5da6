package handlers

import (
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/services"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/utils"
	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	auth *services.AuthService
}

func NewMeHandler(auth *services.AuthService) *MeHandler {
	return &MeHandler{auth: auth}
}

// GetMe returns the profile of the authenticated caller.
func (h *MeHandler) GetMe(c *gin.Context) {
	username := c.GetString("username")
	if username == "" {
		utils.RespondError(c, utils.ErrMissingToken())
		return
	}

	user, err := h.auth.GetByUsername(c.Request.Context(), username)
	if err != nil {
		utils.RespondError(c, utils.NewAppError(404, "NOT_FOUND", "user not found", nil))
		return
	}

	utils.RespondOK(c, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"name":       user.Name,
		"role":       user.Role,
		"created_at": user.CreatedAt,
	})
}
