package handlers

import (
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/services"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	auth *services.AuthService
}

// RegisterRequest deliberately carries no binding tags: the auth service
// validates fields in order so the first violated rule is the one reported.
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func NewUserHandler(auth *services.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Name, req.Password, req.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "user registered successfully",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	})
}
