package handler

import (
	"encoding/json"
	"errors"
	"go-auth-api/common"
	"go-auth-api/service"
	"net/http"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Info godoc
// @Summary      Get user information
// @Description  Returns the authenticated user's record without the password hash
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.User
// @Failure      401  {object}  common.AppError
// @Failure      404  {object}  common.AppError
// @Failure      500  {object}  common.AppError
// @Router       /user/info [get]
func (h *UserHandler) Info(w http.ResponseWriter, r *http.Request) *common.AppError {
	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAuthError("Invalid or expired token", nil)
	}

	user, err := h.userService.GetUserInfo(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return common.NewNotFoundError("User not found", nil)
		}
		return common.NewServerError(err)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(user)
	return nil
}
