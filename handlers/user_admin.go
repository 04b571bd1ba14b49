package handlers

import (
	"net/http"

	"glamazon/services/user"

	"github.com/gin-gonic/gin"
)

// GetAllUsersHandler handles GET /api/users/all.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// CreateUserHandler handles POST /api/users/create.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var req user.AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.Users.CreateUser(currentUser(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// UpdateUserHandler handles PUT /api/users/:userId.
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	var req user.AdminUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	usr, err := h.Users.UpdateUser(currentUser(c), c.Param("userId"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteUserHandler handles DELETE /api/users/:userId.
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	if err := h.Users.DeleteUser(currentUser(c), c.Param("userId")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// GetUserStatusHandler handles GET /api/users/status/:userId.
func (h *UserHandler) GetUserStatusHandler(c *gin.Context) {
	status, err := h.Users.GetUserStatus(currentUser(c), c.Param("userId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// UserDashboardStatsHandler handles GET /api/users/dashboard-stats.
func (h *UserHandler) UserDashboardStatsHandler(c *gin.Context) {
	stats, err := h.Dashboard.UserStats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
