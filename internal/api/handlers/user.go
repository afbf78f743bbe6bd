package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voltlog/voltlog/internal/models"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser 注册新用户，密码以 bcrypt 哈希入库，响应不含哈希
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		h.serverError(c, "Failed to create user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// ListUsers 获取用户列表
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.serverError(c, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}
