package controllers

import (
	"net/http"

	"led-admin-api/config"
	"led-admin-api/models"
	"led-admin-api/utils"

	"github.com/gin-gonic/gin"
)

// GetAdminUsers lists admin accounts (super_admin only, enforced in routes)
func GetAdminUsers(c *gin.Context) {
	var users []models.AdminUser
	if err := config.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": users, "count": len(users)})
}

// CreateAdminUser adds an admin account
func CreateAdminUser(c *gin.Context) {
	type CreateUserRequest struct {
		Username string `json:"username" binding:"required,min=3"`
		Password string `json:"password" binding:"required"`
		Email    string `json:"email" binding:"omitempty,email"`
		Role     string `json:"role"`
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username (min 3) and password are required"})
		return
	}

	if ok, reason := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleAdmin
	}
	if !models.ValidRole(role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		return
	}

	var existing models.AdminUser
	if err := config.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	user := models.AdminUser{
		Username:     req.Username,
		PasswordHash: hash,
		Email:        req.Email,
		Role:         role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
}

// DeleteAdminUser removes an admin account. The caller cannot delete
// themselves, and the last super_admin cannot be removed.
func DeleteAdminUser(c *gin.Context) {
	var user models.AdminUser
	if err := config.DB.Where("id = ?", c.Param("id")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	callerID, _ := c.Get("userID")
	if callerID == user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own account"})
		return
	}

	if user.IsSuperAdmin() {
		var superAdmins int64
		config.DB.Model(&models.AdminUser{}).Where("role = ?", models.RoleSuperAdmin).Count(&superAdmins)
		if superAdmins <= 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete the last super admin"})
			return
		}
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
