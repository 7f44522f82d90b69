package devserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gameshelf/client/pkg/jwt"
)

// region --- DTOs ---

// CredentialsInput is the login/register body.
type CredentialsInput struct {
	Name     string `json:"name" binding:"required" example:"demo"`
	Password string `json:"password" binding:"required,min=8" example:"demo1234"`
}

// endregion

// GetUsers godoc
// @Summary      List users
// @Description  Returns the public user lookup table (no password material).
// @Tags         users
// @Produce      json
// @Success      200  {array}   User
// @Failure      500  {object}  ErrorResponse
// @Router       /users [get]
func GetUsers(c *gin.Context) {
	var users []User
	if err := DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates with name and password, returns the user identity and a token.
// @Accept       json
// @Tags         auth
// @Produce      json
// @Param        input  body  CredentialsInput  true  "Credentials"
// @Success      200  {object}  map[string]string "{"id": "...", "name": "...", "token": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid name or password"
// @Router       /Users/login [post]
func LoginUser(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user User
	if err := DB.Where("name = ?", input.Name).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid name or password"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid name or password"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": user.ID, "name": user.Name, "token": token})
}

// RegisterUser godoc
// @Summary      Register a new user
// @Accept       json
// @Tags         auth
// @Produce      json
// @Param        input  body  CredentialsInput  true  "Credentials"
// @Success      201  {object}  map[string]string "{"id": "...", "name": "..."}"
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Name already exists"
// @Router       /Users/register [post]
func RegisterUser(c *gin.Context) {
	var input CredentialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing User
	err := DB.Where("name = ?", input.Name).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Name already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check users"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := User{ID: xid.New().String(), Name: input.Name, PasswordHash: string(hashedPassword)}
	if err := DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "name": user.Name})
}
