package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nikhilsahni7/medquery/internal/config"
	"github.com/nikhilsahni7/medquery/internal/repositories"
	"github.com/nikhilsahni7/medquery/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// JWT Claims struct
type Claims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthHandler struct {
	users *repositories.UserRepository
}

func NewAuthHandler(users *repositories.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

// GET/POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Submit username and password to register",
		})
		return
	case http.MethodPost:
		// handled below
	default:
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	if _, err := h.users.Create(r.Context(), username, string(hashedPassword)); err != nil {
		if errors.Is(err, repositories.ErrUsernameTaken) {
			utils.JSONError(w, http.StatusBadRequest, "Username already exists")
			return
		}
		log.Println("register failed:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database insert failed")
		return
	}

	// Registration does not log the user in.
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// GET/POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		utils.JSONResponse(w, http.StatusOK, utils.Payload{
			Success: true,
			Message: "Submit username and password to log in",
		})
		return
	case http.MethodPost:
		// handled below
	default:
		utils.JSONError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		utils.JSONError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.users.FindByUsername(r.Context(), username)
	switch {
	case err == nil:
		// user found
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	default:
		log.Println("login lookup failed:", err)
		utils.JSONError(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		utils.JSONError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	// Build JWT claims
	expiration := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID:   user.ID.String(),
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiration),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	// Sign token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(config.Envs.SecretKey))
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "Failed to create token")
		return
	}

	isProd := config.Envs.Environment == "production"
	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    tokenString,
		Path:     "/",
		MaxAge:   int(time.Until(expiration).Seconds()),
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	isProd := config.Envs.Environment == "production"

	// Delete the token cookie
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1, // maxAge < 0 deletes the cookie
		Secure:   isProd,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
