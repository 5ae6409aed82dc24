package user

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/redmonkez12/mini-auth-api/internal/httputil"
	"github.com/redmonkez12/mini-auth-api/internal/logging"
)

const (
	msgRegistered       = "User registered successfully"
	msgInvalidBody      = "Invalid request body"
	msgMissingFields    = "All fields are required: name, email, age, location, password"
	msgInvalidEmail     = "Invalid email format"
	msgInvalidAge       = "Age must be a positive number"
	msgDuplicateEmail   = "Email already registered"
	msgDuplicateName    = "Name already taken"
	msgRegisterFailed   = "Failed to register user"
	msgMissingName      = "Name query parameter is required"
	msgUserNotFound     = "User not found"
	msgFetchFailed      = "Failed to fetch user profile"
	msgInternalError    = "Internal server error"
	maxSignupBodyLength = 1 << 20
)

// Handler contains HTTP handlers for the user endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Signup handles user registration
// @Summary      Register a new user
// @Description  Create a user account. The password is stored as a bcrypt hash and never returned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Registration data"
// @Success      201 {object} httputil.MessageResponse
// @Failure      400 {object} httputil.ErrorResponse "Missing or invalid field"
// @Failure      409 {object} httputil.ErrorResponse "Email already registered"
// @Failure      500 {object} httputil.ErrorResponse "Store or internal error"
// @Router       /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignupRequest
	body := http.MaxBytesReader(w, r.Body, maxSignupBodyLength)
	// An empty body is validated like an empty object
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("invalid signup request body", "error", err.Error())
		httputil.RespondError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	profile, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var storeErr *StoreError
		switch {
		case errors.Is(err, ErrMissingFields):
			logger.Warn("signup failed: validation error", "error", err.Error())
			httputil.RespondError(w, msgMissingFields, http.StatusBadRequest)
		case errors.Is(err, ErrInvalidEmail):
			logger.Warn("signup failed: validation error", "error", err.Error())
			httputil.RespondError(w, msgInvalidEmail, http.StatusBadRequest)
		case errors.Is(err, ErrInvalidAge):
			logger.Warn("signup failed: validation error", "error", err.Error())
			httputil.RespondError(w, msgInvalidAge, http.StatusBadRequest)
		case errors.Is(err, ErrDuplicateEmail):
			logger.Warn("signup failed: email already registered")
			httputil.RespondError(w, msgDuplicateEmail, http.StatusConflict)
		case errors.Is(err, ErrDuplicateName):
			logger.Warn("signup failed: name already taken", "name", req.Name)
			httputil.RespondError(w, msgDuplicateName, http.StatusConflict)
		case errors.As(err, &storeErr):
			logger.WithError(err).Error("signup failed: store error", "op", storeErr.Op)
			httputil.RespondErrorWithDetails(w, msgRegisterFailed, err.Error(), http.StatusInternalServerError)
		default:
			logger.WithError(err).Error("signup failed: internal error")
			httputil.RespondErrorWithDetails(w, msgInternalError, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user registered successfully", "user_id", profile.ID)

	httputil.RespondMessage(w, msgRegistered, http.StatusCreated)
}

// MyProfile returns a user's profile by name
// @Summary      Get a user profile
// @Description  Fetch the profile of the user with the given name. The password is never included.
// @Tags         users
// @Produce      json
// @Param        name query string true "User name"
// @Success      200 {object} Profile
// @Failure      400 {object} httputil.ErrorResponse "Missing name parameter"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Failure      500 {object} httputil.ErrorResponse "Store or internal error"
// @Router       /myprofile [get]
func (h *Handler) MyProfile(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	name := r.URL.Query().Get("name")

	profile, err := h.service.GetProfile(r.Context(), name)
	if err != nil {
		var storeErr *StoreError
		switch {
		case errors.Is(err, ErrMissingName):
			logger.Warn("profile fetch failed: name missing")
			httputil.RespondError(w, msgMissingName, http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			logger.Warn("profile fetch failed: user not found", "name", name)
			httputil.RespondError(w, msgUserNotFound, http.StatusNotFound)
		case errors.As(err, &storeErr):
			logger.WithError(err).Error("profile fetch failed: store error", "op", storeErr.Op)
			httputil.RespondErrorWithDetails(w, msgFetchFailed, err.Error(), http.StatusInternalServerError)
		default:
			logger.WithError(err).Error("profile fetch failed: internal error")
			httputil.RespondErrorWithDetails(w, msgInternalError, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	httputil.RespondJSON(w, profile, http.StatusOK)
}
