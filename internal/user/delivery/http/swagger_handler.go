package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// SignupUser godoc
// @Summary Sign up a new user
// @Description Create a new user account; username and email must be unique
// @Tags Users
// @Accept json
// @Produce json
// @Param request body object{username=string,first_name=string,last_name=string,email=string,password=string} true "Signup data"
// @Success 201 {object} object{id=int,username=string,first_name=string,last_name=string,email=string,password=string}
// @Header 201 {string} Location "Path of the created user"
// @Failure 409 {string} string "Duplicate username or email contained a duplicate key."
// @Failure 500 {string} string "Database error"
// @Router /signup [post]
func (h *UserHandler) SignupUserDoc() {}

// ListUsers godoc
// @Summary List all users
// @Description List every stored user; an empty store yields an empty array
// @Tags Users
// @Produce json
// @Success 200 {array} object{id=int,username=string,first_name=string,last_name=string,email=string}
// @Failure 500 {object} object{error=string}
// @Router /users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetUser godoc
// @Summary Get user by ID
// @Description Get a specific user by id
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{id=int,username=string,first_name=string,last_name=string,email=string}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// DeleteUser godoc
// @Summary Delete user by ID
// @Description Delete a user; deleting an absent id reports not found
// @Tags Users
// @Param id path int true "User ID"
// @Success 204 {string} string "No Content"
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *UserHandler) HealthCheckDoc() {}
