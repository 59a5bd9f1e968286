package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core"
	"github.com/cardlect/cardlect/core/identity"
)

type (
	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token    string            `json:"token"`
		Identity identity.Identity `json:"identity"`
	}
)

func (r *LoginRequest) Validate() error {
	r.Email = core.CleanString(r.Email, true /* lower */)
	return core.Validate.Struct(r)
}

type authApi struct {
	sessions *identity.Manager
}

func RegisterAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc, sessions *identity.Manager) {
	api := authApi{sessions: sessions}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.POST("/login", api.login)

	// authed endpoints
	authed := ag.Group("", jwt)
	authed.POST("/logout", api.logout)
	authed.GET("/me", api.me)
}

func (api *authApi) login(ctx echo.Context) error {
	data := new(LoginRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ident, err := api.sessions.Login(data.Email, data.Password)
	if err != nil {
		return err
	}
	token, err := helpers.GenerateToken(helpers.GetIdentityClaims(ident))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, LoginResponse{Token: token, Identity: ident})
}

func (api *authApi) logout(ctx echo.Context) error {
	api.sessions.Logout()
	return ctx.NoContent(http.StatusNoContent)
}

func (api *authApi) me(ctx echo.Context) error {
	claims, err := helpers.GetContextClaims(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, helpers.ClaimsSession(claims).Identity)
}
