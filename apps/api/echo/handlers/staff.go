package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
)

type staffApi struct {
	svc *school.Service
}

func RegisterStaffAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := staffApi{svc: svc}

	sg := g.Group("/staff", jwt, helpers.GuardMiddleware(identity.RoleAdmin, identity.RoleSuperUser))
	sg.POST("", api.create)
	sg.GET("/tenant/:tenantID", api.queryTenant)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/toggle", api.toggleStatus)
}

func (api *staffApi) create(ctx echo.Context) error {
	data := new(school.NewStaff)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	st, err := api.svc.AddStaff(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *staffApi) queryTenant(ctx echo.Context) error {
	staff, err := api.svc.TenantStaff(ctx.Param("tenantID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, staff)
}

func (api *staffApi) retrieve(ctx echo.Context) error {
	st, err := api.svc.GetStaff(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *staffApi) update(ctx echo.Context) error {
	data := new(school.UpdateStaff)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	st, err := api.svc.UpdateStaff(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *staffApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteStaff(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *staffApi) toggleStatus(ctx echo.Context) error {
	st, err := api.svc.ToggleStaffStatus(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}
