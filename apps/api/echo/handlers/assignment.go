package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
)

type assignmentApi struct {
	svc *school.Service
}

func RegisterAssignmentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := assignmentApi{svc: svc}

	writers := helpers.GuardMiddleware(identity.RoleTeacher, identity.RoleSuperUser)
	readers := helpers.GuardMiddleware(
		identity.RoleTeacher, identity.RoleStudent, identity.RoleParent, identity.RoleSuperUser)

	ag := g.Group("/assignments", jwt)
	ag.POST("", api.create, writers)
	ag.GET("/tenant/:tenantID", api.queryTenant, readers)

	dg := ag.Group("/:id")
	dg.GET("", api.retrieve, readers)
	dg.PUT("", api.update, writers)
	dg.DELETE("", api.destroy, writers)
	dg.POST("/toggle", api.toggleStatus, writers)
}

func (api *assignmentApi) create(ctx echo.Context) error {
	data := new(school.NewAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	a, err := api.svc.AddAssignment(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *assignmentApi) queryTenant(ctx echo.Context) error {
	assignments, err := api.svc.TenantAssignments(ctx.Param("tenantID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, assignments)
}

func (api *assignmentApi) retrieve(ctx echo.Context) error {
	a, err := api.svc.GetAssignment(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assignmentApi) update(ctx echo.Context) error {
	data := new(school.UpdateAssignment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	a, err := api.svc.UpdateAssignment(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *assignmentApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteAssignment(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *assignmentApi) toggleStatus(ctx echo.Context) error {
	a, err := api.svc.ToggleAssignmentStatus(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, a)
}
