package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
)

type studentApi struct {
	svc *school.Service
}

func RegisterStudentAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := studentApi{svc: svc}

	adminOnly := helpers.GuardMiddleware(identity.RoleAdmin, identity.RoleSuperUser)
	readers := helpers.GuardMiddleware(identity.RoleAdmin, identity.RoleTeacher, identity.RoleSuperUser)

	sg := g.Group("/students", jwt)
	sg.POST("", api.create, adminOnly)
	sg.GET("/tenant/:tenantID", api.queryTenant, readers)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve, readers)
	dg.PUT("", api.update, adminOnly)
	dg.DELETE("", api.destroy, adminOnly)
	dg.POST("/toggle", api.toggleStatus, adminOnly)
}

func (api *studentApi) create(ctx echo.Context) error {
	data := new(school.NewStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	st, err := api.svc.AddStudent(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *studentApi) queryTenant(ctx echo.Context) error {
	students, err := api.svc.TenantStudents(ctx.Param("tenantID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *studentApi) retrieve(ctx echo.Context) error {
	st, err := api.svc.GetStudent(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) update(ctx echo.Context) error {
	data := new(school.UpdateStudent)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	st, err := api.svc.UpdateStudent(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *studentApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *studentApi) toggleStatus(ctx echo.Context) error {
	st, err := api.svc.ToggleStudentStatus(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}
