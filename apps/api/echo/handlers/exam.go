package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
)

type examApi struct {
	svc *school.Service
}

func RegisterExamAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := examApi{svc: svc}

	writers := helpers.GuardMiddleware(identity.RoleExamOfficer, identity.RoleSuperUser)
	readers := helpers.GuardMiddleware(
		identity.RoleExamOfficer, identity.RoleTeacher, identity.RoleSuperUser)

	eg := g.Group("/exams", jwt)
	eg.POST("", api.create, writers)
	eg.GET("/tenant/:tenantID", api.queryTenant, readers)

	dg := eg.Group("/:id")
	dg.GET("", api.retrieve, readers)
	dg.PUT("", api.update, writers)
	dg.DELETE("", api.destroy, writers)
	dg.POST("/toggle", api.toggleStatus, writers)
}

func (api *examApi) create(ctx echo.Context) error {
	data := new(school.NewExamRecord)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	ex, err := api.svc.AddExamRecord(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ex)
}

func (api *examApi) queryTenant(ctx echo.Context) error {
	exams, err := api.svc.TenantExamRecords(ctx.Param("tenantID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, exams)
}

func (api *examApi) retrieve(ctx echo.Context) error {
	ex, err := api.svc.GetExamRecord(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ex)
}

func (api *examApi) update(ctx echo.Context) error {
	data := new(school.UpdateExamRecord)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	ex, err := api.svc.UpdateExamRecord(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ex)
}

func (api *examApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteExamRecord(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *examApi) toggleStatus(ctx echo.Context) error {
	ex, err := api.svc.ToggleExamStatus(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ex)
}
