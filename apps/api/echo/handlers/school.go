package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
)

type schoolApi struct {
	svc *school.Service
}

func RegisterSchoolAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := schoolApi{svc: svc}

	// tenant roots are a super-user concern
	sg := g.Group("/schools", jwt, helpers.GuardMiddleware(identity.RoleSuperUser))
	sg.GET("", api.query)
	sg.POST("", api.create)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.POST("/toggle", api.toggleStatus)
}

func (api *schoolApi) create(ctx echo.Context) error {
	data := new(school.NewSchool)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	sch, err := api.svc.AddSchool(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, sch)
}

func (api *schoolApi) query(ctx echo.Context) error {
	schools, err := api.svc.QuerySchools()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, schools)
}

func (api *schoolApi) retrieve(ctx echo.Context) error {
	sch, err := api.svc.GetSchool(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sch)
}

func (api *schoolApi) update(ctx echo.Context) error {
	data := new(school.UpdateSchool)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	sch, err := api.svc.UpdateSchool(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sch)
}

func (api *schoolApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteSchool(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *schoolApi) toggleStatus(ctx echo.Context) error {
	sch, err := api.svc.ToggleSchoolStatus(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sch)
}
