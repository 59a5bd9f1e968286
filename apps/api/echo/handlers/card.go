package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cardlect/cardlect/apps/api/echo/helpers"
	"github.com/cardlect/cardlect/core/identity"
	"github.com/cardlect/cardlect/core/school"
)

type cardApi struct {
	svc *school.Service
}

func RegisterCardAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *school.Service) {
	api := cardApi{svc: svc}

	writers := helpers.GuardMiddleware(identity.RoleAdmin, identity.RoleFinance, identity.RoleSuperUser)
	readers := helpers.GuardMiddleware(
		identity.RoleAdmin, identity.RoleFinance, identity.RoleSecurity, identity.RoleSuperUser)
	// the security desk blocks and unblocks cards
	togglers := helpers.GuardMiddleware(
		identity.RoleSecurity, identity.RoleFinance, identity.RoleAdmin, identity.RoleSuperUser)
	// store tills and finance record ledger entries
	spenders := helpers.GuardMiddleware(
		identity.RoleStore, identity.RoleApprovedStores, identity.RoleFinance, identity.RoleSuperUser)

	cg := g.Group("/cards", jwt)
	cg.POST("", api.create, writers)
	cg.GET("/tenant/:tenantID", api.queryTenant, readers)

	dg := cg.Group("/:id")
	dg.GET("", api.retrieve, readers)
	dg.PUT("", api.update, writers)
	dg.DELETE("", api.destroy, writers)
	dg.POST("/toggle", api.toggleStatus, togglers)
	dg.GET("/transactions", api.queryCardTransactions, readers)

	tg := g.Group("/transactions", jwt)
	tg.POST("", api.recordTransaction, spenders)
	tg.GET("/tenant/:tenantID", api.queryTenantTransactions, readers)
}

func (api *cardApi) create(ctx echo.Context) error {
	data := new(school.NewCard)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	c, err := api.svc.AddCard(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, c)
}

func (api *cardApi) queryTenant(ctx echo.Context) error {
	cards, err := api.svc.TenantCards(ctx.Param("tenantID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cards)
}

func (api *cardApi) retrieve(ctx echo.Context) error {
	c, err := api.svc.GetCard(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *cardApi) update(ctx echo.Context) error {
	data := new(school.UpdateCard)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	c, err := api.svc.UpdateCard(ctx.Param("id"), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *cardApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteCard(ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *cardApi) toggleStatus(ctx echo.Context) error {
	c, err := api.svc.ToggleCardStatus(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, c)
}

func (api *cardApi) recordTransaction(ctx echo.Context) error {
	data := new(school.NewCardTransaction)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	tx, err := api.svc.RecordTransaction(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, tx)
}

func (api *cardApi) queryTenantTransactions(ctx echo.Context) error {
	txs, err := api.svc.TenantTransactions(ctx.Param("tenantID"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, txs)
}

func (api *cardApi) queryCardTransactions(ctx echo.Context) error {
	txs, err := api.svc.CardTransactions(ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, txs)
}
