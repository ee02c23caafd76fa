package controller

import (
	"storefront-be/internal/dto"
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListProducts(ctx *fiber.Ctx) error
	ShowProduct(ctx *fiber.Ctx) error
	ListCategories(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

// Catalog routes are public; browsing needs no account.
func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("/products", c.ListProducts)
	h.Get("/products/:slug", c.ShowProduct)
	h.Get("/categories", c.ListCategories)
}

func (c *catalogController) ListProducts(ctx *fiber.Ctx) error {
	var req dto.ListProductsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.ListProducts(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list products", res))
}

func (c *catalogController) ShowProduct(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	res, err := c.catalogService.GetProductBySlug(ctx.Context(), slug)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show product", res))
}

func (c *catalogController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}
