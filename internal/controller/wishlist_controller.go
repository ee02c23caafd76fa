package controller

import (
	"storefront-be/internal/pkg/serverutils"
	"storefront-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWishlistController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	MoveToCart(ctx *fiber.Ctx) error
}

type wishlistController struct {
	wishlistService service.IWishlistService
}

func NewWishlistController(wishlistService service.IWishlistService) IWishlistController {
	return &wishlistController{
		wishlistService: wishlistService,
	}
}

func (c *wishlistController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wishlist/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
	h.Post(":productId/toggle", c.Toggle)
	h.Post(":id/move-to-cart", c.MoveToCart)
}

func (c *wishlistController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.wishlistService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get wishlist", res))
}

func (c *wishlistController) Toggle(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	productIdParam := ctx.Params("productId")
	productId, _ := uuid.Parse(productIdParam)

	res, err := c.wishlistService.Toggle(ctx.Context(), userId, productId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle wishlist item", res))
}

func (c *wishlistController) MoveToCart(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	if err := c.wishlistService.MoveToCart(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success move wishlist item to cart", nil))
}
