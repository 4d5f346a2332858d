package handler

import (
	"math"

	"github.com/gofiber/fiber/v3"
)

// Every endpoint answers with the same envelope:
//
//	{"status": "success", "data": ..., "pagination": {...}}
//	{"status": "error", "message": "...", "errors": {"field": "msg"}}
type pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func newPagination(total, page, limit int) pagination {
	pages := 0
	if limit > 0 {
		pages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return pagination{Total: total, Page: page, Limit: limit, TotalPages: pages}
}

func ok(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"status": "success", "data": data})
}

func okPaged(c fiber.Ctx, data any, total, page, limit int) error {
	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       data,
		"pagination": newPagination(total, page, limit),
	})
}

func created(c fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": data})
}

func noContent(c fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func fail(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"status": "error", "message": msg})
}

func fieldErrors(c fiber.Ctx, fields map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"status":  "error",
		"message": "Dữ liệu không hợp lệ",
		"errors":  fields,
	})
}

func badRequest(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusBadRequest, msg)
}

func unauthorized(c fiber.Ctx) error {
	return fail(c, fiber.StatusUnauthorized, "Phiên đăng nhập không hợp lệ hoặc đã hết hạn")
}

func forbidden(c fiber.Ctx) error {
	return fail(c, fiber.StatusForbidden, "Bạn không có quyền thực hiện thao tác này")
}

func notFound(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusNotFound, msg)
}

func conflict(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusConflict, msg)
}

func tooManyRequests(c fiber.Ctx, msg string) error {
	return fail(c, fiber.StatusTooManyRequests, msg)
}

func internalError(c fiber.Ctx) error {
	return fail(c, fiber.StatusInternalServerError, "Đã có lỗi xảy ra, vui lòng thử lại sau")
}
