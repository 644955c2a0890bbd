package karyawan

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

// karyawanRequest is the raw create/update payload. Umur and gaji arrive as
// JSON numbers or numeric strings depending on which form submitted them, so
// they stay untyped until the handler coerces them.
type karyawanRequest struct {
	Name    string `json:"name"`
	Jabatan string `json:"jabatan"`
	Umur    any    `json:"umur"`
	Gaji    any    `json:"gaji"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/karyawans", h.getKaryawans)
	app.Get("/api/karyawans/:id", h.getKaryawan)
	app.Post("/api/karyawans", h.createKaryawan)
	app.Put("/api/karyawans/:id", h.updateKaryawan)
	app.Delete("/api/karyawans/:id", h.deleteKaryawan)
}

func (h *Handler) getKaryawans(c *fiber.Ctx) error {
	karyawans, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch karyawans"})
	}
	return c.JSON(karyawans)
}

func (h *Handler) getKaryawan(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid karyawan ID"})
	}

	k, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch karyawan"})
	}

	return c.JSON(k)
}

func (h *Handler) createKaryawan(c *fiber.Ctx) error {
	payload := new(karyawanRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fields, errMsg := validateKaryawanPayload(payload)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}

	created, err := h.service.Create(fields)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create karyawan"})
	}

	// the karyawan form expects 200 on create, unlike the user form's 201
	return c.JSON(created)
}

func (h *Handler) updateKaryawan(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid karyawan ID"})
	}

	payload := new(karyawanRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fields, errMsg := validateKaryawanPayload(payload)
	if errMsg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errMsg})
	}

	updated, err := h.service.Update(id, fields)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update karyawan"})
	}

	return c.JSON(updated)
}

func (h *Handler) deleteKaryawan(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid karyawan ID"})
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Karyawan not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete karyawan"})
	}

	return c.JSON(fiber.Map{"message": "Karyawan deleted successfully"})
}

// validateKaryawanPayload coerces umur and gaji and returns the typed fields,
// or the reason the payload was rejected. Name and jabatan pass through
// unchanged; only the numeric fields carry rules.
func validateKaryawanPayload(payload *karyawanRequest) (Karyawan, string) {
	umur, ok := toInt(payload.Umur)
	if !ok || umur <= 0 {
		return Karyawan{}, "Umur must be a valid positive number"
	}

	gaji, ok := toInt(payload.Gaji)
	if !ok || gaji < 0 {
		return Karyawan{}, "Gaji must be a valid non-negative number"
	}

	return Karyawan{Name: payload.Name, Jabatan: payload.Jabatan, Umur: umur, Gaji: gaji}, ""
}

// toInt coerces a decoded JSON value into an int. Numbers must be integral;
// strings must contain a whole base-10 integer.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		i := int(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
