// internals/features/clients/controller/client_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	clientDTO "grofast_backend/internals/features/clients/dto"
	clientModel "grofast_backend/internals/features/clients/model"
	helper "grofast_backend/internals/helpers"
)

type ClientController struct{ DB *gorm.DB }

func NewClientController(db *gorm.DB) *ClientController { return &ClientController{DB: db} }

var validateClient = validator.New()

// ===================== LIST =====================
// GET /api/u/clients: active clients, client of the month first.
func (h *ClientController) List(c *fiber.Ctx) error {
	var rows []clientModel.ClientModel
	if err := h.DB.
		Where("is_active = TRUE").
		Order("is_client_month DESC, name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch clients")
	}

	out := make([]*clientDTO.ClientResponse, 0, len(rows))
	for i := range rows {
		out = append(out, clientDTO.NewClientResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", out, nil)
}

// ===================== CREATE =====================
// POST /api/a/clients
func (h *ClientController) Create(c *fiber.Ctx) error {
	var req clientDTO.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	row := req.ToModel()
	if err := h.DB.Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create client")
	}
	return helper.JsonCreated(c, "Client created", clientDTO.NewClientResponse(row))
}

// ===================== UPDATE =====================
// PUT /api/a/clients/:id
func (h *ClientController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}

	var req clientDTO.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateClient.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var row clientModel.ClientModel
	if err := h.DB.First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch client")
	}

	req.ApplyToModel(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update client")
	}
	return helper.JsonUpdated(c, "Client updated", clientDTO.NewClientResponse(&row))
}

// ===================== SET CLIENT OF THE MONTH =====================
// PATCH /api/a/clients/:id/client-of-month. Clear-then-set runs inside
// one transaction so at most one client ever holds the flag; a failure
// midway rolls both writes back.
func (h *ClientController) SetClientOfMonth(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		return applyClientOfMonth(tx, id)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to set client of the month")
	}

	return helper.JsonUpdated(c, "Client of the month set", fiber.Map{"id": id, "is_client_month": true})
}

// applyClientOfMonth clears the flag on every holder, then sets it on the
// target row. Must run inside the caller's transaction.
func applyClientOfMonth(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Model(&clientModel.ClientModel{}).
		Where("is_client_month = TRUE").
		Update("is_client_month", false).Error; err != nil {
		return err
	}
	res := tx.Model(&clientModel.ClientModel{}).
		Where("id = ? AND is_active = TRUE", id).
		Update("is_client_month", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ===================== DELETE (SOFT) =====================
// DELETE /api/a/clients/:id. Deactivates instead of deleting; the flag is
// dropped too so a retired client cannot stay client of the month.
func (h *ClientController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid client id")
	}

	res := h.DB.Model(&clientModel.ClientModel{}).
		Where("id = ? AND is_active = TRUE", id).
		Updates(map[string]interface{}{"is_active": false, "is_client_month": false})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete client")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Client not found")
	}

	return helper.JsonDeleted(c, "Client removed", fiber.Map{"id": id})
}
