// internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attDTO "grofast_backend/internals/features/attendance/dto"
	attModel "grofast_backend/internals/features/attendance/model"
	helper "grofast_backend/internals/helpers"
	authMw "grofast_backend/internals/middlewares/auth"
)

const selfieBucket = "attendance-selfies"

type AttendanceController struct{ DB *gorm.DB }

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// nowUTC and todayDate share one clock so the stored date always matches
// the calendar day of check_in, regardless of server timezone.
func nowUTC() time.Time { return time.Now().UTC() }

func todayDate() time.Time {
	now := nowUTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ===================== CHECK IN =====================
// POST /api/u/attendance/check-in: multipart with an optional "selfie"
// image part. One row per employee per day; a second check-in returns 409.
func (h *AttendanceController) CheckIn(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	today := todayDate()

	var existing attModel.AttendanceModel
	err = h.DB.Where("employee_id = ? AND date = ?", employeeID, today).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Already checked in today")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check attendance")
	}

	var selfieURL *string
	if fh, ferr := c.FormFile("selfie"); ferr == nil && fh != nil {
		url, uerr := helper.UploadImage(selfieBucket, employeeID.String(), fh)
		if uerr != nil {
			log.Printf("[ATTENDANCE] selfie upload failed: %v", uerr)
			return helper.JsonError(c, fiber.StatusBadGateway, "Selfie upload failed")
		}
		selfieURL = &url
	}

	row := attModel.AttendanceModel{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    nowUTC(),
		SelfieURL:  selfieURL,
		Status:     "present",
	}
	if err := h.DB.Create(&row).Error; err != nil {
		// Unique index still wins if two check-ins race.
		if strings.Contains(err.Error(), "duplicate key") {
			return helper.JsonError(c, fiber.StatusConflict, "Already checked in today")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check in")
	}

	return helper.JsonCreated(c, "Checked in", attDTO.NewAttendanceResponse(&row, nil))
}

// ===================== CHECK OUT =====================
// PATCH /api/u/attendance/check-out: fills check_out on today's row and
// nothing else. Requires an open row (checked in, not yet checked out).
func (h *AttendanceController) CheckOut(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	today := todayDate()
	now := nowUTC()

	res := h.DB.Model(&attModel.AttendanceModel{}).
		Where("employee_id = ? AND date = ? AND check_out IS NULL", employeeID, today).
		Update("check_out", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check out")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No open check-in found for today")
	}

	var row attModel.AttendanceModel
	if err := h.DB.Where("employee_id = ? AND date = ?", employeeID, today).First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonUpdated(c, "Checked out", attDTO.NewAttendanceResponse(&row, nil))
}

// ===================== TODAY =====================
// GET /api/u/attendance/today: the caller's row for today, null data if
// they have not checked in yet.
func (h *AttendanceController) Today(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var row attModel.AttendanceModel
	err = h.DB.Where("employee_id = ? AND date = ?", employeeID, todayDate()).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonOK(c, "Not checked in yet", nil)
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}
	return helper.JsonOK(c, "ok", attDTO.NewAttendanceResponse(&row, nil))
}

// ===================== HISTORY =====================
// GET /api/u/attendance: the caller's own records, newest first.
func (h *AttendanceController) History(c *fiber.Ctx) error {
	employeeID, err := authMw.GetEmployeeID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	tx := h.DB.Where("employee_id = ?", employeeID)
	tx, err = applyDateRange(c, tx)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	p := helper.ResolvePaging(c, 31, 100)
	var total int64
	if err := tx.Model(&attModel.AttendanceModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count attendance")
	}

	var rows []attModel.AttendanceModel
	if err := tx.Order("date DESC").Offset(p.Offset).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	out := make([]*attDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, attDTO.NewAttendanceResponse(&rows[i], nil))
	}
	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ===================== ADMIN LIST =====================
// GET /api/a/attendance: all employees, joined with names, filterable by
// employee and date range.
func (h *AttendanceController) List(c *fiber.Ctx) error {
	var q attDTO.ListAttendanceQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}

	tx := h.DB.Table("attendance_records").
		Select("attendance_records.*, employees.name AS employee_name").
		Joins("LEFT JOIN employees ON employees.id = attendance_records.employee_id")

	if q.EmployeeID != nil {
		tx = tx.Where("attendance_records.employee_id = ?", *q.EmployeeID)
	}
	var err error
	tx, err = applyDateRange(c, tx)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	type attRow struct {
		attModel.AttendanceModel
		EmployeeName *string `gorm:"column:employee_name"`
	}
	var rows []attRow
	if err := tx.Order("attendance_records.date DESC, employee_name ASC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	out := make([]*attDTO.AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, attDTO.NewAttendanceResponse(&rows[i].AttendanceModel, rows[i].EmployeeName))
	}
	return helper.JsonList(c, "ok", out, nil)
}

func applyDateRange(c *fiber.Ctx, tx *gorm.DB) (*gorm.DB, error) {
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, errors.New("from invalid (YYYY-MM-DD)")
		}
		tx = tx.Where("date >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, errors.New("to invalid (YYYY-MM-DD)")
		}
		tx = tx.Where("date <= ?", t)
	}
	return tx, nil
}
