package sepsis

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sepsis/cohort/internal/platform/auth"
	"github.com/sepsis/cohort/pkg/pagination"
)

// Handler serves the read-only label API. Labeling itself runs from the CLI;
// the API only exposes the persisted results.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	read := api.Group("", auth.RequireRole("admin", "researcher"))
	read.GET("/labels", h.ListLabels)
	read.GET("/labels/summary", h.GetSummary)
	read.GET("/labels/:hadm_id", h.GetLabel)
}

func (h *Handler) ListLabels(c echo.Context) error {
	pg := pagination.FromContext(c)
	labels, total, err := h.svc.ListLabels(c.Request().Context(), pg.Limit, pg.Offset)
	if errors.Is(err, ErrNoRun) {
		return echo.NewHTTPError(http.StatusNotFound, ErrNoRun.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(labels, total, pg.Limit, pg.Offset))
}

func (h *Handler) GetLabel(c echo.Context) error {
	hadmID, err := strconv.ParseInt(c.Param("hadm_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid hadm_id")
	}
	label, err := h.svc.GetLabel(c.Request().Context(), hadmID)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoRun) {
		return echo.NewHTTPError(http.StatusNotFound, "label not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, label)
}

func (h *Handler) GetSummary(c echo.Context) error {
	run, err := h.svc.LatestRun(c.Request().Context())
	if errors.Is(err, ErrNoRun) {
		return echo.NewHTTPError(http.StatusNotFound, ErrNoRun.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, run)
}
