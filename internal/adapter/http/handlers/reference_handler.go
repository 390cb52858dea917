package handlers

import (
	"net/http"
	"strconv"

	response "beneficios_saude/internal/adapter/http/dto/response"
	"beneficios_saude/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves establishments and specialties.

type ReferenceHandler struct {
	usecase usecase.IReferenceUseCase
}

func NewReferenceHandler(uc usecase.IReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{usecase: uc}
}

// ListEstablishments returns active establishments unless ?all=true is sent
// by staff.
func (h *ReferenceHandler) ListEstablishments(c *gin.Context) {
	activeOnly := true
	if all, err := strconv.ParseBool(c.Query("all")); err == nil && all {
		sess, ok := currentSession(c)
		if !ok {
			return
		}
		activeOnly = !sess.IsStaff()
	}

	items, err := h.usecase.ListEstablishments(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, "reference", err)
		return
	}

	c.JSON(http.StatusOK, response.FromEstablishments(items))
}

func (h *ReferenceHandler) GetEstablishment(c *gin.Context) {
	e, err := h.usecase.GetEstablishment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "reference", err)
		return
	}

	c.JSON(http.StatusOK, response.FromEstablishment(e))
}

func (h *ReferenceHandler) ListSpecialties(c *gin.Context) {
	items, err := h.usecase.ListSpecialties(c.Request.Context())
	if err != nil {
		respondError(c, "reference", err)
		return
	}

	c.JSON(http.StatusOK, response.FromSpecialties(items))
}
