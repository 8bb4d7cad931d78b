package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanportal-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createIntentReq struct {
	InstallmentID string `json:"installment_id" validate:"required,hex32"`
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validationFailed(err))
	}

	dto, err := h.uc.Initiate(c.Request().Context(), req.InstallmentID, actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

type confirmReq struct {
	InstallmentID   string `json:"installment_id"    validate:"required,hex32"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

func (h *PaymentHandler) Confirm(c echo.Context) error {
	var req confirmReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validationFailed(err))
	}

	dto, err := h.uc.Confirm(c.Request().Context(), req.InstallmentID, req.PaymentIntentID, actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

func (h *PaymentHandler) Installments(c echo.Context) error {
	insts, err := h.uc.ListByUser(c.Request().Context(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, insts)
}

func (h *PaymentHandler) Methods(c echo.Context) error {
	cards, err := h.uc.Methods(c.Request().Context(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, cards)
}

func (h *PaymentHandler) SetupIntent(c echo.Context) error {
	dto, err := h.uc.SetupIntent(c.Request().Context(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, dto)
}
