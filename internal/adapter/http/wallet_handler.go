package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loanportal-backend/internal/usecase/wallet"
)

type WalletHandler struct{ uc *wallet.Usecase }

func NewWalletHandler(uc *wallet.Usecase) *WalletHandler { return &WalletHandler{uc: uc} }

// Statement returns the caller's balance and full transaction history.
func (h *WalletHandler) Statement(c echo.Context) error {
	dto, err := h.uc.Statement(c.Request().Context(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, dto)
}
