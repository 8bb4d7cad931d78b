package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	loanDomain "loanportal-backend/internal/domain/loan"
	userDomain "loanportal-backend/internal/domain/user"
	"loanportal-backend/internal/usecase/admin"
	"loanportal-backend/internal/usecase/loanapp"
	"loanportal-backend/internal/usecase/review"
)

type AdminHandler struct {
	reviews *review.Usecase
	loans   *loanapp.Usecase
	admin   *admin.Usecase
}

func NewAdminHandler(reviews *review.Usecase, loans *loanapp.Usecase, adm *admin.Usecase) *AdminHandler {
	return &AdminHandler{reviews: reviews, loans: loans, admin: adm}
}

func (h *AdminHandler) Stats(c echo.Context) error {
	s, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, s)
}

func (h *AdminHandler) Analytics(c echo.Context) error {
	a, err := h.admin.Analytics(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, a)
}

func (h *AdminHandler) ListLoans(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	status := c.QueryParam("status")
	if status == "all" {
		status = ""
	}

	out, err := h.loans.ListAll(c.Request().Context(), loanDomain.ListFilter{
		Status: loanDomain.Status(status),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, out)
}

type decideReq struct {
	Decision        string `json:"decision"         validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
}

func (h *AdminHandler) DecideLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan_id"})
	}

	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validationFailed(err))
	}

	dto, err := h.reviews.Decide(c.Request().Context(), review.DecideInput{
		LoanID:          loanID,
		ActorID:         actorID(c),
		Decision:        review.Decision(req.Decision),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

// EnsureSchedule re-drives installment generation for an approved loan; safe
// to repeat.
func (h *AdminHandler) EnsureSchedule(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan_id"})
	}
	dto, err := h.reviews.EnsureSchedule(c.Request().Context(), loanID)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, dto)
}

// LoanInstallments returns one loan's full schedule for review screens.
func (h *AdminHandler) LoanInstallments(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan_id"})
	}
	insts, err := h.reviews.ListInstallments(c.Request().Context(), loanID)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, insts)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	out, err := h.admin.ListUsers(c.Request().Context(), userDomain.ListFilter{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, out)
}

type userStatusReq struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}

func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	userID := c.Param("user_id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
	}

	var req userStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validationFailed(err))
	}

	if err := h.admin.SetUserStatus(c.Request().Context(), userID, userDomain.Status(req.Status)); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, map[string]string{"user_id": userID, "status": req.Status})
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID := c.Param("user_id")
	if !reHex32.MatchString(userID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user_id"})
	}
	if err := h.admin.DeleteUser(c.Request().Context(), userID, actorID(c)); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, map[string]string{"message": "user deleted"})
}
