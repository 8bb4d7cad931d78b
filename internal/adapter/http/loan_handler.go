package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "loanportal-backend/internal/domain/loan"
	"loanportal-backend/internal/usecase/loanapp"
)

type LoanHandler struct{ uc *loanapp.Usecase }

func NewLoanHandler(uc *loanapp.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type applyLoanReq struct {
	Amount           float64 `json:"amount"            validate:"required,gte=1000,lte=500000,dec2"`
	Term             int     `json:"term"              validate:"required,gte=12,lte=120"`
	Purpose          string  `json:"purpose"           validate:"required,min=10,max=500"`
	LoanType         string  `json:"loan_type"         validate:"omitempty,oneof=personal business home auto education"`
	MonthlyIncome    float64 `json:"monthly_income"    validate:"omitempty,gte=0"`
	EmploymentStatus string  `json:"employment_status" validate:"omitempty,oneof=employed self-employed unemployed student retired"`
	CreditScore      int     `json:"credit_score"      validate:"omitempty,gte=300,lte=850"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, validationFailed(err))
	}

	l, err := h.uc.Apply(c.Request().Context(), loanapp.ApplyInput{
		UserID:           actorID(c),
		Amount:           req.Amount,
		Term:             req.Term,
		Purpose:          req.Purpose,
		LoanType:         loanDomain.Type(req.LoanType),
		MonthlyIncome:    req.MonthlyIncome,
		EmploymentStatus: loanDomain.EmploymentStatus(req.EmploymentStatus),
		CreditScore:      req.CreditScore,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, l)
}

// Status lists the caller's applications, newest first.
func (h *LoanHandler) Status(c echo.Context) error {
	loans, err := h.uc.ListByUser(c.Request().Context(), actorID(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, loans)
}

func (h *LoanHandler) Get(c echo.Context) error {
	loanID := c.Param("loan_id")
	if !reHex32.MatchString(loanID) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid loan_id"})
	}
	l, err := h.uc.Get(c.Request().Context(), loanID, actorID(c), isAdmin(c))
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, l)
}
