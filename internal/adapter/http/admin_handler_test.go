package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	domain "loanportal-backend/internal/domain/loan"
	"loanportal-backend/internal/domain/uow"
	"loanportal-backend/internal/testutil/installmentmock"
	"loanportal-backend/internal/testutil/loanmock"
	"loanportal-backend/internal/testutil/notifmock"
	"loanportal-backend/internal/testutil/uowmock"
	"loanportal-backend/internal/testutil/usermock"
	"loanportal-backend/internal/usecase/admin"
	"loanportal-backend/internal/usecase/loanapp"
	"loanportal-backend/internal/usecase/notify"
	"loanportal-backend/internal/usecase/review"
)

func newAdminHandler(l *domain.LoanApplication) *AdminHandler {
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(ctx context.Context, id string) (*domain.LoanApplication, error) {
			cp := *l
			return &cp, nil
		},
		MarkDecidedFn: func(ctx context.Context, id string, upd domain.DecisionUpdate) (bool, error) {
			if l.Status.Terminal() {
				return false, nil
			}
			l.Status = upd.Status
			return true, nil
		},
	}
	txm := &uowmock.UoW{Repos: uow.Repos{
		Users:         &usermock.Repo{},
		Loans:         loans,
		Installments:  &installmentmock.Repo{},
		Notifications: &notifmock.Repo{},
	}}
	reviews := review.NewUsecase(txm, notify.NewService(&notifmock.Repo{}))
	return NewAdminHandler(reviews, loanapp.NewUsecase(loans), admin.NewUsecase(loans, &usermock.Repo{}))
}

func decideReqCtx(t *testing.T, h *AdminHandler, loanID, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodPatch, "/api/admin/loans/"+loanID+"/decision", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, strings.Repeat("d", 32), "admin")
	c.SetParamNames("loan_id")
	c.SetParamValues(loanID)
	if err := h.DecideLoan(c); err != nil {
		t.Fatalf("DecideLoan error: %v", err)
	}
	return rec
}

func TestDecideLoan_ApproveThenConflict(t *testing.T) {
	loanID := strings.Repeat("a", 32)
	l := &domain.LoanApplication{
		LoanID: loanID, UserID: strings.Repeat("b", 32),
		Amount: 12_000, Term: 12,
		LoanType: domain.TypePersonal, Status: domain.StatusPending,
	}
	h := newAdminHandler(l)

	rec := decideReqCtx(t, h, loanID, `{"decision":"approved"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("approve: status = %d, body=%s", rec.Code, rec.Body.String())
	}

	// a second decision maps invalid_state → 409
	rec = decideReqCtx(t, h, loanID, `{"decision":"rejected","rejection_reason":"insufficient income"}`)
	if rec.Code != stdhttp.StatusConflict {
		t.Fatalf("second decide: status = %d, want 409, body=%s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Kind != "invalid_state" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestDecideLoan_ValidationAndParamErrors(t *testing.T) {
	loanID := strings.Repeat("a", 32)
	l := &domain.LoanApplication{LoanID: loanID, Status: domain.StatusPending, Amount: 5000, Term: 12}
	h := newAdminHandler(l)

	// unknown decision value fails the oneof tag
	if rec := decideReqCtx(t, h, loanID, `{"decision":"maybe"}`); rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("bad decision: status = %d, want 422", rec.Code)
	}
	// malformed path param
	if rec := decideReqCtx(t, h, "nope", `{"decision":"approved"}`); rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("bad loan_id: status = %d, want 400", rec.Code)
	}
}

func TestDecideLoan_UnknownLoan(t *testing.T) {
	loanID := strings.Repeat("a", 32)
	loans := &loanmock.Repo{} // every getter reports record-not-found
	txm := &uowmock.UoW{Repos: uow.Repos{Loans: loans}}
	reviews := review.NewUsecase(txm, notify.NewService(&notifmock.Repo{}))
	h := NewAdminHandler(reviews, loanapp.NewUsecase(loans), admin.NewUsecase(loans, &usermock.Repo{}))

	if rec := decideReqCtx(t, h, loanID, `{"decision":"approved"}`); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
