package devapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"github.com/luno/jettison/log"

	"moneybox/internal/domain"
)

// Handler serves the API endpoints from a Store.
type Handler struct {
	store  *Store
	tokens *Tokens
}

// NewHandler returns a Handler over store and tokens.
func NewHandler(store *Store, tokens *Tokens) *Handler {
	return &Handler{store: store, tokens: tokens}
}

func (h *Handler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Bad Request", "Invalid request format")
		return
	}

	u, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		handleError(c, err)
		return
	}
	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		handleError(c, err)
		return
	}

	log.Info(c.Request.Context(), "login", j.MKV{"trace_id": c.GetString(ctxTraceID), "idfa": req.Idfa})
	c.JSON(http.StatusOK, domain.LoginResponse{
		User:    u,
		Session: domain.SessionInfo{BearerToken: token},
	})
}

func (h *Handler) InvestorProducts(c *gin.Context) {
	resp, err := h.store.Products(c.GetString(ctxEmail))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) OneOffPayment(c *gin.Context) {
	var req domain.OneOffPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Bad Request", "Invalid request format")
		return
	}

	moneybox, err := h.store.TopUp(c.GetString(ctxEmail), req.InvestorProductID, req.Amount)
	if err != nil {
		handleError(c, err)
		return
	}

	log.Info(c.Request.Context(), "one-off payment", j.MKV{
		"trace_id":   c.GetString(ctxTraceID),
		"product_id": req.InvestorProductID,
		"amount":     req.Amount,
	})
	c.JSON(http.StatusOK, domain.OneOffPaymentResponse{Moneybox: &moneybox})
}

func respondError(c *gin.Context, code int, name, message string) {
	c.JSON(code, domain.ErrorResponse{Name: name, Message: message})
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "Login failed",
			"Incorrect email address or password. Please check and try again.")
	case errors.Is(err, ErrUserNotFound):
		respondError(c, http.StatusUnauthorized, "Unauthorized", "Your session has expired. Please log in again.")
	case errors.Is(err, ErrProductNotFound):
		respondError(c, http.StatusNotFound, "Not Found", "Investor product not found")
	case errors.Is(err, ErrInvalidAmount):
		respondError(c, http.StatusBadRequest, "Bad Request", "Amount must be greater than zero")
	default:
		log.Error(c.Request.Context(), errors.Wrap(err, "unhandled api error", j.MKV{"trace_id": c.GetString(ctxTraceID)}))
		respondError(c, http.StatusInternalServerError, "Internal Server Error", "Something went wrong")
	}
}
