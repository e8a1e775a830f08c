/*
handlers.go - HTTP API handlers for the quote back office

PURPOSE:
  Exposes the quote engine and back-office records via REST. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Quotes:
    POST   /api/quotes                       Create session
    GET    /api/quotes                       List sessions
    GET    /api/quotes/{id}                  Get session
    PUT    /api/quotes/{id}/inputs           Partial input update + derive
    POST   /api/quotes/{id}/derive           Explicit recompute
    DELETE /api/quotes/{id}                  Discard session
    POST   /api/quotes/{id}/va/calculate     VA fee tiers
    POST   /api/quotes/{id}/va/clear         Reset VA workflow
    POST   /api/quotes/{id}/va/apply         Broadcast a tier to columns
    GET    /api/quotes/{id}/fha              FHA MIP derivation

  Intake:
    GET/POST /api/applications               List / create drafts
    GET      /api/applications/{id}
    POST     /api/applications/{id}/steps/{step}
    POST     /api/applications/{id}/submit

  Posts:
    GET/POST /api/posts                      List / create
    DELETE   /api/posts/{id}

  Admin:
    GET/PUT  /api/admin/catalog              Service catalog document
    POST     /api/admin/catalog/services     Add a service
    PUT/DELETE /api/admin/catalog/services/{id}
    GET      /api/admin/programs             Loan-program vocabulary

  Lookup / demo:
    GET  /api/county-lookup/{zip}
    GET  /api/scenarios, POST /api/scenarios/load

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (quote reducer, intake transitions, stores)
  4. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 409: Conflict (already submitted)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario definitions
  - server.go: Router setup and middleware
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/brokerdesk/quote-engine/cache"
	"github.com/brokerdesk/quote-engine/catalog"
	"github.com/brokerdesk/quote-engine/intake"
	"github.com/brokerdesk/quote-engine/quote"
	qstore "github.com/brokerdesk/quote-engine/quote/store"
	"github.com/brokerdesk/quote-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Sessions *qstore.Memory
	DB       *sqlite.Store
	Cache    cache.Cache

	mu              sync.RWMutex
	catalog         *catalog.Catalog
	currentScenario string
	appSeq          int
}

// NewHandler creates a new handler. The catalog may come from a config
// file or the stock defaults; a previously edited copy persisted in the
// database wins over both.
func NewHandler(sessions *qstore.Memory, db *sqlite.Store, c cache.Cache, cat *catalog.Catalog) *Handler {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Handler{
		Sessions: sessions,
		DB:       db,
		Cache:    c,
		catalog:  cat,
	}
}

// RestoreCatalog loads the persisted catalog document over the defaults.
func (h *Handler) RestoreCatalog(ctx context.Context) error {
	saved, err := h.DB.LoadCatalog(ctx)
	if err != nil {
		return err
	}
	if saved != nil {
		h.mu.Lock()
		h.catalog = saved
		h.mu.Unlock()
	}
	return nil
}

func (h *Handler) catalogSnapshot() *catalog.Catalog {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.catalog.Clone()
}

// =============================================================================
// QUOTE SESSION HANDLERS
// =============================================================================

// CreateQuote starts a session with empty defaults and the catalog's
// service grid.
func (h *Handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	serviceIDs := h.catalog.ServiceIDs()
	h.mu.RUnlock()

	rec, err := h.Sessions.Create(r.Context(), quote.NewSession(serviceIDs))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create quote session", err)
		return
	}
	writeJSON(w, http.StatusCreated, toQuoteDTO(rec))
}

// ListQuotes returns all open sessions.
func (h *Handler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Sessions.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list quote sessions", err)
		return
	}
	dtos := make([]QuoteDTO, len(recs))
	for i, rec := range recs {
		dtos[i] = toQuoteDTO(rec)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetQuote returns one session.
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeQuoteErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(rec))
}

// DeleteQuote discards a session.
func (h *Handler) DeleteQuote(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete quote session", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdateQuoteInputs applies a partial raw-input update, re-derives, and
// stores the new session snapshot.
func (h *Handler) UpdateQuoteInputs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateInputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rec, err := h.Sessions.Get(r.Context(), id)
	if err != nil {
		writeQuoteErr(w, err)
		return
	}

	s, err := applyInputs(rec.Session, req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid input update", err)
		return
	}

	s, _ = quote.Derive(s)
	rec, err = h.Sessions.Put(r.Context(), id, s)
	if err != nil {
		writeQuoteErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(rec))
}

// DeriveQuote recomputes derived fields without changing inputs. A
// second call in a row is a no-op by construction.
func (h *Handler) DeriveQuote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec, err := h.Sessions.Get(r.Context(), id)
	if err != nil {
		writeQuoteErr(w, err)
		return
	}

	s, changed := quote.Derive(rec.Session)
	if changed {
		rec, err = h.Sessions.Put(r.Context(), id, s)
		if err != nil {
			writeQuoteErr(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(rec))
}

// VaCalculateQuote runs the explicit VA Calculate action.
func (h *Handler) VaCalculateQuote(w http.ResponseWriter, r *http.Request) {
	h.vaAction(w, r, func(s quote.Session) quote.Session {
		return quote.VaCalculate(s)
	})
}

// VaClearQuote resets the VA workflow.
func (h *Handler) VaClearQuote(w http.ResponseWriter, r *http.Request) {
	h.vaAction(w, r, func(s quote.Session) quote.Session {
		return quote.VaClear(s)
	})
}

// VaApplyQuote broadcasts one tier into the selected columns.
func (h *Handler) VaApplyQuote(w http.ResponseWriter, r *http.Request) {
	var req VaApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	h.vaAction(w, r, func(s quote.Session) quote.Session {
		return quote.VaApply(s, quote.VaTier(req.Tier))
	})
}

func (h *Handler) vaAction(w http.ResponseWriter, r *http.Request, fn func(quote.Session) quote.Session) {
	id := chi.URLParam(r, "id")

	rec, err := h.Sessions.Get(r.Context(), id)
	if err != nil {
		writeQuoteErr(w, err)
		return
	}

	s := fn(rec.Session)
	// An applied fee changes the loan amount; re-derive downstream.
	s, _ = quote.Derive(s)

	rec, err = h.Sessions.Put(r.Context(), id, s)
	if err != nil {
		writeQuoteErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toQuoteDTO(rec))
}

// GetQuoteFha returns the FHA MIP derivation for the session's inputs.
func (h *Handler) GetQuoteFha(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Sessions.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeQuoteErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote.ComputeFhaMip(rec.Session.Fha))
}

// =============================================================================
// COUNTY LOOKUP
// =============================================================================

// LookupCounty resolves a ZIP to its county, cache-aside.
func (h *Handler) LookupCounty(w http.ResponseWriter, r *http.Request) {
	zip := quote.ToNumericString(chi.URLParam(r, "zip"))
	if len(zip) != 5 {
		writeError(w, http.StatusBadRequest, "ZIP must be 5 digits", nil)
		return
	}

	key := "county:" + zip
	if raw, ok := h.Cache.Get(r.Context(), key); ok {
		var dto CountyDTO
		if err := json.Unmarshal([]byte(raw), &dto); err == nil {
			dto.Cached = true
			writeJSON(w, http.StatusOK, dto)
			return
		}
	}

	c, err := h.DB.LookupCounty(r.Context(), zip)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "County lookup failed", err)
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "No county on file for ZIP "+zip, nil)
		return
	}

	dto := CountyDTO{Zip: c.Zip, County: c.County, State: c.State}
	if raw, err := json.Marshal(dto); err == nil {
		// A cache write failure only costs the next lookup a DB read.
		_ = h.Cache.Set(r.Context(), key, string(raw))
	}
	writeJSON(w, http.StatusOK, dto)
}

// =============================================================================
// INTAKE HANDLERS
// =============================================================================

// ListApplications returns intake applications, optionally by status.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.DB.ListApplications(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list applications", err)
		return
	}
	if apps == nil {
		apps = []intake.Application{}
	}
	writeJSON(w, http.StatusOK, apps)
}

// CreateApplication starts a new draft.
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.appSeq++
	id := fmt.Sprintf("app-%d-%06d", time.Now().Unix(), h.appSeq)
	h.mu.Unlock()

	app := intake.New(id)
	if err := h.DB.SaveApplication(r.Context(), app); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create application", err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// GetApplication returns one application.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.DB.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get application", err)
		return
	}
	if app == nil {
		writeError(w, http.StatusNotFound, "Application not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// UpdateApplication saves a draft's form state wholesale, without step
// validation or advancing the step marker. This is the autosave path
// while the client moves between steps.
func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	app, err := h.DB.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get application", err)
		return
	}
	if app == nil {
		writeError(w, http.StatusNotFound, "Application not found", nil)
		return
	}
	if app.Status == intake.StatusSubmitted {
		writeError(w, http.StatusConflict, "Application is already submitted", nil)
		return
	}

	next := *app
	if req.Contact != nil {
		next.Contact = *req.Contact
	}
	if req.Property != nil {
		next.Property = *req.Property
	}
	if req.Loans != nil {
		next.Loans = *req.Loans
	}
	if req.Income != nil {
		next.Income = *req.Income
	}
	next.UpdatedAt = time.Now().UTC()

	if err := h.DB.SaveApplication(r.Context(), next); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save application", err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

// SubmitApplicationStep validates and records one form step.
func (h *Handler) SubmitApplicationStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	step := intake.StepIndex(chi.URLParam(r, "step"))
	if step < 0 {
		writeError(w, http.StatusBadRequest, "Unknown step", nil)
		return
	}

	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	app, err := h.DB.GetApplication(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get application", err)
		return
	}
	if app == nil {
		writeError(w, http.StatusNotFound, "Application not found", nil)
		return
	}

	next, err := app.ApplyStep(step, func(a *intake.Application) {
		if req.Contact != nil {
			a.Contact = *req.Contact
		}
		if req.Property != nil {
			a.Property = *req.Property
		}
		if req.Loans != nil {
			a.Loans = *req.Loans
		}
		if req.Income != nil {
			a.Income = *req.Income
		}
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, "Step validation failed", err)
		return
	}

	if err := h.DB.SaveApplication(r.Context(), next); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save application", err)
		return
	}
	writeJSON(w, http.StatusOK, next)
}

// SubmitApplication finalizes a draft.
func (h *Handler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.DB.GetApplication(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get application", err)
		return
	}
	if app == nil {
		writeError(w, http.StatusNotFound, "Application not found", nil)
		return
	}

	sub, err := app.Submit()
	if err != nil {
		status := http.StatusBadRequest
		if app.Status == intake.StatusSubmitted {
			status = http.StatusConflict
		}
		writeError(w, status, "Cannot submit application", err)
		return
	}
	if err := h.DB.SaveApplication(r.Context(), sub); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save application", err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

// =============================================================================
// POST HANDLERS
// =============================================================================

// ListPosts returns posts, optionally filtered by channel.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.DB.ListPosts(r.Context(), r.URL.Query().Get("channel"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list posts", err)
		return
	}
	dtos := make([]PostDTO, len(posts))
	for i, p := range posts {
		dtos[i] = toPostDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// CreatePost publishes a comment/marketing post.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Author == "" || req.Body == "" {
		writeError(w, http.StatusBadRequest, "Author and body are required", nil)
		return
	}

	p, err := h.DB.SavePost(r.Context(), sqlite.Post{
		Author:  req.Author,
		Title:   req.Title,
		Body:    req.Body,
		Channel: req.Channel,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save post", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPostDTO(p))
}

// DeletePost removes a post.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid post id", err)
		return
	}
	ok, err := h.DB.DeletePost(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete post", err)
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "Post not found", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ADMIN: CATALOG & PROGRAMS
// =============================================================================

// GetCatalog returns the current service catalog.
func (h *Handler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogSnapshot())
}

// PutCatalog replaces the catalog document wholesale.
func (h *Handler) PutCatalog(w http.ResponseWriter, r *http.Request) {
	var c catalog.Catalog
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := c.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Catalog validation failed", err)
		return
	}
	h.persistCatalog(w, r, &c)
}

// AddCatalogService appends one service to a category.
func (h *Handler) AddCatalogService(w http.ResponseWriter, r *http.Request) {
	var req AddServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c := h.catalogSnapshot()
	if err := c.AddService(req.CategoryID, catalog.Service{ID: req.ID, Name: req.Name}); err != nil {
		writeError(w, http.StatusBadRequest, "Cannot add service", err)
		return
	}
	h.persistCatalog(w, r, c)
}

// RenameCatalogService renames one service.
func (h *Handler) RenameCatalogService(w http.ResponseWriter, r *http.Request) {
	var req RenameServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	c := h.catalogSnapshot()
	if err := c.RenameService(chi.URLParam(r, "id"), req.Name); err != nil {
		writeError(w, http.StatusNotFound, "Cannot rename service", err)
		return
	}
	h.persistCatalog(w, r, c)
}

// RemoveCatalogService drops one service.
func (h *Handler) RemoveCatalogService(w http.ResponseWriter, r *http.Request) {
	c := h.catalogSnapshot()
	if err := c.RemoveService(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "Cannot remove service", err)
		return
	}
	h.persistCatalog(w, r, c)
}

// ListPrograms returns the loan-program vocabulary.
func (h *Handler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalogSnapshot().Programs)
}

func (h *Handler) persistCatalog(w http.ResponseWriter, r *http.Request, c *catalog.Catalog) {
	if err := h.DB.SaveCatalog(r.Context(), c); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to persist catalog", err)
		return
	}
	h.mu.Lock()
	h.catalog = c
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, c)
}

// =============================================================================
// HELPERS
// =============================================================================

func applyInputs(s quote.Session, req UpdateInputsRequest) (quote.Session, error) {
	out := s.Clone()

	if req.SelectedRateIDs != nil {
		ids := *req.SelectedRateIDs
		if len(ids) == 0 || len(ids) > quote.NumColumns {
			return s, fmt.Errorf("selected_rate_ids must name 1-%d columns", quote.NumColumns)
		}
		for _, id := range ids {
			if id < 0 || id >= quote.NumColumns {
				return s, fmt.Errorf("rate column %d out of range", id)
			}
		}
		out.SelectedRateIDs = append([]int(nil), ids...)
	}
	if req.SelectedLoanCategory != nil {
		out.SelectedLoanCategory = *req.SelectedLoanCategory
	}
	if req.LoanTerm != nil {
		out.LoanTerm = *req.LoanTerm
	}
	if req.IsCustomTerm != nil {
		out.IsCustomTerm = *req.IsCustomTerm
	}
	if req.CustomTermYears != nil {
		out.CustomTermYears = quote.ToNumericString(*req.CustomTermYears)
	}
	if req.RateBuydown != nil {
		out.RateBuydown = *req.RateBuydown
	}
	if req.EscrowReserves != nil {
		out.EscrowReserves = quote.EscrowReservesMode(*req.EscrowReserves)
	}
	if req.MonthlyEscrow != nil {
		out.MonthlyEscrow = quote.MonthlyEscrowMode(*req.MonthlyEscrow)
	}
	if req.IsVAExempt != nil {
		out.IsVAExempt = *req.IsVAExempt
	}
	if req.IsVAJumboExempt != nil {
		out.IsVAJumboExempt = *req.IsVAJumboExempt
	}

	for _, cu := range req.Columns {
		if cu.Index < 0 || cu.Index >= quote.NumColumns {
			return s, fmt.Errorf("column index %d out of range", cu.Index)
		}
		col := &out.Columns[cu.Index]
		if cu.Rate != nil {
			col.Rate = quote.ToDecimalNumericString(*cu.Rate)
		}
		if cu.ExistingLoanBalance != nil {
			col.ExistingLoanBalance = quote.ToNumericString(*cu.ExistingLoanBalance)
		}
		if cu.CashOutAmount != nil {
			col.CashOutAmount = quote.ToNumericString(*cu.CashOutAmount)
		}
		if cu.RateBuyDown != nil {
			col.RateBuyDown = quote.ToNumericString(*cu.RateBuyDown)
		}
		if cu.VAFundingFee != nil {
			col.VAFundingFee = quote.ToDecimalNumericString(*cu.VAFundingFee)
		}
		if cu.PayOffInterest != nil {
			col.PayOffInterest = quote.ToNumericString(*cu.PayOffInterest)
		}
	}

	for _, su := range req.ThirdParty {
		if su.Column < 0 || su.Column >= quote.NumColumns {
			return s, fmt.Errorf("service column %d out of range", su.Column)
		}
		out.ThirdParty = out.ThirdParty.WithValue(su.ServiceID, su.Column, quote.ToNumericString(su.Value))
	}

	if req.Escrow != nil {
		out.Escrow = canonEscrow(*req.Escrow)
	}
	if req.Existing != nil {
		out.Existing = quote.ExistingPaymentInputs{
			ExistingMortgagePayment:   quote.ToNumericString(req.Existing.ExistingMortgagePayment),
			MonthlyPaymentDebtsPayOff: quote.ToNumericString(req.Existing.MonthlyPaymentDebtsPayOff),
			MonthlyPaymentOtherDebts:  quote.ToNumericString(req.Existing.MonthlyPaymentOtherDebts),
		}
	}
	if req.Fha != nil {
		fha := quote.FhaMipInputs{
			LoanStartMonthYear:  req.Fha.LoanStartMonthYear,
			StartingLoanBalance: quote.ToNumericString(req.Fha.StartingLoanBalance),
			PriorMipCostFactor:  quote.ToDecimalNumericString(req.Fha.PriorMipCostFactor),
			NewLoanAmount:       quote.ToNumericString(req.Fha.NewLoanAmount),
			NewMipCostFactor:    quote.ToDecimalNumericString(req.Fha.NewMipCostFactor),
		}
		out.Fha = fha.SetRemainingMonths(req.Fha.RemainingMonths)
	}

	return out, nil
}

func canonEscrow(in quote.SharedEscrowInputs) quote.SharedEscrowInputs {
	return quote.SharedEscrowInputs{
		PropertyInsurance:      quote.ToNumericString(in.PropertyInsurance),
		PropertyTax:            quote.ToNumericString(in.PropertyTax),
		StatementEscrowBalance: quote.ToNumericString(in.StatementEscrowBalance),
		MonthlyInsurance:       quote.ToNumericString(in.MonthlyInsurance),
		MonthlyPropertyTax:     quote.ToNumericString(in.MonthlyPropertyTax),
	}
}

func toQuoteDTO(rec qstore.Record) QuoteDTO {
	s := rec.Session

	cols := make([]ColumnDTO, quote.NumColumns)
	for i, c := range s.Columns {
		cols[i] = ColumnDTO{
			Index:               i,
			Selected:            s.IsSelected(i),
			Rate:                c.Rate,
			ExistingLoanBalance: c.ExistingLoanBalance,
			CashOutAmount:       c.CashOutAmount,
			RateBuyDown:         c.RateBuyDown,
			VAFundingFee:        c.VAFundingFee,
			PayOffInterest:      c.PayOffInterest,

			NewEstLoanAmount:           c.NewEstLoanAmount,
			NewEstLoanAmountDisplay:    quote.FormatDecimalThousands(c.NewEstLoanAmount),
			NewMonthlyPayment:          c.NewMonthlyPayment,
			NewMonthlyPaymentDisplay:   quote.FormatDecimalThousands(c.NewMonthlyPayment),
			TotalMonthlySavings:        c.TotalMonthlySavings,
			TotalMonthlySavingsDisplay: quote.FormatDecimalThousands(c.TotalMonthlySavings),
		}
	}

	cat := s.SelectedLoanCategory
	return QuoteDTO{
		ID:                   rec.ID,
		SelectedRateIDs:      s.SelectedRateIDs,
		SelectedLoanCategory: cat,
		LoanTerm:             s.LoanTerm,
		IsCustomTerm:         s.IsCustomTerm,
		CustomTermYears:      s.CustomTermYears,
		RateBuydown:          s.RateBuydown,
		EscrowReserves:       string(s.EscrowReserves),
		MonthlyEscrow:        string(s.MonthlyEscrow),
		IsVAExempt:           s.IsVAExempt,
		IsVAJumboExempt:      s.IsVAJumboExempt,
		Columns:              cols,
		ThirdParty:           s.ThirdParty,
		Escrow:               s.Escrow,
		Existing:             s.Existing,
		Fha:                  s.Fha,
		Va:                   s.Va,
		Sections: SectionsDTO{
			ExistingLoanBalance: quote.ShowExistingLoanBalance(cat),
			CashOut:             quote.ShowCashOut(cat),
			GovernmentFeeRow:    quote.ShowGovernmentFeeRow(cat),
			AppraisalInspection: quote.ShowAppraisalInspection(cat),
		},
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		UpdatedAt: rec.UpdatedAt.Format(time.RFC3339),
	}
}

func writeQuoteErr(w http.ResponseWriter, err error) {
	if errors.Is(err, qstore.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Quote session not found", err)
		return
	}
	writeError(w, http.StatusInternalServerError, "Quote session store error", err)
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
