package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/joinrss-backend/internal/domain"
	"github.com/heartmarshall/joinrss-backend/internal/service/member"
	"github.com/heartmarshall/joinrss-backend/internal/service/member/export"
)

// memberService defines the minimal interface needed by MemberHandler.
type memberService interface {
	List(ctx context.Context, input member.ListInput) ([]domain.Member, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Member, error)
	Create(ctx context.Context, input member.CreateInput) (*domain.Member, error)
	Update(ctx context.Context, id uuid.UUID, input member.UpdateInput) (*domain.Member, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Export(ctx context.Context, input member.ExportInput) (*export.Document, error)
}

// MemberHandler serves the member registry endpoints.
type MemberHandler struct {
	svc memberService
	log *slog.Logger
}

// NewMemberHandler creates a MemberHandler.
func NewMemberHandler(svc memberService, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{svc: svc, log: logger.With("handler", "member")}
}

type memberResponse struct {
	ID             string    `json:"id"`
	MemberID       string    `json:"memberId"`
	RegDate        string    `json:"regDate"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	FullName       string    `json:"fullName"`
	Gender         string    `json:"gender"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Age            *int      `json:"age"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	BhagCode       string    `json:"bhagCode"`
	NagarCode      string    `json:"nagarCode"`
	BastiCode      string    `json:"bastiCode"`
	Occupation     string    `json:"occupation"`
	Activation     string    `json:"activation"`
	ActivationDate string    `json:"activationDate"`
	Remark         string    `json:"remark"`
	ReferredBy     string    `json:"referredBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

type listResponse struct {
	Members []memberResponse `json:"members"`
	Total   int              `json:"total"`
}

type criterionRequest struct {
	Field string `json:"field"`
	Query string `json:"query"`
}

type searchRequest struct {
	Criteria []criterionRequest `json:"criteria"`
}

type createMemberRequest struct {
	MemberID   string `json:"memberId"`
	RegDate    string `json:"regDate"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Gender     string `json:"gender"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Age        *int   `json:"age"`
	Address    string `json:"address"`
	City       string `json:"city"`
	BhagCode   string `json:"bhagCode"`
	NagarCode  string `json:"nagarCode"`
	BastiCode  string `json:"bastiCode"`
	Occupation string `json:"occupation"`
	Activation string `json:"activation"`
	Remark     string `json:"remark"`
	ReferredBy string `json:"referredBy"`
}

type updateMemberRequest struct {
	BhagCode   *string `json:"bhagCode"`
	NagarCode  *string `json:"nagarCode"`
	BastiCode  *string `json:"bastiCode"`
	Activation *string `json:"activation"`
}

// List handles GET /members?field=F&q=Q. See criteriaFromQuery for how
// repeated field/q parameters pair up.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, criteriaFromQuery(r))
}

// Search handles POST /members/search.
func (h *MemberHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	criteria := make([]member.CriterionInput, 0, len(req.Criteria))
	for _, c := range req.Criteria {
		criteria = append(criteria, member.CriterionInput{Field: c.Field, Query: c.Query})
	}
	h.list(w, r, criteria)
}

func (h *MemberHandler) list(w http.ResponseWriter, r *http.Request, criteria []member.CriterionInput) {
	members, err := h.svc.List(r.Context(), member.ListInput{Criteria: criteria})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listResponse{Members: make([]memberResponse, 0, len(members)), Total: len(members)}
	for _, m := range members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /members/{id}.
func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(*m))
}

// Create handles POST /members.
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.Create(r.Context(), member.CreateInput{
		MemberID:   req.MemberID,
		RegDate:    req.RegDate,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Gender:     req.Gender,
		Email:      req.Email,
		Phone:      req.Phone,
		Age:        req.Age,
		Address:    req.Address,
		City:       req.City,
		BhagCode:   req.BhagCode,
		NagarCode:  req.NagarCode,
		BastiCode:  req.BastiCode,
		Occupation: req.Occupation,
		Activation: req.Activation,
		Remark:     req.Remark,
		ReferredBy: req.ReferredBy,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Location", "/members/"+m.ID.String())
	writeJSON(w, http.StatusCreated, toMemberResponse(*m))
}

// Update handles PATCH /members/{id}.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateMemberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	m, err := h.svc.Update(r.Context(), id, member.UpdateInput{
		BhagCode:   req.BhagCode,
		NagarCode:  req.NagarCode,
		BastiCode:  req.BastiCode,
		Activation: req.Activation,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(*m))
}

// Delete handles DELETE /members/{id}.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /members/export?format=csv|xlsx with the same
// field/q parameters as List.
func (h *MemberHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Export(r.Context(), member.ExportInput{
		Criteria: criteriaFromQuery(r),
		Format:   r.URL.Query().Get("format"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Body)))
	w.Header().Set("X-Export-Rows", strconv.Itoa(doc.Rows))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc.Body); err != nil {
		h.log.WarnContext(r.Context(), "write export body", slog.String("error", err.Error()))
	}
}

// criteriaFromQuery pairs field and q parameters in the order they appear in
// the URL. Each q takes the field given since the previous q; a q with no
// field of its own searches all fields.
func criteriaFromQuery(r *http.Request) []member.CriterionInput {
	criteria := []member.CriterionInput{}
	var (
		field   string
		pending bool
	)
	for _, part := range strings.Split(r.URL.RawQuery, "&") {
		rawKey, rawValue, _ := strings.Cut(part, "=")
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}

		switch key {
		case "field":
			field, pending = value, true
		case "q":
			if !pending {
				field = ""
			}
			criteria = append(criteria, member.CriterionInput{Field: field, Query: value})
			pending = false
		}
	}
	return criteria
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return uuid.Nil, false
	}
	return id, true
}

func toMemberResponse(m domain.Member) memberResponse {
	return memberResponse{
		ID:             m.ID.String(),
		MemberID:       m.MemberID,
		RegDate:        m.RegDate,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		FullName:       m.FullName(),
		Gender:         m.Gender,
		Email:          m.Email,
		Phone:          m.Phone,
		Age:            m.Age,
		Address:        m.Address,
		City:           m.City,
		BhagCode:       m.BhagCode,
		NagarCode:      m.NagarCode,
		BastiCode:      m.BastiCode,
		Occupation:     m.Occupation,
		Activation:     m.Activation.String(),
		ActivationDate: m.ActivationDate(),
		Remark:         m.Remark,
		ReferredBy:     m.ReferredBy,
		CreatedAt:      m.CreatedAt,
	}
}
