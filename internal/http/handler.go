package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pickship/internal/domain/dto"
	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/guttosm/pickship/internal/format"
	"github.com/guttosm/pickship/internal/i18n"
	"github.com/guttosm/pickship/internal/metrics"
	"github.com/guttosm/pickship/internal/middleware"
	"github.com/guttosm/pickship/internal/service"
)

// FormatQuery selects the response representation of a manifest.
const (
	FormatQuery = "format"
	formatText  = "text"
)

// Handler provides HTTP handlers for manifest routes.
type Handler struct {
	packer service.ManifestPacker
}

// NewHandler creates a new Handler instance.
func NewHandler(packer service.ManifestPacker) *Handler {
	return &Handler{packer: packer}
}

// domainErrors maps packing failures onto translated messages. All of them are 422.
var domainErrors = []struct {
	err error
	key string
}{
	{model.ErrUnknownItemCode, i18n.ErrKeyUnknownItemCode},
	{model.ErrItemExceedsCapacity, i18n.ErrKeyItemExceedsCapacity},
	{model.ErrInvalidCapacity, i18n.ErrKeyInvalidCapacity},
	{model.ErrInvalidLineItem, i18n.ErrKeyInvalidLineItem},
	{model.ErrInvalidItem, i18n.ErrKeyInvalidItem},
}

// CreateManifest handles POST /api/manifests.
//
// @Summary      Pack an order into boxes
// @Description  Packs every unit of the order into boxes of at most the given capacity using first-fit-descending. Inventory and order may be sent as text documents or as structured JSON. With ?format=text the manifest is returned as a pick-ship document.
// @Tags         Manifests
// @Accept       json
// @Produce      json,plain
// @Param        request body dto.CreateManifestRequest true "Inventory, order and optional capacity"
// @Param        format query string false "Set to text for the pick-ship document"
// @Success      200 {object} dto.SuccessResponse "Packed manifest"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid JSON or missing input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      413 {object} dto.ErrorResponse "Request body too large"
// @Failure      422 {object} dto.ErrorResponse "Input cannot be packed"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      504 {object} dto.ErrorResponse "Request timed out"
// @Router       /api/manifests [post]
func (h *Handler) CreateManifest(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateManifestRequest](c)
	if err != nil {
		var verr *dto.ValidationError
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			middleware.AbortRequestTooLarge(c)
		case errors.As(err, &verr) && (verr == dto.ErrMissingInventory || verr == dto.ErrMissingOrder):
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyMissingInput, err, map[string]string{verr.Field: verr.Message})
		case errors.As(err, &verr):
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err, map[string]string{verr.Field: verr.Message})
		default:
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	order, inv, err := req.ToDomain()
	if err != nil {
		metrics.RecordPacking(0, "malformed_input")
		h.writeDomainError(builder, err)
		return
	}

	// The timeout middleware answers once the deadline has passed.
	if c.Request.Context().Err() != nil {
		return
	}

	var manifest model.Manifest
	if req.Capacity != nil {
		manifest, err = h.packer.Pack(order, inv, *req.Capacity)
	} else {
		manifest, err = h.packer.PackDefault(order, inv)
	}
	if err != nil {
		h.writeDomainError(builder, err)
		return
	}

	if c.Query(FormatQuery) == formatText {
		var buf bytes.Buffer
		if err := format.WriteManifest(&buf, manifest); err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return
		}
		builder.Text(http.StatusOK, buf.Bytes())
		return
	}

	builder.SuccessOK(manifest)
}

// writeDomainError answers 422 for input that is well-formed JSON but cannot be
// packed, and 500 for anything else.
func (h *Handler) writeDomainError(builder *ResponseBuilder, err error) {
	var perr *format.ParseError
	if errors.As(err, &perr) {
		key := i18n.ErrKeyMalformedOrder
		if perr.Source == "inventory" {
			key = i18n.ErrKeyMalformedInventory
		}
		details := map[string]string{
			"source":   perr.Source,
			"line":     strconv.Itoa(perr.Line),
			"expected": perr.Expected,
		}
		if perr.Got != "" {
			details["got"] = perr.Got
		}
		builder.ErrorWithDetails(http.StatusUnprocessableEntity, key, err, details)
		return
	}

	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			builder.ErrorWithDetails(http.StatusUnprocessableEntity, de.key, err, map[string]string{"reason": err.Error()})
			return
		}
	}

	builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
}
