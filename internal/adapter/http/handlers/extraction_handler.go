package handlers

import (
	"errors"
	"io"
	"net/http"

	request "dealdesk/internal/adapter/http/dto/request"
	response "dealdesk/internal/adapter/http/dto/response"
	"dealdesk/internal/usecase"
	"dealdesk/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaxUploadBytes caps a CIM upload.
const MaxUploadBytes = 25 << 20

var (
	errExtractionNotConfigured = pkg.NewDomainErrorSimple("EXTRACTION_NOT_CONFIGURED", "CIM extraction is not configured on this server", http.StatusServiceUnavailable)
	errUnsupportedContentType  = pkg.NewDomainErrorSimple("UNSUPPORTED_CONTENT_TYPE", "Send application/json with a text field or multipart/form-data with a file", http.StatusBadRequest)
	errInvalidExtractPayload   = pkg.NewDomainErrorSimple("INVALID_EXTRACTION_INPUT", "Invalid extraction payload", http.StatusBadRequest)
	errUploadTooLarge          = pkg.NewDomainErrorSimple("UPLOAD_TOO_LARGE", "Upload exceeds the 25 MB limit", http.StatusRequestEntityTooLarge)
)

type ExtractionHandler struct {
	usecase usecase.IExtractionUseCase
	log     *zap.Logger
}

func NewExtractionHandler(uc usecase.IExtractionUseCase, log *zap.Logger) *ExtractionHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExtractionHandler{usecase: uc, log: log}
}

// ExtractCIM godoc
// @Summary      Extract deal figures from a CIM
// @Description  Accepts JSON {"text": "..."} or a multipart form with a PDF "file" and/or a "text" field.
// @Description  The result is returned for review and is not saved.
// @Tags         extraction
// @Accept       json,mpfd
// @Produce      json
// @Success      200 {object} response.ExtractionResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      413 {object} pkg.HTTPError
// @Failure      422 {object} pkg.HTTPError
// @Failure      502 {object} pkg.HTTPError
// @Failure      503 {object} pkg.HTTPError
// @Router       /extract-cim [post]
func (h *ExtractionHandler) ExtractCIM(c *gin.Context) {
	if !h.usecase.Configured() {
		c.JSON(errExtractionNotConfigured.HTTPStatus, errExtractionNotConfigured.ToHTTPError())
		return
	}

	in, appErr := readDocument(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Extract(c.Request.Context(), in)
	if err != nil {
		appErr := mapExtractionError(err)
		h.log.Warn("[extraction][handler] extract failed",
			zap.Int("status", appErr.HTTPStatus),
			zap.String("filename", in.Filename),
			zap.Error(err))
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromExtraction(res, h.usecase.Provider()))
}

func readDocument(c *gin.Context) (usecase.DocumentInput, *pkg.AppError) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	switch c.ContentType() {
	case gin.MIMEJSON:
		var payload request.ExtractCIMRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			return usecase.DocumentInput{}, payloadError(err)
		}
		return usecase.DocumentInput{Text: payload.Text}, nil

	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(MaxUploadBytes); err != nil {
			return usecase.DocumentInput{}, payloadError(err)
		}
		in := usecase.DocumentInput{Text: c.PostForm("text")}

		fh, err := c.FormFile("file")
		if errors.Is(err, http.ErrMissingFile) {
			return in, nil
		}
		if err != nil {
			return usecase.DocumentInput{}, errInvalidExtractPayload.WithDetails(err.Error())
		}
		f, err := fh.Open()
		if err != nil {
			return usecase.DocumentInput{}, errInvalidExtractPayload.WithDetails(err.Error())
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return usecase.DocumentInput{}, errInvalidExtractPayload.WithDetails(err.Error())
		}
		in.File = data
		in.Filename = fh.Filename
		return in, nil
	}
	return usecase.DocumentInput{}, errUnsupportedContentType
}

func payloadError(err error) *pkg.AppError {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errUploadTooLarge
	}
	return errInvalidExtractPayload.WithDetails(err.Error())
}

func mapExtractionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrExtractorNotConfigured):
		return errExtractionNotConfigured
	case errors.Is(err, usecase.ErrEmptyDocumentText):
		return pkg.NewDomainErrorSimple("EMPTY_DOCUMENT", "No readable text in the document", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUpstreamUnavailable):
		return pkg.NewDomainError("EXTRACTION_UPSTREAM_FAILED", "The extraction model is unavailable, try again later", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrUnparseableModelOutput):
		return pkg.NewDomainError("EXTRACTION_UNPARSEABLE", "The model returned an unreadable answer", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
