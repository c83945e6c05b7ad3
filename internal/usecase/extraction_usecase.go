package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"dealdesk/internal/domain/entities"
	"dealdesk/internal/infrastructure/metrics"
	"dealdesk/internal/usecase/interfaces"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	ErrExtractorNotConfigured = errors.New("document extraction is not configured")
	ErrEmptyDocumentText      = errors.New("missing or empty text extracted from document or provided in body")
	ErrUpstreamUnavailable    = errors.New("extraction model call failed")
	ErrUnparseableModelOutput = errors.New("model output is not a JSON object")
)

// MaxPromptChars caps the document text sent to the model.
const MaxPromptChars = 30000

// DefaultCallTimeout bounds one model call, retries included.
const DefaultCallTimeout = 90 * time.Second

// Where the document text came from.
const (
	SourceText     = "text"
	SourcePDF      = "pdf"
	SourceOCR      = "ocr"
	SourceFormText = "form_text"
)

const extractionSystemPrompt = `You are a financial analyst extracting key deal data from a CIM (Confidential Information Memorandum) or financial document excerpt.

These CIMs often follow a middle-market M&A format, with sections such as "Financial Highlights", "Financial Analysis", "Historical (Adjusted) Income Statements", "Pro Forma Income Statements", and "Notes & Adjustment Details".

When these structures are present:
- Treat "Sales" (or "Revenue") in the recast or adjusted historical income statement as total revenue.
- Use the latest fully historical fiscal year as the basis. Do NOT use pro forma or projected years.
- For reportedEbitda, prefer the "EBITDA" line for that year in the recast income statement. If both EBITDA and SDE (Seller's Discretionary Earnings) are shown, use EBITDA and ignore SDE.
- Do not double-count addbacks that are already included in a single EBITDA number. Only list explicit adjustments the document itemizes, such as owner compensation normalization, non-recurring expenses or non-operating items.
- Classify each adjustment by its description: an addback increases normalized earnings, a deduction reduces them (for example non-operating income or income from entities not included in the sale).
- When you cannot confidently classify an adjustment, omit it.

Return a JSON object with only these optional fields (use null if not found):
- revenue (number, total revenue for the latest full historical year)
- reportedEbitda (number, EBITDA for that same year before any adjustments you list)
- addbacks (array of { description: string, amount: number }; amounts positive)
- deductions (array of { description: string, amount: number }; amounts negative)
- dealName (string, company or deal name if evident)
- industry (string, industry or sector if evident)

Use only information explicitly stated in the text. Return valid JSON only, no markdown or explanation.`

var fencedBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// DocumentInput is one extraction request. File is nil when nothing was
// uploaded; Text is the JSON body text or the multipart text field.
type DocumentInput struct {
	Text     string
	File     []byte
	Filename string
}

// IExtractionUseCase turns CIM text or PDFs into deal figures.

type IExtractionUseCase interface {
	Configured() bool
	Provider() string
	Extract(ctx context.Context, in DocumentInput) (entities.ExtractionResult, error)
}

type ExtractionUseCase struct {
	llm interfaces.ILLMClient
	pdf interfaces.IPDFTextReader
	ocr interfaces.IOCRClient
	log *zap.Logger

	callTimeout time.Duration
}

var _ IExtractionUseCase = (*ExtractionUseCase)(nil)

// NewExtractionUseCase wires the extraction pipeline. llm and ocr may be
// nil when their credentials are not configured. callTimeout caps the whole
// model call including retry waits; zero uses DefaultCallTimeout.
func NewExtractionUseCase(llm interfaces.ILLMClient, pdf interfaces.IPDFTextReader, ocr interfaces.IOCRClient, callTimeout time.Duration, log *zap.Logger) *ExtractionUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}
	return &ExtractionUseCase{llm: llm, pdf: pdf, ocr: ocr, log: log, callTimeout: callTimeout}
}

func (u *ExtractionUseCase) Configured() bool {
	return u.llm != nil
}

func (u *ExtractionUseCase) Provider() string {
	if u.llm == nil {
		return ""
	}
	return u.llm.Provider()
}

func (u *ExtractionUseCase) Extract(ctx context.Context, in DocumentInput) (entities.ExtractionResult, error) {
	if u.llm == nil {
		return entities.ExtractionResult{}, ErrExtractorNotConfigured
	}

	text, source := u.documentText(ctx, in)
	if text == "" {
		metrics.ExtractionRequests.WithLabelValues("none", "empty").Inc()
		return entities.ExtractionResult{}, ErrEmptyDocumentText
	}

	prompt := "Extract deal data from this text:\n\n" + truncateRunes(text, MaxPromptChars)

	provider := u.llm.Provider()
	callCtx, cancel := context.WithTimeout(ctx, u.callTimeout)
	defer cancel()

	start := time.Now()
	raw, err := u.llm.Complete(callCtx, extractionSystemPrompt, prompt)
	metrics.ExtractionDuration.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExtractionRequests.WithLabelValues(source, "upstream_error").Inc()
		u.log.Warn("[extraction][usecase] model call failed", zap.String("provider", provider), zap.Error(err))
		return entities.ExtractionResult{}, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	res, err := ParseModelOutput(raw)
	if err != nil {
		metrics.ExtractionRequests.WithLabelValues(source, "unparseable").Inc()
		u.log.Warn("[extraction][usecase] unparseable model output", zap.String("provider", provider), zap.Int("output_len", len(raw)))
		return entities.ExtractionResult{}, err
	}

	metrics.ExtractionRequests.WithLabelValues(source, "ok").Inc()
	u.log.Info("[extraction][usecase] extracted",
		zap.String("source", source),
		zap.Int("text_len", len(text)),
		zap.Bool("revenue", res.Revenue != nil),
		zap.Bool("reported_ebitda", res.ReportedEbitda != nil),
		zap.Int("addbacks", len(res.Addbacks)),
		zap.Int("deductions", len(res.Deductions)))
	return res, nil
}

// documentText resolves the text to send: the PDF text layer, then OCR for
// scanned PDFs, then the caller-supplied text.
func (u *ExtractionUseCase) documentText(ctx context.Context, in DocumentInput) (string, string) {
	if in.File == nil {
		return strings.TrimSpace(in.Text), SourceText
	}

	if u.pdf != nil {
		text, err := u.pdf.ExtractText(ctx, in.File)
		if err != nil {
			u.log.Warn("[extraction][usecase] pdf text layer unreadable", zap.String("filename", in.Filename), zap.Error(err))
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, SourcePDF
		}
	}

	if u.ocr != nil {
		text, err := u.ocr.Recognize(ctx, in.Filename, in.File)
		if err != nil {
			u.log.Warn("[extraction][usecase] ocr failed", zap.String("filename", in.Filename), zap.Error(err))
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, SourceOCR
		}
	}

	return strings.TrimSpace(in.Text), SourceFormText
}

// ParseModelOutput decodes raw model text into an ExtractionResult.
//
// A fenced ```json block is unwrapped and the JSON repaired before decode.
// Each field is then checked on its own: wrongly typed fields are dropped
// and adjustment entries need both a description and an amount.
func ParseModelOutput(raw string) (entities.ExtractionResult, error) {
	s := strings.TrimSpace(raw)
	if m := fencedBlock.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
	}
	if !gjson.Valid(s) {
		repaired, err := jsonrepair.RepairJSON(s)
		if err != nil {
			return entities.ExtractionResult{}, fmt.Errorf("%w: %v", ErrUnparseableModelOutput, err)
		}
		s = repaired
	}

	doc := gjson.Parse(s)
	if !doc.IsObject() {
		return entities.ExtractionResult{}, ErrUnparseableModelOutput
	}

	var res entities.ExtractionResult
	if v := doc.Get("revenue"); v.Type == gjson.Number {
		f := v.Float()
		res.Revenue = &f
	}
	if v := doc.Get("reportedEbitda"); v.Type == gjson.Number {
		f := v.Float()
		res.ReportedEbitda = &f
	}
	res.Addbacks = decodeLines(doc.Get("addbacks"))
	res.Deductions = decodeLines(doc.Get("deductions"))
	if v := doc.Get("dealName"); v.Type == gjson.String && v.Str != "" {
		res.DealName = v.Str
	}
	if v := doc.Get("industry"); v.Type == gjson.String && v.Str != "" {
		res.Industry = v.Str
	}
	return res, nil
}

// decodeLines returns nil when v is not an array.
func decodeLines(v gjson.Result) []entities.AdjustmentLine {
	if !v.IsArray() {
		return nil
	}
	out := []entities.AdjustmentLine{}
	for _, item := range v.Array() {
		if !item.IsObject() {
			continue
		}
		desc, amount := item.Get("description"), item.Get("amount")
		if !desc.Exists() || !amount.Exists() {
			continue
		}
		out = append(out, entities.AdjustmentLine{
			Description: lineDescription(desc),
			Amount:      coerceAmount(amount),
		})
	}
	return out
}

func lineDescription(v gjson.Result) string {
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return v.Str
	default:
		return v.Raw
	}
}

// coerceAmount turns numbers, numeric strings and booleans into a float.
// Anything else, or a non-finite result, is 0.
func coerceAmount(v gjson.Result) float64 {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Num
	case gjson.String:
		s := strings.TrimSpace(v.Str)
		if s == "" {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case gjson.True:
		f = 1
	default:
		return 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
