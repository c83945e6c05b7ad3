package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"dealdesk/internal/usecase/interfaces"

	"github.com/ledongthuc/pdf"
)

// Reader extracts the embedded text layer of a PDF. Scanned PDFs have no
// text layer and yield an empty string.
type Reader struct{}

var _ interfaces.IPDFTextReader = Reader{}

func NewReader() Reader { return Reader{} }

func (Reader) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf: malformed document: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf: open: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("pdf: read text: %w", err)
	}

	var b strings.Builder
	if _, err := io.Copy(&b, plain); err != nil {
		return "", fmt.Errorf("pdf: read text: %w", err)
	}
	return strings.TrimSpace(b.String()), nil
}
