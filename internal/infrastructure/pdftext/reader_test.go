package pdftext

import (
	"context"
	"testing"
)

func TestReader_RejectsNonPDF(t *testing.T) {
	_, err := NewReader().ExtractText(context.Background(), []byte("this is not a pdf"))
	if err == nil {
		t.Fatalf("expected error for non-pdf input")
	}
}

func TestReader_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewReader().ExtractText(ctx, []byte("%PDF-1.4")); err == nil {
		t.Fatalf("expected context error")
	}
}
