package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	mock_interfaces "dealdesk/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const modelJSON = `{"revenue": 5200000, "reportedEbitda": 810000,
 "addbacks": [{"description": "Owner salary to market", "amount": 95000}],
 "deductions": [{"description": "Rental income", "amount": -24000}],
 "dealName": "Blue Sky Services", "industry": "Commercial cleaning"}`

func TestParseModelOutput(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		res, err := ParseModelOutput(modelJSON)
		require.NoError(t, err)
		require.NotNil(t, res.Revenue)
		assert.Equal(t, 5200000.0, *res.Revenue)
		assert.Equal(t, 810000.0, *res.ReportedEbitda)
		assert.Equal(t, "Owner salary to market", res.Addbacks[0].Description)
		assert.Equal(t, -24000.0, res.Deductions[0].Amount)
		assert.Equal(t, "Blue Sky Services", res.DealName)
		assert.Equal(t, "Commercial cleaning", res.Industry)
	})

	t.Run("fenced block", func(t *testing.T) {
		res, err := ParseModelOutput("Here you go:\n```json\n" + modelJSON + "\n```\nThanks")
		require.NoError(t, err)
		assert.Equal(t, 810000.0, *res.ReportedEbitda)
	})

	t.Run("repairs trailing comma", func(t *testing.T) {
		res, err := ParseModelOutput(`{"revenue": 100, "industry": "Dental",}`)
		require.NoError(t, err)
		assert.Equal(t, 100.0, *res.Revenue)
		assert.Equal(t, "Dental", res.Industry)
	})

	t.Run("wrong types dropped", func(t *testing.T) {
		res, err := ParseModelOutput(`{"revenue": "5,200,000", "reportedEbitda": null, "addbacks": "none", "dealName": "", "industry": 7}`)
		require.NoError(t, err)
		assert.Nil(t, res.Revenue)
		assert.Nil(t, res.ReportedEbitda)
		assert.Nil(t, res.Addbacks)
		assert.Empty(t, res.DealName)
		assert.Empty(t, res.Industry)
		assert.True(t, res.IsEmpty())
	})

	t.Run("adjustment lines filtered and coerced", func(t *testing.T) {
		res, err := ParseModelOutput(`{"addbacks": [
			{"description": "Legal", "amount": "12000"},
			{"description": 42, "amount": 1},
			{"description": null, "amount": "n/a"},
			{"description": "No amount"},
			{"amount": 5},
			"loose string",
			[1, 2]
		], "deductions": []}`)
		require.NoError(t, err)
		require.Len(t, res.Addbacks, 3)
		assert.Equal(t, 12000.0, res.Addbacks[0].Amount)
		assert.Equal(t, "42", res.Addbacks[1].Description)
		assert.Equal(t, "", res.Addbacks[2].Description)
		assert.Equal(t, 0.0, res.Addbacks[2].Amount)
		assert.NotNil(t, res.Deductions)
		assert.Empty(t, res.Deductions)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := ParseModelOutput(`[1, 2, 3]`)
		assert.ErrorIs(t, err, ErrUnparseableModelOutput)
	})
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	s := strings.Repeat("é", 10)
	got := truncateRunes(s, 4)
	assert.Equal(t, 4, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestExtractionUseCase_Extract(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		uc := NewExtractionUseCase(nil, nil, nil, 0, nil)
		if uc.Configured() || uc.Provider() != "" {
			t.Fatalf("expected unconfigured use case")
		}
		_, err := uc.Extract(context.Background(), DocumentInput{Text: "x"})
		if !errors.Is(err, ErrExtractorNotConfigured) {
			t.Fatalf("expected ErrExtractorNotConfigured, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		uc := NewExtractionUseCase(llm, nil, nil, 0, nil)

		_, err := uc.Extract(context.Background(), DocumentInput{Text: "  \n "})
		if !errors.Is(err, ErrEmptyDocumentText) {
			t.Fatalf("expected ErrEmptyDocumentText, got %v", err)
		}
	})

	t.Run("json text success with truncation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		uc := NewExtractionUseCase(llm, nil, nil, 0, nil)

		long := strings.Repeat("a", MaxPromptChars+500)
		llm.EXPECT().Provider().Return("replicate").AnyTimes()
		llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, system, prompt string) (string, error) {
				if !strings.Contains(system, "reportedEbitda") {
					t.Fatalf("system prompt missing field list")
				}
				body := strings.TrimPrefix(prompt, "Extract deal data from this text:\n\n")
				if len(body) != MaxPromptChars {
					t.Fatalf("expected %d chars, got %d", MaxPromptChars, len(body))
				}
				return modelJSON, nil
			},
		)

		res, err := uc.Extract(context.Background(), DocumentInput{Text: "  " + long + "  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DealName != "Blue Sky Services" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		uc := NewExtractionUseCase(llm, nil, nil, 0, nil)

		llm.EXPECT().Provider().Return("gemini").AnyTimes()
		llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("503 unavailable"))

		_, err := uc.Extract(context.Background(), DocumentInput{Text: "CIM"})
		if !errors.Is(err, ErrUpstreamUnavailable) || !strings.Contains(err.Error(), "503 unavailable") {
			t.Fatalf("expected wrapped ErrUpstreamUnavailable, got %v", err)
		}
	})

	t.Run("unparseable output", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		uc := NewExtractionUseCase(llm, nil, nil, 0, nil)

		llm.EXPECT().Provider().Return("gemini").AnyTimes()
		llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Return(`["not", "an", "object"]`, nil)

		_, err := uc.Extract(context.Background(), DocumentInput{Text: "CIM"})
		if !errors.Is(err, ErrUnparseableModelOutput) {
			t.Fatalf("expected ErrUnparseableModelOutput, got %v", err)
		}
	})
}

func TestExtractionUseCase_DocumentSources(t *testing.T) {
	pdfBytes := []byte("%PDF-1.4")

	t.Run("pdf text layer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		pdf := mock_interfaces.NewMockIPDFTextReader(ctrl)
		ocr := mock_interfaces.NewMockIOCRClient(ctrl)
		uc := NewExtractionUseCase(llm, pdf, ocr, 0, nil)

		pdf.EXPECT().ExtractText(gomock.Any(), pdfBytes).Return(" Sales 5,200,000 ", nil)
		llm.EXPECT().Provider().Return("replicate").AnyTimes()
		llm.EXPECT().Complete(gomock.Any(), gomock.Any(), "Extract deal data from this text:\n\nSales 5,200,000").Return(`{}`, nil)

		if _, err := uc.Extract(context.Background(), DocumentInput{File: pdfBytes, Filename: "cim.pdf", Text: "ignored"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("scanned pdf falls back to ocr", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		pdf := mock_interfaces.NewMockIPDFTextReader(ctrl)
		ocr := mock_interfaces.NewMockIOCRClient(ctrl)
		uc := NewExtractionUseCase(llm, pdf, ocr, 0, nil)

		pdf.EXPECT().ExtractText(gomock.Any(), pdfBytes).Return("", errors.New("no text layer"))
		ocr.EXPECT().Recognize(gomock.Any(), "cim.pdf", pdfBytes).Return("OCR TEXT", nil)
		llm.EXPECT().Provider().Return("replicate").AnyTimes()
		llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, prompt string) (string, error) {
				if !strings.HasSuffix(prompt, "OCR TEXT") {
					t.Fatalf("expected ocr text in prompt, got %q", prompt)
				}
				return `{}`, nil
			},
		)

		if _, err := uc.Extract(context.Background(), DocumentInput{File: pdfBytes, Filename: "cim.pdf"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("form text when pdf and ocr yield nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		pdf := mock_interfaces.NewMockIPDFTextReader(ctrl)
		uc := NewExtractionUseCase(llm, pdf, nil, 0, nil)

		pdf.EXPECT().ExtractText(gomock.Any(), pdfBytes).Return("   ", nil)
		llm.EXPECT().Provider().Return("replicate").AnyTimes()
		llm.EXPECT().Complete(gomock.Any(), gomock.Any(), "Extract deal data from this text:\n\npasted").Return(`{}`, nil)

		if _, err := uc.Extract(context.Background(), DocumentInput{File: pdfBytes, Text: " pasted "}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("nothing readable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		llm := mock_interfaces.NewMockILLMClient(ctrl)
		pdf := mock_interfaces.NewMockIPDFTextReader(ctrl)
		uc := NewExtractionUseCase(llm, pdf, nil, 0, nil)

		pdf.EXPECT().ExtractText(gomock.Any(), pdfBytes).Return("", nil)

		_, err := uc.Extract(context.Background(), DocumentInput{File: pdfBytes})
		if !errors.Is(err, ErrEmptyDocumentText) {
			t.Fatalf("expected ErrEmptyDocumentText, got %v", err)
		}
	})
}

func TestExtractionUseCase_CallDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	llm := mock_interfaces.NewMockILLMClient(ctrl)
	uc := NewExtractionUseCase(llm, nil, nil, 50*time.Millisecond, nil)

	llm.EXPECT().Provider().Return("replicate").AnyTimes()
	llm.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _, _ string) (string, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Errorf("model call has no deadline")
			}
			<-ctx.Done()
			return "", ctx.Err()
		},
	)

	start := time.Now()
	_, err := uc.Extract(context.Background(), DocumentInput{Text: "CIM text"})
	elapsed := time.Since(start)

	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), context.DeadlineExceeded.Error()) {
		t.Fatalf("expected deadline in error, got %v", err)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("extract ran %s past a 50ms deadline", elapsed)
	}
}

func TestNewExtractionUseCase_DefaultCallTimeout(t *testing.T) {
	uc := NewExtractionUseCase(nil, nil, nil, 0, nil)
	if uc.callTimeout != DefaultCallTimeout {
		t.Fatalf("expected default %s, got %s", DefaultCallTimeout, uc.callTimeout)
	}
}
