package interfaces

import "context"

// IPDFTextReader pulls the embedded text layer out of a PDF.
type IPDFTextReader interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// IOCRClient recognizes text in scanned documents.
type IOCRClient interface {
	Recognize(ctx context.Context, filename string, data []byte) (string, error)
}
