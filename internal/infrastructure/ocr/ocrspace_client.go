package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"dealdesk/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const DefaultEndpoint = "https://api.ocr.space/parse/image"

// SpaceClient sends scanned PDFs to OCR.space.
type SpaceClient struct {
	http     *retryablehttp.Client
	endpoint string
	apiKey   string
}

var _ interfaces.IOCRClient = (*SpaceClient)(nil)

func NewSpaceClient(httpClient *retryablehttp.Client, endpoint, apiKey string) *SpaceClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &SpaceClient{http: httpClient, endpoint: endpoint, apiKey: apiKey}
}

// Recognize returns the text of every parsed page joined by newlines.
func (c *SpaceClient) Recognize(ctx context.Context, filename string, data []byte) (string, error) {
	body, contentType, err := buildForm(data)
	if err != nil {
		return "", err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", fmt.Errorf("ocr: read body: %w", err)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("ocr: %s: status %d", filename, resp.StatusCode)
	}
	return parseResponse(raw)
}

func buildForm(data []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := [][2]string{
		{"base64Image", "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(data)},
		{"filetype", "PDF"},
		{"language", "eng"},
		{"isTable", "true"},
		{"scale", "true"},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

func parseResponse(raw []byte) (string, error) {
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("ocr: response is not JSON")
	}
	doc := gjson.ParseBytes(raw)
	if doc.Get("IsErroredOnProcessing").Bool() {
		return "", fmt.Errorf("ocr: %s", errorMessage(doc.Get("ErrorMessage")))
	}

	var pages []string
	for _, r := range doc.Get("ParsedResults").Array() {
		pages = append(pages, r.Get("ParsedText").String())
	}
	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// errorMessage flattens ErrorMessage, which OCR.space sends as a string or
// a list of strings.
func errorMessage(v gjson.Result) string {
	if v.IsArray() {
		var parts []string
		for _, m := range v.Array() {
			parts = append(parts, m.String())
		}
		return strings.Join(parts, "; ")
	}
	if s := v.String(); s != "" {
		return s
	}
	return "processing failed"
}
