package response

import (
	"time"

	"dealdesk/internal/domain/entities"
)

const timeLayout = time.RFC3339

// HealthResponse reports whether CIM extraction can run.
type HealthResponse struct {
	OK         bool   `json:"ok"`
	Extraction bool   `json:"extraction"`
	Provider   string `json:"provider,omitempty"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// ExtractionResponse is an extraction result ready for review. Nothing is
// saved until the client applies it to a deal.
type ExtractionResponse struct {
	entities.ExtractionResult
	Provider string `json:"provider"`
	Empty    bool   `json:"empty"`
}

func FromExtraction(r entities.ExtractionResult, provider string) ExtractionResponse {
	return ExtractionResponse{ExtractionResult: r, Provider: provider, Empty: r.IsEmpty()}
}
