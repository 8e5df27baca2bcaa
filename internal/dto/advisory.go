package dto

// SummaryRequest asks the advisory text service for a simplified summary.
type SummaryRequest struct {
	Text string `json:"text" binding:"required"`
}

// ManifestoAnalysisRequest asks for an analysis of a candidate manifesto.
type ManifestoAnalysisRequest struct {
	CandidateName string `json:"candidateName" binding:"required"`
	Party         string `json:"party" binding:"required"`
	Manifesto     string `json:"manifesto" binding:"required"`
}

// AdvisoryResponse carries the advisory text, or a fallback string when
// the external service was unavailable.
type AdvisoryResponse struct {
	Text string `json:"text"`
}
