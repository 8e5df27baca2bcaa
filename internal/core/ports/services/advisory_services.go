package services

import "context"

// AdvisorySvcFacade is the client boundary for the external advisory text
// service. Its output is strictly optional: implementations return a
// fallback string instead of an error when the service is unreachable, so
// voting and tallying are never blocked by it.
type AdvisorySvcFacade interface {
	SimpleSummary(ctx context.Context, text string) string
	ManifestoAnalysis(ctx context.Context, candidateName, party, manifesto string) string
}
