package usecase

import (
	"math/rand"
	"time"

	"buildready/internal/domain/entities"

	"github.com/google/uuid"
)

// Confidence scoring and issue generation are deliberate placeholders for a
// real standards-compliance analysis: the contract is the ranges and
// enumerations below, not any inspection of the estimate's contents. The
// rand source is injected so tests can seed it.

const (
	minConfidenceScore = 70
	maxConfidenceScore = 99
	minGeneratedIssues = 1
	maxGeneratedIssues = 3
)

var issueDescriptions = map[entities.IssueType]string{
	entities.IssueTypeAmbiguity:          "Scope is ambiguous: finish level for interior walls could not be determined.",
	entities.IssueTypeStandardsDeviation: "A line item deviates from the company standards on record.",
	entities.IssueTypePricingAnomaly:     "A unit price falls outside the expected band for its category.",
}

var generatedIssueTypes = []entities.IssueType{
	entities.IssueTypeAmbiguity,
	entities.IssueTypeStandardsDeviation,
	entities.IssueTypePricingAnomaly,
}

var generatedIssueStatuses = []entities.IssueStatus{
	entities.IssueStatusOpen,
	entities.IssueStatusPendingReview,
}

// drawConfidenceScore returns a uniform integer in [70, 99].
func drawConfidenceScore(r *rand.Rand) int {
	return minConfidenceScore + r.Intn(maxConfidenceScore-minConfidenceScore+1)
}

// generateIssues returns 1 to 3 issues with independently sampled type and
// status and a canned description per type.
func generateIssues(r *rand.Rand, estimateID string, now time.Time) []entities.ValidationIssue {
	n := minGeneratedIssues + r.Intn(maxGeneratedIssues-minGeneratedIssues+1)
	issues := make([]entities.ValidationIssue, 0, n)
	for i := 0; i < n; i++ {
		t := generatedIssueTypes[r.Intn(len(generatedIssueTypes))]
		issues = append(issues, entities.ValidationIssue{
			ID:          uuid.NewString(),
			EstimateID:  estimateID,
			Type:        t,
			Status:      generatedIssueStatuses[r.Intn(len(generatedIssueStatuses))],
			Description: issueDescriptions[t],
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return issues
}
