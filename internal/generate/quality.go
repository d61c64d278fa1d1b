package generate

import "github.com/artiklo/legato/internal/model"

// Quality scoring weights. The score starts at 100 and is clamped to [0, 100]
// after all adjustments; it is advisory and never blocks generation.
const (
	penaltyPerMissingVar = 5
	penaltyFewClauses    = 10 // fewer than minClauses
	penaltyManyClauses   = 5  // more than maxClauses
	bonusLegalRefs       = 5  // more than minLegalRefs references
	penaltyShortDocument = 15 // under minChars characters
	penaltyLongDocument  = 10 // over maxChars characters
	penaltyPerLogError   = 10
	penaltyPerLogWarning = 2

	minClauses   = 5
	maxClauses   = 15
	minLegalRefs = 3
	minChars     = 1000
	maxChars     = 10000
)

// Score rates an assembly outcome on completeness and size heuristics. The
// arithmetic is fixed and documented so callers can explain any score to an
// end user.
func Score(result *model.AssemblyResult) int {
	score := 100

	score -= len(result.Metadata.MissingVariables) * penaltyPerMissingVar

	if result.Metadata.ClauseCount < minClauses {
		score -= penaltyFewClauses
	}
	if result.Metadata.ClauseCount > maxClauses {
		score -= penaltyManyClauses
	}

	if len(result.Metadata.LegalReferences) > minLegalRefs {
		score += bonusLegalRefs
	}

	if result.Metadata.TotalCharacters < minChars {
		score -= penaltyShortDocument
	}
	if result.Metadata.TotalCharacters > maxChars {
		score -= penaltyLongDocument
	}

	score -= result.Errors() * penaltyPerLogError
	score -= result.Warnings() * penaltyPerLogWarning

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
