package rule

import (
	"sort"
	"strings"
)

// canonicalOrder is the petition layout convention: header first, then
// parties, subject matter, contract, dispute details, objections,
// counter-offer, requests, and the signature block last. An id belongs to
// the first bucket whose marker it contains.
var canonicalOrder = []string{
	"HEADER_",
	"PLAINTIFF_INFO_",
	"DEFENDANT_INFO_",
	"PROPERTY_DETAILS_",
	"CONTRACT_INFO_",
	"RENT_INCREASE_",
	"_OBJECTION_",
	"COUNTER_OFFER_",
	"REQUEST_",
	"SIGNATURE_",
}

// OrderClauses sorts clause ids into legal-document order. Ids matching no
// known marker keep their relative input order after all recognized ones.
// The sort is stable, so equal-bucket ids never reorder.
func (e *Engine) OrderClauses(ids []string) []string {
	rank := make(map[string]int, len(ids))
	for _, id := range ids {
		rank[id] = bucketOf(id)
	}

	out := append([]string(nil), ids...)
	sort.SliceStable(out, func(i, j int) bool {
		return rank[out[i]] < rank[out[j]]
	})
	return out
}

func bucketOf(id string) int {
	for i, marker := range canonicalOrder {
		if strings.Contains(id, marker) {
			return i
		}
	}
	return len(canonicalOrder)
}
