package heritage

import (
	"strings"

	"github.com/Tanvoile/site-geo-mvp/internal/layers"
)

// Heritage protection buckets.
const (
	BucketSPR         = "spr"
	BucketAbordsMH    = "abords_mh"
	BucketSiteClasse  = "site_classe"
	BucketSiteInscrit = "site_inscrit"
	BucketPaysage     = "paysage"
	BucketAutres      = "autres"
)

var bucketPretty = map[string]string{
	BucketSPR:         "Sites patrimoniaux remarquables",
	BucketAbordsMH:    "Abords de monuments historiques",
	BucketSiteClasse:  "Sites classés",
	BucketSiteInscrit: "Sites inscrits",
	BucketPaysage:     "Protections paysagères",
	BucketAutres:      "Autres protections",
}

// Classify assigns one heritage feature to a bucket. The atlas mixes
// coded and free-text categorization, so the code is checked first and
// the label decides the rest. SPR absorbs its legacy regimes (ZPPAUP,
// AVAP).
func Classify(code, label string) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	lower := strings.ToLower(label)

	switch {
	case normalized == "AC4",
		strings.Contains(lower, "site patrimonial remarquable"),
		strings.Contains(lower, "zppaup"),
		strings.Contains(lower, "avap"):
		return BucketSPR
	case normalized == "AC1",
		strings.Contains(lower, "abords"),
		strings.Contains(lower, "monument historique"):
		return BucketAbordsMH
	}

	if layers.LabelClasse(label) {
		return BucketSiteClasse
	}
	if layers.LabelInscrit(label) {
		return BucketSiteInscrit
	}
	if strings.Contains(lower, "paysage") {
		return BucketPaysage
	}
	return BucketAutres
}
