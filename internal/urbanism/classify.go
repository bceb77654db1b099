package urbanism

import (
	"strings"

	"github.com/Tanvoile/site-geo-mvp/internal/layers"
)

// Servitude buckets. The codes are the national SUP categories.
const (
	BucketAbordsMH    = "abords_mh"
	BucketSPR         = "spr"
	BucketSiteClasse  = "site_classe"
	BucketSiteInscrit = "site_inscrit"
	BucketSites       = "sites"
	BucketPPR         = "ppr"
	BucketPaysage     = "paysage"
	BucketAutres      = "autres"
)

// bucketPretty labels each bucket in responses.
var bucketPretty = map[string]string{
	BucketAbordsMH:    "Abords de monuments historiques (AC1)",
	BucketSPR:         "Sites patrimoniaux remarquables (AC4)",
	BucketSiteClasse:  "Sites classés (AC2)",
	BucketSiteInscrit: "Sites inscrits (AC2)",
	BucketSites:       "Sites protégés (AC2)",
	BucketPPR:         "Plans de prévention des risques",
	BucketPaysage:     "Protections paysagères",
	BucketAutres:      "Autres servitudes",
}

// ClassifySUP assigns a servitude to a bucket from its category code and
// label. In strict mode only exact code matches are bucketed; prefix and
// keyword matches land in autres.
func ClassifySUP(code, label string, strict bool) string {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	switch normalized {
	case "AC1":
		return BucketAbordsMH
	case "AC4":
		return BucketSPR
	case "AC2":
		return classifySite(label)
	}

	if strict {
		return BucketAutres
	}

	if strings.HasPrefix(normalized, "PPR") {
		return BucketPPR
	}
	lower := strings.ToLower(label)
	if strings.Contains(lower, "paysage") || strings.Contains(lower, "élément remarquable") {
		return BucketPaysage
	}
	return BucketAutres
}

// classifySite splits AC2 servitudes between classified and listed sites
// using the free-text label.
func classifySite(label string) string {
	if layers.LabelClasse(label) {
		return BucketSiteClasse
	}
	if layers.LabelInscrit(label) {
		return BucketSiteInscrit
	}
	return BucketSites
}
