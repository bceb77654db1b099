package layers

import "regexp"

// The protection registries distinguish "site classé" from "site inscrit"
// only through free-text labels. \b in Go regexps is ASCII-only and would
// treat accented letters as boundaries, so the word edges are spelled out.
var (
	classeRe  = regexp.MustCompile(`(?i)(^|[^a-zà-ÿ])class[ée]e?s?($|[^a-zà-ÿ])`)
	inscritRe = regexp.MustCompile(`(?i)(^|[^a-zà-ÿ])inscrite?s?($|[^a-zà-ÿ])`)
)

// LabelClasse reports whether a protection label carries the adjective
// "classé" (any gender or number) as its own word.
func LabelClasse(label string) bool {
	return classeRe.MatchString(label)
}

// LabelInscrit reports whether a protection label carries the adjective
// "inscrit" (any gender or number) as its own word.
func LabelInscrit(label string) bool {
	return inscritRe.MatchString(label)
}
