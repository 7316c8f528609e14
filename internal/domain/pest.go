package domain

import "strings"

// PestRecord describes an agricultural pest or disease in the catalogue.
// Records are constructed once when the catalogue loads and are read-only
// for the life of the process.
type PestRecord struct {
	Name          string
	AffectedCrops []string
	Symptoms      []string // matching keys for identification
	Treatment     []string
	Prevention    []string
}

// AffectsCrop reports whether the record lists the given crop,
// compared case-insensitively.
func (r *PestRecord) AffectsCrop(crop string) bool {
	for _, c := range r.AffectedCrops {
		if strings.EqualFold(c, crop) {
			return true
		}
	}
	return false
}
