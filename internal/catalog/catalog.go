// Package catalog holds the fixed pest/disease catalogue and its
// symptom-based identification logic. The catalogue is a read-only data
// asset; there is no runtime mutation API.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"github.com/aumai/kisanmitra/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed pests.yaml
var pestsYAML []byte

// pestEntry is the YAML shape of a catalogue record.
type pestEntry struct {
	Name          string   `yaml:"name"`
	AffectedCrops []string `yaml:"affected_crops"`
	Symptoms      []string `yaml:"symptoms"`
	Treatment     []string `yaml:"treatment"`
	Prevention    []string `yaml:"prevention"`
}

// PestCatalog is the load-time-populated collection of pest records.
// It is read-only after construction and safe for concurrent use.
type PestCatalog struct {
	pests []domain.PestRecord
}

// New parses the embedded catalogue asset. Entry order in the asset is
// preserved; it is the tie-break for equal identification scores.
func New() (*PestCatalog, error) {
	var entries []pestEntry
	if err := yaml.Unmarshal(pestsYAML, &entries); err != nil {
		return nil, fmt.Errorf("parsing pest catalogue: %w", err)
	}

	pests := make([]domain.PestRecord, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("pest catalogue entry %d: name is required", i)
		}
		if len(e.AffectedCrops) == 0 || len(e.Treatment) == 0 || len(e.Prevention) == 0 {
			return nil, fmt.Errorf("pest catalogue entry %q: crops, treatment, and prevention must be non-empty", e.Name)
		}
		pests = append(pests, domain.PestRecord{
			Name:          e.Name,
			AffectedCrops: e.AffectedCrops,
			Symptoms:      e.Symptoms,
			Treatment:     e.Treatment,
			Prevention:    e.Prevention,
		})
	}
	return &PestCatalog{pests: pests}, nil
}

// All returns a snapshot copy of every record in catalogue order.
func (c *PestCatalog) All() []domain.PestRecord {
	out := make([]domain.PestRecord, len(c.pests))
	copy(out, c.pests)
	return out
}

// ByCrop returns the records affecting the given crop, matched
// case-insensitively against each record's crop list, in catalogue order.
// Unknown crops yield an empty slice.
func (c *PestCatalog) ByCrop(crop string) []domain.PestRecord {
	matches := []domain.PestRecord{}
	for _, p := range c.pests {
		if p.AffectsCrop(crop) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Identify ranks catalogue records against the observed symptoms.
//
// Each record scores the number of distinct observed symptoms contained as
// a lowercase substring in any of its catalogued symptoms — observing
// "yellowing" matches the catalogued "yellowing from leaf margins".
// Records scoring zero are dropped; survivors come back score-descending
// with catalogue order breaking ties. Ranking position conveys relative
// confidence; scores themselves are not exposed.
//
// Empty or unrecognised input yields an empty slice, never an error.
func (c *PestCatalog) Identify(symptoms []string) []domain.PestRecord {
	observed := dedupeLower(symptoms)
	if len(observed) == 0 {
		return []domain.PestRecord{}
	}

	type scored struct {
		record domain.PestRecord
		score  int
	}
	var candidates []scored
	for _, p := range c.pests {
		catalogued := make([]string, len(p.Symptoms))
		for i, s := range p.Symptoms {
			catalogued[i] = strings.ToLower(s)
		}
		score := 0
		for _, obs := range observed {
			for _, cs := range catalogued {
				if strings.Contains(cs, obs) {
					score++
					break
				}
			}
		}
		if score > 0 {
			candidates = append(candidates, scored{record: p, score: score})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	ranked := make([]domain.PestRecord, len(candidates))
	for i, cand := range candidates {
		ranked[i] = cand.record
	}
	return ranked
}

// SymptomVocabulary returns every distinct catalogued symptom, lowercased,
// in first-seen catalogue order. Used by the interactive symptom picker.
func (c *PestCatalog) SymptomVocabulary() []string {
	seen := make(map[string]bool)
	var vocab []string
	for _, p := range c.pests {
		for _, s := range p.Symptoms {
			lower := strings.ToLower(s)
			if !seen[lower] {
				seen[lower] = true
				vocab = append(vocab, lower)
			}
		}
	}
	return vocab
}

// dedupeLower lowercases the inputs and drops duplicates and blanks,
// preserving first-seen order. Duplicate observations must not inflate
// a record's score.
func dedupeLower(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		lower := strings.ToLower(strings.TrimSpace(v))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, lower)
	}
	return out
}
