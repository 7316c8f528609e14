// Package advisory maps free-text farmer queries to curated answers via
// keyword scoring over a fixed, ordered rule table.
package advisory

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/aumai/kisanmitra/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

type ruleEntry struct {
	Keywords []string `yaml:"keywords"`
	Answer   string   `yaml:"answer"`
	Sources  []string `yaml:"sources"`
}

type ruleTable struct {
	Default struct {
		Answer  string   `yaml:"answer"`
		Sources []string `yaml:"sources"`
	} `yaml:"default"`
	Rules []ruleEntry `yaml:"rules"`
}

// Router answers farmer queries from the rule table. It is a pure function
// of (table, query): immutable after construction, no internal state, and
// safe for concurrent use.
type Router struct {
	rules    []domain.AdvisoryRule
	fallback domain.AdvisoryRule
}

// New parses the embedded rule table. Rule order in the asset is preserved
// exactly; it decides tie-break outcomes.
func New() (*Router, error) {
	var table ruleTable
	if err := yaml.Unmarshal(rulesYAML, &table); err != nil {
		return nil, fmt.Errorf("parsing advisory rules: %w", err)
	}
	if table.Default.Answer == "" {
		return nil, fmt.Errorf("advisory rules: default answer is required")
	}

	rules := make([]domain.AdvisoryRule, 0, len(table.Rules))
	for i, r := range table.Rules {
		if len(r.Keywords) == 0 || r.Answer == "" {
			return nil, fmt.Errorf("advisory rule %d: keywords and answer are required", i)
		}
		keywords := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			keywords[j] = strings.ToLower(kw)
		}
		rules = append(rules, domain.AdvisoryRule{
			Keywords: keywords,
			Answer:   r.Answer,
			Sources:  r.Sources,
		})
	}

	return &Router{
		rules: rules,
		fallback: domain.AdvisoryRule{
			Answer:  table.Default.Answer,
			Sources: table.Default.Sources,
		},
	}, nil
}

// Rules returns a snapshot copy of the rule table in table order.
func (r *Router) Rules() []domain.AdvisoryRule {
	out := make([]domain.AdvisoryRule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Respond returns the advisory response for a query. It never fails: a
// query matching no rule takes the default-response path.
//
// Each rule scores the count of its keywords appearing as substrings of
// the lowercased query text. The best rule is the first to reach the
// strictly highest score; a later rule with an equal score never replaces
// it. If the query carries a location, a follow-up sentence referencing it
// is appended regardless of which rule (or the default) matched.
func (r *Router) Respond(query domain.Query) domain.Response {
	text := strings.ToLower(query.Text)

	best := r.fallback
	bestScore := 0
	for _, rule := range r.rules {
		score := 0
		for _, kw := range rule.Keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = rule
		}
	}

	answer := best.Answer
	if query.Location != "" {
		answer += fmt.Sprintf(
			" For location-specific advice in %s, contact your local Block Agriculture Officer or Krishi Vigyan Kendra.",
			query.Location,
		)
	}

	language := query.Language
	if language == "" {
		language = "en"
	}

	return domain.Response{
		Answer:     answer,
		Sources:    best.Sources,
		Language:   language,
		Disclaimer: domain.Disclaimer,
	}
}
