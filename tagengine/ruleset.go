package tagengine

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/commanderforge/commanderforge/corpus"
)

//go:embed defaultrules.yaml
var defaultRulesYAML []byte

// ExtraRule is a YAML-declared supplemental rule: a plain text-contains
// mask with no exclusion layer, for operator-tunable additions that don't
// warrant a new compiled rule family.
type ExtraRule struct {
	Name          string   `yaml:"name"`
	TextContains  []string `yaml:"textContains,omitempty"`
	TypeContains  []string `yaml:"typeContains,omitempty"`
	KeywordEquals []string `yaml:"keywordEquals,omitempty"`
	Tags          []string `yaml:"tags"`
}

// RuleSet is the top-level shape of a rules YAML file.
type RuleSet struct {
	Rules []ExtraRule `yaml:"rules"`
}

// DefaultRuleSet returns the rule set embedded in the binary.
func DefaultRuleSet() (*RuleSet, error) {
	var rs RuleSet
	if err := yaml.Unmarshal(defaultRulesYAML, &rs); err != nil {
		return nil, fmt.Errorf("tagengine: parse embedded default rule set: %w", err)
	}
	return &rs, nil
}

// LoadRuleSet reads a rule set from a YAML file on disk.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tagengine: load rule set %s: %w", path, err)
	}
	var rs RuleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("tagengine: parse rule set %s: %w", path, err)
	}
	return &rs, nil
}

// predicate builds the compiled Predicate for an ExtraRule.
func (r ExtraRule) predicate() Predicate {
	var preds []Predicate
	if len(r.TextContains) > 0 {
		pats := make([]Pattern, len(r.TextContains))
		for i, s := range r.TextContains {
			pats[i] = Lit(s)
		}
		preds = append(preds, TextMask(pats...))
	}
	if len(r.TypeContains) > 0 {
		pats := make([]Pattern, len(r.TypeContains))
		for i, s := range r.TypeContains {
			pats[i] = Lit(s)
		}
		preds = append(preds, TypeMask(pats...))
	}
	if len(r.KeywordEquals) > 0 {
		preds = append(preds, KeywordMask(r.KeywordEquals...))
	}
	return Or(preds...)
}

// Apply runs every extra rule in the set against table, in declaration
// order. Extra rules carry no exclusion layer; they're additive
// annotations on top of the fixed built-in phases.
func (rs *RuleSet) Apply(table *corpus.Table) {
	if rs == nil {
		return
	}
	for _, r := range rs.Rules {
		ApplyTags(table, r.predicate(), r.Tags...)
	}
}

// RunWithRuleSet runs the fixed built-in phases, then the supplemental
// rule set, then re-sorts so the extra tags land in the same finalized
// order as built-in ones.
func RunWithRuleSet(table *corpus.Table, rs *RuleSet) {
	Run(table)
	rs.Apply(table)
	applySortFinalization(table)
}
