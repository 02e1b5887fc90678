// Package models provides the data structures shared by the classifier, its
// rule store and its transports.
package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CategoryRule is one entry of the rule table as read from YAML.
type CategoryRule struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// RulesConfig is the top-level structure of a rules YAML file.
type RulesConfig struct {
	Categories []CategoryRule `yaml:"categories"`
}

// RuleTable is the ordered, immutable category → keywords table. Categories
// are tried in declaration order and keywords in listed order.
//
// The zero value is an empty table. A RuleTable is safe for concurrent reads;
// accessors hand out copies so callers cannot mutate it.
type RuleTable struct {
	rules []CategoryRule
}

// NewRuleTable validates rules and builds a RuleTable from them.
//
// Names and keywords are NFC-composed and trimmed; keywords are also
// lower-cased and blank ones dropped. An empty category name, a duplicate
// category name or a category left without keywords is an error.
func NewRuleTable(rules []CategoryRule) (RuleTable, error) {
	seen := make(map[string]bool, len(rules))
	out := make([]CategoryRule, 0, len(rules))

	for i, rule := range rules {
		name := strings.TrimSpace(norm.NFC.String(rule.Name))
		if name == "" {
			return RuleTable{}, fmt.Errorf("rule %d: category name is empty", i)
		}
		if seen[name] {
			return RuleTable{}, fmt.Errorf("rule %d: duplicate category %q", i, name)
		}
		seen[name] = true

		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(norm.NFC.String(kw)))
			if kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) == 0 {
			return RuleTable{}, fmt.Errorf("category %q has no keywords", name)
		}

		out = append(out, CategoryRule{Name: name, Keywords: keywords})
	}

	return RuleTable{rules: out}, nil
}

// MustRuleTable is NewRuleTable for tables known to be valid at compile time.
func MustRuleTable(rules []CategoryRule) RuleTable {
	table, err := NewRuleTable(rules)
	if err != nil {
		panic(err)
	}
	return table
}

// Len returns the number of categories.
func (t RuleTable) Len() int {
	return len(t.rules)
}

// Rules returns a deep copy of the table in declaration order.
func (t RuleTable) Rules() []CategoryRule {
	out := make([]CategoryRule, len(t.rules))
	for i, rule := range t.rules {
		out[i] = CategoryRule{
			Name:     rule.Name,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return out
}

// Categories returns the category names in declaration order.
func (t RuleTable) Categories() []string {
	names := make([]string, len(t.rules))
	for i, rule := range t.rules {
		names[i] = rule.Name
	}
	return names
}

// DefaultRules returns the built-in rule table entries.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Name: CategoryTransport, Keywords: []string{"uber", "99", "rappi", "lime", "cittamobi", "posto", "gasolina", "estacionamento"}},
		{Name: CategoryFood, Keywords: []string{"ifood", "rappi", "mcdonalds", "bk", "burger king", "restaurante", "padaria", "supermercado", "mercearia"}},
		{Name: CategoryShopping, Keywords: []string{"amazon", "mercado livre", "shopee", "shein", "cea", "renner", "magazine luiza", "americanas"}},
		{Name: CategoryHealth, Keywords: []string{"farmacia", "drogaria", "unimed", "bradesco saude", "plano de saude", "medico"}},
		{Name: CategoryHousing, Keywords: []string{"aluguel", "condominio", "enel", "sabesp", "internet", "iptu"}},
		{Name: CategoryLeisure, Keywords: []string{"spotify", "netflix", "hbo", "disney+", "cinema", "show", "ingresso", "bar", "evento"}},
		{Name: CategoryEducation, Keywords: []string{"udemy", "curso", "faculdade", "escola"}},
		{Name: CategoryPix, Keywords: []string{"pix"}},
	}
}

// DefaultRuleTable returns the built-in rule table.
func DefaultRuleTable() RuleTable {
	return MustRuleTable(DefaultRules())
}
