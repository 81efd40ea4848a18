package model

// Config is a decoded javasee.yml.
type Config struct {
	Rules        []RuleSpec
	Imports      []string
	Preprocessor map[string]string
	Checks       []CheckSpec
}

// RuleSpec is one entry of the rules list, before its patterns are compiled.
type RuleSpec struct {
	ID             string
	Message        string
	Patterns       []string
	Justifications []string
	Tags           []string
	Before         []string
	After          []string
}

// CheckSpec restricts the rules applied to scripts under Path. Rules entries
// select rule ids exactly or by dotted prefix.
type CheckSpec struct {
	Path  string
	Rules []string
}
