package render

import "strings"

// Category is a documentation grouping for workflows.
type Category struct {
	Label string
	Icon  string
}

// String returns the icon followed by the label.
func (c Category) String() string {
	if c.Icon == "" {
		return c.Label
	}
	return c.Icon + " " + c.Label
}

// Miscellaneous is the category assigned when no rule matches.
var Miscellaneous = Category{Label: "Miscellaneous", Icon: "📦"}

// Rule maps file-name prefixes and display-name keywords to a category.
type Rule struct {
	Category Category
	// Prefixes are matched against the start of the file name.
	Prefixes []string
	// Keywords are matched as substrings of the lower-cased display name.
	Keywords []string
}

// DefaultRules returns the built-in classification rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: Category{Label: "CI / Build", Icon: "🔨"},
			Prefixes: []string{"ci-", "build-"},
			Keywords: []string{"build", "compile", "ci"},
		},
		{
			Category: Category{Label: "Testing", Icon: "🧪"},
			Prefixes: []string{"test-", "e2e-"},
			Keywords: []string{"test", "coverage", "e2e"},
		},
		{
			Category: Category{Label: "Code Quality", Icon: "✨"},
			Prefixes: []string{"lint-", "format-"},
			Keywords: []string{"lint", "format", "style", "quality"},
		},
		{
			Category: Category{Label: "Security", Icon: "🔒"},
			Prefixes: []string{"security-", "codeql", "scan-"},
			Keywords: []string{"security", "codeql", "vulnerab", "scan", "audit"},
		},
		{
			Category: Category{Label: "Release", Icon: "🚀"},
			Prefixes: []string{"release-", "publish-"},
			Keywords: []string{"release", "publish", "version", "tag"},
		},
		{
			Category: Category{Label: "Deployment", Icon: "🌐"},
			Prefixes: []string{"deploy-", "cd-"},
			Keywords: []string{"deploy", "rollout", "environment"},
		},
		{
			Category: Category{Label: "Documentation", Icon: "📚"},
			Prefixes: []string{"docs-"},
			Keywords: []string{"doc", "readme", "pages"},
		},
		{
			Category: Category{Label: "Maintenance", Icon: "🧹"},
			Prefixes: []string{"maintenance-", "cleanup-", "stale"},
			Keywords: []string{"stale", "cleanup", "label", "dependabot", "sync"},
		},
	}
}

// Classifier assigns exactly one category to a workflow. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	rules    []Rule
	fallback Category
}

// NewClassifier creates a Classifier that consults rules in order and
// returns fallback when none match.
func NewClassifier(rules []Rule, fallback Category) *Classifier {
	return &Classifier{
		rules:    append([]Rule(nil), rules...),
		fallback: fallback,
	}
}

// DefaultClassifier returns a Classifier using DefaultRules and Miscellaneous.
func DefaultClassifier() *Classifier {
	return NewClassifier(DefaultRules(), Miscellaneous)
}

// Classify returns the category for a workflow. All prefix rules are tried
// against fileName before any keyword is tried against displayName.
func (c *Classifier) Classify(fileName, displayName string) Category {
	for _, rule := range c.rules {
		for _, prefix := range rule.Prefixes {
			if strings.HasPrefix(fileName, prefix) {
				return rule.Category
			}
		}
	}

	name := strings.ToLower(displayName)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(name, keyword) {
				return rule.Category
			}
		}
	}

	return c.fallback
}
