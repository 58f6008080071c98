package matcher

import (
	"go/ast"
	"sort"
	"strings"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

const ignoreDirective = "gooze:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r *ignoreRule) merge(src ignoreRule) {
	if src.all {
		r.all = true
		r.names = nil

		return
	}

	if r.all || len(src.names) == 0 {
		return
	}

	if r.names == nil {
		r.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		r.names[name] = struct{}{}
	}
}

func (r ignoreRule) export() m.IgnoreRule {
	if r.all {
		return m.IgnoreRule{All: true}
	}

	if len(r.names) == 0 {
		return m.IgnoreRule{}
	}

	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}

	sort.Strings(names)

	return m.IgnoreRule{Names: names}
}

// parseIgnoreDirective reads "//gooze:ignore" or "//gooze:ignore a, b".
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)
	if strings.HasPrefix(s, "//") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "//"))
	} else if strings.HasPrefix(s, "/*") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "/*"))
		s = strings.TrimSpace(strings.TrimSuffix(s, "*/"))
	}

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimSpace(strings.TrimPrefix(s, ignoreDirective))
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	rule := ignoreRule{names: make(map[string]struct{})}

	for _, part := range strings.Split(rest, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		return ignoreRule{all: true}, true
	}

	return rule, true
}

// ignoreRuleFor combines directives above the package clause with those in
// the doc comment of the matched declaration.
func ignoreRuleFor(file *ast.File, node ast.Node) m.IgnoreRule {
	var rule ignoreRule

	for _, group := range file.Comments {
		if group.End() >= file.Package {
			continue
		}

		mergeGroup(&rule, group)
	}

	if decl, ok := node.(*ast.FuncDecl); ok && decl.Doc != nil {
		mergeGroup(&rule, decl.Doc)
	}

	return rule.export()
}

func mergeGroup(rule *ignoreRule, group *ast.CommentGroup) {
	for _, c := range group.List {
		if r, ok := parseIgnoreDirective(c.Text); ok {
			rule.merge(r)
		}
	}
}
