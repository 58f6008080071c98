package matcher

import (
	"regexp"
	"strings"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

var closureSegment = regexp.MustCompile(`^func\d+$`)

// Symbol is a runtime function name split into its parts, e.g.
// "example.com/pkg.(*Stack).Push" or "example.com/pkg.Run.func1".
type Symbol struct {
	Package  string
	Receiver string
	Pointer  bool
	// Name is the declared function or method name. For closures it names the
	// enclosing declaration and is empty for package-level literals.
	Name    string
	Closure bool
}

// Scope returns the lexical scope the symbol belongs to.
func (s Symbol) Scope() m.Scope {
	return m.Scope{Package: s.Package, Receiver: s.Receiver}
}

// ParseSymbol splits a name as reported by runtime.Func.Name.
func ParseSymbol(full string) Symbol {
	full = strings.TrimSuffix(stripTypeArgs(full), "-fm")
	pkg, rest := splitPackage(full)
	sym := Symbol{Package: pkg}

	if strings.HasPrefix(rest, "(") {
		if end := strings.Index(rest, ")"); end > 0 {
			recv := rest[1:end]
			sym.Pointer = strings.HasPrefix(recv, "*")
			sym.Receiver = strings.TrimPrefix(recv, "*")
			rest = strings.TrimPrefix(rest[end+1:], ".")
		}
	}

	parts := strings.Split(rest, ".")
	for i, part := range parts {
		if closureSegment.MatchString(part) {
			sym.Closure = true
			parts = parts[:i]

			break
		}
	}

	// package-level literals live under "glob."
	if len(parts) > 0 && parts[0] == "glob" && sym.Closure {
		return sym
	}

	if sym.Receiver == "" && len(parts) >= 2 && !isNumeric(parts[1]) {
		sym.Receiver = parts[0]
		parts = parts[1:]
	}

	if len(parts) > 0 {
		sym.Name = parts[0]
	}

	return sym
}

func splitPackage(full string) (string, string) {
	slash := strings.LastIndex(full, "/")

	dot := strings.Index(full[slash+1:], ".")
	if dot < 0 {
		return "", full
	}

	dot += slash + 1

	return strings.ReplaceAll(full[:dot], "%2e", "."), full[dot+1:]
}

func stripTypeArgs(name string) string {
	var b strings.Builder

	depth := 0

	for _, r := range name {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
