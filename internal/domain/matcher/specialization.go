package matcher

import (
	"go/ast"
	"go/token"

	m "github.com/mouse-blink/gooze-matcher/internal/model"
)

// Query is what a specialization matches nodes against.
type Query struct {
	Symbol Symbol
	// Line is the target's source line as the runtime reports it, usually
	// the first statement of the body; zero matches any line.
	Line int

	fset *token.FileSet
}

// Spans reports whether the query's line falls within node, from its first
// token to its last.
func (q Query) Spans(node ast.Node) bool {
	if q.Line <= 0 {
		return true
	}

	return q.fset.Position(node.Pos()).Line <= q.Line && q.Line <= q.fset.Position(node.End()).Line
}

// Specialization supplies the node predicate and the subject kind for one
// flavour of target.
type Specialization struct {
	Kind  m.SubjectKind
	Match func(node ast.Node, q Query) bool
}

var (
	// FunctionSpec matches package-level function declarations.
	FunctionSpec = Specialization{Kind: m.SubjectFunction, Match: matchFunction}
	// MethodSpec matches method declarations on the symbol's receiver type.
	MethodSpec = Specialization{Kind: m.SubjectMethod, Match: matchMethod}
	// LiteralSpec matches function literals enclosing the target line.
	LiteralSpec = Specialization{Kind: m.SubjectLiteral, Match: matchLiteral}
)

// SpecializationFor picks the specialization for a parsed symbol.
func SpecializationFor(sym Symbol) Specialization {
	switch {
	case sym.Closure:
		return LiteralSpec
	case sym.Receiver != "":
		return MethodSpec
	default:
		return FunctionSpec
	}
}

func matchFunction(node ast.Node, q Query) bool {
	decl, ok := node.(*ast.FuncDecl)
	if !ok || decl.Recv != nil {
		return false
	}

	return decl.Name.Name == q.Symbol.Name && q.Spans(decl)
}

func matchMethod(node ast.Node, q Query) bool {
	decl, ok := node.(*ast.FuncDecl)
	if !ok || decl.Recv == nil || len(decl.Recv.List) == 0 {
		return false
	}

	return decl.Name.Name == q.Symbol.Name &&
		receiverName(decl.Recv.List[0].Type) == q.Symbol.Receiver &&
		q.Spans(decl)
}

func matchLiteral(node ast.Node, q Query) bool {
	lit, ok := node.(*ast.FuncLit)
	return ok && q.Spans(lit)
}

func receiverName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return receiverName(t.X)
	case *ast.ParenExpr:
		return receiverName(t.X)
	case *ast.IndexExpr:
		return receiverName(t.X)
	case *ast.IndexListExpr:
		return receiverName(t.X)
	default:
		return ""
	}
}
