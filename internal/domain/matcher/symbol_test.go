package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Symbol
	}{
		{"function", "example.com/app/pkg.Run", Symbol{Package: "example.com/app/pkg", Name: "Run"}},
		{"main", "main.main", Symbol{Package: "main", Name: "main"}},
		{"pointer method", "example.com/pkg.(*Stack).Push", Symbol{Package: "example.com/pkg", Receiver: "Stack", Pointer: true, Name: "Push"}},
		{"value method", "example.com/pkg.Stack.Len", Symbol{Package: "example.com/pkg", Receiver: "Stack", Name: "Len"}},
		{"method value wrapper", "example.com/pkg.(*Stack).Push-fm", Symbol{Package: "example.com/pkg", Receiver: "Stack", Pointer: true, Name: "Push"}},
		{"generic method", "example.com/pkg.(*List[...]).Append", Symbol{Package: "example.com/pkg", Receiver: "List", Pointer: true, Name: "Append"}},
		{"generic function", "example.com/pkg.Map[...]", Symbol{Package: "example.com/pkg", Name: "Map"}},
		{"closure", "example.com/pkg.Run.func1", Symbol{Package: "example.com/pkg", Name: "Run", Closure: true}},
		{"nested closure", "example.com/pkg.(*Stack).Push.func1.2", Symbol{Package: "example.com/pkg", Receiver: "Stack", Pointer: true, Name: "Push", Closure: true}},
		{"package literal", "example.com/pkg.glob..func3", Symbol{Package: "example.com/pkg", Closure: true}},
		{"init", "example.com/pkg.init.0", Symbol{Package: "example.com/pkg", Name: "init"}},
		{"init closure", "example.com/pkg.init.0.func1", Symbol{Package: "example.com/pkg", Name: "init", Closure: true}},
		{"escaped package", "gopkg.in/yaml%2ev3.Marshal", Symbol{Package: "gopkg.in/yaml.v3", Name: "Marshal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSymbol(tt.in))
		})
	}
}

func TestSpecializationFor(t *testing.T) {
	assert.Equal(t, FunctionSpec.Kind, SpecializationFor(ParseSymbol("example.com/pkg.Run")).Kind)
	assert.Equal(t, MethodSpec.Kind, SpecializationFor(ParseSymbol("example.com/pkg.(*T).Run")).Kind)
	assert.Equal(t, LiteralSpec.Kind, SpecializationFor(ParseSymbol("example.com/pkg.Run.func2")).Kind)
}
