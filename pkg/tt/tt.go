// Package tt supports table-driven tests with little boilerplate.
//
// A typical use of this package looks like this:
//
//	// Function being tested
//	func Neg(i int) int { return -i }
//
//	func TestNeg(t *testing.T) {
//		tt.Test(t, Neg,
//			// Unnamed test case
//			tt.Args(1).Rets(-1),
//			// Named test case
//			tt.It("returns 0 for 0").Args(0).Rets(0),
//		)
//	}
//
// Return values are compared with [cmp.Diff] using [CommonCmpOpt], unless the
// wanted value implements [Matcher].
package tt

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Case represents a test case. It is created by the Args or It functions, and
// offers setters that augment and return itself, so those calls can be
// chained like It(...).Args(...).Rets(...).
type Case struct {
	name         string
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// It returns a new Case with the given name.
func It(name string) *Case {
	return &Case{name: name}
}

// Args modifies the test case so that it uses the given arguments. It returns
// the receiver.
func (c *Case) Args(args ...any) *Case {
	c.args = args
	return c
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, cmp.Diff is used to determine matches.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
	retsFmt string
}

// Fn makes a new FnToTest with the given function name and body. Passing a
// plain function to Test is equivalent to passing Fn with a name derived from
// the function.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in test error messages, and
// return fn itself.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// RetsFmt sets the string for formatting return values in test error messages,
// and return fn itself.
func (fn *FnToTest) RetsFmt(s string) *FnToTest {
	fn.retsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// CommonCmpOpt is the cmp.Option used to compare return values. It compares
// unexported fields, so values of opaque types such as results and ranges can
// be compared directly.
var CommonCmpOpt = cmp.Exporter(func(reflect.Type) bool { return true })

// Test tests a function against test cases. The function may be a plain
// function or a *FnToTest.
func Test(t T, fn any, tests ...*Case) {
	t.Helper()
	f, ok := fn.(*FnToTest)
	if !ok {
		f = &FnToTest{name: funcName(fn), body: fn}
	}
	for _, test := range tests {
		rets := call(f.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if match(retsMatcher, rets) {
				continue
			}
			var args string
			if f.argsFmt == "" {
				args = sprintArgs(test.args...)
			} else {
				args = fmt.Sprintf(f.argsFmt, test.args...)
			}
			var diff string
			if f.retsFmt == "" {
				diff = cmp.Diff(retsMatcher, rets, CommonCmpOpt)
			} else {
				diff = "-" + fmt.Sprintf(f.retsFmt, retsMatcher...) + "\n" +
					"+" + fmt.Sprintf(f.retsFmt, rets...) + "\n"
			}
			if test.name == "" {
				t.Errorf("%s(%s) returns (-want +got):\n%s", f.name, args, diff)
			} else {
				t.Errorf("%s (%s(%s)) returns (-want +got):\n%s", test.name, f.name, args, diff)
			}
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// ErrorIs returns a Matcher that matches an error wrapping target, in the
// sense of errors.Is.
func ErrorIs(target error) Matcher { return errorIs{target} }

type errorIs struct{ target error }

func (m errorIs) Match(v RetValue) bool {
	err, ok := v.(error)
	return ok && errors.Is(err, m.target)
}

func match(matchers, actual []any) bool {
	if len(matchers) != len(actual) {
		return false
	}
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, CommonCmpOpt)
}

func sprintArgs(args ...any) string {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	return b.String()
}

func funcName(fn any) string {
	name := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	name = strings.TrimSuffix(strings.TrimSuffix(name, "-fm"), "[...]")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value, which cannot be used
			// as an argument. Use the zero value of the parameter type instead.
			var t reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				t = fnType.In(fnType.NumIn() - 1).Elem()
			} else {
				t = fnType.In(i)
			}
			argsReflect[i] = reflect.Zero(t)
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
