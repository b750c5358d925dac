package tt

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// testT implements the T interface and is used to verify the Test function's
// interaction with T.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// Simple functions to test.

func add(x, y int) int {
	return x + y
}

func addsub(x int, y int) (int, int) {
	return x + y, x - y
}

var errSentinel = errors.New("sentinel")

func wrapped() error {
	return fmt.Errorf("context: %w", errSentinel)
}

func TestTTPass(t *testing.T) {
	var testT testT
	Test(&testT, addsub,
		Args(1, 10).Rets(11, -9),
		It("subtracts").Args(5, 5).Rets(10, 0),
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %v", testT)
	}
}

func TestTTFailDefaultFmtOneReturn(t *testing.T) {
	var testT testT
	Test(&testT, Fn("add", add), Args(1, 10).Rets(12))
	assertOneError(t, testT, "add(1, 10) returns (-want +got):\n")
}

func TestTTFailDerivedName(t *testing.T) {
	var testT testT
	Test(&testT, addsub, Args(1, 10).Rets(11, -90))
	assertOneError(t, testT, "addsub(1, 10) returns (-want +got):\n")
}

func TestTTFailNamedCase(t *testing.T) {
	var testT testT
	Test(&testT, add, It("adds").Args(1, 2).Rets(4))
	assertOneError(t, testT, "adds (add(1, 2)) returns (-want +got):\n")
}

func TestTTFailCustomFmt(t *testing.T) {
	var testT testT
	Test(&testT,
		Fn("addsub", addsub).ArgsFmt("x = %d, y = %d").RetsFmt("(a = %d, b = %d)"),
		Args(1, 10).Rets(11, -90))
	assertOneError(t, testT,
		"addsub(x = 1, y = 10) returns (-want +got):\n"+
			"-(a = 11, b = -90)\n+(a = 11, b = -9)\n")
}

func TestTTMatchers(t *testing.T) {
	var testT testT
	Test(&testT, wrapped,
		Args().Rets(ErrorIs(errSentinel)),
		Args().Rets(Any),
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %v", testT)
	}
	Test(&testT, wrapped, Args().Rets(ErrorIs(errors.New("other"))))
	if len(testT) != 1 {
		t.Errorf("got %d errors, want 1", len(testT))
	}
}

func TestTTNilArgument(t *testing.T) {
	var testT testT
	Test(&testT, func(err error) bool { return err == nil }, Args(nil).Rets(true))
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass: %v", testT)
	}
}

func assertOneError(t *testing.T, testT testT, want string) {
	t.Helper()
	switch len(testT) {
	case 0:
		t.Errorf("Test didn't error when it should")
	case 1:
		if !strings.HasPrefix(testT[0], want) {
			t.Errorf("Test wrote message %q, want prefix %q", testT[0], want)
		}
	default:
		t.Errorf("Test wrote too many error messages")
	}
}
