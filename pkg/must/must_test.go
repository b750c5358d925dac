package must

import (
	"errors"
	"testing"

	"github.com/tenkai-lang/prelude/pkg/result"
	"github.com/tenkai-lang/prelude/pkg/testutil"
	"github.com/tenkai-lang/prelude/pkg/tt"
)

var errBad = errors.New("bad")

func TestOK(t *testing.T) {
	tt.Test(t, testutil.Recover,
		tt.Args(func() { OK(nil) }).Rets(nil),
		tt.Args(func() { OK(errBad) }).Rets(errBad),
		tt.Args(func() { OK1(1, errBad) }).Rets(errBad),
	)
}

func TestGet(t *testing.T) {
	if got := Get(result.Ok(42)); got != 42 {
		t.Errorf("Get(Ok(42)) = %v, want 42", got)
	}
	r := testutil.Recover(func() { Get(result.Err[int]("nope")) })
	if err, ok := r.(*result.Error); !ok || err.Message != "nope" {
		t.Errorf("Get(Err) panicked with %v, want *result.Error nope", r)
	}
}
