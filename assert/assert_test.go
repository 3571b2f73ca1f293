package assert

import (
	"errors"
	"testing"

	"github.com/oomph-ac/pinball/oerror"
)

func TestIsTrue(t *testing.T) {
	IsTrue(true, "never raised")

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %v", r)
		}
		var pErr *oerror.PinballError
		if !errors.As(err, &pErr) {
			t.Fatalf("expected *oerror.PinballError, got %T", err)
		}
		if pErr.Error() != "buffer 3 released twice" {
			t.Fatalf("unexpected message %q", pErr.Error())
		}
	}()
	IsTrue(false, "buffer %d released twice", 3)
}
