package doptions_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavisLCVB/doptions"
)

// matchErrorMessage returns nil if the error message matches, else an error.
func matchErrorMessage(err error, expected string) error {
	if err == nil {
		return fmt.Errorf(`expected error message missing: "%s"`, expected)
	} else if err.Error() != expected {
		return fmt.Errorf(`unexpected error message: "%s", expected: "%s"`, err.Error(), expected)
	}
	return nil
}

// matchResult returns nil if error is nil and test returns nil, else an error.
func matchResult(err error, test func() error) error {
	if err != nil {
		return fmt.Errorf(`unexpected error: "%s"`, err.Error())
	}
	if e := test(); e != nil {
		return e
	}
	return nil
}

// mustOption adds an option or fails the test.
func mustOption(t *testing.T, adder interface {
	AddOption(string, any) (*doptions.Option, error)
}, spec string, target any) *doptions.Option {
	t.Helper()
	o, err := adder.AddOption(spec, target)
	require.NoError(t, err)
	return o
}
