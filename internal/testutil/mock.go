// Package testutil provides shared testing utilities for mock handling.
package testutil

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// HandleTwoValueReturn extracts a typed result and error from mock
// arguments for methods returning (T, error).
func HandleTwoValueReturn[T any](args mock.Arguments) (T, error) {
	var zero T

	if len(args) != 2 {
		return zero, fmt.Errorf("mock not properly configured: expected 2 return values, got %d", len(args)) //nolint:err113 // test-only error
	}

	if args.Get(0) == nil {
		return zero, args.Error(1)
	}

	result, ok := args.Get(0).(T)
	if !ok {
		return zero, fmt.Errorf("mock result is not of expected type %T", zero) //nolint:err113 // test-only error
	}

	return result, args.Error(1)
}
