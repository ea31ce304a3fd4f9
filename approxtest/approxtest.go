// Package approxtest provides testify-style assertions for tolerance
// equality of ultraviolet aggregates.
package approxtest

import (
	"fmt"

	"github.com/stretchr/testify/assert"
)

// AbsDiffEqer is implemented by every ultraviolet aggregate.
type AbsDiffEqer[T any] interface {
	AbsDiffEq(o T, epsilon float32) bool
}

// UlpsEqer is implemented by every ultraviolet aggregate.
type UlpsEqer[T any] interface {
	UlpsEq(o T, epsilon float32, maxUlps uint32) bool
}

type tHelper interface{ Helper() }

// AssertAbsDiffEq asserts that got and want are equal within epsilon.
func AssertAbsDiffEq[T AbsDiffEqer[T]](t assert.TestingT, got, want T, epsilon float32, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if got.AbsDiffEq(want, epsilon) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal within epsilon %g:\n got: %+v\nwant: %+v", epsilon, got, want), msgAndArgs...)
}

// AssertAbsDiffNe asserts that got and want differ by more than epsilon.
func AssertAbsDiffNe[T AbsDiffEqer[T]](t assert.TestingT, got, want T, epsilon float32, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !got.AbsDiffEq(want, epsilon) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Unexpectedly equal within epsilon %g: %+v", epsilon, got), msgAndArgs...)
}

// AssertUlpsEq asserts that got and want are equal within epsilon or
// maxUlps.
func AssertUlpsEq[T UlpsEqer[T]](t assert.TestingT, got, want T, epsilon float32, maxUlps uint32, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if got.UlpsEq(want, epsilon, maxUlps) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal within epsilon %g / %d ulps:\n got: %+v\nwant: %+v", epsilon, maxUlps, got, want), msgAndArgs...)
}

// AssertUlpsNe asserts that got and want are neither within epsilon nor
// within maxUlps.
func AssertUlpsNe[T UlpsEqer[T]](t assert.TestingT, got, want T, epsilon float32, maxUlps uint32, msgAndArgs ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !got.UlpsEq(want, epsilon, maxUlps) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Unexpectedly equal within epsilon %g / %d ulps: %+v", epsilon, maxUlps, got), msgAndArgs...)
}
