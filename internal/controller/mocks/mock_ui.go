// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"fenum.dev/pkg/fenum/internal/controller"
	m "fenum.dev/pkg/fenum/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// DisplayListings provides a mock function.
func (_m *MockUI) DisplayListings(ctx context.Context, listings []m.Listing, options ...controller.ListingOption) error {
	ret := _m.Called(ctx, listings, options)

	return ret.Error(0)
}

// DisplayVisit provides a mock function.
func (_m *MockUI) DisplayVisit(ctx context.Context, entry m.Entry) {
	_m.Called(ctx, entry)
}

// DisplayIndexedNames provides a mock function.
func (_m *MockUI) DisplayIndexedNames(ctx context.Context, names []string) error {
	ret := _m.Called(ctx, names)

	return ret.Error(0)
}

// DisplayNumbers provides a mock function.
func (_m *MockUI) DisplayNumbers(ctx context.Context, banners []string, series []float64, literals []m.Literal) error {
	ret := _m.Called(ctx, banners, series, literals)

	return ret.Error(0)
}
