// Package mocks provides test doubles for the crawl service client.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	model "github.com/sells-group/zorah/internal/model"
)

// MockClient is a mock type for the Client interface.
type MockClient struct {
	mock.Mock
}

// Crawl provides a mock function with given fields: ctx, req
func (_m *MockClient) Crawl(ctx context.Context, req model.CrawlRequest) ([]model.CrawlResultItem, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Crawl")
	}

	var r0 []model.CrawlResultItem
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, model.CrawlRequest) ([]model.CrawlResultItem, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, model.CrawlRequest) []model.CrawlResultItem); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]model.CrawlResultItem)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, model.CrawlRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockClient creates a new instance of MockClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
