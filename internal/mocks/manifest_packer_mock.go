// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/pickship/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockManifestPacker struct {
	mock.Mock
}

func NewMockManifestPacker(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManifestPacker {
	m := &MockManifestPacker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockManifestPacker) Pack(order model.Order, inv model.Inventory, capacity float64) (model.Manifest, error) {
	args := m.Called(order, inv, capacity)
	return args.Get(0).(model.Manifest), args.Error(1)
}

func (m *MockManifestPacker) PackDefault(order model.Order, inv model.Inventory) (model.Manifest, error) {
	args := m.Called(order, inv)
	return args.Get(0).(model.Manifest), args.Error(1)
}

func (m *MockManifestPacker) Capacity() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockManifestPacker) InvalidateCache() {
	m.Called()
}
