// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package mocks

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// RunTransaction can be passed to Return of a Transaction expectation to execute the callback without a database.
func RunTransaction(f func(tx *gorm.DB) error) error {
	return f(nil)
}

// Repository mocks the generic part every entity repository shares.
type Repository[T any] struct {
	mock.Mock
}

func (_m *Repository[T]) All() ([]T, error) {
	ret := _m.MethodCalled("All")

	var r0 []T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]T)
	}
	return r0, ret.Error(1)
}

func (_m *Repository[T]) Create(tx *gorm.DB, t *T) error {
	ret := _m.MethodCalled("Create", tx, t)

	if rf, ok := ret.Get(0).(func(*gorm.DB, *T) error); ok {
		return rf(tx, t)
	}
	return ret.Error(0)
}

func (_m *Repository[T]) Save(tx *gorm.DB, t *T) error {
	ret := _m.MethodCalled("Save", tx, t)

	if rf, ok := ret.Get(0).(func(*gorm.DB, *T) error); ok {
		return rf(tx, t)
	}
	return ret.Error(0)
}

func (_m *Repository[T]) Delete(tx *gorm.DB, id uuid.UUID) error {
	ret := _m.MethodCalled("Delete", tx, id)
	return ret.Error(0)
}

func (_m *Repository[T]) Read(id uuid.UUID) (T, error) {
	ret := _m.MethodCalled("Read", id)

	if rf, ok := ret.Get(0).(func(uuid.UUID) (T, error)); ok {
		return rf(id)
	}
	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}
	return r0, ret.Error(1)
}

func (_m *Repository[T]) ReadWithRelations(id uuid.UUID, relations []string) (T, error) {
	ret := _m.MethodCalled("ReadWithRelations", id, relations)

	var r0 T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(T)
	}
	return r0, ret.Error(1)
}

func (_m *Repository[T]) List(ids []uuid.UUID) ([]T, error) {
	ret := _m.MethodCalled("List", ids)

	var r0 []T
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]T)
	}
	return r0, ret.Error(1)
}

func (_m *Repository[T]) Transaction(f func(tx *gorm.DB) error) error {
	ret := _m.MethodCalled("Transaction", f)

	if rf, ok := ret.Get(0).(func(func(*gorm.DB) error) error); ok {
		return rf(f)
	}
	return ret.Error(0)
}

func (_m *Repository[T]) GetDB(tx *gorm.DB) *gorm.DB {
	ret := _m.MethodCalled("GetDB", tx)

	var r0 *gorm.DB
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*gorm.DB)
	}
	return r0
}

func register(m *mock.Mock, t testingT) {
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
}
