// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/repository/repositoryfakes"
)

var _ = Describe("Registry", func() {
	var (
		first, second *repositoryfakes.FakeInterface
		registry      *repository.Registry
	)
	BeforeEach(func() {
		first = &repositoryfakes.FakeInterface{}
		first.NameReturns("first")
		first.AcceptCalls(func(id string) bool { return strings.HasPrefix(id, "tcm:1-") })
		first.ResolveReturns(&repository.Object{ID: "tcm:1-2", Title: "first"}, nil)
		second = &repositoryfakes.FakeInterface{}
		second.NameReturns("second")
		second.AcceptReturns(true)
		second.ResolveReturns(&repository.Object{ID: "tcm:2-2", Title: "second"}, nil)
		registry = repository.NewRegistry(first, second)
	})

	It("routes to the first accepting repository", func() {
		object, err := registry.Resolve(context.Background(), "tcm:1-2")
		Expect(err).NotTo(HaveOccurred())
		Expect(object.Title).To(Equal("first"))
		Expect(first.ResolveCallCount()).To(Equal(1))
		Expect(second.ResolveCallCount()).To(Equal(0))

		object, err = registry.Resolve(context.Background(), "tcm:2-2")
		Expect(err).NotTo(HaveOccurred())
		Expect(object.Title).To(Equal("second"))
		_, id := second.ResolveArgsForCall(0)
		Expect(id).To(Equal("tcm:2-2"))
	})

	It("reports identifiers nobody accepts as not found", func() {
		registry = repository.NewRegistry(first)
		Expect(registry.Accept("tcm:3-2")).To(BeFalse())
		_, err := registry.Resolve(context.Background(), "tcm:3-2")
		Expect(repository.IsNotFound(err)).To(BeTrue())
	})

	It("adds repositories after the registered ones", func() {
		registry = repository.NewRegistry()
		Expect(registry.Accept("tcm:2-2")).To(BeFalse())
		registry.Add(second)
		Expect(registry.Accept("tcm:2-2")).To(BeTrue())
		repo, ok := registry.Get("tcm:2-2")
		Expect(ok).To(BeTrue())
		Expect(repo).To(Equal(second))
	})

	It("lists the repository names", func() {
		Expect(registry.Name()).To(Equal("registry [first, second]"))
	})
})
