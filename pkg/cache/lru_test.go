// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cache_test

import (
	"github.com/tcmtemplating/linkforge/pkg/cache"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("LRU", func() {
	var c *cache.LRU[string, int]

	BeforeEach(func() {
		c = cache.New[string, int](2)
	})

	It("returns cached values", func() {
		c.Add("a", 1)
		v, ok := c.Get("a")
		Expect(ok).To(BeTrue())
		Expect(v).To(Equal(1))
		Expect(c.Len()).To(Equal(1))
		Expect(c.Capacity()).To(Equal(2))
	})

	It("reports misses", func() {
		v, ok := c.Get("missing")
		Expect(ok).To(BeFalse())
		Expect(v).To(BeZero())
	})

	It("overwrites duplicate keys", func() {
		c.Add("a", 1)
		c.Add("a", 2)
		v, _ := c.Get("a")
		Expect(v).To(Equal(2))
		Expect(c.Len()).To(Equal(1))
	})

	When("capacity is reached", func() {
		BeforeEach(func() {
			c.Add("a", 1)
			c.Add("b", 2)
		})
		It("evicts the oldest entry", func() {
			c.Add("c", 3)
			_, ok := c.Get("a")
			Expect(ok).To(BeFalse())
			Expect(c.Len()).To(Equal(2))
		})
		It("keeps recently read entries", func() {
			c.Get("a")
			c.Add("c", 3)
			_, ok := c.Get("a")
			Expect(ok).To(BeTrue())
			_, ok = c.Get("b")
			Expect(ok).To(BeFalse())
		})
	})

	It("removes and clears entries", func() {
		c.Add("a", 1)
		c.Add("b", 2)
		c.Remove("a")
		Expect(c.Len()).To(Equal(1))
		c.Clear()
		Expect(c.Len()).To(Equal(0))
		_, ok := c.Get("b")
		Expect(ok).To(BeFalse())
	})

	It("does not evict without capacity", func() {
		unbounded := cache.New[int, int](0)
		for i := 0; i < 100; i++ {
			unbounded.Add(i, i)
		}
		Expect(unbounded.Len()).To(Equal(100))
	})
})
