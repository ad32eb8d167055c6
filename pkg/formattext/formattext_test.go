// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package formattext_test

import (
	"context"
	"errors"

	"github.com/beevik/etree"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/formattext"
	"github.com/tcmtemplating/linkforge/pkg/formattext/formattextfakes"
	"github.com/tcmtemplating/linkforge/pkg/markup"
	"github.com/tcmtemplating/linkforge/pkg/publisher"
	"github.com/tcmtemplating/linkforge/pkg/publisher/publisherfakes"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/repository/repositoryfakes"
)

const (
	xhtml = `xmlns="http://www.w3.org/1999/xhtml"`
	xlink = `xmlns:xlink="http://www.w3.org/1999/xlink"`
)

var objects = map[string]*repository.Object{
	"tcm:1-2":    {ID: "tcm:1-2", Kind: repository.KindComponent, Title: "Foo", Schema: "Article"},
	"tcm:1-3":    {ID: "tcm:1-3", Kind: repository.KindMultimedia, Title: "Logo", Schema: "Image"},
	"tcm:1-4-64": {ID: "tcm:1-4-64", Kind: repository.KindPage, Title: "2. Products"},
}

var _ = Describe("Resolver", func() {
	var (
		ctx       context.Context
		repo      *repositoryfakes.FakeInterface
		pub       *publisherfakes.FakeInterface
		resolvers []formattext.SchemaResolver
		opts      formattext.Options
		in        string
		out       string
		err       error
	)
	BeforeEach(func() {
		ctx = context.Background()
		repo = &repositoryfakes.FakeInterface{}
		repo.ResolveCalls(func(ctx context.Context, id string) (*repository.Object, error) {
			if o, ok := objects[id]; ok {
				return o, nil
			}
			return nil, repository.ErrNotFound(id)
		})
		pub = &publisherfakes.FakeInterface{}
		pub.PublishReturns("/images/foo.png", nil)
		resolvers = nil
		opts = formattext.Options{}
	})
	JustBeforeEach(func() {
		r := formattext.NewResolver(repo, pub, &markup.DefaultTitlePolicy{}, resolvers...)
		out, err = r.Resolve(ctx, in, opts)
	})

	When("links and images reference repository objects", func() {
		BeforeEach(func() {
			in = `<p ` + xhtml + ` ` + xlink + `>See <a xlink:href="tcm:1-2" title="Foo">Foo</a>, ` +
				`<a xlink:href="tcm:1-4-64" xlink:title="Products" title="2. Products">us</a> and <img xlink:href="tcm:1-3" alt="logo"/></p>`
		})
		It("rewrites them in place", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<p ` + xhtml + ` ` + xlink + `>See <a xlink:href="tcm:1-2" title="Foo" href="tcm:1-2">Foo</a>, ` +
				`<a xlink:href="tcm:1-4-64" xlink:title="Products" title="Products" href="tcm:1-4-64">us</a> and ` +
				`<img xlink:href="tcm:1-3" alt="logo" src="/images/foo.png"/></p>`))
			Expect(pub.PublishCallCount()).To(Equal(1))
		})

		When("namespaces are preserved", func() {
			BeforeEach(func() {
				opts.PreservedNamespaces = []string{repository.XHTMLNamespace}
			})
			It("drops the XLink attributes and other namespaces", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal(`<p ` + xhtml + `>See <a title="Foo" href="tcm:1-2">Foo</a>, ` +
					`<a title="Products" href="tcm:1-4-64">us</a> and <img alt="logo" src="/images/foo.png"/></p>`))
			})
		})

		When("images are removed", func() {
			BeforeEach(func() {
				opts.RemoveImages = true
			})
			It("drops all images", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out).NotTo(ContainSubstring("<img"))
				Expect(out).To(ContainSubstring(`href="tcm:1-2"`))
				Expect(pub.PublishCallCount()).To(Equal(0))
			})
		})

		When("a resolver supports the schema", func() {
			var custom *formattextfakes.FakeSchemaResolver
			BeforeEach(func() {
				custom = &formattextfakes.FakeSchemaResolver{}
				custom.IsSupportedCalls(func(schema string) bool { return schema == "Article" })
				custom.ResolveCalls(func(ctx context.Context, e *etree.Element, t markup.Target, p publisher.Interface) error {
					e.CreateAttr("href", "/articles/"+markup.ObjectOf(t).Title)
					return nil
				})
				resolvers = []formattext.SchemaResolver{custom}
			})
			It("takes priority over the default resolver", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(ContainSubstring(`title="Foo" href="/articles/Foo"`))
				Expect(out).To(ContainSubstring(`href="tcm:1-4-64"`))
				Expect(custom.ResolveCallCount()).To(Equal(1))
			})
		})

		When("a resolver fails", func() {
			BeforeEach(func() {
				custom := &formattextfakes.FakeSchemaResolver{}
				custom.IsSupportedReturns(true)
				custom.ResolveReturns(errors.New("boom"))
				resolvers = []formattext.SchemaResolver{custom}
			})
			It("returns the error", func() {
				Expect(err).To(MatchError(ContainSubstring("fails: boom")))
			})
		})
	})

	When("links reference objects not found", func() {
		BeforeEach(func() {
			in = `<p ` + xhtml + ` ` + xlink + `><a xlink:href="tcm:9-9">x</a></p>`
		})
		It("leaves them untouched", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(in))
		})
	})

	When("links are plain", func() {
		BeforeEach(func() {
			in = `<p ` + xhtml + `><a href="/about">About</a> <a href="https://example.com">x</a> <a name="top">t</a></p>`
			resolvers = []formattext.SchemaResolver{&formattext.DefaultSchemaResolver{Prefix: "https://www.example.com/"}}
		})
		It("prefixes them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<p ` + xhtml + `><a href="https://www.example.com/about">About</a> <a href="https://example.com">x</a> <a name="top">t</a></p>`))
		})
	})

	When("plain links also carry an XLink href", func() {
		BeforeEach(func() {
			in = `<p ` + xhtml + ` ` + xlink + `><a xlink:href="http://ext" href="/about">About</a></p>`
			resolvers = []formattext.SchemaResolver{&formattext.DefaultSchemaResolver{Prefix: "/site"}}
		})
		It("prefixes the plain href only", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<p ` + xhtml + ` ` + xlink + `><a xlink:href="http://ext" href="/site/about">About</a></p>`))
			Expect(repo.ResolveCallCount()).To(Equal(0))
		})
	})

	When("the plain title precedes the XLink title", func() {
		BeforeEach(func() {
			in = `<p ` + xhtml + ` ` + xlink + `><a title="2. Products" xlink:title="Products" xlink:href="tcm:1-4-64">us</a></p>`
		})
		It("rewrites the plain title regardless of attribute order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<p ` + xhtml + ` ` + xlink + `><a title="Products" xlink:title="Products" xlink:href="tcm:1-4-64" href="tcm:1-4-64">us</a></p>`))
		})
	})

	When("elements are not XHTML", func() {
		BeforeEach(func() {
			in = `<a ` + xlink + ` xlink:href="tcm:1-2">x</a>`
		})
		It("ignores them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(in))
			Expect(repo.ResolveCallCount()).To(Equal(0))
		})
	})

	When("the text contains HTML entities", func() {
		BeforeEach(func() {
			in = `<p ` + xhtml + `>a&nbsp;b</p>`
		})
		It("parses them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("a\u00a0b"))
		})
	})

	When("the text is not well-formed", func() {
		BeforeEach(func() {
			in = `<p ` + xhtml + `>unclosed`
		})
		It("fails", func() {
			Expect(err).To(MatchError(ContainSubstring("parsing format text fails")))
		})
	})
})

var _ = Describe("DefaultSchemaResolver", func() {
	It("prefixes root relative links", func() {
		d := &formattext.DefaultSchemaResolver{Prefix: "/site"}
		Expect(d.PrefixLink("/a")).To(Equal("/site/a"))
		Expect(d.PrefixLink("//cdn/a")).To(Equal("//cdn/a"))
		Expect(d.PrefixLink("a")).To(Equal("a"))
		Expect((&formattext.DefaultSchemaResolver{}).PrefixLink("/a")).To(Equal("/a"))
	})
	It("supports every schema", func() {
		d := &formattext.DefaultSchemaResolver{}
		Expect(d.IsSupported(formattext.NoSchema)).To(BeTrue())
		Expect(d.IsSupported("Article")).To(BeTrue())
	})
	It("drops titles without title policy", func() {
		doc := etree.NewDocument()
		Expect(doc.ReadFromString(`<a title="x"/>`)).To(Succeed())
		target, _ := markup.NewTarget(objects["tcm:1-2"])
		Expect((&formattext.DefaultSchemaResolver{}).Resolve(context.Background(), doc.Root(), target, nil)).To(Succeed())
		Expect(doc.Root().SelectAttr("title")).To(BeNil())
		Expect(doc.Root().SelectAttrValue("href", "")).To(Equal("tcm:1-2"))
	})
})
