// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/markup"
	"github.com/tcmtemplating/linkforge/pkg/publisher/publisherfakes"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/repository/repositoryfakes"
)

var objects = map[string]*repository.Object{
	"tcm:1-2":    {ID: "tcm:1-2", Kind: repository.KindComponent, Title: "Foo"},
	"tcm:1-3":    {ID: "tcm:1-3", Kind: repository.KindMultimedia, Title: "Logo", Binary: repository.NewBinary("foo.png", "image/png", nil)},
	"tcm:1-4":    {ID: "tcm:1-4", Kind: repository.KindPage, Title: "2. Products"},
	"tcm:1-5":    {ID: "tcm:1-5", Kind: repository.KindComponent, Title: "Bar"},
	"tcm:1-6-64": {ID: "tcm:1-6-64", Kind: repository.KindPage, Title: "010 Home"},
}

func fakeRepository() *repositoryfakes.FakeInterface {
	repo := &repositoryfakes.FakeInterface{}
	repo.NameReturns("fake")
	repo.ResolveCalls(func(ctx context.Context, id string) (*repository.Object, error) {
		if o, ok := objects[id]; ok {
			return o, nil
		}
		return nil, repository.ErrNotFound(id)
	})
	return repo
}

var _ = Describe("LinkResolver", func() {
	var (
		ctx       context.Context
		repo      *repositoryfakes.FakeInterface
		publisher *publisherfakes.FakeInterface
		resolver  *markup.LinkResolver
	)
	BeforeEach(func() {
		ctx = context.Background()
		repo = fakeRepository()
		publisher = &publisherfakes.FakeInterface{}
		publisher.PublishReturns("/images/foo.png", nil)
		resolver = &markup.LinkResolver{
			Repository:  repo,
			Publisher:   publisher,
			TitlePolicy: &markup.DefaultTitlePolicy{},
		}
	})

	DescribeTable("Resolve",
		func(in, want string) {
			got, err := resolver.Resolve(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("component link",
			`<a href="tcm:1-2">Click</a>`,
			`<ComponentLink runat="server" ItemUri="tcm:1-2">Click</ComponentLink>`),
		Entry("image",
			`<img src="tcm:1-3" />`,
			`<Image runat="server" ImageUrl="/images/foo.png" />`),
		Entry("numbered link title",
			`<a href="tcm:1-4" title="2. Products">Products</a>`,
			`<PageLink runat="server" tooltip="Products" ItemUri="tcm:1-4">Products</PageLink>`),
		Entry("unresolvable identifier",
			`<p><a href="tcm:9-9" title="1. x">Gone</a></p>`,
			`<p><a href="tcm:9-9" title="1. x">Gone</a></p>`),
		Entry("two links in one document",
			"<p>Go to <a href=\"tcm:1-2\">Foo</a> or\n<a href='tcm:1-5' class=\"more\">Bar</a>!</p>",
			"<p>Go to <ComponentLink runat=\"server\" ItemUri=\"tcm:1-2\">Foo</ComponentLink> or\n<ComponentLink runat=\"server\" class=\"more\" ItemUri=\"tcm:1-5\">Bar</ComponentLink>!</p>"),
		Entry("binary link",
			`<a href="tcm:1-3">Download</a>`,
			`<BinaryLink runat="server" ItemUri="tcm:1-3">Download</BinaryLink>`),
		Entry("denied attributes",
			`<a xmlns:tridion="http://www.tridion.com/ContentManager/5.0" tridion:href="tcm:1-2" tridion:type="Component" tridion:targetattribute="href" target="_blank">x</a>`,
			`<ComponentLink runat="server" target="_blank" ItemUri="tcm:1-2">x</ComponentLink>`),
		Entry("upper case tags",
			`<A HREF="tcm:1-2">x</A>`,
			`<ComponentLink runat="server" ItemUri="tcm:1-2">x</ComponentLink>`),
		Entry("quoted greater than",
			`<a title="a > b" href="tcm:1-2">x</a>`,
			`<ComponentLink runat="server" tooltip="a > b" ItemUri="tcm:1-2">x</ComponentLink>`),
		Entry("title equal to the navigable target title",
			`<a href="tcm:1-6-64" title="010 Home">Home</a>`,
			`<PageLink runat="server" tooltip="Home" ItemUri="tcm:1-6-64">Home</PageLink>`),
		Entry("empty title",
			`<a href="tcm:1-4" title="1. ">x</a>`,
			`<PageLink runat="server" ItemUri="tcm:1-4">x</PageLink>`),
		Entry("nested links",
			`<a href="tcm:1-4"><img src="tcm:1-3"/> Products</a>`,
			`<PageLink runat="server" ItemUri="tcm:1-4"><Image runat="server" ImageUrl="/images/foo.png" /> Products</PageLink>`),
		Entry("plain links",
			`<a href="/about">About</a><img src="logo.png"/>`,
			`<a href="/about">About</a><img src="logo.png"/>`),
		Entry("unterminated tag",
			`<a href="tcm:1-2" <a href="tcm:1-5">Bar</a>`,
			`<a href="tcm:1-2" <ComponentLink runat="server" ItemUri="tcm:1-5">Bar</ComponentLink>`),
		Entry("missing close tag",
			`<a href="tcm:1-2">Click`,
			`<ComponentLink runat="server" ItemUri="tcm:1-2"></ComponentLink>Click`),
	)

	It("honors only the first link attribute carrying an identifier", func() {
		got, err := resolver.Resolve(ctx, `<a href="tcm:1-2" tridion:href="tcm:1-5">x</a>`)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(`<ComponentLink runat="server" ItemUri="tcm:1-2">x</ComponentLink>`))
		Expect(repo.ResolveCallCount()).To(Equal(1))
		_, id := repo.ResolveArgsForCall(0)
		Expect(id).To(Equal("tcm:1-2"))
	})

	It("checks src before href", func() {
		name, id, ok := resolver.Identifier(markup.ParseAttributes(` href="tcm:1-2" src="tcm:1-3"`))
		Expect(ok).To(BeTrue())
		Expect(name).To(Equal("src"))
		Expect(id).To(Equal("tcm:1-3"))
		_, _, ok = resolver.Identifier(markup.ParseAttributes(` href="http://x" src="/y"`))
		Expect(ok).To(BeFalse())
	})

	It("does not resolve plain links", func() {
		_, err := resolver.Resolve(ctx, `<a href="https://example.com">x</a>`)
		Expect(err).NotTo(HaveOccurred())
		Expect(repo.ResolveCallCount()).To(Equal(0))
	})

	It("prefixes element names", func() {
		resolver.TagPrefix = "Tridion.Web:"
		got, err := resolver.Resolve(ctx, `<a href="tcm:1-2">x</a>`)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(`<Tridion.Web:ComponentLink runat="server" ItemUri="tcm:1-2">x</Tridion.Web:ComponentLink>`))
	})

	It("accepts other identifier schemes", func() {
		resolver.Schemes = []string{"tcm:", "ISH:"}
		objects["ish:7-8"] = &repository.Object{ID: "ish:7-8", Kind: repository.KindComponent}
		defer delete(objects, "ish:7-8")
		got, err := resolver.Resolve(ctx, `<a href="ish:7-8">x</a>`)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HavePrefix(`<ComponentLink runat="server" ItemUri="ish:7-8">`))
	})

	It("publishes images with the configured variant", func() {
		resolver.Variant = "web"
		_, err := resolver.Resolve(ctx, `<img src="tcm:1-3"/>`)
		Expect(err).NotTo(HaveOccurred())
		Expect(publisher.PublishCallCount()).To(Equal(1))
		_, object, variant := publisher.PublishArgsForCall(0)
		Expect(object.ID).To(Equal("tcm:1-3"))
		Expect(variant).To(Equal("web"))
	})

	Describe("replacements", func() {
		It("returns one replacement for self-closing tags", func() {
			replacements, err := resolver.Replacements(ctx, `<p><img src="tcm:1-3" alt="logo"/></p>`)
			Expect(err).NotTo(HaveOccurred())
			Expect(replacements).To(Equal([]markup.Replacement{
				{Offset: 3, OriginalLength: 31, Value: `<Image runat="server" alt="logo" ImageUrl="/images/foo.png" />`},
			}))
		})
		It("returns two replacements bracketing the content of other tags", func() {
			document := `<p><a href="tcm:1-2"><b>Foo</b></a></p>`
			replacements, err := resolver.Replacements(ctx, document)
			Expect(err).NotTo(HaveOccurred())
			Expect(replacements).To(HaveLen(2))
			begin, end := replacements[0], replacements[1]
			Expect(document[begin.Offset : begin.Offset+begin.OriginalLength]).To(Equal(`<a href="tcm:1-2">`))
			Expect(document[end.Offset : end.Offset+end.OriginalLength]).To(Equal(`</a>`))
			Expect(document[begin.Offset+begin.OriginalLength : end.Offset]).To(Equal(`<b>Foo</b>`))
		})
		It("leaves links sharing a close tag untouched", func() {
			replacements, err := resolver.Replacements(ctx, `<a href="tcm:1-2">x<a href="tcm:1-5">y</a>`)
			Expect(err).NotTo(HaveOccurred())
			Expect(replacements).To(HaveLen(2))
			Expect(replacements[0].Offset).To(Equal(0))
		})
	})

	It("never emits denied attributes", func() {
		document := `<a href="tcm:1-2" src="tcm:1-5" tridion:href="tcm:1-4" xmlns:tridion="ns" tridion:type="Component" tridion:targetattribute="href">x</a>` +
			`<img src="tcm:1-3" tridion:href="tcm:1-3" tridion:type="Multimedia"/>`
		got, err := resolver.Resolve(ctx, document)
		Expect(err).NotTo(HaveOccurred())
		for _, denied := range markup.IgnoredAttributes {
			Expect(strings.ToLower(got)).NotTo(ContainSubstring(" " + denied + "="))
		}
	})

	When("resolving fails", func() {
		BeforeEach(func() {
			repo.ResolveCalls(nil)
			repo.ResolveReturns(nil, errors.New("connection refused"))
		})
		It("returns the error", func() {
			_, err := resolver.Resolve(ctx, `<a href="tcm:1-2">x</a>`)
			Expect(err).To(MatchError(ContainSubstring("resolving tcm:1-2 fails: connection refused")))
		})
	})

	When("publishing fails", func() {
		BeforeEach(func() {
			publisher.PublishReturns("", errors.New("disk full"))
		})
		It("returns the error", func() {
			_, err := resolver.Resolve(ctx, `<img src="tcm:1-3"/>`)
			Expect(err).To(MatchError(ContainSubstring("publishing tcm:1-3 fails: disk full")))
		})
	})
})
