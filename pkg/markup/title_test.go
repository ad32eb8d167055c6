// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup_test

import (
	"context"
	"errors"

	"github.com/beevik/etree"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/fields/fieldsfakes"
	"github.com/tcmtemplating/linkforge/pkg/markup"
	"github.com/tcmtemplating/linkforge/pkg/markup/markupfakes"
	"github.com/tcmtemplating/linkforge/pkg/repository"
)

func withContent(o repository.Object, content string) *repository.Object {
	doc := etree.NewDocument()
	Expect(doc.ReadFromString(content)).To(Succeed())
	o.Content = doc
	return &o
}

var _ = Describe("DefaultTitlePolicy", func() {
	var (
		ctx    context.Context
		policy *markup.DefaultTitlePolicy
	)
	BeforeEach(func() {
		ctx = context.Background()
		policy = &markup.DefaultTitlePolicy{}
	})

	DescribeTable("link titles",
		func(object *repository.Object, title string, present bool, want string) {
			target, err := markup.NewTarget(object)
			Expect(err).NotTo(HaveOccurred())
			got, err := policy.LinkTitle(ctx, target, title, present)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("numbered title", &repository.Object{Kind: repository.KindPage, Title: "2. Products"}, "2. Products", true, "Products"),
		Entry("numbered title without dot", &repository.Object{Kind: repository.KindPage}, "10 Services", true, "Services"),
		Entry("encoded line breaks", &repository.Object{Kind: repository.KindComponent}, "One&lt;br/&gt;Two", true, "One Two"),
		Entry("title of a navigable target", &repository.Object{Kind: repository.KindPage, Title: "1000. Home"}, "1000. home", true, "Home"),
		Entry("other titles are kept", &repository.Object{Kind: repository.KindPage, Title: "Home"}, "Start here", true, "Start here"),
		Entry("no title for pages", &repository.Object{Kind: repository.KindPage, Title: "Home"}, "", false, ""),
		Entry("component content title",
			withContent(repository.Object{Kind: repository.KindComponent}, `<Content><Title>Big&lt;br/&gt;Deal &amp; co</Title></Content>`),
			"", false, "Big Deal &amp; co"),
		Entry("component content title for empty titles",
			withContent(repository.Object{Kind: repository.KindComponent}, `<Content><Meta><Title>Nested</Title></Meta></Content>`),
			"1. ", true, "Nested"),
		Entry("component without title field",
			withContent(repository.Object{Kind: repository.KindComponent}, `<Content><Name>x</Name></Content>`),
			"", false, ""),
	)

	It("uses the configured title extractor", func() {
		extractor := &fieldsfakes.FakeTitleExtractor{}
		extractor.ExtractTitleReturns("From <fields>", true)
		policy.Fields = extractor
		target, _ := markup.NewTarget(withContent(repository.Object{Kind: repository.KindMultimedia}, `<Metadata/>`))
		got, err := policy.LinkTitle(ctx, target, "", false)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal("From &lt;fields&gt;"))
		Expect(extractor.ExtractTitleCallCount()).To(Equal(1))
		Expect(extractor.ExtractTitleArgsForCall(0).Tag).To(Equal("Metadata"))
	})
})

var _ = Describe("LinkResolver title policy", func() {
	It("fails when the policy fails", func() {
		policy := &markupfakes.FakeTitlePolicy{}
		policy.LinkTitleReturns("", errors.New("boom"))
		resolver := &markup.LinkResolver{Repository: fakeRepository(), TitlePolicy: policy}
		_, err := resolver.Resolve(context.Background(), `<a href="tcm:1-2">x</a>`)
		Expect(err).To(MatchError(ContainSubstring("computing link title of tcm:1-2 fails: boom")))
	})
	It("sets the tooltip computed by the policy", func() {
		policy := &markupfakes.FakeTitlePolicy{}
		policy.LinkTitleReturns("Custom", nil)
		resolver := &markup.LinkResolver{Repository: fakeRepository(), TitlePolicy: policy}
		got, err := resolver.Resolve(context.Background(), `<a title="t" href="tcm:1-2">x</a>`)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(`<ComponentLink runat="server" tooltip="Custom" ItemUri="tcm:1-2">x</ComponentLink>`))
		_, target, title, present := policy.LinkTitleArgsForCall(0)
		Expect(markup.ObjectOf(target).Title).To(Equal("Foo"))
		Expect(title).To(Equal("t"))
		Expect(present).To(BeTrue())
	})
})

var _ = Describe("NavigableTitle", func() {
	It("strips ordinal prefixes", func() {
		Expect(markup.NavigableTitle("010 Home")).To(Equal("Home"))
		Expect(markup.NavigableTitle("12345. Deep")).To(Equal("Deep"))
		Expect(markup.NavigableTitle("Plain")).To(Equal("Plain"))
		Expect(markup.NavigableTitle("2.Products")).To(Equal("2.Products"))
	})
	It("returns ordinal numbers", func() {
		n, ok := markup.NavigableNumber("010 Home")
		Expect(ok).To(BeTrue())
		Expect(n).To(Equal(10))
		_, ok = markup.NavigableNumber("Home")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("NewTarget", func() {
	It("wraps objects by kind", func() {
		t, err := markup.NewTarget(&repository.Object{Kind: repository.KindMultimedia})
		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(BeAssignableToTypeOf(markup.MultimediaTarget{}))
		t, err = markup.NewTarget(&repository.Object{Kind: repository.KindPage})
		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(BeAssignableToTypeOf(markup.PageTarget{}))
		_, err = markup.NewTarget(&repository.Object{ID: "tcm:1-1", Kind: repository.Kind(9)})
		Expect(err).To(HaveOccurred())
	})
})
