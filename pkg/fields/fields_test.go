// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package fields_test

import (
	"context"
	"errors"

	"github.com/beevik/etree"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/fields"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/repository/repositoryfakes"
)

const article = `<Content xmlns="uuid:article" xmlns:xlink="http://www.w3.org/1999/xlink">
  <Title>Foo</Title>
  <Title>Ignored</Title>
  <Summary>  A short summary </Summary>
  <Empty></Empty>
  <Author>
    <Name>Jane</Name>
    <Team>Docs</Team>
  </Author>
  <Text><p xmlns="http://www.w3.org/1999/xhtml">Some <b>bold</b> text</p></Text>
  <Related xlink:href="tcm:1-5" xlink:title="Release notes"/>
  <Missing xlink:href="tcm:1-99"/>
</Content>`

const notes = `<Content><Title>Release notes</Title><Version>1.2</Version></Content>`

func parse(s string) *etree.Element {
	doc := etree.NewDocument()
	Expect(doc.ReadFromString(s)).To(Succeed())
	return doc.Root()
}

var _ = Describe("Extractor", func() {
	var (
		ctx       context.Context
		repo      *repositoryfakes.FakeInterface
		extractor *fields.Extractor
		content   *etree.Element
		patterns  []string
		values    map[string]string
		err       error
	)
	BeforeEach(func() {
		ctx = context.Background()
		repo = &repositoryfakes.FakeInterface{}
		repo.ResolveCalls(func(ctx context.Context, id string) (*repository.Object, error) {
			if id == "tcm:1-5" {
				doc := etree.NewDocument()
				Expect(doc.ReadFromString(notes)).To(Succeed())
				return &repository.Object{ID: id, Title: "Release notes", Content: doc}, nil
			}
			return nil, repository.ErrNotFound(id)
		})
		extractor = fields.NewExtractor(repo, 10)
		content = parse(article)
	})
	JustBeforeEach(func() {
		values, err = extractor.Extract(ctx, content, patterns)
	})

	When("patterns name leaf fields", func() {
		BeforeEach(func() {
			patterns = []string{"title", "Summary", "Empty", "Author"}
		})
		It("returns the first trimmed value of each field", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal(map[string]string{"Title": "Foo", "Summary": "A short summary"}))
		})
	})

	When("patterns name embedded fields", func() {
		BeforeEach(func() {
			patterns = []string{"Author.Name", "author.team"}
		})
		It("returns dotted names", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal(map[string]string{"Author.Name": "Jane", "Author.Team": "Docs"}))
		})
	})

	When("patterns name rich text fields", func() {
		BeforeEach(func() {
			patterns = []string{"Text"}
		})
		It("returns the inner markup", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values["Text"]).To(ContainSubstring("Some <b>bold</b> text"))
		})
	})

	When("patterns name link fields", func() {
		BeforeEach(func() {
			patterns = []string{"Related", "Related.Title", "Related.Version", "Missing.Title"}
		})
		It("returns the link target and the fields of the linked component", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal(map[string]string{
				"Related":         "tcm:1-5",
				"Related.Title":   "Release notes",
				"Related.Version": "1.2",
			}))
		})
		It("caches linked content per extractor", func() {
			Expect(err).NotTo(HaveOccurred())
			_, err = extractor.Extract(ctx, content, patterns)
			Expect(err).NotTo(HaveOccurred())
			ids := map[string]int{}
			for i := 0; i < repo.ResolveCallCount(); i++ {
				_, id := repo.ResolveArgsForCall(i)
				ids[id]++
			}
			Expect(ids["tcm:1-5"]).To(Equal(1))
			Expect(extractor.Cache.Len()).To(Equal(1))
		})
	})

	When("resolving a linked component fails", func() {
		BeforeEach(func() {
			repo.ResolveReturns(nil, errors.New("boom"))
			repo.ResolveCalls(nil)
			patterns = []string{"Related.Title"}
		})
		It("returns the error", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("resolving linked component tcm:1-5 fails: boom"))
		})
	})

	When("there are no patterns", func() {
		BeforeEach(func() {
			patterns = nil
		})
		It("returns no values", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(BeEmpty())
		})
	})
})

var _ = Describe("ExtractTitle", func() {
	It("finds the first Title element", func() {
		title, ok := fields.ExtractTitle(parse(article))
		Expect(ok).To(BeTrue())
		Expect(title).To(Equal("Foo"))
	})
	It("accepts the Title element itself", func() {
		title, ok := fields.ExtractTitle(parse(`<Title>Line&lt;br/&gt;break</Title>`))
		Expect(ok).To(BeTrue())
		Expect(title).To(Equal("Line<br/>break"))
	})
	It("concatenates nested text", func() {
		title, ok := fields.ExtractTitle(parse(`<Content><Meta><Title>A <i>b</i> c</Title></Meta></Content>`))
		Expect(ok).To(BeTrue())
		Expect(title).To(Equal("A b c"))
	})
	It("reports missing titles", func() {
		_, ok := fields.ExtractTitle(parse(`<Content><Name>x</Name></Content>`))
		Expect(ok).To(BeFalse())
		_, ok = fields.ExtractTitle(nil)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("InnerXML", func() {
	It("returns the serialized children", func() {
		Expect(fields.InnerXML(parse(`<a>x<b>y</b></a>`))).To(Equal("x<b>y</b>"))
	})
	It("returns nothing for empty elements", func() {
		Expect(fields.InnerXML(parse(`<a/>`))).To(Equal(""))
	})
})
