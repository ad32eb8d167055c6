// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package transform_test

import (
	"context"
	"errors"
	ospkg "os"
	"sync"

	"github.com/beevik/etree"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/osfakes/osshim/osshimfakes"
	"github.com/tcmtemplating/linkforge/pkg/publisher/publisherfakes"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/repository/repositoryfakes"
	"github.com/tcmtemplating/linkforge/pkg/transform"
	"github.com/tcmtemplating/linkforge/pkg/writers/writersfakes"
)

const (
	article = `<Content xmlns:xlink="http://www.w3.org/1999/xlink"><Title>Foo</Title><Related xlink:href="tcm:1-5"/></Content>`
	notes   = `<Content><Title>Release notes</Title><Version>1.2</Version></Content>`
)

func document(s string) *etree.Document {
	doc := etree.NewDocument()
	Expect(doc.ReadFromString(s)).To(Succeed())
	return doc
}

var _ = Describe("Transformer", func() {
	var (
		ctx         context.Context
		repo        *repositoryfakes.FakeInterface
		pub         *publisherfakes.FakeInterface
		os          *osshimfakes.FakeOs
		writer      *writersfakes.FakeWriter
		files       map[string]string
		written     map[string]string
		mux         sync.Mutex
		transformer *transform.Transformer
	)
	BeforeEach(func() {
		ctx = context.Background()
		objects := map[string]*repository.Object{
			"tcm:1-2": {ID: "tcm:1-2", Kind: repository.KindComponent, Title: "Foo", Content: document(article)},
			"tcm:1-3": {ID: "tcm:1-3", Kind: repository.KindMultimedia, Title: "Logo", Binary: repository.NewBinary("logo.png", "image/png", nil)},
			"tcm:1-5": {ID: "tcm:1-5", Kind: repository.KindComponent, Title: "Release notes", Content: document(notes)},
		}
		repo = &repositoryfakes.FakeInterface{}
		repo.ResolveCalls(func(ctx context.Context, id string) (*repository.Object, error) {
			if o, ok := objects[id]; ok {
				return o, nil
			}
			return nil, repository.ErrNotFound(id)
		})
		pub = &publisherfakes.FakeInterface{}
		pub.PublishReturns("/images/logo_tcm1-3.png", nil)
		files = map[string]string{
			"in/page.html": `<a href="tcm:1-2">Foo</a><img src="tcm:1-3"/><img src="tcm:1-3"/>`,
			"in/other.html": `<img src="tcm:1-3"/>`,
			"in/body.xml": `<p xmlns="http://www.w3.org/1999/xhtml" xmlns:xlink="http://www.w3.org/1999/xlink">` +
				`<a xlink:href="tcm:1-2">Foo</a> <a href="/about">About</a></p>`,
		}
		os = &osshimfakes.FakeOs{}
		os.ReadFileCalls(func(name string) ([]byte, error) {
			if content, ok := files[name]; ok {
				return []byte(content), nil
			}
			return nil, ospkg.ErrNotExist
		})
		written = map[string]string{}
		writer = &writersfakes.FakeWriter{}
		writer.WriteCalls(func(name, path string, content []byte) error {
			mux.Lock()
			defer mux.Unlock()
			written[path+"/"+name] = string(content)
			return nil
		})
		transformer = &transform.Transformer{
			Repository: repo,
			Publisher:  pub,
			Os:         os,
			Writer:     writer,
			Options: transform.Options{
				Workers:    2,
				LinkPrefix: "/site",
			},
		}
	})

	Describe("Run", func() {
		It("transforms markup units", func() {
			err := transformer.Run(ctx, []*transform.Unit{
				{Source: "in/page.html", Name: "page.html", Path: "out", Mode: transform.ModeMarkup},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(written).To(HaveKeyWithValue("out/page.html",
				`<ComponentLink runat="server" tooltip="Foo" ItemUri="tcm:1-2">Foo</ComponentLink>`+
					`<Image runat="server" ImageUrl="/images/logo_tcm1-3.png" />`+
					`<Image runat="server" ImageUrl="/images/logo_tcm1-3.png" />`))
			Expect(pub.PublishCallCount()).To(Equal(1))
		})

		It("publishes binaries once per unit", func() {
			err := transformer.Run(ctx, []*transform.Unit{
				{Source: "in/page.html", Name: "page.html", Mode: transform.ModeMarkup},
				{Source: "in/other.html", Name: "other.html", Mode: transform.ModeMarkup},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(written).To(HaveLen(2))
			Expect(pub.PublishCallCount()).To(Equal(2))
		})

		It("transforms format text units", func() {
			err := transformer.Run(ctx, []*transform.Unit{
				{Source: "in/body.xml", Name: "body.xml", Mode: transform.ModeFormatText},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(written["/body.xml"]).To(ContainSubstring(`href="tcm:1-2"`))
			Expect(written["/body.xml"]).To(ContainSubstring(`href="/site/about"`))
		})

		It("applies the tag prefix", func() {
			transformer.Options.TagPrefix = "tcm:"
			err := transformer.Run(ctx, []*transform.Unit{
				{Source: "in/other.html", Name: "other.html", Mode: transform.ModeMarkup},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(written["/other.html"]).To(HavePrefix(`<tcm:Image runat="server"`))
		})

		It("reports failed units and continues", func() {
			err := transformer.Run(ctx, []*transform.Unit{
				{Source: "in/missing.html", Name: "missing.html", Mode: transform.ModeMarkup},
				{Source: "in/other.html", Name: "other.html", Mode: transform.ModeMarkup},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("reading in/missing.html fails"))
			Expect(written).To(HaveKey("/other.html"))
		})

		It("reports write failures", func() {
			writer.WriteReturns(errors.New("disk full"))
			err := transformer.Run(ctx, []*transform.Unit{
				{Source: "in/other.html", Name: "other.html", Mode: transform.ModeMarkup},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("disk full"))
		})

		It("reports publish failures", func() {
			pub.PublishReturns("", errors.New("no space"))
			err := transformer.Run(ctx, []*transform.Unit{
				{Source: "in/other.html", Name: "other.html", Mode: transform.ModeMarkup},
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("resolving in/other.html fails"))
			Expect(written).To(BeEmpty())
		})
	})

	Describe("Worker", func() {
		It("rejects unknown tasks", func() {
			err := transformer.Worker()(ctx, "in/page.html")
			Expect(err).To(MatchError("incorrect transform task: string"))
		})
	})

	Describe("Fields", func() {
		It("extracts fields of many components", func() {
			values, err := transformer.Fields(ctx, []string{"tcm:1-2", "tcm:1-5"}, []string{"Title", "Related.Version"})
			Expect(err).NotTo(HaveOccurred())
			Expect(values).To(Equal(map[string]map[string]string{
				"tcm:1-2": {"Title": "Foo", "Related.Version": "1.2"},
				"tcm:1-5": {"Title": "Release notes"},
			}))
		})

		It("reports components without content", func() {
			values, err := transformer.Fields(ctx, []string{"tcm:1-3", "tcm:1-9"}, []string{"Title"})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("tcm:1-3 has no content"))
			Expect(err.Error()).To(ContainSubstring("resolving tcm:1-9 fails"))
			Expect(values).To(BeEmpty())
		})
	})
})
