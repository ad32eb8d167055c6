// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package publisher_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/publisher"
	"github.com/tcmtemplating/linkforge/pkg/publisher/publisherfakes"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/writers/writersfakes"
)

func multimedia(id, filename string) *repository.Object {
	return &repository.Object{
		ID:   id,
		Kind: repository.KindMultimedia,
		Binary: repository.NewBinary(filename, "image/png", func(ctx context.Context) ([]byte, error) {
			return []byte("PNGDATA"), nil
		}),
	}
}

var _ = Describe("FS", func() {
	var (
		ctx    context.Context
		writer *writersfakes.FakeWriter
		fs     *publisher.FS
	)
	BeforeEach(func() {
		ctx = context.Background()
		writer = &writersfakes.FakeWriter{}
		fs = &publisher.FS{Writer: writer, Path: "binaries", BaseURL: "/images/"}
	})

	It("writes the binary and returns its URL", func() {
		url, err := fs.Publish(ctx, multimedia("tcm:1-3", "img/my logo.png"), "")
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(Equal("/images/my%20logo_tcm1-3.png"))
		Expect(writer.WriteCallCount()).To(Equal(1))
		name, path, data := writer.WriteArgsForCall(0)
		Expect(name).To(Equal("my%20logo_tcm1-3.png"))
		Expect(path).To(Equal("binaries"))
		Expect(string(data)).To(Equal("PNGDATA"))
	})

	It("adds the variant to the file name", func() {
		url, err := fs.Publish(ctx, multimedia("tcm:1-3-16", "logo.png"), "thumb")
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(Equal("/images/logo_tcm1-3_thumb.png"))
	})

	It("does not publish other objects", func() {
		url, err := fs.Publish(ctx, &repository.Object{ID: "tcm:1-2", Kind: repository.KindComponent}, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(BeEmpty())
		Expect(writer.WriteCallCount()).To(Equal(0))
	})

	It("fails when writing fails", func() {
		writer.WriteReturns(errors.New("disk full"))
		_, err := fs.Publish(ctx, multimedia("tcm:1-3", "logo.png"), "")
		Expect(err).To(MatchError(ContainSubstring("publishing binary of tcm:1-3 fails: disk full")))
	})

	It("fails for multimedia without binary", func() {
		_, err := fs.Publish(ctx, &repository.Object{ID: "tcm:1-3", Kind: repository.KindMultimedia}, "")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Memo", func() {
	var (
		ctx   context.Context
		inner *publisherfakes.FakeInterface
		memo  *publisher.Memo
	)
	BeforeEach(func() {
		ctx = context.Background()
		inner = &publisherfakes.FakeInterface{}
		inner.PublishCalls(func(ctx context.Context, object *repository.Object, variant string) (string, error) {
			return "/" + object.ID + "/" + variant, nil
		})
		memo = publisher.NewMemo(inner)
	})

	It("publishes each binary and variant once", func() {
		logo := multimedia("tcm:1-3", "logo.png")
		for i := 0; i < 3; i++ {
			url, err := memo.Publish(ctx, logo, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(Equal("/tcm:1-3/"))
		}
		_, err := memo.Publish(ctx, multimedia("tcm:1-3-16", "logo.png"), "")
		Expect(err).NotTo(HaveOccurred())
		url, err := memo.Publish(ctx, logo, "thumb")
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(Equal("/tcm:1-3/thumb"))
		Expect(inner.PublishCallCount()).To(Equal(2))
		Expect(memo.Len()).To(Equal(2))
	})

	It("publishes again after a reset", func() {
		logo := multimedia("tcm:1-3", "logo.png")
		_, _ = memo.Publish(ctx, logo, "")
		memo.Reset()
		Expect(memo.Len()).To(Equal(0))
		_, _ = memo.Publish(ctx, logo, "")
		Expect(inner.PublishCallCount()).To(Equal(2))
	})

	It("does not remember failures", func() {
		inner.PublishReturns("", errors.New("boom"))
		logo := multimedia("tcm:1-3", "logo.png")
		_, err := memo.Publish(ctx, logo, "")
		Expect(err).To(HaveOccurred())
		_, err = memo.Publish(ctx, logo, "")
		Expect(err).To(HaveOccurred())
		Expect(inner.PublishCallCount()).To(Equal(2))
	})
})
