// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package github_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/tcmtemplating/linkforge/pkg/repository/github"
)

var _ = Describe("Client", func() {
	It("passes requests through the logging round tripper", func() {
		var called int
		next := github.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			called++
			rec := httptest.NewRecorder()
			rec.WriteHeader(http.StatusTeapot)
			return rec.Result(), nil
		})
		req := httptest.NewRequest(http.MethodGet, "https://api.github.com/rate_limit", nil)
		resp, err := github.WithClientHTTPLogging(next).RoundTrip(req)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusTeapot))
		Expect(called).To(Equal(1))
	})

	It("passes transport errors through", func() {
		next := github.RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("offline")
		})
		req := httptest.NewRequest(http.MethodGet, "https://api.github.com/rate_limit", nil)
		_, err := github.WithClientHTTPLogging(next).RoundTrip(req)
		Expect(err).To(MatchError("offline"))
	})

	It("builds clients for github.com and enterprise hosts", func() {
		dir, err := os.MkdirTemp("", "linkforge-diskv")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)
		client, httpClient, err := github.BuildClient(context.Background(), "token", "github.com", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(httpClient).NotTo(BeNil())
		Expect(client.BaseURL.String()).To(Equal("https://api.github.com/"))

		client, _, err = github.BuildClient(context.Background(), "", "github.example.com", dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(client.BaseURL.String()).To(Equal("https://github.example.com/api/v3/"))
	})
})
