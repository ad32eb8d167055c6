// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	gogithub "github.com/google/go-github/v43/github"
	"github.com/gregjones/httpcache"
	"github.com/gregjones/httpcache/diskcache"
	"github.com/peterbourgon/diskv"
	"golang.org/x/oauth2"
	"k8s.io/klog/v2"
)

// BuildClient creates a GitHub client for host whose responses are cached on disk in cachePath
func BuildClient(ctx context.Context, accessToken string, host string, cachePath string) (*gogithub.Client, *http.Client, error) {
	base := http.DefaultTransport
	if len(accessToken) > 0 {
		// if token provided replace base RoundTripper
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
		base = oauth2.NewClient(ctx, ts).Transport
	}

	flatTransform := func(s string) []string { return []string{} }
	d := diskv.New(diskv.Options{
		BasePath:     cachePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024 * 1024,
	})

	cacheTransport := &httpcache.Transport{
		Transport:           WithClientHTTPLogging(base),
		Cache:               diskcache.NewWithDiskv(d),
		MarkCachedResponses: true,
	}

	httpClient := cacheTransport.Client()

	if host == "https://github.com" || host == "github.com" {
		return gogithub.NewClient(httpClient), httpClient, nil
	}
	if !strings.HasPrefix(host, "https://") && !strings.HasPrefix(host, "http://") {
		host = "https://" + host
	}
	client, err := gogithub.NewEnterpriseClient(host, "", httpClient)
	return client, httpClient, err
}

// NewFromClient loads the located repository with a client built by BuildClient
func NewFromClient(ctx context.Context, locator *Locator, client *gogithub.Client) (*Repository, error) {
	return New(ctx, locator, client, client.Repositories, client.Git)
}

// RoundTripperFunc adapts a function to http.RoundTripper
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the RoundTripper interface.
func (rt RoundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return rt(r)
}

// WithClientHTTPLogging logs requests and response statuses at verbosity 6
func WithClientHTTPLogging(next http.RoundTripper) RoundTripperFunc {
	return RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		var respStatus string
		resp, err := next.RoundTrip(r)
		requestLog := fmt.Sprintf("HTTP %s %s", r.Method, r.URL)
		if err == nil {
			respStatus = resp.Status
		}
		klog.V(6).Infof("%s %s\n", requestLog, respStatus)
		return resp, err
	})
}
