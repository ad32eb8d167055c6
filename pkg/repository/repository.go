// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package repository

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound indicates that an identifier does not resolve to an object
type ErrNotFound string

// Error returns "object id not found" error
func (e ErrNotFound) Error() string {
	return fmt.Sprintf("object %q not found", string(e))
}

// IsNotFound reports whether err or any error it wraps is ErrNotFound
func IsNotFound(err error) bool {
	var notFound ErrNotFound
	return errors.As(err, &notFound)
}

// Interface resolves content identifiers to objects
//
//counterfeiter:generate . Interface
type Interface interface {
	// Resolve returns the object identified by id or ErrNotFound
	Resolve(ctx context.Context, id string) (*Object, error)
	// Accept reports whether this repository serves the identifier
	Accept(id string) bool
	// Name of the repository
	Name() string
}
