// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"context"
	"fmt"

	"github.com/tcmtemplating/linkforge/pkg/repository"
	"k8s.io/klog/v2"
)

// Target is a resolved link target. It is implemented only by
// ComponentTarget, MultimediaTarget and PageTarget.
type Target interface {
	object() *repository.Object
}

// ComponentTarget is a structured content object
type ComponentTarget struct {
	*repository.Object
}

// MultimediaTarget is a content object wrapping a binary
type MultimediaTarget struct {
	*repository.Object
}

// PageTarget is a navigable page
type PageTarget struct {
	*repository.Object
}

func (t ComponentTarget) object() *repository.Object  { return t.Object }
func (t MultimediaTarget) object() *repository.Object { return t.Object }
func (t PageTarget) object() *repository.Object       { return t.Object }

// ObjectOf returns the repository object of a target
func ObjectOf(t Target) *repository.Object {
	return t.object()
}

// NewTarget wraps object into the target variant of its kind
func NewTarget(object *repository.Object) (Target, error) {
	switch object.Kind {
	case repository.KindComponent:
		return ComponentTarget{object}, nil
	case repository.KindMultimedia:
		return MultimediaTarget{object}, nil
	case repository.KindPage:
		return PageTarget{object}, nil
	}
	return nil, fmt.Errorf("object %s has unsupported kind %s", object.ID, object.Kind)
}

// ResolveTarget resolves id through repo. A nil target without error means
// id was not found.
func ResolveTarget(ctx context.Context, repo repository.Interface, id string) (Target, error) {
	object, err := repo.Resolve(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			klog.V(6).Infof("%s not found in %s\n", id, repo.Name())
			return nil, nil
		}
		return nil, fmt.Errorf("resolving %s fails: %w", id, err)
	}
	if object == nil {
		return nil, nil
	}
	return NewTarget(object)
}
