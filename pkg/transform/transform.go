// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package transform

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tcmtemplating/linkforge/pkg/fields"
	"github.com/tcmtemplating/linkforge/pkg/formattext"
	"github.com/tcmtemplating/linkforge/pkg/jobs"
	"github.com/tcmtemplating/linkforge/pkg/markup"
	"github.com/tcmtemplating/linkforge/pkg/osfakes/osshim"
	"github.com/tcmtemplating/linkforge/pkg/publisher"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/writers"
	"k8s.io/klog/v2"
)

// Options configure a Transformer
type Options struct {
	// Workers is the number of parallel workers
	Workers int
	// FailFast stops processing after the first failed unit
	FailFast bool
	// CacheSize bounds the linked content cache of each worker
	CacheSize int
	// TagPrefix is the namespace prefix of the emitted link elements
	TagPrefix string
	// LinkPrefix is prepended to root relative URLs in format text
	LinkPrefix string
	// Schemes are the identifier prefixes, `tcm:` when empty
	Schemes []string
	// Variant is the binary variant published for markup links
	Variant string
	// PreservedNamespaces are kept in format text output
	PreservedNamespaces []string
	// RemoveImages drops images from format text
	RemoveImages bool
}

// Transformer resolves the links of units and writes the results
type Transformer struct {
	Repository repository.Interface
	Publisher  publisher.Interface
	Os         osshim.Os
	Writer     writers.Writer
	Options    Options
	// SchemaResolvers are tried before the default format text resolver
	SchemaResolvers []formattext.SchemaResolver
}

// Worker creates the work func of one worker. The worker owns a fields
// extractor with a private content cache.
func (t *Transformer) Worker() jobs.WorkerFunc {
	extractor := fields.NewExtractor(t.Repository, t.cacheSize())
	titles := &markup.DefaultTitlePolicy{Fields: extractor}
	return func(ctx context.Context, task interface{}) error {
		unit, ok := task.(*Unit)
		if !ok {
			return fmt.Errorf("incorrect transform task: %T", task)
		}
		return t.Transform(ctx, unit, titles)
	}
}

// Transform resolves one unit with a fresh binary publish memo
func (t *Transformer) Transform(ctx context.Context, unit *Unit, titles markup.TitlePolicy) error {
	txn := uuid.New().String()
	start := time.Now()
	memo := publisher.NewMemo(t.Publisher)
	defer memo.Reset()
	klog.V(6).Infof("[%s] transforming %s\n", txn, unit)
	data, err := t.Os.ReadFile(unit.Source)
	if err != nil {
		return fmt.Errorf("[%s] reading %s fails: %w", txn, unit.Source, err)
	}
	var out string
	switch unit.Mode {
	case ModeFormatText:
		out, err = t.formatText(memo, titles).Resolve(ctx, string(data), formattext.Options{
			PreservedNamespaces: t.Options.PreservedNamespaces,
			RemoveImages:        t.Options.RemoveImages,
		})
	case ModeMarkup, ModeAuto:
		out, err = t.markup(memo, titles).Resolve(ctx, string(data))
	default:
		err = fmt.Errorf("unknown mode '%s'", unit.Mode)
	}
	if err != nil {
		return fmt.Errorf("[%s] resolving %s fails: %w", txn, unit.Source, err)
	}
	if err = t.Writer.Write(unit.Name, unit.Path, []byte(out)); err != nil {
		return fmt.Errorf("[%s] writing %s fails: %w", txn, unit.Source, err)
	}
	klog.V(6).Infof("[%s] transformed %s in %s, %d binaries published\n", txn, unit.Source, time.Since(start), memo.Len())
	return nil
}

func (t *Transformer) markup(pub publisher.Interface, titles markup.TitlePolicy) *markup.LinkResolver {
	return &markup.LinkResolver{
		Repository:  t.Repository,
		Publisher:   pub,
		TitlePolicy: titles,
		TagPrefix:   t.Options.TagPrefix,
		Schemes:     t.Options.Schemes,
		Variant:     t.Options.Variant,
	}
}

func (t *Transformer) formatText(pub publisher.Interface, titles markup.TitlePolicy) *formattext.Resolver {
	resolvers := append([]formattext.SchemaResolver{}, t.SchemaResolvers...)
	if t.Options.LinkPrefix != "" {
		resolvers = append(resolvers, &formattext.DefaultSchemaResolver{Titles: titles, Prefix: t.Options.LinkPrefix})
	}
	r := formattext.NewResolver(t.Repository, pub, titles, resolvers...)
	r.Schemes = t.Options.Schemes
	return r
}

func (t *Transformer) cacheSize() int {
	if t.Options.CacheSize > 0 {
		return t.Options.CacheSize
	}
	return fields.DefaultCacheSize
}

func (t *Transformer) workers() int {
	if t.Options.Workers > 0 {
		return t.Options.Workers
	}
	return 1
}

// Run transforms units in parallel and returns the aggregated errors
func (t *Transformer) Run(ctx context.Context, units []*Unit) error {
	wg := &sync.WaitGroup{}
	queue, err := jobs.NewJobQueue("Transform", t.workers(), t.Worker, t.Options.FailFast, wg)
	if err != nil {
		return err
	}
	queues := jobs.NewQueueControllerCollection(wg, queue)
	queues.Start(ctx)
	for _, unit := range units {
		if !queue.AddTask(unit) {
			break
		}
	}
	queues.Wait()
	queues.Stop()
	queues.LogTaskProcessed()
	return queues.GetErrorList().ErrorOrNil()
}

// Fields extracts the fields matching patterns from the content of the
// components ids in parallel. Each worker keeps its own linked content cache.
func (t *Transformer) Fields(ctx context.Context, ids []string, patterns []string) (map[string]map[string]string, error) {
	var mux sync.Mutex
	values := make(map[string]map[string]string, len(ids))
	factory := func() jobs.WorkerFunc {
		extractor := fields.NewExtractor(t.Repository, t.cacheSize())
		return func(ctx context.Context, task interface{}) error {
			id, ok := task.(string)
			if !ok {
				return fmt.Errorf("incorrect fields task: %T", task)
			}
			object, err := t.Repository.Resolve(ctx, id)
			if err != nil {
				return fmt.Errorf("resolving %s fails: %w", id, err)
			}
			if object.Content == nil {
				return fmt.Errorf("%s has no content", id)
			}
			v, err := extractor.Extract(ctx, object.Content.Root(), patterns)
			if err != nil {
				return fmt.Errorf("extracting fields of %s fails: %w", id, err)
			}
			mux.Lock()
			defer mux.Unlock()
			values[id] = v
			return nil
		}
	}
	wg := &sync.WaitGroup{}
	queue, err := jobs.NewJobQueue("Fields", t.workers(), factory, t.Options.FailFast, wg)
	if err != nil {
		return nil, err
	}
	queue.Start(ctx)
	for _, id := range ids {
		if !queue.AddTask(id) {
			break
		}
	}
	wg.Wait()
	queue.Stop()
	klog.V(6).Infof("%s tasks processed: %d\n", queue.Name(), queue.GetProcessedTasksCount())
	return values, queue.GetErrorList().ErrorOrNil()
}
