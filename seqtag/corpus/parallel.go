package corpus

import (
	"context"
	"runtime"

	"github.com/ZanzyTHEbar/seqtag/seqtag/common"
	"github.com/ZanzyTHEbar/seqtag/seqtag/data"
	"github.com/ZanzyTHEbar/seqtag/seqtag/embedding"
	"github.com/ZanzyTHEbar/seqtag/seqtag/tagscheme"

	"github.com/sourcegraph/conc/pool"
)

// DefaultWorkers is the worker count used when none is configured.
func DefaultWorkers() int {
	return min(max(runtime.NumCPU(), 2), 32)
}

// ForEach runs fn over every sentence of src on at most workers goroutines
// (DefaultWorkers when workers <= 0). The first error cancels the remaining work
// and is returned. Each sentence is handed to exactly one call, so fn may mutate
// it without locking as long as src does not yield the same sentence twice.
func ForEach(ctx context.Context, src Source, workers int, fn func(context.Context, *data.Sentence) error) error {
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	p := pool.New().
		WithMaxGoroutines(workers).
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	for s := range orEmpty(src).Sentences() {
		if ctx.Err() != nil {
			break
		}
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(ctx, s)
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ConvertTagScheme rewrites the tagType tags of every sentence in src to scheme.
// Sentences are converted independently; a malformed sentence is left unchanged
// and its *tagscheme.FormatError is returned.
func ConvertTagScheme(ctx context.Context, src Source, tagType string, scheme tagscheme.Scheme, workers int) error {
	return ForEach(ctx, src, workers, func(_ context.Context, s *data.Sentence) error {
		if err := s.ConvertTagScheme(tagType, scheme); err != nil {
			return common.WrapError(err, "sentence %q", s.ToTokenizedString())
		}
		return nil
	})
}

// Embed attaches a vector named name to every token of src, computed by
// provider from the token texts of one sentence at a time. Vectors are padded or
// truncated to provider.Dimensions().
func Embed(ctx context.Context, src Source, provider embedding.Provider, name string, workers int) error {
	return ForEach(ctx, src, workers, func(ctx context.Context, s *data.Sentence) error {
		tokens := s.Tokens()
		if len(tokens) == 0 {
			return nil
		}
		texts := make([]string, len(tokens))
		for i, t := range tokens {
			texts[i] = t.Text
		}

		vecs, err := provider.Embed(ctx, texts)
		if err != nil {
			return common.WrapError(err, "embedding sentence %q", s.ToTokenizedString())
		}
		if len(vecs) != len(tokens) {
			return common.Validationf("provider returned %d vectors for %d tokens", len(vecs), len(tokens))
		}
		for i, t := range tokens {
			t.SetEmbedding(name, embedding.FromFloat32(embedding.Resize(vecs[i], provider.Dimensions())))
		}
		return nil
	})
}
