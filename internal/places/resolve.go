package places

import (
	"bytes"
	"sort"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"
)

// ErrMalformedDocument is returned when the input is not well-formed JSON.
var ErrMalformedDocument = eris.New("places: malformed document")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Result is the ordered output of a resolution run.
type Result struct {
	Places  []Place
	Skipped []int // ordinals of features without resolvable coordinates
	Total   int
}

// Resolver runs the extraction pipeline over a feature collection.
type Resolver struct {
	// Workers bounds the number of goroutines resolving features.
	// Values below 2 resolve sequentially.
	Workers int
}

type job struct {
	Feature Feature
	Ordinal int
}

type result struct {
	Place   Place
	Ordinal int
	Valid   bool
}

// Resolve runs a sequential Resolver over doc.
func Resolve(doc []byte) (*Result, error) {
	var r Resolver
	return r.Resolve(doc)
}

// Resolve parses doc and resolves every feature in input order.
// Features that yield no coordinates are skipped and reported in Result.Skipped.
func (r *Resolver) Resolve(doc []byte) (*Result, error) {
	doc = bytes.TrimPrefix(doc, utf8BOM)
	if !gjson.ValidBytes(doc) {
		return nil, ErrMalformedDocument
	}

	features := Features(gjson.ParseBytes(doc))

	var results []result
	if r.Workers > 1 && len(features) > 1 {
		results = resolveBatch(features, r.Workers)
	} else {
		results = make([]result, 0, len(features))
		for i, f := range features {
			results = append(results, resolveJob(job{Feature: f, Ordinal: i + 1}))
		}
	}

	out := &Result{
		Places: make([]Place, 0, len(results)),
		Total:  len(features),
	}
	for _, res := range results {
		if res.Valid {
			out.Places = append(out.Places, res.Place)
		} else {
			out.Skipped = append(out.Skipped, res.Ordinal)
		}
	}

	return out, nil
}

// Features returns the features array of a collection.
// An absent or non-array "features" member yields no features.
func Features(collection gjson.Result) []Feature {
	arr := field(collection, "features")
	if !arr.IsArray() {
		return nil
	}

	items := arr.Array()
	features := make([]Feature, len(items))
	for i, item := range items {
		features[i] = NewFeature(item)
	}

	return features
}

func resolveJob(j job) result {
	p, ok := ResolveFeature(j.Feature, j.Ordinal)
	return result{Place: p, Ordinal: j.Ordinal, Valid: ok}
}

// resolveBatch fans features out to a fixed worker pool and restores input order.
func resolveBatch(features []Feature, concurrency int) []result {
	jobs := make(chan job, len(features))
	results := make(chan result, len(features))

	go func() {
		for i, f := range features {
			jobs <- job{Feature: f, Ordinal: i + 1}
		}
		close(jobs)
	}()

	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- resolveJob(j)
			}
		}()
	}
	wg.Wait()
	close(results)

	out := make([]result, 0, len(features))
	for res := range results {
		out = append(out, res)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Ordinal < out[j].Ordinal
	})

	return out
}
