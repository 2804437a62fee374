// Package dispatcher loads and tokenizes files on a fixed-size worker pool.
//
// Jobs carry the index of their filename, and every result is written back
// into the slot with that index, so Dispatch output is aligned with its input
// no matter which worker finishes first.
package dispatcher

import (
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/dtnitsch/wordfreq/pkg/storage"
	"github.com/dtnitsch/wordfreq/pkg/tokenizer"
)

// DefaultWorkerCount is the pool size used when Options.WorkerCount is unset.
const DefaultWorkerCount = 4

// Error types recorded on failed results.
const (
	// ErrorTypeRead marks a file that could not be loaded.
	ErrorTypeRead = "read_error"
	// ErrorTypeDecode marks a file that was read but is not valid text.
	ErrorTypeDecode = "decode_error"
)

// LoadFunc returns the full text of one file.
type LoadFunc func(filename string) (string, error)

// TokenizeFunc splits loaded text into tokens.
type TokenizeFunc func(text string) []string

// DetectFunc labels loaded text, e.g. with its natural language.
type DetectFunc func(text string) string

// Options configures a Dispatcher. Zero values fall back to the defaults.
type Options struct {
	WorkerCount int
	Load        LoadFunc
	Tokenize    TokenizeFunc
	Detect      DetectFunc // optional
	Logger      *slog.Logger
}

// Job defines a file for a worker to process.
type Job struct {
	Index    int
	Filename string
}

// Result holds the outcome of a processed job. Exactly one of Tokens or Err
// is meaningful; a failed file keeps its slot with Err set.
type Result struct {
	Index     int
	Filename  string
	Tokens    []string
	Language  string
	Err       error
	ErrorType string
}

// Dispatcher fans files out to a fixed pool of workers.
type Dispatcher struct {
	workers  int
	load     LoadFunc
	tokenize TokenizeFunc
	detect   DetectFunc
	logger   *slog.Logger
}

// New builds a Dispatcher. Nil Load reads files from disk; nil Tokenize
// uses tokenizer.Tokenize.
func New(opts Options) *Dispatcher {
	opts = withDefaults(opts)
	return &Dispatcher{
		workers:  opts.WorkerCount,
		load:     opts.Load,
		tokenize: opts.Tokenize,
		detect:   opts.Detect,
		logger:   opts.Logger,
	}
}

func withDefaults(opts Options) Options {
	if opts.WorkerCount <= 0 {
		opts.WorkerCount = DefaultWorkerCount
	}
	if opts.Load == nil {
		opts.Load = (&storage.Storage{}).ReadText
	}
	if opts.Tokenize == nil {
		opts.Tokenize = tokenizer.Tokenize
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return opts
}

// Workers reports the pool size.
func (d *Dispatcher) Workers() int {
	return d.workers
}

// Dispatch processes every filename concurrently and blocks until all of
// them are done. result[i] always belongs to filenames[i].
func (d *Dispatcher) Dispatch(filenames []string) []Result {
	out := make([]Result, len(filenames))
	if len(filenames) == 0 {
		return out
	}

	workerCount := d.workers
	if workerCount > len(filenames) {
		workerCount = len(filenames)
	}

	d.logger.Info("Starting concurrent tokenize phase", "file_count", len(filenames), "workers", workerCount)
	var wg sync.WaitGroup
	jobs := make(chan Job, len(filenames))
	results := make(chan Result, len(filenames))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go d.worker(w, &wg, jobs, results)
	}

	for i, fn := range filenames {
		jobs <- Job{Index: i, Filename: fn}
	}
	close(jobs)

	wg.Wait()
	close(results)
	d.logger.Info("All tokenize workers finished")

	for result := range results {
		out[result.Index] = result
	}
	return out
}

// worker is a goroutine that processes jobs from the jobs channel
// and sends results to the results channel.
func (d *Dispatcher) worker(id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		d.logger.Debug("Worker started job", "worker_id", id, "file", job.Filename)
		result := process(job, d.load, d.tokenize, d.detect)
		if result.Err != nil {
			d.logger.Error("Error loading file", "worker_id", id, "file", job.Filename, "error", result.Err)
		} else {
			d.logger.Debug("Worker finished job", "worker_id", id, "file", job.Filename, "tokens", len(result.Tokens))
		}
		results <- result
	}
}

func process(job Job, load LoadFunc, tokenize TokenizeFunc, detect DetectFunc) Result {
	result := Result{Index: job.Index, Filename: job.Filename}

	text, err := load(job.Filename)
	if err != nil {
		result.Err = err
		result.ErrorType = ErrorTypeRead
		if errors.Is(err, storage.ErrNotText) {
			result.ErrorType = ErrorTypeDecode
		}
		return result
	}

	result.Tokens = tokenize(text)
	if detect != nil {
		result.Language = detect(text)
	}
	return result
}

// Sequential does the same per-file work as Dispatch without any goroutines.
// It is the reference the pool is checked against.
func Sequential(filenames []string, opts Options) []Result {
	opts = withDefaults(opts)
	out := make([]Result, len(filenames))
	for i, fn := range filenames {
		out[i] = process(Job{Index: i, Filename: fn}, opts.Load, opts.Tokenize, opts.Detect)
	}
	return out
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
