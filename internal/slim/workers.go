package slim

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dtnitsch/html-helpers/internal/common"
	"github.com/dtnitsch/html-helpers/pkg/db"
	"github.com/dtnitsch/html-helpers/pkg/slimmer"
	"github.com/dtnitsch/html-helpers/pkg/storage"
)

// Job defines a task for a worker to perform.
type Job struct {
	Path string
}

// Result holds the outcome of a processed job.
type Result struct {
	Path        string `json:"path"`
	OutPath     string `json:"out_path,omitempty"`
	Status      string `json:"status"` // success, cached, failed
	Error       string `json:"error,omitempty"`
	InputBytes  int64  `json:"input_bytes"`
	OutputBytes int64  `json:"output_bytes"`
}

// Summary is the run report printed after a multi-file slim.
type Summary struct {
	Total       int      `json:"total"`
	Success     int      `json:"success"`
	Cached      int      `json:"cached"`
	Failed      int      `json:"failed"`
	TimeSeconds float64  `json:"time_seconds"`
	Results     []Result `json:"results"`
}

type runner struct {
	logger      *slog.Logger
	opts        slimmer.Options
	optionsHash string
	store       *storage.Storage
	database    *db.DB
	maxAge      time.Duration
	outputDir   string
}

// run fans the inputs out over a worker pool and collects the results in
// input order.
func (r *runner) run(inputs []string, workerCount int) *Summary {
	r.logger.Info("Starting slim phase", "input_count", len(inputs), "workers", workerCount, "max_age", r.maxAge)

	var wg sync.WaitGroup
	jobs := make(chan Job, len(inputs))
	results := make(chan Result, len(inputs))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go r.worker(w, &wg, jobs, results)
	}

	for _, path := range inputs {
		jobs <- Job{Path: path}
	}
	close(jobs)

	wg.Wait()
	close(results)
	r.logger.Info("All slim workers finished")

	byPath := make(map[string]Result, len(inputs))
	for result := range results {
		byPath[result.Path] = result
	}

	summary := &Summary{Total: len(inputs)}
	for _, path := range inputs {
		result := byPath[path]
		summary.Results = append(summary.Results, result)
		switch result.Status {
		case "success":
			summary.Success++
		case "cached":
			summary.Cached++
		default:
			summary.Failed++
		}
	}
	return summary
}

func (r *runner) worker(id int, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result) {
	defer wg.Done()
	for job := range jobs {
		r.logger.Info("Worker started job", "worker_id", id, "path", job.Path)
		results <- r.process(id, job)
	}
}

func (r *runner) process(id int, job Job) Result {
	result := Result{Path: job.Path}

	data, err := common.ReadInput(job.Path)
	if err != nil {
		r.logger.Error("Error reading input", "worker_id", id, "path", job.Path, "error", err)
		result.Status = "failed"
		result.Error = err.Error()
		return result
	}
	result.InputBytes = int64(len(data))

	output, cached, err := r.slimOne(job.Path, data)
	if err != nil {
		r.logger.Error("Error slimming input", "worker_id", id, "path", job.Path, "error", err)
		result.Status = "failed"
		result.Error = err.Error()
		return result
	}
	result.OutputBytes = int64(len(output))

	if r.outputDir != "" {
		outPath := outputPath(r.outputDir, job.Path)
		if err := r.store.SaveFile(outPath, []byte(output)); err != nil {
			r.logger.Error("Error saving file", "worker_id", id, "path", outPath, "error", err)
			result.Status = "failed"
			result.Error = err.Error()
			return result
		}
		result.OutPath = outPath
	}

	if cached {
		result.Status = "cached"
	} else {
		result.Status = "success"
	}
	return result
}

// slimOne slims one input, going through the document cache when a database
// is attached.
func (r *runner) slimOne(source string, data []byte) (output string, cached bool, err error) {
	hash := common.ContentHash(data)

	if r.database != nil {
		doc, hit, err := r.database.GetDocument(hash, "slim", r.optionsHash, r.maxAge)
		if err != nil {
			return "", false, fmt.Errorf("cache lookup failed: %w", err)
		}
		if hit {
			return string(doc.Output), true, nil
		}
	}

	output, err = slimmer.SlimWithOptions(string(data), r.opts)
	if err != nil {
		return "", false, err
	}

	if r.database != nil {
		_, err := r.database.SaveDocument(&db.Document{
			ContentHash: hash,
			Operation:   "slim",
			OptionsHash: r.optionsHash,
			Source:      source,
			InputBytes:  int64(len(data)),
			OutputBytes: int64(len(output)),
			Output:      []byte(output),
		})
		if err != nil {
			// A cache write failure should not fail the run.
			r.logger.Warn("Failed to cache slim result", "source", source, "error", err)
		}
	}

	return output, false, nil
}

// outputPath maps an input path to a file inside the output directory.
func outputPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	if base == common.StdinName {
		base = "stdin"
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return filepath.Join(outputDir, base+".slim.html")
}
