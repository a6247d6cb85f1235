package swarm

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Sink is an append-only JSON-lines destination shared by all tasks of a
// swarm. Appends are serialized, so concurrent tasks never interleave partial
// lines; each Append produces exactly one whole line. The file is truncated
// when the sink is opened.
//
// "Durable" means written, not fsynced: Sink makes no fsync barrier
// guarantee.
type Sink struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// NewSink opens (creating or truncating) the file at path for appending log
// entries.
func NewSink(path string) (*Sink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create sink file %q: %w", path, err)
	}

	return &Sink{file: file, path: path}, nil
}

// Path returns the file path this sink writes to.
func (s *Sink) Path() string {
	return s.path
}

// Append marshals entry and writes it as one line. The sink's lock is held
// only for the write itself, never across marshaling.
func (s *Sink) Append(entry any) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal log entry: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to append to sink %q: %w", s.path, err)
	}

	return nil
}

// Close closes the underlying file. Further appends will fail.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

type successEntry struct {
	Task     int    `json:"task"`
	Status   string `json:"status"`
	Response any    `json:"response"`
}

type errorEntry struct {
	Task   int    `json:"task"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

// outcomeEntry builds the wire record for one task's outcome. The task field
// is the 1-based launch index; exactly one of response/error is present.
func outcomeEntry(task int, value any, err error) any {
	if err != nil {
		return errorEntry{Task: task, Status: "error", Error: err.Error()}
	}
	return successEntry{Task: task, Status: "success", Response: value}
}
