package swarm

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// EnsureFolder creates the folder at path if it doesn't already exist,
// including any missing parents. Calling it on an existing folder is a no-op.
func EnsureFolder(path string) error {
	if _, err := os.Stat(path); err == nil {
		log.Info().Str("folder", path).Msg("Folder already exists")
		return nil
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", path, err)
	}

	log.Info().Str("folder", path).Msg("Folder created")
	return nil
}

// WriteFile writes content to folder/name, creating the folder first if
// needed.
func WriteFile(folder, name, content string) error {
	if err := EnsureFolder(folder); err != nil {
		return err
	}

	path := filepath.Join(folder, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}

	log.Info().Str("file", path).Msg("File created")
	return nil
}

// WriteFiles writes every name/content pair into folder concurrently. The
// folder is created once up front; the first write error aborts the rest and
// is returned.
func WriteFiles(folder string, files map[string]string) error {
	if err := EnsureFolder(folder); err != nil {
		return err
	}

	var g errgroup.Group
	for name, content := range files {
		name, content := name, content
		g.Go(func() error {
			path := filepath.Join(folder, name)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				return fmt.Errorf("failed to write file %q: %w", path, err)
			}

			log.Info().Str("file", path).Msg("File created")
			return nil
		})
	}

	return g.Wait()
}
