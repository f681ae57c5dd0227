package catalog

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// FileInfo holds metadata for one file found under an action's paths.
type FileInfo struct {
	Path string
	Size uint64
}

// PathsAction returns an Action that removes every file under the given
// paths and reports one Entry per removed file. Glob patterns are allowed.
// Missing paths are ignored; an action that finds nothing returns
// ErrNotApplicable.
func PathsAction(paths []string, kind Kind) Action {
	return func(ctx context.Context) (Result, error) {
		expanded, err := ExpandPaths(paths)
		if err != nil {
			return Result{}, err
		}

		files, err := listFiles(expanded)
		if err != nil {
			return Result{}, err
		}
		if len(files) == 0 {
			return Result{}, ErrNotApplicable
		}

		var result Result
		var firstErr error
		for _, f := range files {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			default:
			}

			if err := os.Remove(f.Path); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue // vanished between walk and remove
				}
				if firstErr == nil {
					firstErr = &RemoveError{Path: f.Path, Kind: kind, Err: err}
				}
				continue
			}
			result.BytesFreed += f.Size
			result.Entries = append(result.Entries, Entry{
				Path: f.Path,
				Size: f.Size,
				Kind: kind,
			})
		}

		if len(result.Entries) == 0 && firstErr != nil {
			return Result{}, firstErr
		}
		return result, nil
	}
}

// SizeOf calculates total size of all files under given paths.
// Walks directories in parallel. Access errors are skipped rather than
// stopping the scan.
func SizeOf(paths []string) uint64 {
	var total atomic.Uint64

	var wg sync.WaitGroup
	for _, path := range paths {
		wg.Add(1)
		go func(p string) {
			defer wg.Done()
			_ = filepath.WalkDir(p, func(_ string, d fs.DirEntry, err error) error {
				if err != nil {
					return nil
				}
				if d.IsDir() || d.Type()&fs.ModeSymlink != 0 {
					return nil
				}
				info, err := d.Info()
				if err != nil {
					return nil
				}
				total.Add(uint64(info.Size()))
				return nil
			})
		}(path)
	}
	wg.Wait()

	return total.Load()
}

// listFiles returns file info for all regular files under given paths.
// Missing paths yield no files and no error.
func listFiles(paths []string) ([]FileInfo, error) {
	var files []FileInfo

	for _, path := range paths {
		err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return nil
				}
				return nil
			}
			if d.IsDir() || d.Type()&fs.ModeSymlink != 0 {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return nil
			}
			files = append(files, FileInfo{Path: p, Size: uint64(info.Size())})
			return nil
		})
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return files, err
		}
	}

	return files, nil
}

// ExpandTilde replaces a leading ~ with the user's home directory.
func ExpandTilde(path string) (string, error) {
	if path == "~" || len(path) >= 2 && path[0] == '~' && path[1] == '/' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}

// ExpandPaths expands tildes and glob patterns in path specs.
func ExpandPaths(patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		expanded, err := ExpandTilde(pattern)
		if err != nil {
			return nil, err
		}

		if containsGlobMeta(expanded) {
			matches, err := filepath.Glob(expanded)
			if err != nil {
				return nil, err
			}
			result = append(result, matches...)
		} else {
			result = append(result, expanded)
		}
	}

	return result, nil
}

func containsGlobMeta(s string) bool {
	for _, c := range s {
		if c == '*' || c == '?' || c == '[' {
			return true
		}
	}
	return false
}
