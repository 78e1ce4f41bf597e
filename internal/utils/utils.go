// Package utils provides concurrency and filesystem helpers.
package utils

import (
	"os"
	"sync"
)

// ConcurrentFetch runs the tasks concurrently and waits for all of them,
// returning the first error encountered. The find command uses this to load
// the catalog and discover compat roots in parallel.
func ConcurrentFetch(tasks ...func() error) error {
	var wg sync.WaitGroup
	errChan := make(chan error, len(tasks))

	for _, task := range tasks {
		wg.Add(1)
		go func(t func() error) {
			defer wg.Done()
			if err := t(); err != nil {
				errChan <- err
			}
		}(task)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	return nil
}

// EnsureDirExists creates the directory (and parents) if it does not already
// exist. Returns an error if the path cannot be created or accessed.
func EnsureDirExists(path string) error {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModePerm)
	}
	return err
}
