package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"rig/internal/driver"
	"rig/internal/ui"
)

// diagnoseDirWithUI runs DiagnoseDir while a progress view renders its events on w.
func diagnoseDirWithUI(ctx context.Context, w io.Writer, dir string, opts driver.Options) (*driver.DirResult, error) {
	paths, err := driver.ListFiles(dir, opts.Extension)
	if err != nil {
		return nil, err
	}
	files := make([]string, len(paths))
	for i, p := range paths {
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			rel = p
		}
		files[i] = filepath.ToSlash(rel)
	}

	events := make(chan driver.Event, 64)
	opts.Progress = driver.ChannelSink{Ch: events}

	var (
		res    *driver.DirResult
		runErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(events)
		res, runErr = driver.DiagnoseDir(ctx, dir, opts)
	}()

	uiErr := ui.Run(ctx, w, fmt.Sprintf("checking %s", dir), files, events)
	// UI мог выйти раньше: не даём воркерам заблокироваться на канале
	go func() {
		for range events {
		}
	}()
	<-done

	if runErr != nil {
		return nil, runErr
	}
	if uiErr != nil {
		fmt.Fprintf(w, "progress view: %v\n", uiErr)
	}
	return res, nil
}
