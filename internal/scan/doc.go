// Package scan imports audio files from tracked folders into the library.
//
// # Scanner
//
// The Scanner walks every tracked folder and adds the audio files the
// library does not know yet:
//
//  1. Walk each folder for files with a configured audio extension
//  2. Skip files already in the library
//  3. Probe durations concurrently
//  4. Add each new file with its own undoable command
//
// # Basic Usage
//
//	scanner := scan.NewScanner(settings, handler, probe, logger, func(event scan.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	res, err := scanner.Scan(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Concurrency
//
// Only duration probing runs in parallel, bounded by the scan_concurrency
// setting. Library changes are submitted from the calling goroutine.
package scan
