package synchandler

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
	"github.com/kvlog/kvlog/handler/consolehandler"
)

var _ handler.Handler = (*SyncHandler)(nil)

func TestSyncHandler_Forwards(t *testing.T) {
	var buf bytes.Buffer
	h := NewSyncHandler(consolehandler.NewConsoleHandler(consolehandler.Config{
		Writer: &buf,
	}))

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "through the lock"
	h.Handle(entry)
	core.PutEntry(entry)

	if buf.String() != "INFO: through the lock\n" {
		t.Errorf("Unexpected output: %q", buf.String())
	}

	h.SetLevel(core.ErrorLevel)
	entry = core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "filtered"
	h.Handle(entry)
	core.PutEntry(entry)

	if strings.Contains(buf.String(), "filtered") {
		t.Errorf("SetLevel did not reach the wrapped handler: %q", buf.String())
	}

	h.Flush()
	h.Close()
	h.Close() // idempotent through the wrapped handler
}

func TestSyncHandler_ConcurrentWriters(t *testing.T) {
	var buf bytes.Buffer
	h := NewSyncHandler(consolehandler.NewConsoleHandler(consolehandler.Config{
		Writer: &buf,
	}))
	defer h.Close()

	const goroutines = 8
	const perGoroutine = 100

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				entry := core.GetEntry()
				entry.Level = core.InfoLevel
				entry.Message = "concurrent line"
				h.Handle(entry)
				core.PutEntry(entry)
			}
		}()
	}
	wg.Wait()

	output := buf.String()
	if got := strings.Count(output, "\n"); got != goroutines*perGoroutine {
		t.Errorf("Expected %d lines, got %d", goroutines*perGoroutine, got)
	}
	// Every line must arrive whole
	for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
		if line != "INFO: concurrent line" {
			t.Fatalf("Found a torn line: %q", line)
		}
	}
}
