package multihandler

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/handler"
	"github.com/kvlog/kvlog/handler/consolehandler"
)

var _ handler.Handler = (*MultiHandler)(nil)

func newBufferHandler(buf *bytes.Buffer, level core.Level) *consolehandler.ConsoleHandler {
	return consolehandler.NewConsoleHandler(consolehandler.Config{
		Writer: buf,
		Level:  level,
	})
}

func TestMultiHandler_FanOut(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	multi := NewMultiHandler(
		newBufferHandler(&buf1, core.TraceLevel),
		newBufferHandler(&buf2, core.TraceLevel),
	)
	defer multi.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "multi test"
	multi.Handle(entry)
	core.PutEntry(entry)

	if !strings.Contains(buf1.String(), "multi test") {
		t.Error("First handler did not receive message")
	}
	if !strings.Contains(buf2.String(), "multi test") {
		t.Error("Second handler did not receive message")
	}
}

func TestMultiHandler_ChildrenKeepTheirGates(t *testing.T) {
	var all, errorsOnly bytes.Buffer

	multi := NewMultiHandler(
		newBufferHandler(&all, core.TraceLevel),
		newBufferHandler(&errorsOnly, core.ErrorLevel),
	)
	defer multi.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "routine"
	multi.Handle(entry)
	core.PutEntry(entry)

	if !strings.Contains(all.String(), "routine") {
		t.Error("Permissive child did not receive message")
	}
	if errorsOnly.Len() != 0 {
		t.Errorf("Strict child should have filtered the message, got: %q", errorsOnly.String())
	}
}

func TestMultiHandler_SetLevelBroadcasts(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	multi := NewMultiHandler(
		newBufferHandler(&buf1, core.TraceLevel),
		newBufferHandler(&buf2, core.TraceLevel),
	)
	defer multi.Close()

	multi.SetLevel(core.ErrorLevel)

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "filtered everywhere"
	multi.Handle(entry)
	core.PutEntry(entry)

	if buf1.Len() != 0 || buf2.Len() != 0 {
		t.Errorf("Expected both children to filter, got: %q / %q", buf1.String(), buf2.String())
	}
}

func TestMultiHandler_CloseClosesChildren(t *testing.T) {
	var buf bytes.Buffer

	child := newBufferHandler(&buf, core.TraceLevel)
	multi := NewMultiHandler(child)

	multi.Close()
	multi.Close() // idempotent through the children

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "after close"
	multi.Handle(entry)
	core.PutEntry(entry)

	if buf.Len() != 0 {
		t.Errorf("Expected closed children to drop entries, got: %q", buf.String())
	}
}

func TestMultiHandler_Empty(t *testing.T) {
	multi := NewMultiHandler()
	defer multi.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "nowhere to go"
	multi.Handle(entry) // must not panic
	core.PutEntry(entry)

	multi.Flush()
}

func TestMultiHandler_PreservesEntryAcrossChildren(t *testing.T) {
	var buf1, buf2 bytes.Buffer

	multi := NewMultiHandler(
		newBufferHandler(&buf1, core.TraceLevel),
		newBufferHandler(&buf2, core.TraceLevel),
	)
	defer multi.Close()

	entry := core.GetEntry()
	entry.Level = core.WarningLevel
	entry.Message = "shared"
	entry.Fields.SetInt64("n", 7)
	multi.Handle(entry)
	core.PutEntry(entry)

	want := "WARNING: shared n=7\n"
	if buf1.String() != want || buf2.String() != want {
		t.Errorf("Expected identical lines, got: %q / %q", buf1.String(), buf2.String())
	}
}
