package consolehandler_test

import (
	"os"

	"github.com/kvlog/kvlog/core"
	"github.com/kvlog/kvlog/formatter"
	"github.com/kvlog/kvlog/handler/consolehandler"
)

// Create a console handler writing text lines to stdout.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.Config{
		Writer: os.Stdout,
	})
	defer h.Close()

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "server started"
	entry.Fields.SetInt64("port", 8080)
	h.Handle(entry)
	core.PutEntry(entry)
	// Output:
	// INFO: server started port=8080
}

// Route warnings and above to stderr as JSON.
func ExampleNewConsoleHandler_stderr() {
	h := consolehandler.NewConsoleHandler(consolehandler.Config{
		UseStderr: true,
		Formatter: formatter.NewJSONFormatter(),
		Level:     core.WarningLevel,
	})
	defer h.Close()
}
