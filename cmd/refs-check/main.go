// Reference Check Tool
// Applies the discussion reference transformations to text from a file
// or stdin and prints the result. Useful for eyeballing linkifier and
// highlighter output without a running frontend.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"forum-refs/content"
	"forum-refs/refs"
)

func main() {
	mode := flag.String("mode", "linkify", "transformation: mentions|highlight|linkify|plain|html|markdown")
	in := flag.String("in", "", "input file (default: stdin)")
	flag.Parse()

	initLogger()

	text, err := readInput(*in)
	if err != nil {
		slog.Error("failed to read input", "file", *in, "error", err)
		os.Exit(1)
	}

	switch *mode {
	case "mentions":
		for _, username := range refs.ExtractMentions(text) {
			fmt.Println(username)
		}
	case "highlight":
		fmt.Println(refs.HighlightAllRefs(text))
	case "linkify":
		fmt.Println(refs.LinkifyAllRefs(text))
	case "plain":
		fmt.Println(content.RenderPlain(text))
	case "html":
		fmt.Println(refs.ProcessHTMLContentWithRefs(text))
	case "markdown":
		html, err := content.RenderPost(text)
		if err != nil {
			slog.Error("failed to render markdown", "error", err)
			os.Exit(1)
		}
		fmt.Println(html)
	default:
		slog.Error("unknown mode", "mode", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// initLogger sets up the structured logger with JSON output.
// Log level is controlled by the LOG_LEVEL env var (debug/info/warn/error).
func initLogger() {
	var level slog.Level
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
