package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/snapreceipt/receiptd/internal/fields"
)

// parsetext reads receipt text from a file argument (or stdin with no args)
// and prints the extracted fields as JSON, plus a shareable summary.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var (
		raw []byte
		err error
	)
	switch len(os.Args) {
	case 1:
		raw, err = io.ReadAll(os.Stdin)
	case 2:
		raw, err = os.ReadFile(os.Args[1])
	default:
		logger.Error("usage", "cmd", "parsetext [file]")
		os.Exit(2)
	}
	if err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	normalized := fields.NormalizeOCRText(string(raw))
	data := fields.ExtractReceiptData(normalized)
	validation := fields.ValidateReceiptData(data)

	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		logger.Error("failed to marshal output", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
	fmt.Println()
	fmt.Println(fields.FormatForSharing(data))

	if !validation.IsValid {
		logger.Warn("extraction incomplete", "missing", validation.Errors)
		os.Exit(3)
	}
}
