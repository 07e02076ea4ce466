package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// printer writes status lines for a command.
type printer struct {
	out io.Writer
	err io.Writer
}

func newPrinter(cmd *cobra.Command) *printer {
	return &printer{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
}

func (p *printer) Success(format string, args ...interface{}) {
	color.New(color.FgGreen, color.Bold).Fprintf(p.out, "✓ "+format+"\n", args...)
}

func (p *printer) Warning(format string, args ...interface{}) {
	color.New(color.FgYellow, color.Bold).Fprintf(p.err, "⚠ "+format+"\n", args...)
}

func (p *printer) Error(format string, args ...interface{}) {
	color.New(color.FgRed, color.Bold).Fprintf(p.err, "✗ "+format+"\n", args...)
}

func (p *printer) Info(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
