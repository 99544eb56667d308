// Package display renders command results for terminals or machines.
package display

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/pystub/errors"
)

// ShouldOutputJSON reports whether cmd was asked for JSON, through its own
// --json flag or a persistent one on the root command.
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}
	if f := cmd.Flags().Lookup("json"); f != nil && f.Changed {
		on, _ := cmd.Flags().GetBool("json")
		return on
	}
	if f := cmd.Root().PersistentFlags().Lookup("json"); f != nil {
		on, _ := cmd.Root().PersistentFlags().GetBool("json")
		return on
	}
	return false
}

// WriteJSON writes v to w as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
