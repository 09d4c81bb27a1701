package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tototime/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the stored learner record as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		data, ok, err := e.db.Records().Get(cmd.Context(), progress.RecordKey)
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		if !ok {
			return fmt.Errorf("no learner record stored")
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			// Print what is stored even if it is not valid JSON.
			buf.Reset()
			buf.Write(data)
		}
		fmt.Fprintln(cmd.OutOrStdout(), buf.String())
		return nil
	},
}
