package main

import (
	"fmt"
	"os"

	"github.com/hsiaochiang/ExamWordPrep/internal/config"
	"github.com/hsiaochiang/ExamWordPrep/internal/storage/appdata"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the persisted data file as indented JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Init()
		if err != nil {
			return err
		}

		logger := setupLogger(cfg.Env)
		defer logger.Sync()

		store, err := appdata.Open(cfg.Storage.DataFile, logger)
		if err != nil {
			return err
		}

		raw, err := store.Export(cmd.Context())
		if err != nil {
			return err
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			return os.WriteFile(out, raw, 0o644)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Write the export to a file instead of stdout")
}
