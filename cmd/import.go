package main

import (
	"fmt"
	"os"

	"github.com/hsiaochiang/ExamWordPrep/internal/config"
	"github.com/hsiaochiang/ExamWordPrep/internal/storage/appdata"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a previously exported data file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		if mode != string(appdata.ImportReplace) && mode != string(appdata.ImportMerge) {
			return fmt.Errorf("unknown import mode %q", mode)
		}

		cfg, err := config.Init()
		if err != nil {
			return err
		}

		logger := setupLogger(cfg.Env)
		defer logger.Sync()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		store, err := appdata.Open(cfg.Storage.DataFile, logger)
		if err != nil {
			return err
		}

		if err := store.Import(cmd.Context(), raw, appdata.ImportMode(mode)); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "import complete")
		return nil
	},
}

func init() {
	importCmd.Flags().String("mode", string(appdata.ImportReplace), "replace or merge")
}
