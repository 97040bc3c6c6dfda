package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete assessment history (LLM request logs are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete history without --yes")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.EventRepo().PurgeHistory(cmd.Context())
		if err != nil {
			return fmt.Errorf("purge history: %w", err)
		}
		zap.L().Info("history purged", zap.Int64("rows", n))
		fmt.Fprintf(cmd.OutOrStdout(), "%d registros removidos.\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
