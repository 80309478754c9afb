package main

import (
	"context"
	"fmt"

	"intown_server/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample contacts if the store is empty",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	created, err := services.Seed(ctx, newContactService(st, nil), services.SampleContacts)
	if err != nil {
		return err
	}
	logger.Info("Seed complete", zap.Int("created", created))
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d contacts\n", created)
	return nil
}
