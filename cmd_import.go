package main

import (
	"context"
	"fmt"
	"os"

	"intown_server/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import [file.vcf]",
	Short: "Import contacts from a vCard address-book export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = f.Close() }()

	inputs, err := services.ParseContactInputs(ctx, f, logger)
	if err != nil {
		return err
	}

	st, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	cs := newContactService(st, nil)
	imported := 0
	for _, in := range inputs {
		if _, err := cs.CreateContact(ctx, in); err != nil {
			logger.Warn("Skipped contact", zap.String("name", in.Name), zap.Error(err))
			continue
		}
		imported++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d contacts\n", imported, len(inputs))
	return nil
}
