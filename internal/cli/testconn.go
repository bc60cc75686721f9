package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hackwatch/internal/telegram"
)

func newTestConnectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test-connection",
		Short: "Send a probe message to verify the Telegram bot setup",
		RunE:  runTestConnection,
	}
}

func runTestConnection(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if err := cfg.ValidateTelegram(); err != nil {
		return err
	}

	client, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		return fmt.Errorf("creating Telegram client: %w", err)
	}
	if err := client.TestConnection(); err != nil {
		return fmt.Errorf("sending test message: %w", err)
	}

	fmt.Println("Connection OK! Check your Telegram chat.")
	return nil
}
