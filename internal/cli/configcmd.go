// configcmd.go implements "navalha config", which writes the default
// configuration file for editing.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navalha-dev/navalha/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default configuration file",
	Long: `Create .navalha/config.yaml in your home directory with the
default settings, without overwriting an existing file.`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	home := configHome()

	if cfg, err := config.ReadConfig(home); err == nil {
		fmt.Printf("Configuração existente mantida (servidor: %s)\n", cfg.Server.BaseURL)
		return nil
	}

	cfg := config.DefaultConfig()
	if err := config.WriteConfig(home, cfg); err != nil {
		return fmt.Errorf("escrever configuração: %w", err)
	}
	fmt.Printf("Configuração criada com servidor %s\n", cfg.Server.BaseURL)
	return nil
}
