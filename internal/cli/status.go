// status.go implements "navalha status", a scriptable server probe.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/navalha-dev/navalha/internal/api"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the server connection and session",
	Long: `Probe the configured Navalha server and report whether it is
reachable and whether a session is active. Suitable for scripts and
non-interactive environments.`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, client, err := buildClient()
	if err != nil {
		return err
	}

	fmt.Printf("Servidor: %s\n", cfg.Server.BaseURL)

	user, err := client.Me(context.Background())
	switch {
	case err == nil:
		fmt.Printf("Conexão:  ok\n")
		fmt.Printf("Sessão:   %s\n", user.Username)
	case errors.Is(err, api.ErrUnreachable):
		return fmt.Errorf("servidor inacessível")
	default:
		// Reachable but no session cookie.
		fmt.Printf("Conexão:  ok\n")
		fmt.Printf("Sessão:   nenhuma\n")
	}
	return nil
}
