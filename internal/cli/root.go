// Package cli implementa o tokenctl, utilitário de linha de comando para
// inspecionar e renovar tokens sem subir o servidor HTTP.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
)

const applicationName = "tokenctl"

// LifecycleFactory adia a montagem dos clientes até um comando realmente precisar deles
type LifecycleFactory func() (tokens.Lifecycle, error)

func NewRootCommand(factory LifecycleFactory) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   applicationName,
		Short: "Inspeciona e renova tokens do Facebook e do Instagram",
		Long: `tokenctl usa as mesmas credenciais do servidor (.env ou variáveis de ambiente)
para verificar, decodificar, trocar e renovar tokens de acesso.

Útil para agendar a renovação dos tokens de longa duração do Instagram via cron.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("compact", false, "imprime o JSON em uma única linha")

	rootCmd.AddCommand(newTokenCommand(factory))

	return rootCmd
}

// Execute monta a árvore de comandos e executa com os argumentos do processo
func Execute(factory LifecycleFactory) error {
	return NewRootCommand(factory).Execute()
}
