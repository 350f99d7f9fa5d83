package cli

import (
	"context"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vfg2006/social-auth-broker/internal/usecases/tokens"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTokenCommand(factory LifecycleFactory) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Operações sobre tokens de acesso",
	}

	tokenCmd.AddCommand(
		&cobra.Command{
			Use:   "verify <token>",
			Short: "Verifica o token via debug_token e mostra a visão normalizada",
			Args:  cobra.ExactArgs(1),
			RunE: run(factory, func(ctx context.Context, lifecycle tokens.Lifecycle, token string) (interface{}, error) {
				return lifecycle.Introspect(ctx, token)
			}),
		},
		&cobra.Command{
			Use:   "decode <token>",
			Short: "Mostra a resposta bruta do debug_token",
			Args:  cobra.ExactArgs(1),
			RunE: run(factory, func(ctx context.Context, lifecycle tokens.Lifecycle, token string) (interface{}, error) {
				return lifecycle.Decode(ctx, token)
			}),
		},
		&cobra.Command{
			Use:   "exchange <token>",
			Short: "Troca um token curto do Instagram por um de longa duração",
			Args:  cobra.ExactArgs(1),
			RunE: run(factory, func(ctx context.Context, lifecycle tokens.Lifecycle, token string) (interface{}, error) {
				return lifecycle.ExchangeForLongLived(ctx, token)
			}),
		},
		&cobra.Command{
			Use:   "refresh <token>",
			Short: "Renova um token de longa duração do Instagram",
			Args:  cobra.ExactArgs(1),
			RunE: run(factory, func(ctx context.Context, lifecycle tokens.Lifecycle, token string) (interface{}, error) {
				return lifecycle.Refresh(ctx, token)
			}),
		},
	)

	return tokenCmd
}

type operation func(ctx context.Context, lifecycle tokens.Lifecycle, token string) (interface{}, error)

func run(factory LifecycleFactory, op operation) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		lifecycle, err := factory()
		if err != nil {
			return fmt.Errorf("falha ao inicializar clientes: %w", err)
		}

		result, err := op(cmd.Context(), lifecycle, args[0])
		if err != nil {
			return err
		}

		compact, _ := cmd.Flags().GetBool("compact")
		if err := printJSON(cmd.OutOrStdout(), result, compact); err != nil {
			return err
		}

		if response, ok := result.(map[string]interface{}); ok {
			if seconds, ok := tokens.ExpiresIn(response); ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "Expira em %s\n", tokens.FormatDuration(seconds))
			}
		}

		return nil
	}
}

func printJSON(w io.Writer, value interface{}, compact bool) error {
	var (
		data []byte
		err  error
	)

	if compact {
		data, err = json.Marshal(value)
	} else {
		data, err = json.MarshalIndent(value, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("falha ao serializar resposta: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
