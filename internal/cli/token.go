package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BuzzLyutic/plm-api/internal/handler"
	"github.com/BuzzLyutic/plm-api/internal/model"
)

func newTokenCmd() *cobra.Command {
	var (
		sub         string
		email       string
		permissions []string
		ttl         time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed bearer token for local testing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt_secret is not set")
			}

			token, err := handler.IssueToken(cfg.Auth.JWTSecret, model.User{
				ID:          sub,
				Email:       email,
				Permissions: permissions,
			}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&sub, "sub", "", "subject (user id)")
	cmd.Flags().StringVar(&email, "email", "", "email written into audit columns")
	cmd.Flags().StringSliceVar(&permissions, "permission", []string{string(model.PermissionRead)}, "granted permissions")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
