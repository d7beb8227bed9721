package main

import (
	"context"
	"fmt"
	"time"

	"agenthub/internal/api/handler/v1handler"
	"agenthub/internal/config"
	"agenthub/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed RS256 JWT
// for a given wallet address and TTL using the configured private key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given wallet address",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")
			admin, _ := cmd.Flags().GetBool("admin")

			now := time.Now()
			signed, err := v1handler.IssueToken(cfg.JWT.PrivateKey, v1handler.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   subject,
					ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
					IssuedAt:  jwt.NewNumericDate(now),
					NotBefore: jwt.NewNumericDate(now),
				},
				Admin: admin,
			})
			if err != nil {
				logger.Fatal(context.Background(), "could not issue JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (the caller's wallet address)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	cmd.Flags().Bool("admin", false, "Grant marketplace administration rights")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
