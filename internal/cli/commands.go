package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Row mirrors one leaderboard row from the API
type Row struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Score  int64  `json:"score"`
}

type rowsResult struct {
	Rows []Row `json:"rows"`
}

type scoreResult struct {
	UserID int64 `json:"user_id"`
	ChatID int64 `json:"chat_id"`
	Score  int64 `json:"score"`
}

type healthResult struct {
	Status string `json:"status"`
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result healthResult
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage(result.Status)
			return nil
		},
	}
}

func newTopCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the global leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result rowsResult
			if err := client.Get(fmt.Sprintf("/api/v1/top?n=%d", n), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintRows(result.Rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "limit", "n", 10, "Number of rows")
	return cmd
}

func newChatTopCmd() *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "chat-top <chat_id>",
		Short: "Show one chat's leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("chat_id must be an integer: %w", err)
			}

			var result rowsResult
			if err := client.Get(fmt.Sprintf("/api/v1/chats/%d/top?n=%d", chatID, n), &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintRows(result.Rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&n, "limit", "n", 10, "Number of rows")
	return cmd
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <chat_id> <user_id>",
		Short: "Show one user's score in a chat",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("chat_id must be an integer: %w", err)
			}
			userID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("user_id must be an integer: %w", err)
			}

			var result scoreResult
			path := fmt.Sprintf("/api/v1/chats/%d/scores/%d", chatID, userID)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.PrintJSON(result)
			} else {
				out.PrintMessage(fmt.Sprintf("%d gram", result.Score))
			}
			return nil
		},
	}
}

func newAdjustCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "adjust <chat_id> <user_id> <amount>",
		Short: "Add an amount to a user's score (requires --token)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			chatID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("chat_id must be an integer: %w", err)
			}
			userID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("user_id must be an integer: %w", err)
			}
			amount, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("amount must be an integer: %w", err)
			}

			body := map[string]int64{"user_id": userID, "amount": amount}
			var result scoreResult
			path := fmt.Sprintf("/api/v1/chats/%d/adjust", chatID)
			if err := client.Post(path, body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if cfg.Output == "json" {
				out.PrintJSON(result)
			} else {
				out.PrintMessage(fmt.Sprintf("new score: %d gram", result.Score))
			}
			return nil
		},
	}
}
