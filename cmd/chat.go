package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/chat"
	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/render"
)

var chatTimeout time.Duration

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the study assistant; without a message, show the conversation",
	Long: `chat sends a message to the study assistant and waits for its answer.
Without arguments it prints the opening conversation and some prompts to try.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().DurationVar(&chatTimeout, "timeout", 30*time.Second, "How long to wait for the reply")
}

func runChat(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		fmt.Fprintln(out, render.Chat(a.Chat.Messages()))
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Try: "+strings.Join(chat.QuickActions, " · "))
		return nil
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), chatTimeout)
	defer cancel()

	ex, err := a.Chat.Send(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	reply, err := ex.Wait(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("no reply within %s", chatTimeout)
	}
	if err != nil {
		return fmt.Errorf("waiting for reply: %w", err)
	}
	fmt.Fprintln(out, render.Chat([]model.Message{ex.Prompt, reply}))
	return nil
}
