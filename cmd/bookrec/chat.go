package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/krishna123-lang/semantic-book-recommender/internal/chat"
	"github.com/spf13/cobra"
)

var chatMessage string

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "Answer a single message instead of starting a session")
	rootCmd.AddCommand(chatCmd)
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Converse with the recommender",
	Long: `Start an interactive chat session with the recommender.

The session remembers its last batch of recommendations, so follow-ups
like "tell me more about #2" work. With --message, answers one message
and exits (JSON output unless --human).

Examples:
  bookrec chat --human
  bookrec chat -m "recommend a mystery novel"`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	root := mustFindRepository()
	engine, _, _ := mustBuildEngine(root)
	session := chat.NewSession(engine, newTracker(root))
	ctx := context.Background()

	if chatMessage != "" {
		reply := session.Respond(ctx, chatMessage)
		if humanOutput {
			fmt.Println(reply.Text)
		} else {
			outputJSON(reply)
		}
		return nil
	}

	fmt.Println("Book chat. Describe what you want to read; type 'quit' to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			break
		}

		reply := session.Respond(ctx, line)
		fmt.Println(reply.Text)
		fmt.Println()
	}

	return scanner.Err()
}
