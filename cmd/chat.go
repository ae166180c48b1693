package cmd

import (
	"bufio"
	"strings"

	"github.com/raksha-app/raksha/colors"
	"github.com/spf13/cobra"
)

const chatGreeting = "Hello! I am your legal assistant. I can help you understand your " +
	"rights and laws related to women safety in India. Ask me anything."

const chatTroubleMessage = "Sorry, I'm having trouble connecting to the legal database right now."

type chatMessage struct {
	role string // "user" or "bot"
	text string
}

func init() {
	rootCmd.AddCommand(createChatCmd())
}

func createChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the legal assistant",
		Long: `Opens an interactive session with the legal assistant. Type your
question and press enter; 'exit' (or ctrl-d) ends the session. The
transcript only lives for as long as the session does.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd)
		},
	}
}

func runChat(cmd *cobra.Command) error {
	if err := requireSession(); err != nil {
		return err
	}

	transcript := []chatMessage{{role: "bot", text: chatGreeting}}
	printChatMessage(cmd, transcript[0])

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Printf("%s ", colors.Cyan("you>"))

		if !scanner.Scan() {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		if question == "exit" || question == "quit" {
			break
		}

		transcript = append(transcript, chatMessage{role: "user", text: question})

		reply := chatMessage{role: "bot"}
		result, err := api.AskLegalBot(question)
		if err != nil {
			reply.text = chatTroubleMessage
		} else {
			reply.text = result.Answer
		}

		transcript = append(transcript, reply)
		printChatMessage(cmd, reply)
	}

	cmd.Printf("\nChat ended (%v messages).%s\n", len(transcript), demoBadge())

	return scanner.Err()
}

func printChatMessage(cmd *cobra.Command, message chatMessage) {
	label := colors.Green("legal-ai>")
	if message.role == "user" {
		label = colors.Cyan("you>")
	}

	cmd.Printf("%s %s\n", label, message.text)
}
