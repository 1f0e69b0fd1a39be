package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ash-cli/internal/app"
	"ash-cli/internal/tui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	repoURL = "https://github.com/jamalihassaan/ash-cli"
)

func generateCompletion(shell string) error {
	switch shell {
	case "bash":
		fmt.Println("# bash completion for ash")
		fmt.Println("_ash_completions() {")
		fmt.Println("    local cur")
		fmt.Println("    COMPREPLY=()")
		fmt.Println("    cur=\"${COMP_WORDS[COMP_CWORD]}\"")
		fmt.Println("    opts=\"chats create ask export completion help --type --config --help --version\"")
		fmt.Println("    if [[ $COMP_CWORD -eq 1 ]]; then")
		fmt.Println("        COMPREPLY=( $(compgen -W \"${opts}\" -- \"${cur}\") )")
		fmt.Println("    fi")
		fmt.Println("    return 0")
		fmt.Println("}")
		fmt.Println("complete -F _ash_completions ash")
	case "zsh":
		fmt.Println("# zsh completion for ash")
		fmt.Println("compdef _ash ash")
		fmt.Println("_ash() {")
		fmt.Println("    _arguments -C \\")
		fmt.Println("        '(-h --help)'{-h,--help}'[show help]' \\")
		fmt.Println("        '--type[chat type]:type:(story rag static fluid history)' \\")
		fmt.Println("        '*::command:->command'")
		fmt.Println("}")
	case "fish":
		fmt.Println("# fish completion for ash")
		fmt.Println("complete -c ash -f -a 'chats create ask export completion help'")
		fmt.Println("complete -c ash -s h -l help -d 'Show help'")
		fmt.Println("complete -c ash -l type -d 'Chat type'")
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
	return nil
}

// resolveType accepts both full wire values ("Story Generation") and the
// short aliases used on the command line.
func resolveType(value string, cfg app.Config) (app.ChatType, error) {
	if value == "" {
		return cfg.DefaultType(), nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "story":
		return app.TypeStory, nil
	case "rag", "rag-story":
		return app.TypeRagStory, nil
	case "static", "video-static":
		return app.TypeVideoStatic, nil
	case "fluid", "video-fluid":
		return app.TypeVideoFluid, nil
	case "history", "chatbot":
		return app.TypeHistoryBot, nil
	}
	if t, ok := app.ParseChatType(value); ok {
		return t, nil
	}
	return "", fmt.Errorf("unknown chat type %q", value)
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
	return ctx, cancel
}

func main() {
	// A .env next to the binary is a convenience for local backends.
	_ = godotenv.Load()

	var configPath string
	var typeFlag string

	loadApp := func() (*app.Application, error) {
		path := configPath
		if path == "" {
			path = app.DefaultConfigPath()
		}
		cfg, err := app.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		return app.NewApplication(cfg)
	}

	root := &cobra.Command{
		Use:     "ash",
		Short:   "ASH AI - Urdu stories, videos and history chat from your terminal",
		Long:    "ASH AI is a terminal client for the ASH backend: generate Urdu stories,\nrequest videos, and chat about history.\n\nRun without arguments for the interactive UI, or use the subcommands\nfor scripting.\n\nFor more information, visit: " + repoURL,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if comp, _ := cmd.Flags().GetString("completion"); comp != "" {
				return generateCompletion(comp)
			}
			application, err := loadApp()
			if err != nil {
				return err
			}
			return tui.Run(application)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	root.Flags().String("completion", "", "Generate shell completion (bash|zsh|fish)")

	chatsCmd := &cobra.Command{
		Use:   "chats",
		Short: "List your chats of a type",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			application, err := loadApp()
			if err != nil {
				return err
			}
			chatType, err := resolveType(typeFlag, application.Config)
			if err != nil {
				return err
			}
			chats, err := application.ListChats(ctx, chatType)
			if err != nil {
				return err
			}
			if len(chats) == 0 {
				fmt.Println("no chats")
				return nil
			}
			for _, c := range chats {
				title := c.Title
				if strings.TrimSpace(title) == "" {
					title = "Untitled Chat"
				}
				fmt.Printf("%s\t%s\n", c.ID, title)
			}
			return nil
		},
	}
	chatsCmd.Flags().StringVar(&typeFlag, "type", "", "Chat type (story|rag|static|fluid|history)")

	createCmd := &cobra.Command{
		Use:   "create [text]",
		Short: "Create a chat seeded with text and print its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			application, err := loadApp()
			if err != nil {
				return err
			}
			chatType, err := resolveType(typeFlag, application.Config)
			if err != nil {
				return err
			}
			id, err := application.CreateChat(ctx, args[0], chatType)
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
	createCmd.Flags().StringVar(&typeFlag, "type", "", "Chat type (story|rag|static|fluid|history)")

	askCmd := &cobra.Command{
		Use:   "ask [chat-id] [question]",
		Short: "Ask a question in an existing chat and print the answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			application, err := loadApp()
			if err != nil {
				return err
			}
			session, err := application.OpenSession(ctx, args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			if err := session.Submit(ctx, args[1]); err != nil {
				return err
			}
			history := session.EffectiveHistory()
			if len(history) == 0 {
				return fmt.Errorf("backend returned no answer")
			}
			fmt.Println(history[len(history)-1].Text())
			return nil
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [chat-id]",
		Short: "Download a story chat as a PDF into the working directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			application, err := loadApp()
			if err != nil {
				return err
			}
			session, err := application.OpenSession(ctx, args[0])
			if err != nil {
				return err
			}
			defer session.Close()

			if !session.ExportAvailable() {
				return fmt.Errorf("chat %s has no PDF to export", args[0])
			}
			name, data, err := session.Export(ctx)
			if err != nil {
				return err
			}
			if err := os.WriteFile(name, data, 0o644); err != nil {
				return err
			}
			fmt.Println(name)
			return nil
		},
	}

	completionCmd := &cobra.Command{
		Use:   "completion [shell]",
		Short: "Generate shell completion (bash|zsh|fish)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateCompletion(args[0])
		},
	}

	root.AddCommand(chatsCmd, createCmd, askCmd, exportCmd, completionCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
