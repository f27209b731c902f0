package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gerunddev/interviewer/internal/commands"
	"github.com/gerunddev/interviewer/internal/config"
	"github.com/gerunddev/interviewer/internal/styles"
	cli "github.com/urfave/cli/v3"
)

const version = "0.1.0"

func main() {
	app := &cli.Command{
		Name:    "interviewer",
		Usage:   "Turn markdown notes into an interview question bank",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Config file (default ~/.config/interviewer/config.json)"},
			&cli.StringFlag{Name: "vault", Usage: "Vault directory, overrides vault_dir"},
			&cli.StringFlag{Name: "dialect", Usage: "Question dialect: current, legacy or callout"},
			&cli.BoolFlag{Name: "force", Usage: "Edit notes without the interview tag"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"V"}, Usage: "Log debug output to stderr"},
		},
		Commands: []*cli.Command{
			createCmd(),
			answerCmd(),
			sortCmd(),
			listCmd(),
			showCmd(),
			configCmd(),
			versionCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

// withEnv runs fn against an Env built from the global flags
func withEnv(fn func(ctx context.Context, cmd *cli.Command, e *commands.Env) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		e, cleanup, err := commands.Setup(commands.Options{
			ConfigPath: cmd.String("config"),
			VaultDir:   cmd.String("vault"),
			Dialect:    cmd.String("dialect"),
			Force:      cmd.Bool("force"),
			Verbose:    cmd.Bool("verbose"),
		})
		if err != nil {
			return err
		}
		defer cleanup()

		return fn(ctx, cmd, e)
	}
}

func createCmd() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create an interview note from the template",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "Interview date as YYYY-MM-DD (default today)"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print the note instead of writing it"},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *commands.Env) error {
			var date time.Time
			if s := cmd.String("date"); s != "" {
				d, err := time.ParseInLocation(time.DateOnly, s, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date '%s': must be YYYY-MM-DD", s)
				}
				date = d
			}

			_, err := commands.Create(ctx, e, commands.CreateOptions{
				Date:   date,
				DryRun: cmd.Bool("dry-run"),
			})
			return err
		}),
	}
}

func answerCmd() *cli.Command {
	return &cli.Command{
		Name:      "answer",
		Usage:     "Record the candidate's answer to a question",
		ArgsUsage: "<note> [question]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Candidate answer (skips the editor)"},
			&cli.BoolFlag{Name: "clear", Usage: "Remove the candidate answer"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print a diff instead of writing"},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *commands.Env) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("note argument is required")
			}

			return commands.Answer(ctx, e, commands.AnswerOptions{
				Note:     cmd.Args().Get(0),
				Question: cmd.Args().Get(1),
				Text:     cmd.String("text"),
				SetText:  cmd.IsSet("text"),
				Clear:    cmd.Bool("clear"),
				DryRun:   cmd.Bool("dry-run"),
			})
		}),
	}
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Sort questions by difficulty within sections",
		ArgsUsage: "<note> [section...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "all", Usage: "Sort every section"},
			&cli.BoolFlag{Name: "dry-run", Usage: "Print a diff instead of writing"},
		},
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *commands.Env) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("note argument is required")
			}

			return commands.Sort(ctx, e, commands.SortOptions{
				Note:     cmd.Args().First(),
				Sections: cmd.Args().Tail(),
				All:      cmd.Bool("all"),
				DryRun:   cmd.Bool("dry-run"),
			})
		}),
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the questions of a note",
		ArgsUsage: "<note>",
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *commands.Env) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("note argument is required")
			}
			return commands.List(ctx, e, cmd.Args().First())
		}),
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Preview a note in the terminal",
		ArgsUsage: "<note>",
		Action: withEnv(func(ctx context.Context, cmd *cli.Command, e *commands.Env) error {
			if cmd.Args().Len() < 1 {
				return fmt.Errorf("note argument is required")
			}
			return commands.Show(ctx, e, cmd.Args().First())
		}),
	}
}

func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show or change settings",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the current settings",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.ConfigShow(os.Stdout, cmd.String("config"))
				},
			},
			{
				Name:      "set",
				Usage:     "Change a setting",
				ArgsUsage: "<key> <value>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() != 2 {
						return fmt.Errorf("usage: interviewer config set <key> <value> (keys: %v)", config.Keys)
					}
					return commands.ConfigSet(os.Stdout, cmd.String("config"), cmd.Args().Get(0), cmd.Args().Get(1))
				},
			},
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("interviewer v%s\n", version)
			return nil
		},
	}
}
