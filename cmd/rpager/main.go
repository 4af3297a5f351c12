package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rpager/internal/app"
	"github.com/kk-code-lab/rpager/internal/config"
	"github.com/kk-code-lab/rpager/internal/logging"
	pagerui "github.com/kk-code-lab/rpager/internal/ui/pager"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var errNoInput = errors.New("no file given and stdin is a terminal")

var isTerminal = term.IsTerminal

type rootOptions struct {
	configFile string
	listThemes bool
	listLexers bool
}

func newRootCommand(stdin *os.File, stdout *os.File) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "rpager [flags] [FILE]",
		Short:         "Terminal pager with syntax highlighting",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case opts.listThemes:
				return printNames(cmd.OutOrStdout(), pagerui.StyleNames())
			case opts.listLexers:
				return printNames(cmd.OutOrStdout(), pagerui.LexerNames())
			}

			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, opts.configFile)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			if (path == "" || path == "-") && isTerminal(int(stdin.Fd())) {
				return errNoInput
			}
			return run(cfg, path, stdin, stdout)
		},
	}

	flags := cmd.Flags()
	config.RegisterFlags(flags)
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/rpager/config.*)")
	flags.BoolVar(&opts.listThemes, "list-themes", false, "print available highlighting themes and exit")
	flags.BoolVar(&opts.listLexers, "list-lexers", false, "print available lexers and exit")
	return cmd
}

func run(cfg config.Config, path string, stdin, stdout *os.File) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	opts := apppkg.Options{Path: path, Input: stdin, Config: cfg, Logger: logger}
	doc, err := apppkg.LoadDocument(opts)
	if err != nil {
		return err
	}

	if !isTerminal(int(stdout.Fd())) {
		return apppkg.WritePlain(stdout, doc)
	}

	app, err := apppkg.NewApplication(doc, opts)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer func() {
		_ = app.Close()
	}()
	app.Run()
	return nil
}

func printNames(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	// UTF-8 fallback keeps non-ASCII text readable on terminals without a known encoding.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
