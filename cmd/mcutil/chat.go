package main

import (
	"fmt"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/alenalex/mcutil/internal/chat"
)

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Translate and format chat color codes",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "colorize <text>",
		Short: "Translate marker codes into native color codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: withFormatter(func(cmd *cobra.Command, f *chat.Formatter, text string) error {
			colored, ok := f.Colorize(text)
			if !ok {
				return errBlankText()
			}
			fmt.Fprintln(cmd.OutOrStdout(), colored)
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "strip <text>",
		Short: "Remove marker and native color codes",
		Args:  cobra.MinimumNArgs(1),
		RunE: withFormatter(func(cmd *cobra.Command, f *chat.Formatter, text string) error {
			colored, ok := f.Colorize(text)
			if !ok {
				return errBlankText()
			}
			plain, _ := chat.StripColorCodes(colored)
			fmt.Fprintln(cmd.OutOrStdout(), plain)
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "format <text>",
		Short: "Prepend the configured prefix",
		Args:  cobra.MinimumNArgs(1),
		RunE: withFormatter(func(cmd *cobra.Command, f *chat.Formatter, text string) error {
			fmt.Fprintln(cmd.OutOrStdout(), f.FormatMessage(text))
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "send <text>",
		Short: "Prefix, colorize and render a message on the terminal",
		Args:  cobra.MinimumNArgs(1),
		RunE: withFormatter(func(cmd *cobra.Command, f *chat.Formatter, text string) error {
			f.Send(chat.ConsoleSink{W: cmd.OutOrStdout()}, text)
			return nil
		}),
	})
	return cmd
}

// withFormatter joins the arguments into one message and hands it to run
// together with the configured formatter.
func withFormatter(run func(cmd *cobra.Command, f *chat.Formatter, text string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		defer a.close()
		return run(cmd, a.utils.Chat(), strings.Join(args, " "))
	}
}

func errBlankText() error {
	return oops.Code("INVALID_ARGUMENT").Errorf("text is blank")
}
