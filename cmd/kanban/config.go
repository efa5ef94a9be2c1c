package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

func configCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change the configuration",
	}

	cmd.AddCommand(configPathCmd(opts))
	cmd.AddCommand(configKeysCmd(opts))
	cmd.AddCommand(configSetKeyCmd(opts))

	return cmd
}

func configPathCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefaults(opts.configPath)
			fmt.Fprintln(cmd.OutOrStdout(), cfg.Path())
			return nil
		},
	}
}

func configKeysCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List the key bindings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefaults(opts.configPath)
			bindings := cfg.GetAllKeybindings()

			actions := make([]string, 0, len(bindings))
			for action := range bindings {
				actions = append(actions, action)
			}
			sort.Strings(actions)

			for _, action := range actions {
				keys := make([]string, len(bindings[action]))
				for i, k := range bindings[action] {
					keys[i] = fmt.Sprintf("%q", k)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", action, strings.Join(keys, ", "))
			}
			return nil
		},
	}
}

func configSetKeyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-key ACTION KEY...",
		Short: "Replace the keys bound to an action",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				// Saving the defaults would overwrite the user's file
				return fmt.Errorf("not saving key binding: %w", err)
			}
			if err := cfg.UpdateKeybinding(args[0], args[1:]); err != nil {
				return err
			}
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s bound to %s\n", args[0], strings.Join(args[1:], ", "))
			return nil
		},
	}
}
