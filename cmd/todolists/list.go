package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/todolists/internal/app"
	"github.com/nhle/todolists/internal/theme"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Create, show and delete to-do lists",
	}

	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				list, err := a.Lists.Create(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("✔ created "+list.ID))
				return nil
			})
		},
	}

	ls := &cobra.Command{
		Use:   "ls",
		Short: "Show all lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				lists, err := a.Lists.All(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), app.RenderLists(lists))
				return nil
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a list and its items ordered by due date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				list, err := a.Lists.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				items, err := a.Items.ListByList(cmd.Context(), list.ID)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), app.RenderList(*list, items, opts.now()))
				return nil
			})
		},
	}

	rename := &cobra.Command{
		Use:   "rename <list-id> <title>",
		Short: "Rename a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				list, err := a.Lists.Rename(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("✔ renamed "+list.ID))
				return nil
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm <list-id>",
		Short: "Delete a list and all of its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				if err := a.Lists.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("✔ deleted "+args[0]))
				return nil
			})
		},
	}

	cmd.AddCommand(create, ls, show, rename, rm)
	return cmd
}
