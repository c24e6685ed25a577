package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nhle/todolists/internal/app"
	"github.com/nhle/todolists/internal/model"
	"github.com/nhle/todolists/internal/theme"
)

func newItemCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Add, show, edit and delete list items",
	}
	cmd.AddCommand(
		newItemAddCmd(opts),
		newItemShowCmd(opts),
		newItemEditCmd(opts),
		newItemRmCmd(opts),
	)
	return cmd
}

func newItemAddCmd(opts *rootOptions) *cobra.Command {
	var description, due string

	cmd := &cobra.Command{
		Use:   "add <list-id> <title>",
		Short: "Add an item; due defaults to one week from now",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := model.NewItem{ListID: args[0], Title: args[1], Description: description}
			if due != "" {
				t, err := parseDue(due)
				if err != nil {
					return err
				}
				n.DueDate = &t
			}

			return opts.withApp(func(a *app.App) error {
				item, err := a.Items.Create(cmd.Context(), n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("✔ created "+item.ID))
				fmt.Fprintln(cmd.OutOrStdout(), item.String())
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "item description")
	cmd.Flags().StringVar(&due, "due", "", "due date (RFC 3339)")
	return cmd
}

func newItemShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				item, err := a.Items.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), app.RenderItem(*item, opts.now()))
				return nil
			})
		},
	}
}

func newItemEditCmd(opts *rootOptions) *cobra.Command {
	var title, description, due, listID string

	cmd := &cobra.Command{
		Use:   "edit <item-id>",
		Short: "Change an item's title, description, due date or list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u model.ItemUpdate
			flags := cmd.Flags()
			if flags.Changed("title") {
				u.Title = &title
			}
			if flags.Changed("description") {
				u.Description = &description
			}
			if flags.Changed("list") {
				u.TodoListID = &listID
			}
			if flags.Changed("due") {
				t, err := parseDue(due)
				if err != nil {
					return err
				}
				u.DueDate = &t
			}

			return opts.withApp(func(a *app.App) error {
				item, err := a.Items.Update(cmd.Context(), args[0], u)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("✔ updated "+item.ID))
				fmt.Fprintln(cmd.OutOrStdout(), item.String())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVar(&due, "due", "", "new due date (RFC 3339)")
	cmd.Flags().StringVar(&listID, "list", "", "move to this list")
	return cmd
}

func newItemRmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(func(a *app.App) error {
				if err := a.Items.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("✔ deleted "+args[0]))
				return nil
			})
		},
	}
}

func parseDue(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing due date %q: %w", s, err)
	}
	return t, nil
}
