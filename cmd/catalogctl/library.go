// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mangateca/internal/client"
	"github.com/taibuivan/mangateca/internal/social/evaluation"
	"github.com/taibuivan/mangateca/internal/users/account"
)

func (a *app) accountCommand() *cobra.Command {
	command := &cobra.Command{Use: "account", Short: "Sessions and account favorites"}

	var email, password string
	login := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.client().Login(cmd.Context(), account.LoginInput{Email: email, Password: password})
			if err != nil {
				return err
			}
			return a.print(session)
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")
	_ = login.MarkFlagRequired("email")
	_ = login.MarkFlagRequired("password")

	me := &cobra.Command{
		Use:   "me",
		Short: "Show the account of --token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			found, err := a.client().Me(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(found)
		},
	}

	favorites := &cobra.Command{
		Use:   "favorites <account-id>",
		Short: "Show the favorite mangas of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.resolver().AccountFavorites(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(view)
		},
	}

	command.AddCommand(login, me, favorites)
	return command
}

func (a *app) favoritesCommand() *cobra.Command {
	command := &cobra.Command{Use: "favorites", Short: "Favorite lists"}

	var userID string
	var listOptions client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List favorite lists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.client().ListFavoriteLists(cmd.Context(), userID, listOptions)
			if err != nil {
				return err
			}
			return a.print(page)
		},
	}
	list.Flags().StringVar(&userID, "user", "", "only lists owned by this account id")
	addListFlags(list, &listOptions)

	show := &cobra.Command{
		Use:   "show <list-id>",
		Short: "Show a favorite list with manga titles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.resolver().FavoriteList(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(view)
		},
	}

	add := &cobra.Command{
		Use:   "add <list-id> <manga-id>",
		Short: "Add a manga to a list unless it is already there",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := a.client().AddMangaToList(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(updated)
		},
	}

	remove := &cobra.Command{
		Use:   "remove <list-id> <manga-id>",
		Short: "Remove a manga from a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := a.client().RemoveMangaFromList(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.print(updated)
		},
	}

	command.AddCommand(list, show, add, remove)
	return command
}

func (a *app) evaluationsCommand() *cobra.Command {
	command := &cobra.Command{Use: "evaluations", Short: "Manga evaluations"}

	var listOptions client.ListOptions
	list := &cobra.Command{
		Use:   "list <manga-id>",
		Short: "List the evaluations of a manga with its title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := a.client().ListEvaluationsByManga(cmd.Context(), args[0], listOptions)
			if err != nil {
				return err
			}
			return a.print(client.Page[client.EvaluationView]{
				Data: a.resolver().Evaluations(cmd.Context(), page.Data),
				Meta: page.Meta,
			})
		},
	}
	addListFlags(list, &listOptions)

	summary := &cobra.Command{
		Use:   "summary <manga-id>",
		Short: "Show count and average rating of a manga",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.client().EvaluationSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(result)
		},
	}

	var input evaluation.Input
	rate := &cobra.Command{
		Use:   "rate <manga-id>",
		Short: "Rate a manga",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.MangaID = args[0]
			created, err := a.client().CreateEvaluation(cmd.Context(), input)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	rate.Flags().StringVar(&input.UserID, "user", "", "evaluating account id")
	rate.Flags().IntVar(&input.Rating, "rating", 0, "rating from 1 to 5")
	rate.Flags().StringVar(&input.Comment, "comment", "", "optional comment")
	_ = rate.MarkFlagRequired("user")
	_ = rate.MarkFlagRequired("rating")

	remove := &cobra.Command{
		Use:   "delete <evaluation-id>",
		Short: "Delete an evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client().DeleteEvaluation(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted evaluation %s\n", args[0])
			return nil
		},
	}

	command.AddCommand(list, summary, rate, remove)
	return command
}
