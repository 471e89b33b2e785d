// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/mangateca/internal/catalog/author"
	"github.com/taibuivan/mangateca/internal/catalog/manga"
	"github.com/taibuivan/mangateca/internal/client"
	"github.com/taibuivan/mangateca/internal/platform/constants"
)

func (a *app) mangaCommand() *cobra.Command {
	command := &cobra.Command{Use: "manga", Short: "List, show and edit mangas"}

	var authorID string
	var listOptions client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List mangas with their author names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.client().ListMangas(cmd.Context(), authorID, listOptions)
			if err != nil {
				return err
			}
			return a.print(client.Page[client.MangaCard]{
				Data: a.resolver().MangaCards(cmd.Context(), page.Data),
				Meta: page.Meta,
			})
		},
	}
	list.Flags().StringVar(&authorID, "author", "", "only mangas of this author id")
	addListFlags(list, &listOptions)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show a manga with its author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := a.client().GetManga(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			// The detail payload carries the author object under authorId.
			view := client.MangaCard{Manga: *detail.Manga, AuthorName: constants.UnknownAuthor}
			if detail.Author != nil {
				view.AuthorID = detail.Author.ID
				view.AuthorName = detail.Author.Name
			}
			return a.print(view)
		},
	}

	var createFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a manga from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input manga.Input
			if err := readInput(createFile, &input); err != nil {
				return err
			}
			created, err := a.client().CreateManga(cmd.Context(), input)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	addFileFlag(create, &createFile)

	var updateFile string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a manga from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input manga.Input
			if err := readInput(updateFile, &input); err != nil {
				return err
			}
			updated, err := a.client().UpdateManga(cmd.Context(), args[0], input)
			if err != nil {
				return err
			}
			return a.print(updated)
		},
	}
	addFileFlag(update, &updateFile)

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a manga",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client().DeleteManga(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted manga %s\n", args[0])
			return nil
		},
	}

	command.AddCommand(list, get, create, update, remove)
	return command
}

func (a *app) authorCommand() *cobra.Command {
	command := &cobra.Command{Use: "author", Short: "List, show and edit authors"}

	var listOptions client.ListOptions
	list := &cobra.Command{
		Use:   "list",
		Short: "List authors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page, err := a.client().ListAuthors(cmd.Context(), listOptions)
			if err != nil {
				return err
			}
			return a.print(page)
		},
	}
	addListFlags(list, &listOptions)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.client().GetAuthor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(found)
		},
	}

	var createFile string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create an author from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input author.Input
			if err := readInput(createFile, &input); err != nil {
				return err
			}
			created, err := a.client().CreateAuthor(cmd.Context(), input)
			if err != nil {
				return err
			}
			return a.print(created)
		},
	}
	addFileFlag(create, &createFile)

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client().DeleteAuthor(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted author %s\n", args[0])
			return nil
		},
	}

	command.AddCommand(list, get, create, remove)
	return command
}

func addListFlags(command *cobra.Command, options *client.ListOptions) {
	command.Flags().IntVar(&options.Page, "page", 0, "page number (server default 1)")
	command.Flags().IntVar(&options.Limit, "limit", 0, "page size (server default 20, max 100)")
}

func addFileFlag(command *cobra.Command, path *string) {
	command.Flags().StringVarP(path, "file", "f", "-", "JSON payload file, - for stdin")
}

// readInput decodes a JSON payload from path, or stdin for "-".
func readInput(path string, target any) error {
	file := os.Stdin
	if path != "-" {
		opened, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open payload: %w", err)
		}
		defer opened.Close()
		file = opened
	}

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
