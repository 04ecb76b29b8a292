/*
Copyright © 2025 The snipglot authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snipglot/snipglot/internal/store"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Manage the terminology glossary",
	Long: `Add, list, and remove terminology corrections.

Glossary entries extend the postprocessor's built-in terminology table:
whenever the left-hand form appears in translated output it is replaced
by the right-hand form, longest match first.`,
}

var glossaryAddCmd = &cobra.Command{
	Use:   "add <wrong> <correct>",
	Short: "Add or update a correction",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openGlossaryStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.GlossaryAdd(context.Background(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to add entry: %w", err)
		}
		fmt.Printf("Added: %s -> %s\n", args[0], args[1])
		return nil
	},
}

var glossaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all corrections",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openGlossaryStore()
		if err != nil {
			return err
		}
		defer db.Close()

		entries, err := db.GlossaryList(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list glossary: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("Glossary is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "WRONG\tCORRECT\tADDED")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Wrong, e.Correct, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

var glossaryRemoveCmd = &cobra.Command{
	Use:   "remove <wrong>",
	Short: "Remove a correction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openGlossaryStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.GlossaryRemove(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed: %s\n", args[0])
		return nil
	},
}

func openGlossaryStore() (*store.Store, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		return nil, fmt.Errorf("db.path is not configured")
	}
	db, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func init() {
	rootCmd.AddCommand(glossaryCmd)
	glossaryCmd.AddCommand(glossaryAddCmd)
	glossaryCmd.AddCommand(glossaryListCmd)
	glossaryCmd.AddCommand(glossaryRemoveCmd)
}
