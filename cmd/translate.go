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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snipglot/snipglot/internal"
	"github.com/snipglot/snipglot/internal/detector"
	"github.com/snipglot/snipglot/internal/normalize"
	"github.com/snipglot/snipglot/internal/script"
	"github.com/snipglot/snipglot/internal/store"
	"github.com/snipglot/snipglot/internal/validator"
)

var (
	translateDirection string
	translateFile      string
	translateOCR       bool
	translateVerify    bool
	translateNoCache   bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text through the local model backend",
	Long: `Translate text between English and Chinese using the locally served
neural translation model.

Input comes from the argument, --file, or stdin. With --direction auto
(the default) the direction is picked from the input language. --ocr runs
the OCR cleanup pass first, for text recognized from screenshots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, translateFile)
		if err != nil {
			return err
		}
		if translateOCR {
			text = normalize.OCRText(text)
		}

		dir, err := resolveDirection(text)
		if err != nil {
			return err
		}

		ctx := context.Background()

		var db *store.Store
		var glossary map[string]string
		if dbPath := viper.GetString("db.path"); dbPath != "" && !translateNoCache {
			db, err = store.New(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if cached, found, cacheErr := db.GetCached(ctx, text, dir); cacheErr == nil && found {
				fmt.Fprintln(os.Stderr, "Using cached translation")
				fmt.Println(cached)
				return nil
			}
			if glossary, err = db.GlossaryMap(ctx); err != nil {
				return fmt.Errorf("failed to load glossary: %w", err)
			}
		}

		eng := buildEngine(glossary)
		res := eng.Translate(ctx, dir, text)
		if !res.OK() {
			return fmt.Errorf("translation failed: %s", res.Err)
		}

		if translateVerify && res.Text != "" {
			if ok, verr := validator.New().IsValid(res.Text, dir); !ok {
				fmt.Fprintf(os.Stderr, "Warning: output language check failed: %v\n", verr)
			}
		}

		if db != nil {
			if err := db.PutCached(ctx, text, dir, res.Text); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to cache result: %v\n", err)
			}
		}

		fmt.Println(res.Text)
		return nil
	},
}

// resolveDirection maps the --direction flag to a Direction, using the
// statistical detector and a CJK script check for "auto".
func resolveDirection(text string) (internal.Direction, error) {
	if translateDirection != "auto" {
		return internal.ParseDirection(translateDirection)
	}
	if dir, ok := detector.New().Direction(text); ok {
		return dir, nil
	}
	if script.ContainsHan(text) {
		return internal.DirectionZhEn, nil
	}
	return internal.DirectionEnZh, nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateDirection, "direction", "d", "auto", "translation direction: auto, en2zh, zh2en")
	translateCmd.Flags().StringVarP(&translateFile, "file", "f", "", "read input from file instead of argument/stdin")
	translateCmd.Flags().BoolVar(&translateOCR, "ocr", false, "apply OCR text cleanup before translating")
	translateCmd.Flags().BoolVar(&translateVerify, "verify", false, "verify the output language matches the direction")
	translateCmd.Flags().BoolVar(&translateNoCache, "no-cache", false, "bypass the translation memory")
}
