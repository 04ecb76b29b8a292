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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/snipglot/snipglot/internal/normalize"
)

var normalizeFile string

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Run an input normalizer without translating",
	Long: `Apply one of the pre-segmentation cleanup passes and print the result.

Useful for inspecting what the pipeline will actually translate.`,
}

var normalizeOCRCmd = &cobra.Command{
	Use:   "ocr [text]",
	Short: "Clean up OCR-recognized text",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, normalizeFile)
		if err != nil {
			return err
		}
		fmt.Println(normalize.OCRText(text))
		return nil
	},
}

var normalizeQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Clean up a dictated or typed English query",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(args, normalizeFile)
		if err != nil {
			return err
		}
		fmt.Println(normalize.QueryText(text))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.AddCommand(normalizeOCRCmd)
	normalizeCmd.AddCommand(normalizeQueryCmd)

	normalizeCmd.PersistentFlags().StringVarP(&normalizeFile, "file", "f", "", "read input from file instead of argument/stdin")
}
