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
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "snipglot",
	Short: "Local neural machine translation for captured text",
	Long: `Translate clipboard selections, typed queries, and OCR output through
a locally served neural translation model (EN<->ZH).

The pipeline segments input into sentence-sized chunks, encodes them with
the model's SentencePiece vocabulary, issues one batched call to the local
model server, and reassembles script-correct output.

Use "snipglot translate --help" for translation options.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.snipglot.yaml)")
}
