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
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/snipglot/snipglot/internal/engine"
	"github.com/snipglot/snipglot/internal/translator"
)

var cfgFile string

// initConfig reads the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".snipglot")
	}

	viper.SetEnvPrefix("SNIPGLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("backend", engine.BackendOpus)
	viper.SetDefault("models.en2zh", "./models/opus-mt-en-zh-int8")
	viper.SetDefault("models.zh2en", "./models/opus-mt-zh-en-int8")
	viper.SetDefault("models.nllb", "")
	viper.SetDefault("nllb.source_tag", "eng_Latn")
	viper.SetDefault("nllb.target_tag", "zho_Hans")
	viper.SetDefault("server.url", translator.DefaultServerURL)
	viper.SetDefault("server.timeout", "60s")
	viper.SetDefault("db.path", "")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// buildEngine assembles the pipeline from the effective configuration.
// glossary may be nil.
func buildEngine(glossary map[string]string) *engine.Engine {
	batch := translator.NewServer(viper.GetString("server.url"), viper.GetDuration("server.timeout"))
	cfg := engine.Config{
		Backend:      viper.GetString("backend"),
		ModelDirEnZh: viper.GetString("models.en2zh"),
		ModelDirZhEn: viper.GetString("models.zh2en"),
		NLLBModelDir: viper.GetString("models.nllb"),
		NLLBTagEn:    viper.GetString("nllb.source_tag"),
		NLLBTagZh:    viper.GetString("nllb.target_tag"),
		ExtraTerms:   glossary,
	}
	return engine.New(cfg, batch)
}

// readInput resolves the text to process: a literal argument wins, then
// --file, then stdin.
func readInput(args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
