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
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/snipglot/snipglot/internal/translator"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend and model readiness",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := buildEngine(nil)
		st := eng.Status()

		fmt.Printf("Backend:  %s\n", st.Backend)
		printDirection("en2zh", st.EnZhReady, st.EnZhError)
		printDirection("zh2en", st.ZhEnReady, st.ZhEnError)

		srv := translator.NewServer(viper.GetString("server.url"), viper.GetDuration("server.timeout"))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.IsAvailable(ctx); err != nil {
			fmt.Printf("Server:   not reachable (%v)\n", err)
		} else {
			fmt.Printf("Server:   ok (%s)\n", viper.GetString("server.url"))
		}
		return nil
	},
}

func printDirection(name string, ready bool, errMsg string) {
	if ready {
		fmt.Printf("%s:    ready\n", name)
		return
	}
	fmt.Printf("%s:    not ready", name)
	if errMsg != "" {
		fmt.Printf(" (%s)", errMsg)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
