// Copyright © 2024 The byteserve authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	Version = ""
	Commit  = ""
	Date    = ""
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "byteserve",
	Short: "Static file server with byte-range support",
	Long: `Serve files over HTTP with RFC 7233 single-range
partial-content support.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printVersion, _ := cmd.Flags().GetBool("version")
		if printVersion {
			if len(Version) > 0 && Version[0] != 'v' && Version != "dev" {
				Version = "v" + Version
			}
			outputInfo("byteserve %s (%s) %s", Version, Commit, Date)
			return nil
		}
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute(version, commit, date string) int {
	Version = version
	Commit = commit
	if date != "" {
		Date = date
	} else {
		Date = time.Now().UTC().Format(time.RFC3339)
	}
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().Bool("version", false, "display command version")
	rootCmd.PersistentFlags().BoolP("debug", "v", false, "debug logging")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose logging")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to a config file (default: ~/.config/byteserve/config.ini)")
}
