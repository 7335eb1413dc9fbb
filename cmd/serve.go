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
	"github.com/spf13/cobra"

	"github.com/byteserve/byteserve/config"
	"github.com/byteserve/byteserve/http"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP file server",
	Long: `Start the HTTP server which serves files from the root
directory, honoring single byte-range requests.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			exit("unable to load config: %v\n", err)
		}

		if cmd.Flags().Changed("http-addr") {
			cfg.Addr, _ = cmd.Flags().GetString("http-addr")
		}
		if cmd.Flags().Changed("http-port") {
			cfg.Port, _ = cmd.Flags().GetString("http-port")
		}
		if cmd.Flags().Changed("root") {
			cfg.Root, _ = cmd.Flags().GetString("root")
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		debug, _ := cmd.Flags().GetBool("debug")
		if verbose || debug {
			cfg.Verbose = true
		}

		if err := http.NewHandler(cfg.Root, cfg.Verbose).Serve(cfg.Addr + ":" + cfg.Port); err != nil {
			exit("unable to run http server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("http-port", "8011", "port for the http server to listen on")
	serveCmd.Flags().String("http-addr", "0.0.0.0", "addr for the http server to listen on")
	serveCmd.Flags().StringP("root", "r", ".", "directory to serve files from")
}
