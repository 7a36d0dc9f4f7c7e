// Copyright 2026 nekitdev
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

package main

import (
	"fmt"

	"github.com/nekitdev/versions"
	"github.com/spf13/cobra"
)

func newParseCommand() *cobra.Command {
	var (
		short     bool
		normalize bool
	)

	command := &cobra.Command{
		Use:   "parse VERSION...",
		Short: "Parse versions and print their canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				version, err := versions.ParseVersion(arg)
				if err != nil {
					return err
				}

				if normalize {
					version = version.Normalize()
				}

				if short {
					fmt.Fprintln(cmd.OutOrStdout(), version.ShortString())
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), version)
				}
			}

			return nil
		},
	}

	command.Flags().BoolVarP(&short, "short", "s", false, "print the short form")
	command.Flags().BoolVarP(&normalize, "normalize", "n", false, "normalize the tag phases")

	return command
}
