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

func newSimplifyCommand() *cobra.Command {
	var short bool

	command := &cobra.Command{
		Use:   "simplify SPECIFIER",
		Short: "Simplify a specifier to its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specifier, err := versions.ParseSpecifier(args[0])
			if err != nil {
				return err
			}

			simplified := versions.Simplify(specifier)

			if short {
				fmt.Fprintln(cmd.OutOrStdout(), simplified.ShortString())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), simplified)
			}

			return nil
		},
	}

	command.Flags().BoolVarP(&short, "short", "s", false, "print the short form")

	return command
}
