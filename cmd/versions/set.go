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

func newSetCommand() *cobra.Command {
	var short bool

	command := &cobra.Command{
		Use:   "set SPECIFIER",
		Short: "Print the canonical version set of a specifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := versions.ParseVersionSet(args[0])
			if err != nil {
				return err
			}

			if short {
				fmt.Fprintln(cmd.OutOrStdout(), set.ShortString())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), set)
			}

			return nil
		},
	}

	command.Flags().BoolVarP(&short, "short", "s", false, "print the short form")

	return command
}
