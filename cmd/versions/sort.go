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
	"slices"

	"github.com/nekitdev/versions"
	"github.com/spf13/cobra"
)

func newSortCommand() *cobra.Command {
	var reverse bool

	command := &cobra.Command{
		Use:   "sort VERSION...",
		Short: "Sort versions in ascending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]versions.Version, 0, len(args))
			for _, arg := range args {
				version, err := versions.ParseVersion(arg)
				if err != nil {
					return err
				}
				parsed = append(parsed, version)
			}

			versions.SortVersions(parsed)

			if reverse {
				slices.Reverse(parsed)
			}

			for _, version := range parsed {
				fmt.Fprintln(cmd.OutOrStdout(), version)
			}

			return nil
		},
	}

	command.Flags().BoolVarP(&reverse, "reverse", "r", false, "sort in descending order")

	return command
}
