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

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check SPECIFIER VERSION...",
		Short: "Check versions against a specifier",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			specifier, err := versions.ParseSpecifier(args[0])
			if err != nil {
				return err
			}

			misses := 0

			for _, arg := range args[1:] {
				version, err := versions.ParseVersion(arg)
				if err != nil {
					return err
				}

				accepted := specifier.Accepts(version)
				if !accepted {
					misses++
				}

				fmt.Fprintln(cmd.OutOrStdout(), accepted)
			}

			if misses != 0 {
				return fmt.Errorf("%d of %d versions do not match %s", misses, len(args)-1, specifier)
			}

			return nil
		},
	}
}
