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

func newNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next KIND VERSION",
		Short: "Increment a version",
		Long: `Increment the given part of a version.

Valid kinds are major, minor, micro, patch, pre, post, dev and breaking.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := versions.ParseVersion(args[1])
			if err != nil {
				return err
			}

			var next versions.Version

			switch kind := args[0]; kind {
			case "major":
				next = version.NextMajor()
			case "minor":
				next = version.NextMinor()
			case "micro":
				next = version.NextMicro()
			case "patch":
				next = version.NextPatch()
			case "pre":
				next = version.NextPre()
			case "post":
				next = version.NextPost()
			case "dev":
				next = version.NextDev()
			case "breaking":
				next = version.NextBreaking()
			default:
				return fmt.Errorf("unknown kind %q", kind)
			}

			fmt.Fprintln(cmd.OutOrStdout(), next)

			return nil
		},
	}
}
