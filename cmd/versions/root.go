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

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "versions",
		Short: "Work with versions, specifiers and version sets",
		Long: `versions parses, compares and manipulates versions along with
the specifiers that describe version requirements.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newParseCommand(),
		newCheckCommand(),
		newSimplifyCommand(),
		newSortCommand(),
		newNextCommand(),
		newSetCommand(),
		newVersionCommand(),
	)

	return root
}
