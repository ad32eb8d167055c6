// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcmtemplating/linkforge/cmd/configuration"
	"github.com/tcmtemplating/linkforge/pkg/fields"
	"github.com/tcmtemplating/linkforge/pkg/repository"
)

// EnvPrefix prefixes the environment variables overriding flags
const EnvPrefix = "LINKFORGE"

func configureEnv(vip *viper.Viper) {
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
}

// configureRepositoryFlags configures the flags shared by all commands
// reading from repositories
func configureRepositoryFlags(command *cobra.Command, vip *viper.Viper) {
	command.PersistentFlags().StringSliceP("repositories", "r", []string{},
		"Content repositories, local directories or GitHub tree URLs (https://github.com/<owner>/<repo>/tree/<ref>/<path>). Identifiers are routed to the first repository indexing their publication.")
	_ = vip.BindPFlag("repositories", command.PersistentFlags().Lookup("repositories"))

	command.PersistentFlags().Bool("use-git", false,
		"Clone GitHub repositories with git instead of reading them through the GitHub API.")
	_ = vip.BindPFlag("use-git", command.PersistentFlags().Lookup("use-git"))

	command.PersistentFlags().StringToString("github-oauth-token-map", map[string]string{},
		"GitHub personal tokens authorizing read access from repositories per GitHub instance, as host=token or host=username:token.")
	_ = vip.BindPFlag("github-oauth-token-map", command.PersistentFlags().Lookup("github-oauth-token-map"))

	cacheDir := ""
	userHomeDir, err := os.UserHomeDir()
	if err == nil {
		// default value $HOME/.linkforge/cache
		cacheDir = filepath.Join(userHomeDir, configuration.LinkforgeHomeDir, "cache")
	}
	command.PersistentFlags().String("cache-dir", cacheDir,
		"Cache directory, used for GitHub responses and git clones.")
	_ = vip.BindPFlag("cache-dir", command.PersistentFlags().Lookup("cache-dir"))

	command.PersistentFlags().Int("workers", 10,
		"Number of parallel workers.")
	_ = vip.BindPFlag("workers", command.PersistentFlags().Lookup("workers"))

	command.PersistentFlags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.PersistentFlags().Lookup("fail-fast"))

	command.PersistentFlags().Int("cache-size", fields.DefaultCacheSize,
		"Number of linked content documents cached by each worker.")
	_ = vip.BindPFlag("cache-size", command.PersistentFlags().Lookup("cache-size"))

	command.PersistentFlags().StringSlice("schemes", []string{repository.Scheme},
		"Prefixes of attribute values treated as repository identifiers.")
	_ = vip.BindPFlag("schemes", command.PersistentFlags().Lookup("schemes"))
}

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().StringP("input", "i", "",
		"Input file or directory. Every file below a directory is a unit.")
	_ = vip.BindPFlag("input", command.Flags().Lookup("input"))

	command.Flags().StringP("destination", "d", "",
		"Destination path.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().String("mode", "auto",
		"Resolution mode: `markup` for rendered output, `formattext` for XHTML rich text, `auto` to decide by file extension (.xml, .xhtml and .fmt are format text).")
	_ = vip.BindPFlag("mode", command.Flags().Lookup("mode"))

	command.Flags().Bool("dry-run", false,
		"Runs the command end-to-end but instead of writing files, it will output the projected file/folder hierarchy to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().String("tag-prefix", "",
		"Prefix of the emitted link element names, e.g. `tcm:`.")
	_ = vip.BindPFlag("tag-prefix", command.Flags().Lookup("tag-prefix"))

	command.Flags().String("link-prefix", "",
		"Prefix of root relative URLs in format text.")
	_ = vip.BindPFlag("link-prefix", command.Flags().Lookup("link-prefix"))

	command.Flags().String("variant", "",
		"Binary variant published for markup images.")
	_ = vip.BindPFlag("variant", command.Flags().Lookup("variant"))

	command.Flags().StringSlice("preserved-namespaces", nil,
		"Namespaces kept in format text output, all others are stripped. Empty keeps all namespaces.")
	_ = vip.BindPFlag("preserved-namespaces", command.Flags().Lookup("preserved-namespaces"))

	command.Flags().Bool("remove-images", false,
		"Drops images from format text.")
	_ = vip.BindPFlag("remove-images", command.Flags().Lookup("remove-images"))

	command.Flags().String("binaries-path", "__binaries",
		"Destination subdirectory of published binaries.")
	_ = vip.BindPFlag("binaries-path", command.Flags().Lookup("binaries-path"))

	command.Flags().String("binaries-url", "/__binaries",
		"URL prefix of published binaries.")
	_ = vip.BindPFlag("binaries-url", command.Flags().Lookup("binaries-url"))
}
