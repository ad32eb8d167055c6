// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package version

// Version is set during compile time via -ldflags in the `go build` process.
// It has either the form <X> or <X.Y>, where <X> denominates the current
// 'major' version, and <Y> (if present) the current 'hotfix' version.
var Version = "binary was not built properly"
