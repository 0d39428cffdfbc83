// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package version holds variables for generating version information.
package version

// Version is this binary's version. Set with linker flags when building raildeploy.
var Version string

// MinFuncToolsVersion is the least Azure Functions Core Tools major version
// the publish step works with.
const MinFuncToolsVersion = "v4.0.0"
