// Copyright the raildeploy authors. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"regexp"
)

var errValueNotAString = errors.New("value must be a string")

// App Service site names become DNS labels under azurewebsites.net.
var appNameRegexp = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,58}[a-z0-9]$`)

var errInvalidAppName = errors.New("application name must be between 2 and 60 characters, start and end with a letter or number, and use lower-case letters, numbers, and hyphens only")

func validateAppName(val interface{}) error {
	name, ok := val.(string)
	if !ok {
		return errValueNotAString
	}
	if !appNameRegexp.MatchString(name) {
		return errInvalidAppName
	}
	return nil
}
